package entities

// Role is one of the four effort categories used for man-day distribution
// and supplier pricing.
type Role string

const (
	RoleG1 Role = "G1"
	RoleG2 Role = "G2"
	RoleTA Role = "TA"
	RolePM Role = "PM"
)

// AllRoles returns the roles in their canonical order.
func AllRoles() []Role {
	return []Role{RoleG1, RoleG2, RoleTA, RolePM}
}

func (r Role) IsValid() bool {
	switch r {
	case RoleG1, RoleG2, RoleTA, RolePM:
		return true
	}
	return false
}

// EntityStatus marks a rate entity as selectable (active) or not.
// A project can set a global entity to inactive through a status-only
// override without touching the global catalog.
type EntityStatus string

const (
	StatusActive   EntityStatus = "active"
	StatusInactive EntityStatus = "inactive"
)

// CostSource records whether a priced role was staffed from the internal
// resource pool or from an external supplier.
type CostSource string

const (
	CostSourceInternal CostSource = "internal"
	CostSourceExternal CostSource = "external"
	CostSourceNone     CostSource = ""
)

// RoleBreakdown holds one numeric value per role. It is used both for
// percentage distributions (values summing to 100) and for absolute
// man-day / cost figures.
type RoleBreakdown struct {
	G1 float64 `json:"G1"`
	G2 float64 `json:"G2"`
	TA float64 `json:"TA"`
	PM float64 `json:"PM"`
}

func (b RoleBreakdown) ValueFor(r Role) float64 {
	switch r {
	case RoleG1:
		return b.G1
	case RoleG2:
		return b.G2
	case RoleTA:
		return b.TA
	case RolePM:
		return b.PM
	}
	return 0
}

func (b *RoleBreakdown) SetValueFor(r Role, v float64) {
	switch r {
	case RoleG1:
		b.G1 = v
	case RoleG2:
		b.G2 = v
	case RoleTA:
		b.TA = v
	case RolePM:
		b.PM = v
	}
}

func (b RoleBreakdown) Total() float64 {
	return b.G1 + b.G2 + b.TA + b.PM
}
