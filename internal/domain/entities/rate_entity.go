package entities

// MaxDailyRate is the sanity ceiling for daily rates. Anything above it is
// rejected at entry as an obvious data-entry mistake.
const MaxDailyRate = 10000.0

// RateEntity is a supplier or an internal resource priced by daily rate.
//
// RealRate is the actual cost carried internally; OfficialRate is the
// invoiced rate used in external-facing cost reporting. Both are strictly
// positive and bounded by MaxDailyRate.
type RateEntity struct {
	ID           string       `json:"id"`
	Name         string       `json:"name" validate:"required"`
	Role         Role         `json:"role" validate:"required"`
	Department   string       `json:"department"`
	RealRate     float64      `json:"realRate" validate:"gt=0,lte=10000"`
	OfficialRate float64      `json:"officialRate" validate:"gt=0,lte=10000"`
	IsGlobal     bool         `json:"isGlobal"`
	Status       EntityStatus `json:"status"`

	// Resolution markers. Never persisted on the global catalog; set on
	// effective-config entries only.
	IsOverridden      bool `json:"isOverridden,omitempty"`
	IsProjectSpecific bool `json:"isProjectSpecific,omitempty"`
}

func (e RateEntity) IsActive() bool {
	return e.Status != StatusInactive
}

// RateEntityPatch is a project-scoped override for a rate entity.
//
// Nil fields are "keep the global value". A patch whose ID matches a global
// entity is applied on top of it; a patch with an unmatched ID is
// materialized as a new project-specific entity. A status-only patch
// ({id, status}) deactivates a global entity for one project.
type RateEntityPatch struct {
	ID           string        `json:"id"`
	Name         *string       `json:"name,omitempty"`
	Role         *Role         `json:"role,omitempty"`
	Department   *string       `json:"department,omitempty"`
	RealRate     *float64      `json:"realRate,omitempty"`
	OfficialRate *float64      `json:"officialRate,omitempty"`
	Status       *EntityStatus `json:"status,omitempty"`
}

// ApplyTo copies the patch's set fields onto a global entity and marks the
// result as overridden. The receiver and argument are not mutated.
func (p RateEntityPatch) ApplyTo(base RateEntity) RateEntity {
	out := base
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Role != nil {
		out.Role = *p.Role
	}
	if p.Department != nil {
		out.Department = *p.Department
	}
	if p.RealRate != nil {
		out.RealRate = *p.RealRate
	}
	if p.OfficialRate != nil {
		out.OfficialRate = *p.OfficialRate
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	out.IsOverridden = true
	return out
}

// Materialize builds a standalone project-specific entity from a patch that
// matched nothing in the global catalog.
func (p RateEntityPatch) Materialize() RateEntity {
	e := RateEntity{
		ID:                p.ID,
		Status:            StatusActive,
		IsProjectSpecific: true,
	}
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Role != nil {
		e.Role = *p.Role
	}
	if p.Department != nil {
		e.Department = *p.Department
	}
	if p.RealRate != nil {
		e.RealRate = *p.RealRate
	}
	if p.OfficialRate != nil {
		e.OfficialRate = *p.OfficialRate
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	return e
}

// PatchFromRateEntity turns a full entity into a patch with every field
// set. Used when migrating legacy flat project configs.
func PatchFromRateEntity(e RateEntity) RateEntityPatch {
	name := e.Name
	role := e.Role
	dept := e.Department
	real := e.RealRate
	official := e.OfficialRate
	status := e.Status
	if status == "" {
		status = StatusActive
	}
	return RateEntityPatch{
		ID:           e.ID,
		Name:         &name,
		Role:         &role,
		Department:   &dept,
		RealRate:     &real,
		OfficialRate: &official,
		Status:       &status,
	}
}
