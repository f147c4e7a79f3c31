package entities

import "time"

// PhaseID identifies one of the eight fixed project-lifecycle phases.
type PhaseID string

const (
	PhaseFunctionalSpec PhaseID = "functionalSpec"
	PhaseTechSpec       PhaseID = "techSpec"
	PhaseDevelopment    PhaseID = "development"
	PhaseSIT            PhaseID = "sit"
	PhaseUAT            PhaseID = "uat"
	PhaseVAPT           PhaseID = "vapt"
	PhaseConsolidation  PhaseID = "consolidation"
	PhasePostGoLive     PhaseID = "postGoLive"
)

// AllPhaseIDs returns the phase ids in their fixed lifecycle order.
func AllPhaseIDs() []PhaseID {
	return []PhaseID{
		PhaseFunctionalSpec,
		PhaseTechSpec,
		PhaseDevelopment,
		PhaseSIT,
		PhaseUAT,
		PhaseVAPT,
		PhaseConsolidation,
		PhasePostGoLive,
	}
}

// PhaseDefinition describes one phase: its default role-effort
// distribution (percentages summing to 100) and whether its man-days are
// derived instead of entered. Only development is calculated.
type PhaseDefinition struct {
	ID           PhaseID       `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Type         string        `json:"type"`
	Calculated   bool          `json:"calculated"`
	Distribution RoleBreakdown `json:"distribution"`
}

var phaseTable = []PhaseDefinition{
	{
		ID:           PhaseFunctionalSpec,
		Name:         "Functional Specification",
		Description:  "Functional analysis and specification of the solution",
		Type:         "analysis",
		Distribution: RoleBreakdown{G1: 50, G2: 10, TA: 10, PM: 30},
	},
	{
		ID:           PhaseTechSpec,
		Name:         "Technical Specification",
		Description:  "Technical design and architecture specification",
		Type:         "analysis",
		Distribution: RoleBreakdown{G1: 20, G2: 30, TA: 40, PM: 10},
	},
	{
		ID:           PhaseDevelopment,
		Name:         "Development",
		Description:  "Implementation; man-days derived from feature estimates",
		Type:         "build",
		Calculated:   true,
		Distribution: RoleBreakdown{G1: 10, G2: 70, TA: 10, PM: 10},
	},
	{
		ID:           PhaseSIT,
		Name:         "System Integration Test",
		Description:  "Integration testing across systems",
		Type:         "test",
		Distribution: RoleBreakdown{G1: 20, G2: 50, TA: 20, PM: 10},
	},
	{
		ID:           PhaseUAT,
		Name:         "User Acceptance Test",
		Description:  "Business acceptance testing",
		Type:         "test",
		Distribution: RoleBreakdown{G1: 40, G2: 30, TA: 10, PM: 20},
	},
	{
		ID:           PhaseVAPT,
		Name:         "Vulnerability Assessment / Penetration Test",
		Description:  "Security assessment and remediation support",
		Type:         "test",
		Distribution: RoleBreakdown{G1: 10, G2: 30, TA: 50, PM: 10},
	},
	{
		ID:           PhaseConsolidation,
		Name:         "Consolidation",
		Description:  "Stabilization and defect fixing before go-live",
		Type:         "build",
		Distribution: RoleBreakdown{G1: 20, G2: 40, TA: 20, PM: 20},
	},
	{
		ID:           PhasePostGoLive,
		Name:         "Post Go-Live",
		Description:  "Hypercare support after release",
		Type:         "support",
		Distribution: RoleBreakdown{G1: 15, G2: 55, TA: 15, PM: 15},
	},
}

// PhaseTable returns the immutable phase catalog in lifecycle order.
// Callers get a fresh slice; the definitions themselves are values.
func PhaseTable() []PhaseDefinition {
	out := make([]PhaseDefinition, len(phaseTable))
	copy(out, phaseTable)
	return out
}

// PhaseDefinitionFor returns the definition of one phase.
func PhaseDefinitionFor(id PhaseID) (PhaseDefinition, bool) {
	for _, def := range phaseTable {
		if def.ID == id {
			return def, true
		}
	}
	return PhaseDefinition{}, false
}

// PhaseState is the stored, editable state of one phase inside a project
// document. Cost is a convenience snapshot for the persisted document;
// live figures are always recomputed from man-days, distribution and the
// selected suppliers.
type PhaseState struct {
	ManDays           float64         `json:"manDays"`
	Effort            float64         `json:"effort"`
	AssignedResources map[Role]string `json:"assignedResources,omitempty"`
	Cost              float64         `json:"cost"`
	LastModified      time.Time       `json:"lastModified"`
}

// PhasePlan is the phases block of a project document: per-phase state
// plus the role -> rate-entity selection used for pricing.
type PhasePlan struct {
	Phases            map[PhaseID]PhaseState `json:"phases"`
	SelectedSuppliers map[Role]string        `json:"selectedSuppliers"`
}

// NewPhasePlan returns a plan with every phase present and zeroed.
func NewPhasePlan() PhasePlan {
	phases := make(map[PhaseID]PhaseState, len(phaseTable))
	for _, def := range phaseTable {
		phases[def.ID] = PhaseState{}
	}
	return PhasePlan{
		Phases:            phases,
		SelectedSuppliers: map[Role]string{},
	}
}

func (p PhasePlan) Clone() PhasePlan {
	out := PhasePlan{
		Phases:            make(map[PhaseID]PhaseState, len(p.Phases)),
		SelectedSuppliers: make(map[Role]string, len(p.SelectedSuppliers)),
	}
	for id, st := range p.Phases {
		cp := st
		if st.AssignedResources != nil {
			cp.AssignedResources = make(map[Role]string, len(st.AssignedResources))
			for r, v := range st.AssignedResources {
				cp.AssignedResources[r] = v
			}
		}
		out.Phases[id] = cp
	}
	for r, v := range p.SelectedSuppliers {
		out.SelectedSuppliers[r] = v
	}
	return out
}
