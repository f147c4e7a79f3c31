package entities

import (
	"encoding/json"
	"time"
)

// ProjectInfo is the identifying block of a project document.
type ProjectInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Client    string    `json:"client,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Feature is an estimated unit of work. Man-days are computed upstream by
// the effort/expertise/risk formulas; this core only consumes the result
// when deriving the development phase.
type Feature struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	CategoryID string  `json:"categoryId,omitempty"`
	Effort     float64 `json:"effort,omitempty"`
	ManDays    float64 `json:"manDays"`
}

// ProjectDocument is the persisted shape of one project, written by the
// external data manager and read back unchanged. Versions are opaque to
// this core and round-trip as raw JSON.
type ProjectDocument struct {
	Project  ProjectInfo       `json:"project"`
	Features []Feature         `json:"features"`
	Phases   PhasePlan         `json:"phases"`
	Config   ProjectConfig     `json:"config"`
	Versions []json.RawMessage `json:"versions"`
}

// PhaseCostBreakdown is the per-phase output handed to the UI and export
// collaborators: man-days split by role, priced by the selected suppliers.
type PhaseCostBreakdown struct {
	Phase         PhaseID             `json:"phase"`
	ManDays       float64             `json:"manDays"`
	ManDaysByRole RoleBreakdown       `json:"manDaysByRole"`
	CostByRole    RoleBreakdown       `json:"costByRole"`
	TotalCost     float64             `json:"totalCost"`
	Sources       map[Role]CostSource `json:"-"`
}

// ProjectCostSummary aggregates every phase breakdown of one project.
type ProjectCostSummary struct {
	Phases       []PhaseCostBreakdown `json:"phases"`
	TotalManDays float64              `json:"totalManDays"`
	TotalCost    float64              `json:"totalCost"`
}

// KpiCategoryTotals is one KPI category (GTO or GDS) split by sourcing.
type KpiCategoryTotals struct {
	Internal float64 `json:"internal"`
	External float64 `json:"external"`
	Total    float64 `json:"total"`
}

// KpiReport rolls phase costs into the two KPI categories and the
// project-wide internal/external split. Percentages are 0 when the total
// project cost is 0.
type KpiReport struct {
	GTO                     KpiCategoryTotals `json:"gto"`
	GDS                     KpiCategoryTotals `json:"gds"`
	TotalInternal           float64           `json:"totalInternal"`
	TotalExternal           float64           `json:"totalExternal"`
	TotalProjectCost        float64           `json:"totalProjectCost"`
	TotalInternalPercentage float64           `json:"totalInternalPercentage"`
	TotalExternalPercentage float64           `json:"totalExternalPercentage"`
}

// KpiCategory names one of the two KPI buckets.
type KpiCategory string

const (
	KpiCategoryGTO KpiCategory = "GTO" // technical: G1, G2, TA
	KpiCategoryGDS KpiCategory = "GDS" // management: PM
)

// DefaultRoleCategoryMap assigns each role to its KPI category.
func DefaultRoleCategoryMap() map[Role]KpiCategory {
	return map[Role]KpiCategory{
		RoleG1: KpiCategoryGTO,
		RoleG2: KpiCategoryGTO,
		RoleTA: KpiCategoryGTO,
		RolePM: KpiCategoryGDS,
	}
}
