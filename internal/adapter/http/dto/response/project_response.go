package response

import (
	"time"

	"projestimate/internal/domain/entities"
	"projestimate/internal/usecase"
)

// ProjectResponse is the project document as served to the UI.
type ProjectResponse struct {
	ID        string                     `json:"id"`
	Name      string                     `json:"name"`
	Client    string                     `json:"client,omitempty"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
	Features  []entities.Feature         `json:"features"`
	Phases    entities.PhasePlan         `json:"phases"`
	Overrides *entities.ProjectOverrides `json:"projectOverrides,omitempty"`
}

func FromProjectDocument(doc entities.ProjectDocument) ProjectResponse {
	return ProjectResponse{
		ID:        doc.Project.ID,
		Name:      doc.Project.Name,
		Client:    doc.Project.Client,
		CreatedAt: doc.Project.CreatedAt,
		UpdatedAt: doc.Project.UpdatedAt,
		Features:  doc.Features,
		Phases:    doc.Phases,
		Overrides: doc.Config.ProjectOverrides,
	}
}

// CostReportResponse is the full calculation output: per-phase
// breakdowns, totals, KPI rollup and validation diagnostics.
type CostReportResponse struct {
	ProjectID    string                        `json:"projectId"`
	Currency     string                        `json:"currency"`
	Phases       []entities.PhaseCostBreakdown `json:"phases"`
	TotalManDays float64                       `json:"totalManDays"`
	TotalCost    float64                       `json:"totalCost"`
	Kpi          entities.KpiReport            `json:"kpi"`
	Validation   usecase.ValidationResult      `json:"validation"`
}

func FromCostReport(report usecase.CostReport) CostReportResponse {
	return CostReportResponse{
		ProjectID:    report.ProjectID,
		Currency:     report.Currency,
		Phases:       report.Summary.Phases,
		TotalManDays: report.Summary.TotalManDays,
		TotalCost:    report.Summary.TotalCost,
		Kpi:          report.Kpi,
		Validation:   report.Validation,
	}
}
