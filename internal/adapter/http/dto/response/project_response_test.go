package response

import (
	"testing"
	"time"

	"projestimate/internal/domain/entities"
	"projestimate/internal/usecase"
)

func TestFromProjectDocument(t *testing.T) {
	now := time.Now().UTC()
	overrides := entities.ProjectOverrides{
		Suppliers:         []entities.RateEntityPatch{},
		InternalResources: []entities.RateEntityPatch{},
		Categories:        []entities.CategoryPatch{},
	}
	doc := entities.ProjectDocument{
		Project:  entities.ProjectInfo{ID: "proj-1", Name: "ERP Replacement", Client: "ACME", CreatedAt: now, UpdatedAt: now},
		Features: []entities.Feature{{ID: "f1", ManDays: 12}},
		Phases:   entities.NewPhasePlan(),
		Config:   entities.ProjectConfig{ProjectOverrides: &overrides},
	}

	got := FromProjectDocument(doc)
	if got.ID != "proj-1" || got.Name != "ERP Replacement" || got.Client != "ACME" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if len(got.Features) != 1 || got.Features[0].ManDays != 12 {
		t.Fatalf("features not mapped: %+v", got.Features)
	}
	if got.Overrides == nil {
		t.Fatalf("expected overrides to be carried over")
	}
}

func TestFromCostReport(t *testing.T) {
	report := usecase.CostReport{
		ProjectID: "proj-1",
		Currency:  "€",
		Summary: entities.ProjectCostSummary{
			Phases:       []entities.PhaseCostBreakdown{{Phase: entities.PhaseSIT, ManDays: 100, TotalCost: 42000}},
			TotalManDays: 100,
			TotalCost:    42000,
		},
		Kpi:        entities.KpiReport{TotalProjectCost: 42000},
		Validation: usecase.ValidationResult{IsValid: true, Issues: []string{}},
	}

	got := FromCostReport(report)
	if got.ProjectID != "proj-1" || got.Currency != "€" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if got.TotalCost != 42000 || got.TotalManDays != 100 {
		t.Fatalf("totals not mapped: %+v", got)
	}
	if len(got.Phases) != 1 || got.Phases[0].Phase != entities.PhaseSIT {
		t.Fatalf("phases not mapped: %+v", got.Phases)
	}
	if !got.Validation.IsValid {
		t.Fatalf("validation not mapped")
	}
}
