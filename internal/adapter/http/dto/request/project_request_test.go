package request

import (
	"testing"

	"projestimate/internal/domain/entities"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(v float64) *float64 { return &v }

func TestRateOverrideRequest_ToPatch(t *testing.T) {
	t.Run("status only", func(t *testing.T) {
		r := RateOverrideRequest{ID: "sup-1", Status: strPtr("inactive")}
		p := r.ToPatch()
		if p.ID != "sup-1" {
			t.Fatalf("expected id carried over, got %q", p.ID)
		}
		if p.Status == nil || *p.Status != entities.StatusInactive {
			t.Fatalf("expected status patch, got %+v", p.Status)
		}
		if p.Name != nil || p.Role != nil || p.RealRate != nil {
			t.Fatalf("expected untouched fields to stay nil")
		}
	})

	t.Run("full entity", func(t *testing.T) {
		r := RateOverrideRequest{
			Name:         strPtr("Accenture"),
			Role:         strPtr("G2"),
			RealRate:     f64Ptr(410),
			OfficialRate: f64Ptr(430),
		}
		p := r.ToPatch()
		if p.Role == nil || *p.Role != entities.RoleG2 {
			t.Fatalf("expected role G2, got %+v", p.Role)
		}
		if p.OfficialRate == nil || *p.OfficialRate != 430 {
			t.Fatalf("expected official rate 430")
		}
	})
}

func TestCategoryOverrideRequest_ToPatch(t *testing.T) {
	r := CategoryOverrideRequest{ID: "cat-1", Multiplier: f64Ptr(2.2)}
	p := r.ToPatch()
	if p.ID != "cat-1" || p.Multiplier == nil || *p.Multiplier != 2.2 {
		t.Fatalf("unexpected patch: %+v", p)
	}
	if p.Name != nil || p.Description != nil {
		t.Fatalf("expected untouched fields to stay nil")
	}
}
