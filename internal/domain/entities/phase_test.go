package entities

import (
	"math"
	"testing"
)

func TestPhaseTable_FixedOrderAndDistributions(t *testing.T) {
	table := PhaseTable()
	if len(table) != 8 {
		t.Fatalf("expected 8 phases, got %d", len(table))
	}

	wantOrder := AllPhaseIDs()
	for i, def := range table {
		if def.ID != wantOrder[i] {
			t.Fatalf("phase %d: expected %s, got %s", i, wantOrder[i], def.ID)
		}
		if total := def.Distribution.Total(); math.Abs(total-100) > 0.01 {
			t.Fatalf("phase %s distribution sums to %v, want 100", def.ID, total)
		}
	}
}

func TestPhaseTable_OnlyDevelopmentIsCalculated(t *testing.T) {
	for _, def := range PhaseTable() {
		if def.Calculated != (def.ID == PhaseDevelopment) {
			t.Fatalf("phase %s: calculated=%v", def.ID, def.Calculated)
		}
	}
}

func TestPhaseTable_CallerCannotMutateCatalog(t *testing.T) {
	table := PhaseTable()
	table[0].Distribution.G1 = 999
	table[0].Name = "mutated"

	again, _ := PhaseDefinitionFor(table[0].ID)
	if again.Distribution.G1 == 999 || again.Name == "mutated" {
		t.Fatalf("phase catalog leaked a mutable reference")
	}
}

func TestNewPhasePlan_AllPhasesPresent(t *testing.T) {
	plan := NewPhasePlan()
	if len(plan.Phases) != 8 {
		t.Fatalf("expected 8 phases in plan, got %d", len(plan.Phases))
	}
	for _, id := range AllPhaseIDs() {
		st, ok := plan.Phases[id]
		if !ok {
			t.Fatalf("missing phase %s", id)
		}
		if st.ManDays != 0 || st.Cost != 0 {
			t.Fatalf("new plan phase %s not zeroed: %+v", id, st)
		}
	}
	if plan.SelectedSuppliers == nil {
		t.Fatalf("selected suppliers map must be initialized")
	}
}

func TestPhasePlanClone_Isolation(t *testing.T) {
	plan := NewPhasePlan()
	plan.SelectedSuppliers[RoleG1] = "sup-1"
	plan.Phases[PhaseSIT] = PhaseState{ManDays: 100, AssignedResources: map[Role]string{RoleG2: "int-1"}}

	c := plan.Clone()
	c.SelectedSuppliers[RoleG1] = "other"
	st := c.Phases[PhaseSIT]
	st.ManDays = 5
	st.AssignedResources[RoleG2] = "changed"
	c.Phases[PhaseSIT] = st

	if plan.SelectedSuppliers[RoleG1] != "sup-1" {
		t.Fatalf("clone shares selected suppliers map")
	}
	if plan.Phases[PhaseSIT].ManDays != 100 {
		t.Fatalf("clone shares phase state")
	}
	if plan.Phases[PhaseSIT].AssignedResources[RoleG2] != "int-1" {
		t.Fatalf("clone shares assigned resources map")
	}
}

func TestRoleBreakdownAccessors(t *testing.T) {
	var b RoleBreakdown
	for i, r := range AllRoles() {
		b.SetValueFor(r, float64(i+1))
	}
	if b.G1 != 1 || b.G2 != 2 || b.TA != 3 || b.PM != 4 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
	if b.Total() != 10 {
		t.Fatalf("expected total 10, got %v", b.Total())
	}
	if b.ValueFor(RoleTA) != 3 {
		t.Fatalf("ValueFor mismatch")
	}
}
