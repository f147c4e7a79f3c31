package usecase

import (
	"fmt"
	"math"

	"projestimate/internal/domain/entities"
)

// DistributionTolerance is the allowed drift when checking that a phase
// distribution sums to 100%.
const DistributionTolerance = 0.01

// PhaseCostEngine turns phase man-days into role-split man-days and
// supplier-priced costs. It is stateless: every figure is recomputed from
// the current man-days, distribution and supplier selection, never cached.
type PhaseCostEngine struct{}

func NewPhaseCostEngine() *PhaseCostEngine {
	return &PhaseCostEngine{}
}

// DistributeManDays splits a phase total across the four roles by
// percentage. The four outputs sum to the input within floating-point
// tolerance.
func (e *PhaseCostEngine) DistributeManDays(totalManDays float64, distribution entities.RoleBreakdown) entities.RoleBreakdown {
	var out entities.RoleBreakdown
	for _, role := range entities.AllRoles() {
		out.SetValueFor(role, totalManDays*distribution.ValueFor(role)/100)
	}
	return out
}

// PriceByResource prices role man-days using the official rate of each
// role's selected rate entity.
//
// An unselected role, a stale selection pointing at a removed entity, and
// a selection deactivated for this project all price at 0; the man-days
// still count toward totals. A stale reference never blocks the rest of
// the calculation.
func (e *PhaseCostEngine) PriceByResource(manDays entities.RoleBreakdown, selected map[entities.Role]string, cfg entities.EffectiveConfig) (entities.RoleBreakdown, map[entities.Role]entities.CostSource) {
	var costs entities.RoleBreakdown
	sources := make(map[entities.Role]entities.CostSource, len(entities.AllRoles()))

	for _, role := range entities.AllRoles() {
		sources[role] = entities.CostSourceNone

		id := selected[role]
		if id == "" {
			continue
		}
		entity, source, ok := cfg.FindRateEntity(id)
		if !ok || !entity.IsActive() {
			continue
		}
		costs.SetValueFor(role, manDays.ValueFor(role)*entity.OfficialRate)
		sources[role] = source
	}
	return costs, sources
}

// CalculateDevelopmentPhase derives the one calculated phase: its man-days
// are the sum of all feature man-days. Must be re-run whenever features
// change, before any cost figure is trusted.
func (e *PhaseCostEngine) CalculateDevelopmentPhase(features []entities.Feature) float64 {
	total := 0.0
	for _, f := range features {
		total += f.ManDays
	}
	return total
}

// CalculatePhase produces the full breakdown for one phase.
func (e *PhaseCostEngine) CalculatePhase(def entities.PhaseDefinition, manDays float64, selected map[entities.Role]string, cfg entities.EffectiveConfig) entities.PhaseCostBreakdown {
	byRole := e.DistributeManDays(manDays, def.Distribution)
	costs, sources := e.PriceByResource(byRole, selected, cfg)
	return entities.PhaseCostBreakdown{
		Phase:         def.ID,
		ManDays:       manDays,
		ManDaysByRole: byRole,
		CostByRole:    costs,
		TotalCost:     costs.Total(),
		Sources:       sources,
	}
}

// CalculateProject computes every phase of a project document in lifecycle
// order. The development phase is always re-derived from the features,
// regardless of any stored man-day figure.
func (e *PhaseCostEngine) CalculateProject(doc entities.ProjectDocument, cfg entities.EffectiveConfig) entities.ProjectCostSummary {
	summary := entities.ProjectCostSummary{
		Phases: make([]entities.PhaseCostBreakdown, 0, len(entities.AllPhaseIDs())),
	}

	for _, def := range entities.PhaseTable() {
		manDays := doc.Phases.Phases[def.ID].ManDays
		if def.Calculated {
			manDays = e.CalculateDevelopmentPhase(doc.Features)
		}

		breakdown := e.CalculatePhase(def, manDays, doc.Phases.SelectedSuppliers, cfg)
		summary.Phases = append(summary.Phases, breakdown)
		summary.TotalManDays += breakdown.ManDays
		summary.TotalCost += breakdown.TotalCost
	}
	return summary
}

// TotalPhaseCost sums a phase's per-role costs.
func (e *PhaseCostEngine) TotalPhaseCost(breakdown entities.PhaseCostBreakdown) float64 {
	return breakdown.CostByRole.Total()
}

// ValidateAllPhases checks that every phase distribution sums to 100%
// within tolerance and that stored man-days are non-negative. It mutates
// nothing; a malformed plan yields diagnostics, not a failure.
func (e *PhaseCostEngine) ValidateAllPhases(plan entities.PhasePlan) ValidationResult {
	result := validationOK()

	for _, def := range entities.PhaseTable() {
		if total := def.Distribution.Total(); math.Abs(total-100) > DistributionTolerance {
			result.IsValid = false
			result.Issues = append(result.Issues, fmt.Sprintf("phase %s: distribution sums to %.2f%%, expected 100%%", def.ID, total))
		}

		state, ok := plan.Phases[def.ID]
		if !ok {
			result.IsValid = false
			result.Issues = append(result.Issues, fmt.Sprintf("phase %s: missing from plan", def.ID))
			continue
		}
		if state.ManDays < 0 {
			result.IsValid = false
			result.Issues = append(result.Issues, fmt.Sprintf("phase %s: man-days %.2f is negative", def.ID, state.ManDays))
		}
	}
	return result
}
