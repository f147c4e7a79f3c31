package usecase

import "projestimate/internal/domain/entities"

// KpiAggregator folds per-phase role costs into the two KPI categories:
// GTO (technical: G1, G2, TA) and GDS (management: PM), each split by
// internal/external sourcing. It is a pure fold with no state; calling it
// repeatedly on the same input yields the same report.
type KpiAggregator struct{}

func NewKpiAggregator() *KpiAggregator {
	return &KpiAggregator{}
}

// Aggregate rolls all phase breakdowns into a KpiReport using the given
// role -> category assignment. A role with no cost source contributes its
// (zero) cost nowhere; percentages are 0, not NaN, when the total project
// cost is 0.
func (k *KpiAggregator) Aggregate(phases []entities.PhaseCostBreakdown, roleCategories map[entities.Role]entities.KpiCategory) entities.KpiReport {
	var report entities.KpiReport

	for _, phase := range phases {
		for _, role := range entities.AllRoles() {
			cost := phase.CostByRole.ValueFor(role)
			if cost == 0 {
				continue
			}

			internal := phase.Sources[role] == entities.CostSourceInternal

			bucket := &report.GTO
			if roleCategories[role] == entities.KpiCategoryGDS {
				bucket = &report.GDS
			}
			if internal {
				bucket.Internal += cost
				report.TotalInternal += cost
			} else {
				bucket.External += cost
				report.TotalExternal += cost
			}
		}
	}

	report.GTO.Total = report.GTO.Internal + report.GTO.External
	report.GDS.Total = report.GDS.Internal + report.GDS.External
	report.TotalProjectCost = report.GTO.Total + report.GDS.Total

	if report.TotalProjectCost > 0 {
		report.TotalInternalPercentage = report.TotalInternal / report.TotalProjectCost * 100
		report.TotalExternalPercentage = report.TotalExternal / report.TotalProjectCost * 100
	}
	return report
}
