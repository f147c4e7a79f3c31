package entities

// CalculationParameters is the singleton parameter set of a configuration
// scope (global catalog or one resolved project).
type CalculationParameters struct {
	WorkingDaysPerMonth int     `json:"workingDaysPerMonth" validate:"gt=0"`
	WorkingHoursPerDay  int     `json:"workingHoursPerDay" validate:"gt=0"`
	CurrencySymbol      string  `json:"currencySymbol"`
	RiskMargin          float64 `json:"riskMargin" validate:"gte=0"`
	OverheadPercentage  float64 `json:"overheadPercentage" validate:"gte=0"`
}

// CalculationParametersPatch shallow-merges onto the global parameters:
// a set field wins, a nil field keeps the global value.
type CalculationParametersPatch struct {
	WorkingDaysPerMonth *int     `json:"workingDaysPerMonth,omitempty"`
	WorkingHoursPerDay  *int     `json:"workingHoursPerDay,omitempty"`
	CurrencySymbol      *string  `json:"currencySymbol,omitempty"`
	RiskMargin          *float64 `json:"riskMargin,omitempty"`
	OverheadPercentage  *float64 `json:"overheadPercentage,omitempty"`
}

func (p CalculationParametersPatch) ApplyTo(base CalculationParameters) CalculationParameters {
	out := base
	if p.WorkingDaysPerMonth != nil {
		out.WorkingDaysPerMonth = *p.WorkingDaysPerMonth
	}
	if p.WorkingHoursPerDay != nil {
		out.WorkingHoursPerDay = *p.WorkingHoursPerDay
	}
	if p.CurrencySymbol != nil {
		out.CurrencySymbol = *p.CurrencySymbol
	}
	if p.RiskMargin != nil {
		out.RiskMargin = *p.RiskMargin
	}
	if p.OverheadPercentage != nil {
		out.OverheadPercentage = *p.OverheadPercentage
	}
	return out
}

// IsEmpty reports whether the patch overrides nothing.
func (p CalculationParametersPatch) IsEmpty() bool {
	return p.WorkingDaysPerMonth == nil &&
		p.WorkingHoursPerDay == nil &&
		p.CurrencySymbol == nil &&
		p.RiskMargin == nil &&
		p.OverheadPercentage == nil
}
