package request

import "projestimate/internal/domain/entities"

// RateEntityRequest is the payload for creating or updating a supplier or
// internal resource in the global catalog. The id is empty on create.
type RateEntityRequest struct {
	ID           string  `json:"id"`
	Name         string  `json:"name" binding:"required"`
	Role         string  `json:"role" binding:"required"`
	Department   string  `json:"department"`
	RealRate     float64 `json:"realRate" binding:"required"`
	OfficialRate float64 `json:"officialRate" binding:"required"`
	Status       string  `json:"status"`
}

func (r RateEntityRequest) ToEntity() entities.RateEntity {
	return entities.RateEntity{
		ID:           r.ID,
		Name:         r.Name,
		Role:         entities.Role(r.Role),
		Department:   r.Department,
		RealRate:     r.RealRate,
		OfficialRate: r.OfficialRate,
		Status:       entities.EntityStatus(r.Status),
	}
}

type CategoryRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Multiplier  float64 `json:"multiplier" binding:"required"`
}

func (r CategoryRequest) ToEntity() entities.Category {
	return entities.Category{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Multiplier:  r.Multiplier,
	}
}

type CalculationParametersRequest struct {
	WorkingDaysPerMonth int     `json:"workingDaysPerMonth" binding:"required"`
	WorkingHoursPerDay  int     `json:"workingHoursPerDay" binding:"required"`
	CurrencySymbol      string  `json:"currencySymbol"`
	RiskMargin          float64 `json:"riskMargin"`
	OverheadPercentage  float64 `json:"overheadPercentage"`
}

func (r CalculationParametersRequest) ToEntity() entities.CalculationParameters {
	return entities.CalculationParameters{
		WorkingDaysPerMonth: r.WorkingDaysPerMonth,
		WorkingHoursPerDay:  r.WorkingHoursPerDay,
		CurrencySymbol:      r.CurrencySymbol,
		RiskMargin:          r.RiskMargin,
		OverheadPercentage:  r.OverheadPercentage,
	}
}
