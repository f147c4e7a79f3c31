package request

import "projestimate/internal/domain/entities"

type CreateProjectRequest struct {
	Name   string `json:"name" binding:"required"`
	Client string `json:"client"`
}

// RateOverrideRequest mirrors the patch shape: absent fields keep the
// global value; a status-only body deactivates a catalog entry for this
// project.
type RateOverrideRequest struct {
	ID           string   `json:"id"`
	Name         *string  `json:"name"`
	Role         *string  `json:"role"`
	Department   *string  `json:"department"`
	RealRate     *float64 `json:"realRate"`
	OfficialRate *float64 `json:"officialRate"`
	Status       *string  `json:"status"`
}

func (r RateOverrideRequest) ToPatch() entities.RateEntityPatch {
	p := entities.RateEntityPatch{
		ID:           r.ID,
		Name:         r.Name,
		Department:   r.Department,
		RealRate:     r.RealRate,
		OfficialRate: r.OfficialRate,
	}
	if r.Role != nil {
		role := entities.Role(*r.Role)
		p.Role = &role
	}
	if r.Status != nil {
		status := entities.EntityStatus(*r.Status)
		p.Status = &status
	}
	return p
}

type CategoryOverrideRequest struct {
	ID          string   `json:"id"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Multiplier  *float64 `json:"multiplier"`
}

func (r CategoryOverrideRequest) ToPatch() entities.CategoryPatch {
	return entities.CategoryPatch{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Multiplier:  r.Multiplier,
	}
}

type PhaseManDaysRequest struct {
	ManDays *float64 `json:"manDays" binding:"required"`
}

type SelectSupplierRequest struct {
	EntityID string `json:"entityId"`
}
