package entities

// Category classifies features and scales their effort by a multiplier.
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Multiplier  float64 `json:"multiplier" validate:"gt=0"`
	IsGlobal    bool    `json:"isGlobal"`

	IsOverridden      bool `json:"isOverridden,omitempty"`
	IsProjectSpecific bool `json:"isProjectSpecific,omitempty"`
}

// CategoryPatch is a project-scoped override for a category. Same merge
// semantics as RateEntityPatch: match by id -> patch, no match -> append.
type CategoryPatch struct {
	ID          string   `json:"id"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Multiplier  *float64 `json:"multiplier,omitempty"`
}

func (p CategoryPatch) ApplyTo(base Category) Category {
	out := base
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Multiplier != nil {
		out.Multiplier = *p.Multiplier
	}
	out.IsOverridden = true
	return out
}

func (p CategoryPatch) Materialize() Category {
	c := Category{
		ID:                p.ID,
		Multiplier:        1,
		IsProjectSpecific: true,
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Multiplier != nil {
		c.Multiplier = *p.Multiplier
	}
	return c
}

func PatchFromCategory(c Category) CategoryPatch {
	name := c.Name
	desc := c.Description
	mult := c.Multiplier
	return CategoryPatch{
		ID:          c.ID,
		Name:        &name,
		Description: &desc,
		Multiplier:  &mult,
	}
}
