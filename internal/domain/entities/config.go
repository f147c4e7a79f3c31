package entities

// GlobalConfig is the shared catalog of suppliers, internal resources,
// categories and calculation parameters. There is one per process, owned
// by the catalog store; everything downstream works on deep copies.
type GlobalConfig struct {
	Suppliers             []RateEntity          `json:"suppliers"`
	InternalResources     []RateEntity          `json:"internalResources"`
	Categories            []Category            `json:"categories"`
	CalculationParameters CalculationParameters `json:"calculationParameters"`
}

// Clone returns a structurally independent deep copy: no slice or element
// reachable from the result aliases the receiver. This is the isolation
// boundary between the catalog and everything that reads it.
func (c GlobalConfig) Clone() GlobalConfig {
	return GlobalConfig{
		Suppliers:             cloneRateEntities(c.Suppliers),
		InternalResources:     cloneRateEntities(c.InternalResources),
		Categories:            cloneCategories(c.Categories),
		CalculationParameters: c.CalculationParameters,
	}
}

// EffectiveConfig is the configuration one project actually sees: the
// global catalog with that project's overrides merged in. Always a deep
// copy; mutating it can never reach the global catalog or another project.
type EffectiveConfig struct {
	Suppliers             []RateEntity          `json:"suppliers"`
	InternalResources     []RateEntity          `json:"internalResources"`
	Categories            []Category            `json:"categories"`
	CalculationParameters CalculationParameters `json:"calculationParameters"`
}

func (c EffectiveConfig) Clone() EffectiveConfig {
	return EffectiveConfig{
		Suppliers:             cloneRateEntities(c.Suppliers),
		InternalResources:     cloneRateEntities(c.InternalResources),
		Categories:            cloneCategories(c.Categories),
		CalculationParameters: c.CalculationParameters,
	}
}

// FindRateEntity looks an id up across internal resources and suppliers,
// in that order, and reports where it was found. A miss returns
// CostSourceNone and ok=false.
func (c EffectiveConfig) FindRateEntity(id string) (RateEntity, CostSource, bool) {
	if id == "" {
		return RateEntity{}, CostSourceNone, false
	}
	for _, e := range c.InternalResources {
		if e.ID == id {
			return e, CostSourceInternal, true
		}
	}
	for _, e := range c.Suppliers {
		if e.ID == id {
			return e, CostSourceExternal, true
		}
	}
	return RateEntity{}, CostSourceNone, false
}

// ProjectOverrides is the project-scoped patch set layered on the global
// catalog. Created empty when a project is initialized, destroyed with the
// project; it never contains global data, only deltas and additions.
type ProjectOverrides struct {
	Suppliers         []RateEntityPatch          `json:"suppliers"`
	InternalResources []RateEntityPatch          `json:"internalResources"`
	Categories        []CategoryPatch            `json:"categories"`
	CalculationParams CalculationParametersPatch `json:"calculationParams"`
}

func (o ProjectOverrides) Clone() ProjectOverrides {
	return ProjectOverrides{
		Suppliers:         cloneRatePatches(o.Suppliers),
		InternalResources: cloneRatePatches(o.InternalResources),
		Categories:        cloneCategoryPatches(o.Categories),
		CalculationParams: cloneCalcParamsPatch(o.CalculationParams),
	}
}

// ProjectConfig is the config block of a persisted project document.
//
// Current documents carry ProjectOverrides. Legacy flat documents carried
// full item lists directly under config; those fields are kept here so a
// loaded legacy document can be migrated, and are never written back.
type ProjectConfig struct {
	ProjectOverrides *ProjectOverrides `json:"projectOverrides,omitempty"`

	// Legacy flat shape (pre-hierarchical). Read-only migration input.
	Suppliers         []RateEntity                `json:"suppliers,omitempty"`
	InternalResources []RateEntity                `json:"internalResources,omitempty"`
	Categories        []Category                  `json:"categories,omitempty"`
	CalculationParams *CalculationParametersPatch `json:"calculationParams,omitempty"`
}

func cloneRateEntities(in []RateEntity) []RateEntity {
	if in == nil {
		return nil
	}
	out := make([]RateEntity, len(in))
	copy(out, in)
	return out
}

func cloneCategories(in []Category) []Category {
	if in == nil {
		return nil
	}
	out := make([]Category, len(in))
	copy(out, in)
	return out
}

func cloneRatePatches(in []RateEntityPatch) []RateEntityPatch {
	if in == nil {
		return nil
	}
	out := make([]RateEntityPatch, len(in))
	for i, p := range in {
		out[i] = RateEntityPatch{
			ID:           p.ID,
			Name:         cloneStringPtr(p.Name),
			Role:         cloneRolePtr(p.Role),
			Department:   cloneStringPtr(p.Department),
			RealRate:     cloneFloatPtr(p.RealRate),
			OfficialRate: cloneFloatPtr(p.OfficialRate),
			Status:       cloneStatusPtr(p.Status),
		}
	}
	return out
}

func cloneCategoryPatches(in []CategoryPatch) []CategoryPatch {
	if in == nil {
		return nil
	}
	out := make([]CategoryPatch, len(in))
	for i, p := range in {
		out[i] = CategoryPatch{
			ID:          p.ID,
			Name:        cloneStringPtr(p.Name),
			Description: cloneStringPtr(p.Description),
			Multiplier:  cloneFloatPtr(p.Multiplier),
		}
	}
	return out
}

func cloneCalcParamsPatch(p CalculationParametersPatch) CalculationParametersPatch {
	return CalculationParametersPatch{
		WorkingDaysPerMonth: cloneIntPtr(p.WorkingDaysPerMonth),
		WorkingHoursPerDay:  cloneIntPtr(p.WorkingHoursPerDay),
		CurrencySymbol:      cloneStringPtr(p.CurrencySymbol),
		RiskMargin:          cloneFloatPtr(p.RiskMargin),
		OverheadPercentage:  cloneFloatPtr(p.OverheadPercentage),
	}
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloatPtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneRolePtr(p *Role) *Role {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStatusPtr(p *EntityStatus) *EntityStatus {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
