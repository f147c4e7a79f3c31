package usecase

import (
	"projestimate/internal/domain/entities"

	"github.com/google/uuid"
)

// ConfigResolver materializes the configuration one project sees: the
// global catalog with that project's overrides layered on top.
//
// Resolution is copy-on-read: every returned structure is a deep copy, so
// nothing a caller does to an EffectiveConfig can reach the global catalog
// or another project. That isolation is the load-bearing guarantee of the
// whole configuration subsystem.
type ConfigResolver struct {
	store *CatalogStore
}

func NewConfigResolver(store *CatalogStore) *ConfigResolver {
	return &ConfigResolver{store: store}
}

// Resolve merges overrides onto a deep copy of the global catalog.
//
// nil overrides is the no-project fallback: the result is deep-equal to
// the global catalog but shares no references with it. Otherwise each
// override entry either patches the matching global item by id (marking it
// isOverridden) or is appended as a project-specific item.
func (r *ConfigResolver) Resolve(overrides *entities.ProjectOverrides) (entities.EffectiveConfig, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	global, err := r.store.globalRef()
	if err != nil {
		return entities.EffectiveConfig{}, err
	}
	base := global.Clone()

	if overrides == nil {
		return entities.EffectiveConfig{
			Suppliers:             base.Suppliers,
			InternalResources:     base.InternalResources,
			Categories:            base.Categories,
			CalculationParameters: base.CalculationParameters,
		}, nil
	}

	return entities.EffectiveConfig{
		Suppliers:             mergeRateEntities(base.Suppliers, overrides.Suppliers),
		InternalResources:     mergeRateEntities(base.InternalResources, overrides.InternalResources),
		Categories:            mergeCategories(base.Categories, overrides.Categories),
		CalculationParameters: overrides.CalculationParams.ApplyTo(base.CalculationParameters),
	}, nil
}

// InitializeProjectOverrides returns the empty-but-well-formed override
// set a new project starts with. Downstream code can always assume the
// shape exists; it is never nil slices hiding behind a nil pointer.
func (r *ConfigResolver) InitializeProjectOverrides() entities.ProjectOverrides {
	return entities.ProjectOverrides{
		Suppliers:         []entities.RateEntityPatch{},
		InternalResources: []entities.RateEntityPatch{},
		Categories:        []entities.CategoryPatch{},
		CalculationParams: entities.CalculationParametersPatch{},
	}
}

// ResetOverrides discards every project-level override. This is the only
// supported "reset to defaults": the global catalog is untouched.
func (r *ConfigResolver) ResetOverrides() entities.ProjectOverrides {
	return r.InitializeProjectOverrides()
}

// Migrate converts a legacy flat project config into the hierarchical
// overrides shape.
//
// A config that already carries projectOverrides is returned as-is
// (idempotent). A flat config contributes only its caller-added items:
// entries whose id does not exist in the global catalog become
// project-specific overrides; entries mirroring global items are dropped,
// since resolution re-derives them from the catalog. A config with
// neither shape yields a fresh empty override set.
func (r *ConfigResolver) Migrate(cfg entities.ProjectConfig) (entities.ProjectOverrides, error) {
	if cfg.ProjectOverrides != nil {
		return cfg.ProjectOverrides.Clone(), nil
	}

	out := r.InitializeProjectOverrides()

	r.store.mu.RLock()
	global, err := r.store.globalRef()
	if err != nil {
		r.store.mu.RUnlock()
		return entities.ProjectOverrides{}, err
	}
	supplierIDs := idSet(global.Suppliers)
	resourceIDs := idSet(global.InternalResources)
	categoryIDs := make(map[string]struct{}, len(global.Categories))
	for _, c := range global.Categories {
		categoryIDs[c.ID] = struct{}{}
	}
	r.store.mu.RUnlock()

	for _, e := range cfg.Suppliers {
		if _, exists := supplierIDs[e.ID]; !exists {
			out.Suppliers = append(out.Suppliers, entities.PatchFromRateEntity(e))
		}
	}
	for _, e := range cfg.InternalResources {
		if _, exists := resourceIDs[e.ID]; !exists {
			out.InternalResources = append(out.InternalResources, entities.PatchFromRateEntity(e))
		}
	}
	for _, c := range cfg.Categories {
		if _, exists := categoryIDs[c.ID]; !exists {
			out.Categories = append(out.Categories, entities.PatchFromCategory(c))
		}
	}
	if cfg.CalculationParams != nil {
		out.CalculationParams = *cfg.CalculationParams
	}
	return out, nil
}

// AddRateOverride validates and appends a supplier or internal-resource
// override, assigning an id when absent. The input overrides value is not
// mutated and the global catalog is never touched.
//
// A patch that targets an existing global item only needs its changed
// fields to be valid; a patch introducing a new item must materialize into
// a fully valid entity. A patch whose resulting name duplicates another
// entry in the project's effective collection is rejected, mirroring the
// duplicate-name rule the catalog store enforces for the global scope.
func (r *ConfigResolver) AddRateOverride(overrides entities.ProjectOverrides, c Collection, patch entities.RateEntityPatch) (entities.ProjectOverrides, error) {
	if !c.IsRateCollection() {
		return entities.ProjectOverrides{}, ErrUnknownCollection
	}

	if issues := validateRatePatch(patch); len(issues) > 0 {
		return entities.ProjectOverrides{}, newValidationError(issues)
	}

	matchesGlobal, err := r.globalHasRateEntity(c, patch.ID)
	if err != nil {
		return entities.ProjectOverrides{}, err
	}
	if !matchesGlobal {
		if patch.ID == "" {
			patch.ID = uuid.NewString()
		}
		if issues := validateRateEntity(patch.Materialize()); len(issues) > 0 {
			return entities.ProjectOverrides{}, newValidationError(issues)
		}
	}

	if patch.Name != nil {
		current, err := r.ProjectRateItems(&overrides, c)
		if err != nil {
			return entities.ProjectOverrides{}, err
		}
		if hasDuplicateName(current, *patch.Name, patch.ID) {
			return entities.ProjectOverrides{}, newValidationError([]string{"an item named " + quoted(*patch.Name) + " already exists in " + string(c)})
		}
	}

	out := overrides.Clone()
	if c == CollectionInternalResources {
		out.InternalResources = append(out.InternalResources, patch)
	} else {
		out.Suppliers = append(out.Suppliers, patch)
	}
	return out, nil
}

// AddCategoryOverride is AddRateOverride for categories.
func (r *ConfigResolver) AddCategoryOverride(overrides entities.ProjectOverrides, patch entities.CategoryPatch) (entities.ProjectOverrides, error) {
	if issues := validateCategoryPatch(patch); len(issues) > 0 {
		return entities.ProjectOverrides{}, newValidationError(issues)
	}

	matchesGlobal, err := r.globalHasCategory(patch.ID)
	if err != nil {
		return entities.ProjectOverrides{}, err
	}
	if !matchesGlobal {
		if patch.ID == "" {
			patch.ID = uuid.NewString()
		}
		if issues := validateCategory(patch.Materialize()); len(issues) > 0 {
			return entities.ProjectOverrides{}, newValidationError(issues)
		}
	}

	if patch.Name != nil {
		current, err := r.ProjectCategories(&overrides)
		if err != nil {
			return entities.ProjectOverrides{}, err
		}
		if hasDuplicateCategoryName(current, *patch.Name, patch.ID) {
			return entities.ProjectOverrides{}, newValidationError([]string{"a category named " + quoted(*patch.Name) + " already exists"})
		}
	}

	out := overrides.Clone()
	out.Categories = append(out.Categories, patch)
	return out, nil
}

// ProjectRateItems resolves and returns one rate collection as the project
// sees it.
func (r *ConfigResolver) ProjectRateItems(overrides *entities.ProjectOverrides, c Collection) ([]entities.RateEntity, error) {
	cfg, err := r.Resolve(overrides)
	if err != nil {
		return nil, err
	}
	switch c {
	case CollectionSuppliers:
		return cfg.Suppliers, nil
	case CollectionInternalResources:
		return cfg.InternalResources, nil
	}
	return nil, ErrUnknownCollection
}

// ProjectCategories resolves and returns the categories as the project
// sees them.
func (r *ConfigResolver) ProjectCategories(overrides *entities.ProjectOverrides) ([]entities.Category, error) {
	cfg, err := r.Resolve(overrides)
	if err != nil {
		return nil, err
	}
	return cfg.Categories, nil
}

func (r *ConfigResolver) globalHasRateEntity(c Collection, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	global, err := r.store.globalRef()
	if err != nil {
		return false, err
	}
	list := global.Suppliers
	if c == CollectionInternalResources {
		list = global.InternalResources
	}
	for _, e := range list {
		if e.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *ConfigResolver) globalHasCategory(id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	global, err := r.store.globalRef()
	if err != nil {
		return false, err
	}
	for _, c := range global.Categories {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// mergeRateEntities applies the override policy over two id-keyed lists:
// id match -> patch in place, no match -> append as project-specific.
// Global order is preserved; appended items follow in override order.
// Id-less patches (possible in hand-edited documents) never key into the
// index; each one materializes as its own appended entry.
func mergeRateEntities(global []entities.RateEntity, patches []entities.RateEntityPatch) []entities.RateEntity {
	out := global
	index := make(map[string]int, len(out))
	for i, e := range out {
		index[e.ID] = i
	}
	for _, p := range patches {
		if p.ID != "" {
			if i, ok := index[p.ID]; ok {
				out[i] = p.ApplyTo(out[i])
				continue
			}
		}
		e := p.Materialize()
		if e.ID != "" {
			index[e.ID] = len(out)
		}
		out = append(out, e)
	}
	return out
}

func mergeCategories(global []entities.Category, patches []entities.CategoryPatch) []entities.Category {
	out := global
	index := make(map[string]int, len(out))
	for i, c := range out {
		index[c.ID] = i
	}
	for _, p := range patches {
		if p.ID != "" {
			if i, ok := index[p.ID]; ok {
				out[i] = p.ApplyTo(out[i])
				continue
			}
		}
		c := p.Materialize()
		if c.ID != "" {
			index[c.ID] = len(out)
		}
		out = append(out, c)
	}
	return out
}

func idSet(list []entities.RateEntity) map[string]struct{} {
	out := make(map[string]struct{}, len(list))
	for _, e := range list {
		out[e.ID] = struct{}{}
	}
	return out
}
