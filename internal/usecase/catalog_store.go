package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"projestimate/internal/domain/entities"
	"projestimate/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Collection names one of the override-able catalog collections.
type Collection string

const (
	CollectionSuppliers         Collection = "suppliers"
	CollectionInternalResources Collection = "internalResources"
	CollectionCategories        Collection = "categories"
)

func (c Collection) IsRateCollection() bool {
	return c == CollectionSuppliers || c == CollectionInternalResources
}

var (
	ErrCatalogNotLoaded  = errors.New("catalog not loaded")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrItemNotFound      = errors.New("item not found")
)

// ICatalogUseCase exposes the global catalog: read as a snapshot, mutate
// through explicit save/delete operations that persist the whole document.

type ICatalogUseCase interface {
	GetGlobalConfig() entities.GlobalConfig
	SaveRateEntity(ctx context.Context, c Collection, e entities.RateEntity) (entities.RateEntity, error)
	DeleteRateEntity(ctx context.Context, c Collection, id string) error
	SaveCategory(ctx context.Context, cat entities.Category) (entities.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	UpdateCalculationParameters(ctx context.Context, p entities.CalculationParameters) (entities.CalculationParameters, error)
}

// CatalogStore owns the process-wide GlobalConfig.
//
// The singleton is handed out by reference only to the config resolver;
// every other caller gets a deep copy. Mutation is assumed to come from a
// single UI-driven sequence; the mutex only guards the document swap so a
// port to a multi-writer context stays a one-line change.
type CatalogStore struct {
	mu     sync.RWMutex
	repo   interfaces.ICatalogRepository
	global entities.GlobalConfig
	loaded bool
}

var _ ICatalogUseCase = (*CatalogStore)(nil)

func NewCatalogStore(repo interfaces.ICatalogRepository) *CatalogStore {
	return &CatalogStore{repo: repo}
}

// Load fetches the persisted catalog, seeding and saving the default one
// on first run. The catalog is never left empty.
func (s *CatalogStore) Load(ctx context.Context) error {
	cfg, found, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if !found {
		cfg = entities.DefaultGlobalConfig()
		if err := s.repo.Save(ctx, cfg); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.global = cfg
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// global config reference for the resolver. Everyone else must go through
// GetGlobalConfig.
func (s *CatalogStore) globalRef() (*entities.GlobalConfig, error) {
	if !s.loaded {
		return nil, ErrCatalogNotLoaded
	}
	return &s.global, nil
}

// GetGlobalConfig returns a deep copy of the catalog. Mutating the result
// has no effect on the store.
func (s *CatalogStore) GetGlobalConfig() entities.GlobalConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.global.Clone()
}

// SaveRateEntity adds (empty id) or replaces (matching id) a supplier or
// internal resource, then persists the whole catalog.
func (s *CatalogStore) SaveRateEntity(ctx context.Context, c Collection, e entities.RateEntity) (entities.RateEntity, error) {
	if !c.IsRateCollection() {
		return entities.RateEntity{}, ErrUnknownCollection
	}

	if e.Status == "" {
		e.Status = entities.StatusActive
	}
	e.IsGlobal = true
	e.IsOverridden = false
	e.IsProjectSpecific = false

	if issues := validateRateEntity(e); len(issues) > 0 {
		return entities.RateEntity{}, newValidationError(issues)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return entities.RateEntity{}, ErrCatalogNotLoaded
	}

	next := s.global.Clone()
	list := next.Suppliers
	if c == CollectionInternalResources {
		list = next.InternalResources
	}

	if hasDuplicateName(list, e.Name, e.ID) {
		return entities.RateEntity{}, newValidationError([]string{"an item named " + quoted(e.Name) + " already exists in " + string(c)})
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
		list = append(list, e)
	} else {
		replaced := false
		for i := range list {
			if list[i].ID == e.ID {
				list[i] = e
				replaced = true
				break
			}
		}
		if !replaced {
			list = append(list, e)
		}
	}

	if c == CollectionInternalResources {
		next.InternalResources = list
	} else {
		next.Suppliers = list
	}

	if err := s.persist(ctx, next); err != nil {
		return entities.RateEntity{}, err
	}
	return e, nil
}

func (s *CatalogStore) DeleteRateEntity(ctx context.Context, c Collection, id string) error {
	if !c.IsRateCollection() {
		return ErrUnknownCollection
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrCatalogNotLoaded
	}

	next := s.global.Clone()
	list := next.Suppliers
	if c == CollectionInternalResources {
		list = next.InternalResources
	}

	idx := -1
	for i := range list {
		if list[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrItemNotFound
	}
	list = append(list[:idx], list[idx+1:]...)

	if c == CollectionInternalResources {
		next.InternalResources = list
	} else {
		next.Suppliers = list
	}
	return s.persist(ctx, next)
}

func (s *CatalogStore) SaveCategory(ctx context.Context, cat entities.Category) (entities.Category, error) {
	cat.IsGlobal = true
	cat.IsOverridden = false
	cat.IsProjectSpecific = false

	if issues := validateCategory(cat); len(issues) > 0 {
		return entities.Category{}, newValidationError(issues)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return entities.Category{}, ErrCatalogNotLoaded
	}

	next := s.global.Clone()
	if hasDuplicateCategoryName(next.Categories, cat.Name, cat.ID) {
		return entities.Category{}, newValidationError([]string{"a category named " + quoted(cat.Name) + " already exists"})
	}

	if cat.ID == "" {
		cat.ID = uuid.NewString()
		next.Categories = append(next.Categories, cat)
	} else {
		replaced := false
		for i := range next.Categories {
			if next.Categories[i].ID == cat.ID {
				next.Categories[i] = cat
				replaced = true
				break
			}
		}
		if !replaced {
			next.Categories = append(next.Categories, cat)
		}
	}

	if err := s.persist(ctx, next); err != nil {
		return entities.Category{}, err
	}
	return cat, nil
}

func (s *CatalogStore) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrCatalogNotLoaded
	}

	next := s.global.Clone()
	idx := -1
	for i := range next.Categories {
		if next.Categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrItemNotFound
	}
	next.Categories = append(next.Categories[:idx], next.Categories[idx+1:]...)
	return s.persist(ctx, next)
}

func (s *CatalogStore) UpdateCalculationParameters(ctx context.Context, p entities.CalculationParameters) (entities.CalculationParameters, error) {
	if issues := validateCalculationParameters(p); len(issues) > 0 {
		return entities.CalculationParameters{}, newValidationError(issues)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return entities.CalculationParameters{}, ErrCatalogNotLoaded
	}

	next := s.global.Clone()
	next.CalculationParameters = p
	if err := s.persist(ctx, next); err != nil {
		return entities.CalculationParameters{}, err
	}
	return p, nil
}

// persist saves first, swaps the in-memory singleton only on success.
// Caller holds the write lock.
func (s *CatalogStore) persist(ctx context.Context, next entities.GlobalConfig) error {
	if err := s.repo.Save(ctx, next); err != nil {
		return err
	}
	s.global = next
	return nil
}

func hasDuplicateName(list []entities.RateEntity, name, exceptID string) bool {
	for _, e := range list {
		if e.ID != exceptID && strings.EqualFold(e.Name, name) {
			return true
		}
	}
	return false
}

func hasDuplicateCategoryName(list []entities.Category, name, exceptID string) bool {
	for _, c := range list {
		if c.ID != exceptID && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

func quoted(s string) string {
	return "\"" + s + "\""
}
