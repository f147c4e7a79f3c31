package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"projestimate/internal/domain/entities"
	"projestimate/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidProjectID   = errors.New("invalid project id")
	ErrInvalidProjectName = errors.New("invalid project name")
	ErrUnknownPhase       = errors.New("unknown phase")
	ErrPhaseIsCalculated  = errors.New("phase man-days are derived and cannot be set directly")
	ErrInvalidManDays     = errors.New("man-days must not be negative")
	ErrInvalidRole        = errors.New("invalid role")
)

// CostReport is the full calculation output for one project: per-phase
// breakdowns, project totals, the KPI rollup and the validation
// diagnostics. Diagnostics never abort the report; a malformed phase
// yields partial results plus its issue list.
type CostReport struct {
	ProjectID  string                      `json:"projectId"`
	Currency   string                      `json:"currency"`
	Summary    entities.ProjectCostSummary `json:"summary"`
	Kpi        entities.KpiReport          `json:"kpi"`
	Validation ValidationResult            `json:"validation"`
}

// IProjectEstimationUseCase exposes the project-facing estimation
// operations: project lifecycle, override management, phase editing and
// cost/KPI reporting.

type IProjectEstimationUseCase interface {
	CreateProject(ctx context.Context, name, client string) (entities.ProjectDocument, error)
	GetProject(ctx context.Context, id string) (entities.ProjectDocument, error)
	ListProjects(ctx context.Context) ([]entities.ProjectInfo, error)
	DeleteProject(ctx context.Context, id string) error
	SetPhaseManDays(ctx context.Context, projectID string, phase entities.PhaseID, manDays float64) (entities.ProjectDocument, error)
	SelectSupplier(ctx context.Context, projectID string, role entities.Role, entityID string) (entities.ProjectDocument, error)
	EffectiveConfig(ctx context.Context, projectID string) (entities.EffectiveConfig, error)
	AddRateOverride(ctx context.Context, projectID string, c Collection, patch entities.RateEntityPatch) (entities.ProjectDocument, error)
	AddCategoryOverride(ctx context.Context, projectID string, patch entities.CategoryPatch) (entities.ProjectDocument, error)
	ResetOverrides(ctx context.Context, projectID string) (entities.ProjectDocument, error)
	CostReport(ctx context.Context, projectID string) (CostReport, error)
}

type ProjectEstimationUseCase struct {
	repo     interfaces.IProjectRepository
	resolver *ConfigResolver
	engine   *PhaseCostEngine
	kpi      *KpiAggregator
}

var _ IProjectEstimationUseCase = (*ProjectEstimationUseCase)(nil)

func NewProjectEstimationUseCase(repo interfaces.IProjectRepository, resolver *ConfigResolver) *ProjectEstimationUseCase {
	return &ProjectEstimationUseCase{
		repo:     repo,
		resolver: resolver,
		engine:   NewPhaseCostEngine(),
		kpi:      NewKpiAggregator(),
	}
}

func (u *ProjectEstimationUseCase) CreateProject(ctx context.Context, name, client string) (entities.ProjectDocument, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.ProjectDocument{}, ErrInvalidProjectName
	}

	overrides := u.resolver.InitializeProjectOverrides()
	now := time.Now().UTC()
	doc := entities.ProjectDocument{
		Project: entities.ProjectInfo{
			ID:        uuid.NewString(),
			Name:      name,
			Client:    strings.TrimSpace(client),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Features: []entities.Feature{},
		Phases:   entities.NewPhasePlan(),
		Config:   entities.ProjectConfig{ProjectOverrides: &overrides},
	}
	return u.repo.Create(ctx, doc)
}

// GetProject loads a project document, upgrading a legacy flat config to
// the hierarchical overrides shape before anything downstream sees it. A
// document with no config block at all gets a synthesized empty override
// set; a malformed document never aborts the load.
func (u *ProjectEstimationUseCase) GetProject(ctx context.Context, id string) (entities.ProjectDocument, error) {
	doc, err := u.loadProject(ctx, id)
	if err != nil {
		return entities.ProjectDocument{}, err
	}
	return doc, nil
}

func (u *ProjectEstimationUseCase) ListProjects(ctx context.Context) ([]entities.ProjectInfo, error) {
	return u.repo.List(ctx)
}

func (u *ProjectEstimationUseCase) DeleteProject(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProjectID
	}
	return u.repo.Delete(ctx, id)
}

// SetPhaseManDays stores the entered man-days of a non-calculated phase.
// The development phase is rejected: its man-days only ever come from the
// feature estimates.
func (u *ProjectEstimationUseCase) SetPhaseManDays(ctx context.Context, projectID string, phase entities.PhaseID, manDays float64) (entities.ProjectDocument, error) {
	def, ok := entities.PhaseDefinitionFor(phase)
	if !ok {
		return entities.ProjectDocument{}, ErrUnknownPhase
	}
	if def.Calculated {
		return entities.ProjectDocument{}, ErrPhaseIsCalculated
	}
	if manDays < 0 {
		return entities.ProjectDocument{}, ErrInvalidManDays
	}

	doc, err := u.loadProject(ctx, projectID)
	if err != nil {
		return entities.ProjectDocument{}, err
	}

	state := doc.Phases.Phases[phase]
	state.ManDays = manDays
	state.LastModified = time.Now().UTC()
	doc.Phases.Phases[phase] = state

	return u.saveWithDerivedState(ctx, doc)
}

// SelectSupplier records which rate entity prices a role. An empty entity
// id clears the selection. The id is not checked against the effective
// config on purpose: a selection that goes stale later must price at zero,
// not fail, so there is nothing gained by rejecting it here.
func (u *ProjectEstimationUseCase) SelectSupplier(ctx context.Context, projectID string, role entities.Role, entityID string) (entities.ProjectDocument, error) {
	if !role.IsValid() {
		return entities.ProjectDocument{}, ErrInvalidRole
	}

	doc, err := u.loadProject(ctx, projectID)
	if err != nil {
		return entities.ProjectDocument{}, err
	}

	if doc.Phases.SelectedSuppliers == nil {
		doc.Phases.SelectedSuppliers = map[entities.Role]string{}
	}
	if entityID == "" {
		delete(doc.Phases.SelectedSuppliers, role)
	} else {
		doc.Phases.SelectedSuppliers[role] = entityID
	}

	return u.saveWithDerivedState(ctx, doc)
}

func (u *ProjectEstimationUseCase) EffectiveConfig(ctx context.Context, projectID string) (entities.EffectiveConfig, error) {
	doc, err := u.loadProject(ctx, projectID)
	if err != nil {
		return entities.EffectiveConfig{}, err
	}
	return u.resolver.Resolve(doc.Config.ProjectOverrides)
}

func (u *ProjectEstimationUseCase) AddRateOverride(ctx context.Context, projectID string, c Collection, patch entities.RateEntityPatch) (entities.ProjectDocument, error) {
	doc, err := u.loadProject(ctx, projectID)
	if err != nil {
		return entities.ProjectDocument{}, err
	}

	updated, err := u.resolver.AddRateOverride(*doc.Config.ProjectOverrides, c, patch)
	if err != nil {
		return entities.ProjectDocument{}, err
	}
	doc.Config.ProjectOverrides = &updated

	return u.saveWithDerivedState(ctx, doc)
}

func (u *ProjectEstimationUseCase) AddCategoryOverride(ctx context.Context, projectID string, patch entities.CategoryPatch) (entities.ProjectDocument, error) {
	doc, err := u.loadProject(ctx, projectID)
	if err != nil {
		return entities.ProjectDocument{}, err
	}

	updated, err := u.resolver.AddCategoryOverride(*doc.Config.ProjectOverrides, patch)
	if err != nil {
		return entities.ProjectDocument{}, err
	}
	doc.Config.ProjectOverrides = &updated

	return u.saveWithDerivedState(ctx, doc)
}

// ResetOverrides drops every project-level override. The global catalog is
// untouched; this is the only supported reset.
func (u *ProjectEstimationUseCase) ResetOverrides(ctx context.Context, projectID string) (entities.ProjectDocument, error) {
	doc, err := u.loadProject(ctx, projectID)
	if err != nil {
		return entities.ProjectDocument{}, err
	}

	fresh := u.resolver.ResetOverrides()
	doc.Config.ProjectOverrides = &fresh

	return u.saveWithDerivedState(ctx, doc)
}

// CostReport computes the full estimation output for one project. The
// development phase is re-derived from the features first, so the report
// is always consistent with the current feature set.
func (u *ProjectEstimationUseCase) CostReport(ctx context.Context, projectID string) (CostReport, error) {
	doc, err := u.loadProject(ctx, projectID)
	if err != nil {
		return CostReport{}, err
	}

	cfg, err := u.resolver.Resolve(doc.Config.ProjectOverrides)
	if err != nil {
		return CostReport{}, err
	}

	summary := u.engine.CalculateProject(doc, cfg)
	report := u.kpi.Aggregate(summary.Phases, entities.DefaultRoleCategoryMap())

	return CostReport{
		ProjectID:  doc.Project.ID,
		Currency:   cfg.CalculationParameters.CurrencySymbol,
		Summary:    summary,
		Kpi:        report,
		Validation: u.engine.ValidateAllPhases(doc.Phases),
	}, nil
}

// loadProject fetches and normalizes a document: migrates a legacy config,
// guarantees the phase plan and override set exist.
func (u *ProjectEstimationUseCase) loadProject(ctx context.Context, id string) (entities.ProjectDocument, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProjectDocument{}, ErrInvalidProjectID
	}

	doc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ProjectDocument{}, err
	}
	if doc.Project.ID == "" {
		return entities.ProjectDocument{}, ErrProjectNotFound
	}

	overrides, err := u.resolver.Migrate(doc.Config)
	if err != nil {
		return entities.ProjectDocument{}, err
	}
	doc.Config = entities.ProjectConfig{ProjectOverrides: &overrides}

	if doc.Phases.Phases == nil {
		doc.Phases = entities.NewPhasePlan()
	} else {
		for _, phaseID := range entities.AllPhaseIDs() {
			if _, ok := doc.Phases.Phases[phaseID]; !ok {
				doc.Phases.Phases[phaseID] = entities.PhaseState{}
			}
		}
	}
	if doc.Phases.SelectedSuppliers == nil {
		doc.Phases.SelectedSuppliers = map[entities.Role]string{}
	}
	return doc, nil
}

// saveWithDerivedState refreshes the derived figures stored in the
// document (development man-days, per-phase cost snapshots) and persists
// it. Stored costs are snapshots for the document only; live reports
// always recompute.
func (u *ProjectEstimationUseCase) saveWithDerivedState(ctx context.Context, doc entities.ProjectDocument) (entities.ProjectDocument, error) {
	cfg, err := u.resolver.Resolve(doc.Config.ProjectOverrides)
	if err != nil {
		return entities.ProjectDocument{}, err
	}

	summary := u.engine.CalculateProject(doc, cfg)
	for _, breakdown := range summary.Phases {
		state := doc.Phases.Phases[breakdown.Phase]
		state.ManDays = breakdown.ManDays
		state.Cost = breakdown.TotalCost
		doc.Phases.Phases[breakdown.Phase] = state
	}

	doc.Project.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, doc)
}
