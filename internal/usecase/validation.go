package usecase

import (
	"fmt"
	"strings"

	"projestimate/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationResult is the structured outcome of a validation pass.
// Issues are human-readable and meant for per-field UI display; an invalid
// item is rejected whole, never partially applied.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Issues  []string `json:"issues"`
}

func validationOK() ValidationResult {
	return ValidationResult{IsValid: true, Issues: []string{}}
}

// ValidationError carries a ValidationResult across an error return so
// handlers can surface the issue list with a 400/422 instead of a plain
// message.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Issues, "; ")
}

func newValidationError(issues []string) error {
	return &ValidationError{Issues: issues}
}

func validateRateEntity(e entities.RateEntity) []string {
	var issues []string

	if strings.TrimSpace(e.Name) == "" {
		issues = append(issues, "name must not be empty")
	}
	if !e.Role.IsValid() {
		issues = append(issues, fmt.Sprintf("role %q is not one of G1, G2, TA, PM", e.Role))
	}
	issues = append(issues, validateDailyRate("realRate", e.RealRate)...)
	issues = append(issues, validateDailyRate("officialRate", e.OfficialRate)...)

	// Struct tags are the second line of defense; they catch anything the
	// explicit checks above were not updated for.
	if len(issues) == 0 {
		if err := validate.Struct(e); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				issues = append(issues, fmt.Sprintf("%s fails %s validation", fe.Field(), fe.Tag()))
			}
		}
	}
	return issues
}

func validateDailyRate(field string, v float64) []string {
	if v <= 0 {
		return []string{fmt.Sprintf("%s must be greater than zero", field)}
	}
	if v > entities.MaxDailyRate {
		return []string{fmt.Sprintf("%s %.2f exceeds the %.0f/day ceiling", field, v, entities.MaxDailyRate)}
	}
	return nil
}

func validateCategory(c entities.Category) []string {
	var issues []string
	if strings.TrimSpace(c.Name) == "" {
		issues = append(issues, "name must not be empty")
	}
	if c.Multiplier <= 0 {
		issues = append(issues, "multiplier must be greater than zero")
	}
	return issues
}

func validateCalculationParameters(p entities.CalculationParameters) []string {
	var issues []string
	if p.WorkingDaysPerMonth <= 0 {
		issues = append(issues, "workingDaysPerMonth must be greater than zero")
	}
	if p.WorkingHoursPerDay <= 0 {
		issues = append(issues, "workingHoursPerDay must be greater than zero")
	}
	if p.RiskMargin < 0 {
		issues = append(issues, "riskMargin must not be negative")
	}
	if p.OverheadPercentage < 0 {
		issues = append(issues, "overheadPercentage must not be negative")
	}
	return issues
}

// validateRatePatch checks only the fields a patch actually sets.
func validateRatePatch(p entities.RateEntityPatch) []string {
	var issues []string
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		issues = append(issues, "name must not be empty")
	}
	if p.Role != nil && !p.Role.IsValid() {
		issues = append(issues, fmt.Sprintf("role %q is not one of G1, G2, TA, PM", *p.Role))
	}
	if p.RealRate != nil {
		issues = append(issues, validateDailyRate("realRate", *p.RealRate)...)
	}
	if p.OfficialRate != nil {
		issues = append(issues, validateDailyRate("officialRate", *p.OfficialRate)...)
	}
	if p.Status != nil && *p.Status != entities.StatusActive && *p.Status != entities.StatusInactive {
		issues = append(issues, fmt.Sprintf("status %q is not active or inactive", *p.Status))
	}
	return issues
}

func validateCategoryPatch(p entities.CategoryPatch) []string {
	var issues []string
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		issues = append(issues, "name must not be empty")
	}
	if p.Multiplier != nil && *p.Multiplier <= 0 {
		issues = append(issues, "multiplier must be greater than zero")
	}
	return issues
}
