package response

import "projestimate/internal/domain/entities"

// GlobalConfigResponse is the catalog as served to the configuration UI.
type GlobalConfigResponse struct {
	Suppliers             []entities.RateEntity          `json:"suppliers"`
	InternalResources     []entities.RateEntity          `json:"internalResources"`
	Categories            []entities.Category            `json:"categories"`
	CalculationParameters entities.CalculationParameters `json:"calculationParameters"`
}

func FromGlobalConfig(cfg entities.GlobalConfig) GlobalConfigResponse {
	return GlobalConfigResponse{
		Suppliers:             cfg.Suppliers,
		InternalResources:     cfg.InternalResources,
		Categories:            cfg.Categories,
		CalculationParameters: cfg.CalculationParameters,
	}
}

// EffectiveConfigResponse carries a resolved project configuration.
// Entries added by the project are flagged isProjectSpecific, patched
// global entries isOverridden.
type EffectiveConfigResponse struct {
	Suppliers             []entities.RateEntity          `json:"suppliers"`
	InternalResources     []entities.RateEntity          `json:"internalResources"`
	Categories            []entities.Category            `json:"categories"`
	CalculationParameters entities.CalculationParameters `json:"calculationParameters"`
}

func FromEffectiveConfig(cfg entities.EffectiveConfig) EffectiveConfigResponse {
	return EffectiveConfigResponse{
		Suppliers:             cfg.Suppliers,
		InternalResources:     cfg.InternalResources,
		Categories:            cfg.Categories,
		CalculationParameters: cfg.CalculationParameters,
	}
}
