package routes

import (
	"projestimate/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathConfig   = "/config"
	PathProjects = "/projects"
)

func addEstimationRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, projectHandler *handlers.ProjectHandler) {
	config := rg.Group(PathConfig)
	{
		config.GET("", catalogHandler.GetGlobalConfig)
		config.PUT("/categories", catalogHandler.SaveCategory)
		config.DELETE("/categories/:id", catalogHandler.DeleteCategory)
		config.PUT("/parameters", catalogHandler.UpdateCalculationParameters)
		// :collection is suppliers or internalResources.
		config.PUT("/:collection", catalogHandler.SaveRateEntity)
		config.DELETE("/:collection/:id", catalogHandler.DeleteRateEntity)
	}

	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:id", projectHandler.GetProject)
		projects.DELETE("/:id", projectHandler.DeleteProject)
		projects.PUT("/:id/phases/:phase/man-days", projectHandler.SetPhaseManDays)
		projects.PUT("/:id/suppliers/:role", projectHandler.SelectSupplier)
		projects.GET("/:id/config/effective", projectHandler.GetEffectiveConfig)
		projects.POST("/:id/config/overrides/:collection", projectHandler.AddOverride)
		projects.DELETE("/:id/config/overrides", projectHandler.ResetOverrides)
		projects.GET("/:id/cost-report", projectHandler.GetCostReport)
	}
}
