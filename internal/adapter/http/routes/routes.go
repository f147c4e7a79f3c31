package routes

import (
	"context"
	"strconv"

	_ "projestimate/docs" // This will be auto-generated
	"projestimate/internal/adapter/http/handlers"
	repository "projestimate/internal/adapter/persistence/repository"
	"projestimate/internal/infrastructure/database"
	"projestimate/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	catalogRepo := repository.NewCatalogDynamoRepository(ddb)
	projectRepo := repository.NewProjectDynamoRepository(ddb)

	catalogStore := usecase.NewCatalogStore(catalogRepo)
	if err := catalogStore.Load(context.Background()); err != nil {
		log.WithError(err).Fatal("failed to load the global configuration catalog")
	}

	resolver := usecase.NewConfigResolver(catalogStore)
	estimationUseCase := usecase.NewProjectEstimationUseCase(projectRepo, resolver)

	catalogHandler := handlers.NewCatalogHandler(catalogStore)
	projectHandler := handlers.NewProjectHandler(estimationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimationRoutes(v1, catalogHandler, projectHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
