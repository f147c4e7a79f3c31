package main

import (
	_ "projestimate/docs"
	"projestimate/internal/adapter/http/routes"
	"projestimate/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Project Estimation API
// @version         1.0
// @description     Project cost estimation (global catalog, per-project overrides, phase costing and KPIs) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	logging.Setup()
	routes.Run()
}
