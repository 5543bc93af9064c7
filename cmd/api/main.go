package main

import (
	_ "techassist/docs"
	"techassist/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           TechAssist Field Service API
// @version         1.0
// @description     Field service management: jobs, photos, notes, estimates, part search and invoice payments.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
