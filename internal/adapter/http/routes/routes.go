package routes

import (
	"log"
	"os"
	"strconv"

	_ "techassist/docs" // swag-generated documentation
	"techassist/internal/adapter/persistence/repository"
	"techassist/internal/infrastructure/ai"
	"techassist/internal/infrastructure/database"
	"techassist/internal/infrastructure/payments"
	"techassist/internal/infrastructure/stores"
	"techassist/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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

	Register(router, dependenciesFromEnv())

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// dependenciesFromEnv assembles the production wiring: the seeded in-memory
// store plus whichever external collaborators the environment configures.
// Every collaborator is optional; a nil provider means deterministic
// fallback behavior.
func dependenciesFromEnv() Dependencies {
	store := repository.NewSeededMemoryStore()

	deps := Dependencies{
		Store:         store,
		StoreProvider: stores.NewMockStoreProvider(),
	}

	if os.Getenv("STORE_PROVIDER") == "script" {
		if script := os.Getenv("STORE_SCRIPT"); script != "" {
			deps.StoreProvider = stores.NewScriptStoreProvider(script)
		} else {
			log.Printf("[routes] STORE_PROVIDER=script but STORE_SCRIPT is empty; keeping mock provider")
		}
	}

	if provider, err := ai.NewOpenAIProviderFromEnv(); err != nil {
		log.Printf("[routes] AI provider not configured: %v", err)
	} else {
		deps.Vision = provider
		deps.Text = provider
	}

	if os.Getenv("ESTIMATE_ARCHIVE") == "dynamodb" {
		ddb := database.ConnectDynamoDB()
		deps.Archive = repository.NewEstimateArchiveDynamoRepository(ddb)
	}

	if gateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")); err != nil {
		log.Printf("[routes] payment gateway not configured: %v", err)
	} else {
		deps.PaymentGateway = gateway
	}

	return deps
}

func setMiddlewares() {
	router.Use(requestID())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// requestID tags every request so log lines from one request can be
// correlated. An inbound X-Request-ID is honored.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// Dependencies is everything the API routes need. Store doubles as all the
// entity repositories; Vision, Text, Archive and PaymentGateway may be nil.
type Dependencies struct {
	Store          *repository.MemoryStore
	StoreProvider  interfaces.IStoreProvider
	Vision         interfaces.IVisionProvider
	Text           interfaces.ITextProvider
	Archive        interfaces.IEstimateArchive
	PaymentGateway interfaces.IPaymentGateway
}
