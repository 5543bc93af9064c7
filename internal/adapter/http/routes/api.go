package routes

import (
	"techassist/internal/adapter/http/handlers"
	"techassist/internal/usecase"

	"github.com/gin-gonic/gin"
)

const PathAPI = "/api"

// Register wires every API route onto the engine. Tests call this with
// their own engine and dependencies; Run calls it with the env wiring.
func Register(r *gin.Engine, deps Dependencies) {
	store := deps.Store

	userUC := usecase.NewUserUseCase(store)
	customerUC := usecase.NewCustomerUseCase(store)
	jobUC := usecase.NewJobUseCase(store)
	materialUC := usecase.NewMaterialUseCase(store)
	estimateUC := usecase.NewEstimateUseCase(store, deps.Archive)
	annotationUC := usecase.NewAnnotationUseCase(store, store, store, deps.Vision, deps.Text)
	partSearchUC := usecase.NewPartSearchUseCase(deps.StoreProvider, store, deps.Vision)
	paymentUC := usecase.NewPaymentUseCase(store, store, deps.PaymentGateway)

	userHandler := handlers.NewUserHandler(userUC)
	customerHandler := handlers.NewCustomerHandler(customerUC)
	jobHandler := handlers.NewJobHandler(jobUC)
	photoHandler := handlers.NewPhotoHandler(annotationUC)
	noteHandler := handlers.NewNoteHandler(annotationUC)
	materialHandler := handlers.NewMaterialHandler(materialUC)
	estimateHandler := handlers.NewEstimateHandler(estimateUC)
	storeHandler := handlers.NewStoreHandler(partSearchUC)
	paymentHandler := handlers.NewPaymentHandler(paymentUC)

	api := r.Group(PathAPI)
	addPingRoutes(api)

	api.POST("/login", userHandler.Login)

	users := api.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("/:id", userHandler.GetUser)
	}

	customers := api.Group("/customers")
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
	}

	jobs := api.Group("/jobs")
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.PATCH("/:id/status", jobHandler.UpdateJobStatus)
		jobs.GET("/:id/photos", photoHandler.ListPhotosByJob)
		jobs.GET("/:id/notes", noteHandler.ListNotesByJob)
		jobs.GET("/:id/estimate-items", estimateHandler.ListEstimateItemsByJob)
		jobs.GET("/:id/estimate", estimateHandler.GetEstimateByJob)
		jobs.POST("/:id/identify-parts", storeHandler.IdentifyParts)
	}

	api.GET("/technicians/:id/jobs", jobHandler.ListJobsByTechnician)

	photos := api.Group("/photos")
	{
		photos.POST("", photoHandler.CreatePhoto)
		photos.POST("/:id/analyze", photoHandler.AnalyzePhoto)
	}

	notes := api.Group("/notes")
	{
		notes.POST("", noteHandler.CreateNote)
		notes.POST("/:id/enhance", noteHandler.EnhanceNote)
	}

	materials := api.Group("/materials")
	{
		materials.POST("", materialHandler.CreateMaterial)
		materials.GET("", materialHandler.ListMaterials)
		materials.GET("/:id", materialHandler.GetMaterial)
	}

	estimateItems := api.Group("/estimate-items")
	{
		estimateItems.POST("", estimateHandler.CreateEstimateItem)
		estimateItems.PATCH("/:id", estimateHandler.UpdateEstimateItem)
		estimateItems.DELETE("/:id", estimateHandler.DeleteEstimateItem)
	}

	estimates := api.Group("/estimates")
	{
		estimates.POST("", estimateHandler.SubmitEstimate)
		estimates.PATCH("/:id/status", estimateHandler.UpdateEstimateStatus)
		estimates.POST("/:id/payments", paymentHandler.CreatePayment)
		estimates.GET("/:id/payments", paymentHandler.ListPayments)
	}

	storesGroup := api.Group("/stores")
	{
		storesGroup.GET("/search", storeHandler.SearchStores)
		storesGroup.POST("/search-by-image", storeHandler.SearchStoresByImage)
		storesGroup.POST("/add-part", storeHandler.AddPartToEstimate)
	}
}
