package server

import (
	"log"
	"os"
	"time"

	"estate-server/cache"
	"estate-server/db"
	"estate-server/entities"
	"estate-server/handlers"
	httpHandler "estate-server/handlers/http"
	"estate-server/middleware"
	"estate-server/repositories"
	"estate-server/services"
	"estate-server/usecases"
	"estate-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // Allow all origins for development
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	secret := []byte(os.Getenv("JWT_SECRET"))

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	tokenRepo := repositories.NewTokenPgRepository(s.db)
	profileRepo := repositories.NewProfilePgRepository(s.db)
	developerRepo := repositories.NewDeveloperPgRepository(s.db)
	propertyRepo := repositories.NewPropertyPgRepository(s.db)
	wishlistRepo := repositories.NewWishlistPgRepository(s.db)
	compareRepo := repositories.NewComparePgRepository(s.db)
	blogRepo := repositories.NewBlogPostPgRepository(s.db)
	chatRepo := repositories.NewChatPgRepository(s.db)
	imageRepo := repositories.NewImagePgRepository(s.db)

	// Caches and event fan-out
	propertyCache := cache.NewPropertyCache(5 * time.Minute)
	rdb := cache.NewRedisCache(os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD"))
	manager := ws.NewManager()

	// External services
	textGen := services.NewTextGenClient(os.Getenv("TEXTGEN_URL"), os.Getenv("TEXTGEN_API_KEY"))
	places := services.NewPlacesClient(os.Getenv("PLACES_URL"), os.Getenv("PLACES_API_KEY"))
	sms := services.NewSMSClient(os.Getenv("SMS_URL"), os.Getenv("SMS_API_KEY"), os.Getenv("SMS_SENDER"))

	// Initialize use cases
	wishlistUseCase := usecases.NewWishlistUseCase(wishlistRepo)
	compareUseCase := usecases.NewCompareUseCase(compareRepo)
	store := usecases.NewPropertyStore(propertyRepo, wishlistUseCase, compareUseCase, propertyCache, rdb, manager)
	propertyUseCase := usecases.NewPropertyUseCase(propertyRepo, developerRepo)
	profileUseCase := usecases.NewProfileUseCase(profileRepo)
	developerUseCase := usecases.NewDeveloperUseCase(developerRepo)
	authUseCase := usecases.NewAuthUseCase(userRepo, tokenRepo, rdb, sms, os.Getenv("JWT_SECRET"))
	chatUseCase := usecases.NewChatUseCase(chatRepo, textGen, manager)
	blogUseCase := usecases.NewBlogUseCase(blogRepo)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase)
	propertyHandler := httpHandler.NewPropertyHandler(store, propertyUseCase, profileUseCase, chatUseCase, places)
	listHandler := httpHandler.NewListHandler(store)
	profileHandler := httpHandler.NewProfileHandler(profileUseCase)
	developerHandler := httpHandler.NewDeveloperHandler(developerUseCase, chatUseCase)
	blogHandler := httpHandler.NewBlogHandler(blogUseCase)
	chatHandler := httpHandler.NewChatHandler(chatUseCase)
	adminHandler := httpHandler.NewAdminHandler(store, manager)
	wsHandler := handlers.NewWSHandler(manager, secret)

	imageStore, err := services.NewImageStore(os.Getenv("CLOUDINARY_URL"))
	if err != nil {
		log.Printf("image storage disabled: %v", err)
	}
	imageHandler := httpHandler.NewImageHandler(imageRepo, imageStore, propertyUseCase)

	authorized := middleware.Authorize(secret)

	// Setup API routes
	api := s.app.Group("/api/v1")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/otp/send", authHandler.SendOTP)
			auth.POST("/otp/verify", authHandler.VerifyOTP)
			auth.POST("/refresh", authHandler.Refresh)
			auth.GET("/session", authorized, authHandler.Session)
			auth.POST("/logout", authorized, authHandler.Logout)
		}

		// Property routes
		properties := api.Group("/properties")
		{
			properties.GET("", propertyHandler.Search)
			properties.GET("/:id", propertyHandler.Get)
			properties.GET("/:id/match", authorized, propertyHandler.Match)
			properties.GET("/:id/nearby", propertyHandler.Nearby)
			properties.GET("/:id/images", imageHandler.List)

			developerOnly := properties.Group("", authorized, middleware.RequireRole(entities.RoleDeveloper))
			{
				developerOnly.POST("", propertyHandler.Create)
				developerOnly.PUT("/:id", propertyHandler.Update)
				developerOnly.DELETE("/:id", propertyHandler.Delete)
				developerOnly.POST("/:id/overview", propertyHandler.GenerateOverview)
				developerOnly.POST("/:id/images", imageHandler.Upload)
				developerOnly.DELETE("/:id/images/:imageId", imageHandler.Delete)
			}
		}
		// Wishlist and compare routes share one handler
		lists := api.Group("/lists/:list", authorized)
		{
			lists.GET("", listHandler.Get)
			lists.POST("/membership", listHandler.Membership)
			lists.GET("/contains/:propertyId", listHandler.Contains)
			lists.POST("/:propertyId", listHandler.Add)
			lists.DELETE("/:propertyId", listHandler.Remove)
		}

		// Profile routes
		profile := api.Group("/profiles/me", authorized)
		{
			profile.GET("", profileHandler.Get)
			profile.PUT("", profileHandler.Save)
		}

		// Developer routes
		developers := api.Group("/developers")
		{
			developers.GET("", developerHandler.GetAll)
			developers.GET("/me/properties", authorized, middleware.RequireRole(entities.RoleDeveloper), propertyHandler.ListMine)
			developers.GET("/:id", developerHandler.Get)
			developers.POST("", authorized, middleware.RequireRole(entities.RoleDeveloper), developerHandler.Create)
			developers.PUT("/:id", authorized, middleware.RequireRole(entities.RoleDeveloper), developerHandler.Update)
			developers.POST("/:id/overview", authorized, middleware.RequireRole(entities.RoleDeveloper), developerHandler.GenerateOverview)
		}

		// Blog routes
		blog := api.Group("/blog")
		{
			blog.GET("", blogHandler.List)
			blog.GET("/:id", blogHandler.Get)
			blog.POST("", authorized, middleware.RequireRole(entities.RoleAdmin), blogHandler.Create)
		}

		// Chat assistant routes
		chat := api.Group("/chat", authorized)
		{
			chat.POST("/sessions", chatHandler.StartSession)
			chat.GET("/sessions", chatHandler.ListSessions)
			chat.GET("/sessions/:id/messages", chatHandler.Messages)
			chat.POST("/sessions/:id/messages", chatHandler.Send)
			chat.POST("/advice/emi", chatHandler.EMIAdvice)
			chat.POST("/advice/vaastu", chatHandler.VaastuAnalysis)
		}

		// Admin routes
		admin := api.Group("/admin", authorized, middleware.RequireRole(entities.RoleAdmin))
		{
			admin.GET("/cache/stats", adminHandler.CacheStats)
			admin.POST("/errors/clear", adminHandler.ClearError)
			admin.GET("/subscribers", adminHandler.Subscribers)
		}
	}

	s.app.GET("/ws", wsHandler.HandleUserWS)

	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = "0.0.0.0:3536"
	}
	if err := s.app.Run(addr); err != nil {
		panic(err)
	}
}
