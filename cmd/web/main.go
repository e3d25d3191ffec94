package main

import (
	"log/slog"
	"os"
	"path/filepath"

	_ "invoicer/api/swagger" // swagger docs
	"invoicer/internal/apiclient"
	"invoicer/internal/handler"
	"invoicer/internal/render"
	"invoicer/internal/service"
	"invoicer/internal/token"
	"invoicer/internal/websocket"
	"invoicer/pkg/logging"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Invoicer Web API
// @version         1.0
// @description     Web front end for the invoicing backend: auth, clients, invoice drafting with live previews, and dashboard summaries.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		slog.Info("No configs/.env file found or error loading it")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = logging.EnvLocal
	}
	log := logging.Setup(env)

	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://localhost:8000"
	}

	tokenPath := os.Getenv("TOKEN_PATH")
	if tokenPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Error("cannot resolve home directory", logging.Err(err))
			os.Exit(1)
		}
		tokenPath = filepath.Join(home, ".invoicer", "tokens.json")
	}

	tokens, err := token.NewStore(tokenPath)
	if err != nil {
		log.Error("token store init failed", logging.Err(err))
		os.Exit(1)
	}

	api := apiclient.New(backendURL, tokens, log)

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(log)
	go wsHub.Run()

	// Set up dependencies (API client -> Service -> Handler)
	renderer := render.NewHTMLRenderer()
	authService := service.NewAuthService(api, tokens, log)
	clientService := service.NewClientService(api, log)
	currencyService := service.NewCurrencyService(api, log)
	draftService := service.NewDraftService(api, clientService, authService, renderer, wsHub, log)
	invoiceService := service.NewInvoiceService(api, authService, renderer, log)
	dashboardService := service.NewDashboardService(api, authService, currencyService, log)

	// Initialize Handlers
	authHandler := handler.NewAuthHandler(authService, tokens)
	clientHandler := handler.NewClientHandler(clientService, tokens)
	draftHandler := handler.NewDraftHandler(draftService, wsHub, tokens)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService, tokens)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, tokens)
	currencyHandler := handler.NewCurrencyHandler(currencyService, tokens)
	templateHandler := handler.NewTemplateHandler()

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000"}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Register API Routes
	authHandler.RegisterRoutes(router.Group(""))
	clientHandler.RegisterRoutes(router.Group(""))
	draftHandler.RegisterRoutes(router.Group(""))
	invoiceHandler.RegisterRoutes(router.Group(""))
	dashboardHandler.RegisterRoutes(router.Group(""))
	currencyHandler.RegisterRoutes(router.Group(""))
	templateHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("server listening", slog.String("port", port), slog.String("backend", backendURL))
	if err := router.Run(":" + port); err != nil {
		log.Error("server failed", logging.Err(err))
		os.Exit(1)
	}
}
