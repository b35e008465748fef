package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hirerank/backend/analyzer"
	"github.com/hirerank/backend/auth"
	"github.com/hirerank/backend/config"
	_ "github.com/hirerank/backend/docs"
	"github.com/hirerank/backend/gemini"
	"github.com/hirerank/backend/handlers"
	"github.com/hirerank/backend/mcp"
	"github.com/hirerank/backend/storage"
	"github.com/hirerank/backend/tools"
	"github.com/hirerank/backend/utils"
)

// @title HireRank API
// @version 1.0
// @description AI-powered resume extraction, ranking and role classification backend.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@hirerank.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create context for initialization
	ctx := context.Background()

	// Initialize Firestore client
	log.Println("Initializing Firestore client...")
	firestoreClient, err := storage.NewFirestoreClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	defer firestoreClient.Close()
	log.Println("Firestore client initialized successfully")

	// Initialize Cloud Storage client
	log.Println("Initializing Cloud Storage client...")
	storageClient, err := storage.NewCloudStorageClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage client: %v", err)
	}
	defer storageClient.Close()
	log.Println("Cloud Storage client initialized successfully")

	// Initialize auth services
	jwtService := auth.NewJWTService(cfg)
	googleAuthService := auth.NewGoogleAuthService(cfg)

	// Initialize Gemini client for summarization and role classification
	log.Println("Initializing Gemini client...")
	geminiClient, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	defer geminiClient.Close()
	log.Println("Gemini client initialized successfully")

	// The embedding client is optional; without it similarity scoring falls
	// back to keyword overlap.
	var embedder analyzer.EmbeddingProvider
	embeddingClient, err := gemini.NewEmbeddingClient(ctx, cfg)
	if err != nil {
		log.Printf("Embedding client unavailable, using keyword similarity: %v", err)
	} else {
		defer embeddingClient.Close()
		embedder = embeddingClient
	}

	// Build the analysis pipeline
	resumeAnalyzer := analyzer.New(embedder, geminiClient, geminiClient)
	documentExtractor := utils.NewDocumentExtractor()

	// Create handlers
	analyzeHandler := handlers.NewAnalyzeHandler(resumeAnalyzer, documentExtractor, firestoreClient, storageClient, cfg)
	rankingsHandler := handlers.NewRankingsHandler(firestoreClient)
	authHandler := handlers.NewAuthHandler(firestoreClient, jwtService, googleAuthService)

	// Create MCP server with tool registry
	toolRegistry := tools.NewToolRegistry()
	toolRegistry.Register(tools.NewAnalyzeResumeTool(resumeAnalyzer))
	toolRegistry.Register(tools.NewExtractProfileTool())
	toolRegistry.Register(tools.NewMatchRoleTool())

	mcpServer := mcp.NewServer(toolRegistry)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Configure CORS for the dashboard frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register routes
	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Auth endpoints (public)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/google", authHandler.GoogleLogin)
		}

		// Protected auth endpoints (require authentication)
		authProtected := api.Group("/auth")
		authProtected.Use(auth.AuthMiddleware(jwtService))
		{
			authProtected.GET("/profile", authHandler.GetProfile)
			authProtected.PUT("/profile", authHandler.UpdateProfile)
		}

		// Analysis endpoints
		api.POST("/rank_resume", analyzeHandler.RankResume)
		api.POST("/analyze_resume", analyzeHandler.AnalyzeResume)
		api.POST("/analyze_batch", analyzeHandler.AnalyzeBatch)

		// Stored analysis endpoints
		api.GET("/rankings", rankingsHandler.GetRankings)
		api.GET("/history", rankingsHandler.GetHistory)
		api.GET("/top_performers", rankingsHandler.GetTopPerformers)
		api.GET("/statistics", rankingsHandler.GetStatistics)
		api.GET("/analyses/:job_title", rankingsHandler.GetAnalysesByJob)
		api.GET("/top_candidates/:job_title", rankingsHandler.GetTopCandidates)
		api.GET("/candidate/:id", rankingsHandler.GetCandidate)
		api.PATCH("/remarks/:id", rankingsHandler.UpdateRemarks)
		api.DELETE("/candidate/:id", rankingsHandler.DeleteCandidate)

		// MCP endpoints for external AI agents
		mcpServer.RegisterRoutes(api)
	}

	// Create HTTP server. Batch analysis can hold a response open for several
	// model calls, so writes get twice the configured timeout.
	httpTimeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  httpTimeout,
		WriteTimeout: 2 * httpTimeout,
		IdleTimeout:  2 * httpTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
