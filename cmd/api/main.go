package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/bidyut10/corporate-ai/internal/config"
	"github.com/bidyut10/corporate-ai/internal/handlers"
	"github.com/bidyut10/corporate-ai/internal/repositories"
	"github.com/bidyut10/corporate-ai/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	jobRepo := repositories.NewJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize resume storage
	resumeStore, err := services.NewCloudinaryResumeStore(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
		cfg.Cloudinary.Folder,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize resume storage: %v", err)
	}
	log.Println("✅ Resume storage initialized successfully")

	// Initialize Gemini AI. A missing key is tolerated: analysis degrades
	// to the deterministic fallback scorer.
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	if cfg.Gemini.APIKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set, resume analysis will use fallback scoring")
	} else {
		log.Println("✅ Gemini AI initialized successfully")
	}

	// Initialize candidate search (optional)
	var searchService services.CandidateSearchService
	if cfg.Qdrant.URL != "" {
		searchService, err = services.NewCandidateSearchService(
			cfg.Qdrant.URL,
			cfg.Qdrant.APIKey,
			cfg.Qdrant.Collection,
			geminiService,
		)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
		}
		if err := searchService.InitCollection(); err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
		}
		log.Println("✅ Qdrant initialized successfully")
	} else {
		log.Println("⚠️  QDRANT_URL not set, candidate similarity search disabled")
	}

	// Initialize services
	pdfInspector := services.NewPDFInspector()
	analyzer := services.NewResumeAnalyzer(geminiService, cfg.Gemini.AnalysisTimeout)
	submissionService := services.NewSubmissionService(
		jobRepo,
		appRepo,
		resumeStore,
		analyzer,
		pdfInspector,
		searchService,
		cfg.Upload.MaxResumeSize,
	)
	reviewService := services.NewReviewService(jobRepo, appRepo, resumeStore, searchService)
	jobService := services.NewJobService(jobRepo)
	assistantService := services.NewAssistantService(geminiService)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	applicationHandler := handlers.NewApplicationHandler(submissionService, reviewService)
	jobHandler := handlers.NewJobHandler(jobService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Corporate AI Hiring API",
		ReadTimeout:  90 * time.Second,
		WriteTimeout: 90 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxResumeSize) + 1024*1024,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigin,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Jobs
	api.Post("/jobs", jobHandler.HandleCreate)
	api.Get("/jobs", jobHandler.HandleList)
	api.Get("/jobs/:jobId", jobHandler.HandleGet)
	api.Patch("/jobs/:jobId/status", jobHandler.HandleUpdateStatus)
	api.Get("/jobs/:jobId/applications", applicationHandler.HandleListByJob)

	// Applications
	api.Post("/applications", applicationHandler.HandleSubmit)
	api.Get("/applications/:id", applicationHandler.HandleGet)
	api.Patch("/applications/:id/status", applicationHandler.HandleUpdateStatus)
	api.Post("/applications/:id/notes", applicationHandler.HandleAddNote)
	api.Post("/applications/:id/interviews", applicationHandler.HandleAddInterview)
	api.Delete("/applications/:id", applicationHandler.HandleDelete)
	api.Get("/applications/:id/similar", applicationHandler.HandleFindSimilar)

	// Assistant
	api.Post("/assistant/job-description", assistantHandler.HandleGenerateDescription)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Corporate AI Hiring API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/jobs",
				"GET /api/v1/jobs",
				"GET /api/v1/jobs/:jobId",
				"PATCH /api/v1/jobs/:jobId/status",
				"GET /api/v1/jobs/:jobId/applications",
				"POST /api/v1/applications",
				"GET /api/v1/applications/:id",
				"PATCH /api/v1/applications/:id/status",
				"POST /api/v1/applications/:id/notes",
				"POST /api/v1/applications/:id/interviews",
				"DELETE /api/v1/applications/:id",
				"GET /api/v1/applications/:id/similar",
				"POST /api/v1/assistant/job-description",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
