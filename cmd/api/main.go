// Wellplan Advisor API
//
// REST API generating personalized supplement, workout, and diet plans
// from a stored health profile via hosted LLM vendors.
//
//	@title			Wellplan Advisor API
//	@version		1.0
//	@description	Store health profiles and generate AI wellness recommendations.
//
//	@BasePath	/v1
//
//	@tag.name			profiles
//	@tag.description	Health profile endpoints
//
//	@tag.name			recommendations
//	@tag.description	Recommendation generation and history endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/wellplan/advisor-api/internal/ai"
	"github.com/wellplan/advisor-api/internal/api"
	"github.com/wellplan/advisor-api/internal/api/handler"
	"github.com/wellplan/advisor-api/internal/config"
	"github.com/wellplan/advisor-api/internal/domain"
	"github.com/wellplan/advisor-api/internal/langfuse"
	"github.com/wellplan/advisor-api/internal/repository"
	"github.com/wellplan/advisor-api/internal/seed"
	"github.com/wellplan/advisor-api/internal/service"
	"github.com/wellplan/advisor-api/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "wellplan-advisor-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(ctx); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.Profile{}, &domain.Recommendation{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db)
	recommendationRepo := repository.NewRecommendationRepository(db)

	// Initialize AI providers; credentials are re-read from config per call
	providers := ai.NewProviderSet(
		ai.NewOpenAIProvider(func() string { return cfg.OpenAIAPIKey }, cfg.OpenAIModel),
		ai.NewAnthropicProvider(func() string { return cfg.AnthropicAPIKey }, cfg.AnthropicModel, ""),
		ai.NewGeminiProvider(func() string { return cfg.GeminiAPIKey }, cfg.GeminiModel, ""),
	)
	if vendors := providers.Vendors(); len(vendors) == 0 {
		log.Println("Warning: no AI vendor configured, generation endpoint will be unavailable")
	} else {
		log.Printf("AI vendors configured: %v", vendors)
	}

	// System prompt: Langfuse-managed override with compiled-in fallback
	systemPrompt := ""
	if cfg.LangfusePromptName != "" {
		systemPrompt, err = langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
			BaseURL:     cfg.LangfuseBaseURL,
			PublicKey:   cfg.LangfusePublicKey,
			SecretKey:   cfg.LangfuseSecretKey,
			PromptName:  cfg.LangfusePromptName,
			PromptLabel: cfg.LangfuseEnv,
		})
		if err != nil {
			log.Printf("Warning: failed to load managed system prompt, using built-in: %v", err)
			systemPrompt = ""
		}
	}
	prompts := ai.NewPromptBuilder(systemPrompt)

	// Initialize Langfuse client for generation traces and feedback scores
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize services
	profileService := service.NewProfileService(profileRepo)
	recommendationService := service.NewRecommendationService(profileRepo, recommendationRepo, providers, prompts, cfg.Debug)

	// Initialize handlers
	profileHandler := handler.NewProfileHandler(profileService)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService, langfuseClient)

	// Setup router
	router := api.NewRouter(profileHandler, recommendationHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
