// @title         intelli-resume API
// @version       1.0
// @description   Backend that turns free-form profile data into a structured resume via an LLM completion service, with deterministic rule-based fallback generation.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Authorization token. Both "Bearer <JWT>" and "<JWT>" are accepted.
package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	_ "github.com/manan6/intelli-resume/docs"

	apihttp "github.com/manan6/intelli-resume/api/http"
	"github.com/manan6/intelli-resume/api/http/handlers"
	"github.com/manan6/intelli-resume/pkg/auth"
	"github.com/manan6/intelli-resume/pkg/config"
	"github.com/manan6/intelli-resume/pkg/health"
	healthpg "github.com/manan6/intelli-resume/pkg/health/checkers"
	"github.com/manan6/intelli-resume/pkg/llm/groq"
	pgrepo "github.com/manan6/intelli-resume/pkg/repository/postgres"
	"github.com/manan6/intelli-resume/pkg/resume"
	"github.com/manan6/intelli-resume/pkg/security/jwt"
	"github.com/manan6/intelli-resume/pkg/storage/postgres"
)

func main() {
	app := fiber.New()

	// Load configuration from env/.env
	cfg := config.Load()

	// PostgreSQL is optional: without it, generation still works but
	// accounts and stored sessions are disabled.
	var checkers []health.Checker
	var authHandler *handlers.AuthHandler
	var sessionsHandler *handlers.SessionsHandler
	var sessionRepo resume.SessionRepository
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres connect: %v", err)
		}
		defer pool.Close()
		checkers = append(checkers, healthpg.NewPostgresChecker(pool))

		userRepo, err := pgrepo.NewUserRepository(pool)
		if err != nil {
			log.Fatalf("init user repo: %v", err)
		}
		sessions, err := pgrepo.NewSessionRepository(pool)
		if err != nil {
			log.Fatalf("init session repo: %v", err)
		}
		sessionRepo = sessions

		jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
		authHandler = handlers.NewAuthHandler(auth.NewService(userRepo, jwtGen))
		sessionsHandler = handlers.NewSessionsHandler(sessions)
	} else {
		log.Printf("DATABASE_URL not set: accounts and stored sessions are disabled")
	}

	readiness := health.NewService(checkers...)
	healthHandler := handlers.NewHealthHandler(readiness)

	if cfg.GroqAPIKey == "" {
		log.Printf("GROQ_API_KEY not set: all resumes will use fallback generation")
	}
	llmClient := groq.New(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel, cfg.GroqTemperature, cfg.GroqMaxTokens)

	generator := resume.NewGeneratorService(llmClient, resume.NewPromptBuilder(nil), cfg.GroqModel)
	resumeHandler := handlers.NewResumeHandler(generator, sessionRepo)

	optionalAuth := jwt.NewOptionalAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
	requireAuth := jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)

	apihttp.Register(app, resumeHandler, healthHandler, authHandler, sessionsHandler, optionalAuth, requireAuth)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	port := cfg.Port
	log.Printf("HTTP server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
