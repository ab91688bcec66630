package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manan6/intelli-resume/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app. Auth and session
// handlers are nil when no database is configured; their routes are simply
// not registered then.
func Register(
	app *fiber.App,
	resumeH *handlers.ResumeHandler,
	healthH *handlers.HealthHandler,
	authH *handlers.AuthHandler,
	sessionsH *handlers.SessionsHandler,
	optionalAuth fiber.Handler,
	requireAuth fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", healthH.Health)
	v1.Get("/ready", healthH.Ready)

	// Resume generation works without an account; the owner is attached
	// when a valid token is presented.
	rg := v1.Group("/resume")
	rg.Post("/generate", optionalAuth, resumeH.Generate)
	rg.Post("/import", resumeH.Import)
	v1.Post("/skill-recommendations", resumeH.RecommendSkills)

	if authH != nil {
		a := v1.Group("/auth")
		a.Post("/signup", authH.Signup)
		a.Post("/login", authH.Login)
	}
	if sessionsH != nil {
		sg := rg.Group("/sessions", requireAuth)
		sg.Get("/", sessionsH.List)
		sg.Get("/:id", sessionsH.Get)
	}
}
