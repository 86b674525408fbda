package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"speechdown-backend/internal/handlers"
	"speechdown-backend/internal/middleware"
)

func New(
	userHandler *handlers.UserHandler,
	childHandler *handlers.ChildHandler,
	activityHandler *handlers.ActivityHandler,
	progressHandler *handlers.ProgressHandler,
	ttsHandler *handlers.TTSHandler,
	corsOrigin string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.StripSlashes)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(corsOrigin))

	// Generation rate limiter (10 req/min per IP)
	generateLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {

		// ──── User Routes ────
		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Create)
			r.Get("/{id}", userHandler.Get)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})

		// ──── Child Routes ────
		r.Route("/children", func(r chi.Router) {
			r.Get("/", childHandler.List)
			r.Post("/", childHandler.Create)
			r.Get("/{id}", childHandler.Get)
			r.Put("/{id}", childHandler.Update)
			r.Delete("/{id}", childHandler.Delete)
		})

		// ──── Activity Routes ────
		r.Route("/activities", func(r chi.Router) {
			r.Get("/", activityHandler.List)
			r.Post("/", activityHandler.Create)

			r.Group(func(r chi.Router) {
				r.Use(generateLimiter.Middleware)
				r.Post("/generate", activityHandler.Generate)
				r.Post("/generate/reading", activityHandler.GenerateReading)
				r.Post("/generate/pronunciation", activityHandler.GeneratePronunciation)
				r.Post("/generate/comprehension", activityHandler.GenerateComprehension)
			})

			r.Get("/{id}", activityHandler.Get)
			r.Put("/{id}", activityHandler.Update)
			r.Delete("/{id}", activityHandler.Delete)
			r.Post("/{id}/progress", activityHandler.SaveProgress)
		})

		// ──── Progress Routes ────
		r.Route("/progress", func(r chi.Router) {
			r.Get("/", progressHandler.List)
			r.Post("/", progressHandler.Create)
			r.Get("/{id}", progressHandler.Get)
			r.Put("/{id}", progressHandler.Update)
			r.Delete("/{id}", progressHandler.Delete)
		})

		// ──── Text-to-Speech ────
		r.Route("/tts", func(r chi.Router) {
			r.Get("/hablar", ttsHandler.Speak)
			r.Post("/hablar", ttsHandler.Speak)
		})
	})

	return r
}
