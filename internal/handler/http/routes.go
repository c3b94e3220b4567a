package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(h.withTraceID, h.withLogging, h.withOriginCheck)

	// a JSON content type keeps cross-site writes behind a CORS preflight
	jsonBody := middleware.AllowContentType("application/json")

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/session", func(r chi.Router) {
		r.Get("/", h.getSession)
		r.Post("/refresh", h.refreshSession)
		r.Get("/events", h.sessionEvents)
		r.With(jsonBody).Post("/signin", h.signIn)
		r.With(jsonBody).Post("/signup", h.signUp)
		r.Post("/signout", h.signOut)
	})

	// routes of the signed-in user
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.With(jsonBody).Patch("/api/profile", h.updateProfile)
		r.Put("/api/profile/picture", h.updatePicture)
		r.Delete("/api/profile/picture", h.removePicture)

		r.Get("/api/entries", h.listEntries)
		r.With(jsonBody).Post("/api/entries", h.createEntry)
		r.Get("/api/entries/{entryID}", h.getEntry)
		r.With(jsonBody).Patch("/api/entries/{entryID}", h.updateEntry)
		r.Delete("/api/entries/{entryID}", h.deleteEntry)
	})

	return router
}
