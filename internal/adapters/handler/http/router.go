package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/warriorcenter/cms-api/internal/core/ports"
)

func NewHandler(userHandler *UserHandler, sermonHandler *SermonHandler, eventHandler *EventHandler, tokens ports.TokenManager, mediaDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(corsHeaders)

	auth := authenticate(tokens)

	r.Route("/events", func(r chi.Router) {
		r.Get("/", eventHandler.List)
		r.Get("/limit/{number}", eventHandler.ListLimited)
		r.Get("/{id}", eventHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/", eventHandler.Create)
			r.Put("/{id}", eventHandler.Update)
			r.Delete("/delete/old", eventHandler.DeleteExpired)
			r.Delete("/{id}", eventHandler.Delete)
		})
	})

	r.Route("/sermons", func(r chi.Router) {
		r.Get("/", sermonHandler.List)
		r.Get("/limit/{number}", sermonHandler.ListLimited)
		r.Get("/{id}", sermonHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/", sermonHandler.Create)
			r.Put("/{id}", sermonHandler.Update)
			r.Delete("/{id}", sermonHandler.Delete)
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/signup", userHandler.Signup)
		r.Post("/login", userHandler.Login)
		r.Post("/forgot-password", userHandler.ForgotPassword)

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Put("/change-password", userHandler.ChangePassword)
		})
	})

	// Uploaded audio is exposed read-only under /mp3.
	r.Handle("/mp3/*", http.StripPrefix("/mp3/", http.FileServer(http.Dir(mediaDir))))

	return r
}
