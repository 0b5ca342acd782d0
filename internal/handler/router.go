package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nepem-ufsc/nepemcert/internal/response"
)

type Router struct {
	generationHandler   *GenerationHandler
	verificationHandler *VerificationHandler
	templateHandler     *TemplateHandler
	themeHandler        *ThemeHandler
	placeholderHandler  *PlaceholderHandler
}

func NewRouter(
	generationHandler *GenerationHandler,
	verificationHandler *VerificationHandler,
	templateHandler *TemplateHandler,
	themeHandler *ThemeHandler,
	placeholderHandler *PlaceholderHandler,
) *Router {
	return &Router{
		generationHandler:   generationHandler,
		verificationHandler: verificationHandler,
		templateHandler:     templateHandler,
		themeHandler:        themeHandler,
		placeholderHandler:  placeholderHandler,
	}
}

func (ro *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000", "https://*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, "Servidor em execução", map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ── Geração em lote ───────────────────────────────
		r.Post("/certificates/batch", ro.generationHandler.GenerateBatch)

		// ── Público: verificação de autenticidade ─────────
		r.Get("/verify/{code}", ro.verificationHandler.Verify)

		// ── Templates ─────────────────────────────────────
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", ro.templateHandler.List)
			r.Post("/", ro.templateHandler.Save)
			r.Get("/{name}/placeholders", ro.templateHandler.Placeholders)
			r.Post("/{name}/validate", ro.templateHandler.Validate)
			r.Delete("/{name}", ro.templateHandler.Delete)
		})

		// ── Temas ─────────────────────────────────────────
		r.Route("/themes", func(r chi.Router) {
			r.Get("/", ro.themeHandler.List)
			r.Post("/", ro.themeHandler.Save)
			r.Get("/{name}", ro.themeHandler.Get)
			r.Delete("/{name}", ro.themeHandler.Delete)
		})

		// ── Placeholders ──────────────────────────────────
		r.Route("/placeholders", func(r chi.Router) {
			r.Get("/", ro.placeholderHandler.Get)
			r.Put("/themes/{name}", ro.placeholderHandler.UpdateTheme)
			r.Put("/{layer}", ro.placeholderHandler.UpdateLayer)
		})
	})

	return r
}
