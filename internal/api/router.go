package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "firststeps/docs/swagger"
	"firststeps/internal/store"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	Logger    *zap.Logger
	Pinger    Pinger
	UserStore store.UserStoreIface
	FileStore store.FileStoreIface
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(deps.Logger))
	r.Use(middleware.Recoverer)

	// Permissive CORS: any origin may call the API, with credentials.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	health := &healthHandler{pinger: deps.Pinger, files: deps.FileStore}
	r.Get("/healthz", health.Health)
	r.Get("/livez", health.Alive)

	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI. The bare /docs path redirects into the UI.
	r.Get("/docs", http.RedirectHandler("/docs/index.html", http.StatusMovedPermanently).ServeHTTP)
	r.Get("/docs/*", httpSwagger.WrapHandler)

	registerUserRoutes(r, deps.UserStore, deps.Logger)
	registerFileRoutes(r, deps.FileStore, deps.Logger)

	return r
}
