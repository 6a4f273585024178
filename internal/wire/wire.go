package wire

import (
	"estatelink/internal/adaptor"
	"estatelink/internal/data/repository"
	"estatelink/internal/usecase"
	"estatelink/pkg/database"
	"estatelink/pkg/middleware"
	"estatelink/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies; listings carry base64 media inline.
const maxBodyBytes = 50 << 20 // 50 MB

// App holds the wired router.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring initializes services, handlers, and routes.
func Wiring(repo *repository.Repository, db database.PgxIface, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, db, config, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.FrontendURL, !config.App.Debug))
	r.Use(chimw.RequestSize(maxBodyBytes))

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User)
	wireProperty(r, handler.Property)

	r.Get("/", handler.System.Root)
	r.Get("/api/health", handler.System.Health)
	r.Get("/api/test", handler.System.Test)

	return r
}
