package adaptor

import (
	"context"
	"net/http"
	"time"

	"estatelink/pkg/database"
	"estatelink/pkg/utils"

	"go.uber.org/zap"
)

// SystemHandler serves the liveness banner and the database health probe.
type SystemHandler struct {
	db     database.PgxIface
	config *utils.Config
	log    *zap.Logger
}

func NewSystemHandler(db database.PgxIface, config *utils.Config, log *zap.Logger) *SystemHandler {
	return &SystemHandler{
		db:     db,
		config: config,
		log:    log,
	}
}

// Health handles GET /api/health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	dbStatus := "connected"
	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn("Health check: database unreachable", zap.Error(err))
		dbStatus = "disconnected"
	}

	utils.ResponseSuccess(w, "healthy", map[string]any{
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Root handles GET /
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "estateLink Backend Server is running!", map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"port":      h.config.App.Port,
	})
}

// Test handles GET /api/test
func (h *SystemHandler) Test(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Backend is working!", map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"method":    r.Method,
		"path":      r.URL.Path,
	})
}
