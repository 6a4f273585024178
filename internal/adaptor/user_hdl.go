package adaptor

import (
	"encoding/json"
	"net/http"

	"estatelink/internal/dto/request"
	"estatelink/internal/usecase"
	"estatelink/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	debug   bool
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, debug bool, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		debug:   debug,
		log:     log,
	}
}

// List handles GET /api/users?accountType=
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	accountType := r.URL.Query().Get("accountType")

	users, err := h.service.List(r.Context(), accountType)
	if err != nil {
		writeServiceError(w, h.log, err, "get users", h.debug)
		return
	}

	utils.ResponseList(w, users, len(users))
}

// Update handles PUT /api/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update user", h.debug)
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", user)
}

// SetStatus handles PATCH /api/users/{id}/status
func (h *UserHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.UserStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, active, err := h.service.SetStatus(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update user status", h.debug)
		return
	}

	message := "User suspended successfully"
	if active {
		message = "User activated successfully"
	}
	utils.ResponseSuccess(w, message, user)
}

// Delete handles DELETE /api/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.log, err, "delete user", h.debug)
		return
	}

	utils.ResponseSuccess(w, "User deleted successfully", nil)
}
