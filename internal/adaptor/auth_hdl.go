package adaptor

import (
	"encoding/json"
	"net/http"

	"estatelink/internal/dto/request"
	"estatelink/internal/usecase"
	"estatelink/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	debug   bool
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, debug bool, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		debug:   debug,
		log:     log,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "register", h.debug)
		return
	}

	utils.ResponseCreated(w, "User registered successfully", user)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "login", h.debug)
		return
	}

	utils.ResponseSuccess(w, "Login successful", user)
}

// Profile handles GET /api/auth/profile?userId=
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	user, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.log, err, "get profile", h.debug)
		return
	}

	utils.ResponseSuccess(w, "", user)
}
