package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"estatelink/internal/dto/request"
	"estatelink/internal/usecase"
	"estatelink/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PropertyHandler struct {
	service usecase.PropertyService
	debug   bool
	log     *zap.Logger
}

func NewPropertyHandler(service usecase.PropertyService, debug bool, log *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		service: service,
		debug:   debug,
		log:     log,
	}
}

func propertyID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// Create handles POST /api/properties
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePropertyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	property, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create property", h.debug)
		return
	}

	utils.ResponseCreated(w, "Property created successfully", property)
}

// List handles GET /api/properties?landlordId=&status=
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	landlordID := r.URL.Query().Get("landlordId")
	status := r.URL.Query().Get("status")

	properties, err := h.service.List(r.Context(), landlordID, status)
	if err != nil {
		writeServiceError(w, h.log, err, "get properties", h.debug)
		return
	}

	utils.ResponseList(w, properties, len(properties))
}

// Get handles GET /api/properties/{id}
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(r)
	if !ok {
		utils.ResponseBadRequest(w, "Invalid property ID", nil)
		return
	}

	property, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err, "get property", h.debug)
		return
	}

	utils.ResponseSuccess(w, "", property)
}

// Update handles PUT /api/properties/{id}
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(r)
	if !ok {
		utils.ResponseBadRequest(w, "Invalid property ID", nil)
		return
	}

	var req request.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	property, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update property", h.debug)
		return
	}

	utils.ResponseSuccess(w, "Property updated successfully", property)
}

// Delete handles DELETE /api/properties/{id}
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(r)
	if !ok {
		utils.ResponseBadRequest(w, "Invalid property ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.log, err, "delete property", h.debug)
		return
	}

	utils.ResponseSuccess(w, "Property deleted successfully", nil)
}

// ForwardToCouncil handles PATCH /api/properties/{id}/forward-to-council
func (h *PropertyHandler) ForwardToCouncil(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(r)
	if !ok {
		utils.ResponseBadRequest(w, "Invalid property ID", nil)
		return
	}

	property, err := h.service.ForwardToCouncil(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err, "forward property", h.debug)
		return
	}

	utils.ResponseSuccess(w, "Property forwarded to council successfully", property)
}

// UpdatePayment handles PATCH /api/properties/{id}/payment
func (h *PropertyHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(r)
	if !ok {
		utils.ResponseBadRequest(w, "Invalid property ID", nil)
		return
	}

	var req request.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	property, err := h.service.UpdatePayment(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update payment status", h.debug)
		return
	}

	utils.ResponseSuccess(w, "Payment status updated successfully", property)
}
