package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/rauanCheb33/oop-final-project/internal/dto/request"
	"github.com/rauanCheb33/oop-final-project/internal/usecase"
	"github.com/rauanCheb33/oop-final-project/pkg/utils"

	"go.uber.org/zap"
)

type ViewerHandler struct {
	service usecase.ViewerService
	log     *zap.Logger
}

func NewViewerHandler(service usecase.ViewerService, log *zap.Logger) *ViewerHandler {
	return &ViewerHandler{
		service: service,
		log:     log.With(zap.String("handler", "viewer")),
	}
}

// GetViewers handles GET /api/viewers
func (h *ViewerHandler) GetViewers(w http.ResponseWriter, r *http.Request) {
	viewers, err := h.service.GetViewers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get viewers")
		return
	}

	utils.ResponseSuccess(w, "success", viewers)
}

// GetViewerByID handles GET /api/viewers/{id}
func (h *ViewerHandler) GetViewerByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Viewer ID must be a positive integer", nil)
		return
	}

	viewer, err := h.service.GetViewerByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get viewer by ID")
		return
	}

	utils.ResponseSuccess(w, "success", viewer)
}

// CreateViewer handles POST /api/viewers
func (h *ViewerHandler) CreateViewer(w http.ResponseWriter, r *http.Request) {
	var req request.ViewerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	viewer, err := h.service.CreateViewer(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create viewer")
		return
	}

	utils.ResponseCreated(w, "Viewer created successfully", viewer)
}

// UpdateViewer handles PUT /api/viewers/{id}
func (h *ViewerHandler) UpdateViewer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Viewer ID must be a positive integer", nil)
		return
	}

	var req request.ViewerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	viewer, err := h.service.UpdateViewer(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update viewer")
		return
	}

	utils.ResponseSuccess(w, "Viewer updated successfully", viewer)
}

// DeleteViewer handles DELETE /api/viewers/{id}
func (h *ViewerHandler) DeleteViewer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Viewer ID must be a positive integer", nil)
		return
	}

	if err := h.service.DeleteViewer(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete viewer")
		return
	}

	utils.ResponseSuccess(w, "Viewer deleted successfully", nil)
}
