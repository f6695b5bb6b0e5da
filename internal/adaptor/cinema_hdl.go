package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/rauanCheb33/oop-final-project/internal/dto/request"
	"github.com/rauanCheb33/oop-final-project/internal/usecase"
	"github.com/rauanCheb33/oop-final-project/pkg/utils"

	"go.uber.org/zap"
)

type CinemaHandler struct {
	service usecase.CinemaService
	log     *zap.Logger
}

func NewCinemaHandler(service usecase.CinemaService, log *zap.Logger) *CinemaHandler {
	return &CinemaHandler{
		service: service,
		log:     log.With(zap.String("handler", "cinema")),
	}
}

// GetCinemas handles GET /api/cinemas
func (h *CinemaHandler) GetCinemas(w http.ResponseWriter, r *http.Request) {
	cinemas, err := h.service.GetCinemas(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get cinemas")
		return
	}

	utils.ResponseSuccess(w, "success", cinemas)
}

// GetCinemaByID handles GET /api/cinemas/{id}
func (h *CinemaHandler) GetCinemaByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Cinema ID must be a positive integer", nil)
		return
	}

	cinema, err := h.service.GetCinemaByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get cinema by ID")
		return
	}

	utils.ResponseSuccess(w, "success", cinema)
}

// CreateCinema handles POST /api/cinemas
func (h *CinemaHandler) CreateCinema(w http.ResponseWriter, r *http.Request) {
	var req request.CinemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	cinema, err := h.service.CreateCinema(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create cinema")
		return
	}

	utils.ResponseCreated(w, "Cinema created successfully", cinema)
}

// UpdateCinema handles PUT /api/cinemas/{id}
func (h *CinemaHandler) UpdateCinema(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Cinema ID must be a positive integer", nil)
		return
	}

	var req request.CinemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	cinema, err := h.service.UpdateCinema(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update cinema")
		return
	}

	utils.ResponseSuccess(w, "Cinema updated successfully", cinema)
}

// DeleteCinema handles DELETE /api/cinemas/{id}
func (h *CinemaHandler) DeleteCinema(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Cinema ID must be a positive integer", nil)
		return
	}

	if err := h.service.DeleteCinema(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete cinema")
		return
	}

	utils.ResponseSuccess(w, "Cinema deleted successfully", nil)
}

// GetSchedule handles GET /api/cinemas/{id}/schedule
func (h *CinemaHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	cinemaID, ok := parseIDParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Cinema ID must be a positive integer", nil)
		return
	}

	items, err := h.service.GetSchedule(r.Context(), cinemaID)
	if err != nil {
		handleServiceError(w, h.log, err, "get schedule")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// UpsertSchedule handles POST /api/cinemas/{id}/schedule
func (h *CinemaHandler) UpsertSchedule(w http.ResponseWriter, r *http.Request) {
	cinemaID, ok := parseIDParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Cinema ID must be a positive integer", nil)
		return
	}

	var req request.ScheduleUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpsertSchedule(r.Context(), cinemaID, &req); err != nil {
		handleServiceError(w, h.log, err, "upsert schedule")
		return
	}

	utils.ResponseSuccess(w, "Schedule entry saved successfully", nil)
}

// DeleteScheduleEntry handles DELETE /api/cinemas/{id}/schedule/{movieId}
func (h *CinemaHandler) DeleteScheduleEntry(w http.ResponseWriter, r *http.Request) {
	cinemaID, ok := parseIDParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Cinema ID must be a positive integer", nil)
		return
	}

	movieID, ok := parseIDParam(r, "movieId")
	if !ok {
		utils.ResponseBadRequest(w, "Movie ID must be a positive integer", nil)
		return
	}

	if err := h.service.DeleteScheduleEntry(r.Context(), cinemaID, movieID); err != nil {
		handleServiceError(w, h.log, err, "delete schedule entry")
		return
	}

	utils.ResponseSuccess(w, "Schedule entry deleted successfully", nil)
}
