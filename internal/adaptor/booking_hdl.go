package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/rauanCheb33/oop-final-project/internal/dto/request"
	"github.com/rauanCheb33/oop-final-project/internal/usecase"
	"github.com/rauanCheb33/oop-final-project/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Book handles POST /api/cinemas/{id}/book.
//
// A refused booking (no seats, insufficient balance, under age, movie
// not scheduled here) is still a 200: the outcome lives in the result
// body, not in the status code. Only absent entities, bad input and
// infrastructure faults map to error statuses.
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	cinemaID, ok := parseIDParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Cinema ID must be a positive integer", nil)
		return
	}

	var req request.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.Book(r.Context(), cinemaID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "book tickets")
		return
	}

	utils.ResponseSuccess(w, result.Message, result)
}
