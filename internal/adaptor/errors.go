package adaptor

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rauanCheb33/oop-final-project/internal/data/repository"
	"github.com/rauanCheb33/oop-final-project/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// handleServiceError translates service errors into HTTP responses:
// absent entities to 404, validation problems to 400, transient
// persistence faults to a retryable 503, anything else to 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case repository.IsNotFound(err):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case repository.IsTransient(err):
		log.Warn(operation+" hit a transient fault",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseServiceUnavailable(w, "Temporary failure, please retry")

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// parseIDParam reads a positive integer URL parameter. The second
// return value is false when the parameter is missing, malformed or
// non-positive.
func parseIDParam(r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
