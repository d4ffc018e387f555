package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/GregMSThompson/banks-directory/internal/dto"
	"github.com/GregMSThompson/banks-directory/internal/errs"
	"github.com/GregMSThompson/banks-directory/internal/models"
	"github.com/GregMSThompson/banks-directory/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
	}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.NotFoundError:
		log.Warn("resource not found", "error", e.Message)
		h.WriteError(w, r, http.StatusNotFound, "not_found", e.Message)

	case *errs.ValidationError:
		log.Warn("validation failed", "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", e.Message)

	case *errs.ConflictError:
		log.Warn("conflicting request", "error", e.Message)
		h.WriteError(w, r, http.StatusConflict, "conflict", e.Message)

	case *errs.UnavailableError:
		if e.Phase == models.PhaseFailed {
			log.Warn("directory unavailable", "phase", e.Phase)
			h.WriteError(w, r, http.StatusBadGateway, "fetch_failed", dto.ErrorText)
			return
		}
		log.Info("directory not loaded yet", "phase", e.Phase)
		h.WriteError(w, r, http.StatusServiceUnavailable, "loading", e.Message)

	case *errs.FetchError:
		// the cause stays in the logs
		log.Error("bank directory fetch error",
			"reason", e.Reason,
			"error", e.Error())
		h.WriteError(w, r, http.StatusBadGateway, "fetch_failed", dto.ErrorText)

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")
	}
}
