package response

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/GregMSThompson/banks-directory/pkg/logger"
)

type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

func (h *responseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := SuccessEnvelope{
		Success: true,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		// Last-ditch logging; can't return an error now
		h.Log.Error("failed to encode success response", "error", err, "path", r.URL.Path)
	}
}

// WriteText writes a bare value, used for copy payloads.
func (h *responseHandler) WriteText(w http.ResponseWriter, r *http.Request, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)

	if _, err := io.WriteString(w, text); err != nil {
		logger.FromContext(r.Context()).Error("failed to write text response", "error", err)
	}
}
