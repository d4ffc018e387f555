package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/GregMSThompson/banks-directory/internal/dto"
	"github.com/GregMSThompson/banks-directory/internal/response"
	"github.com/GregMSThompson/banks-directory/pkg/logger"
)

type directoryHandlers struct {
	ResponseHandler response.ResponseHandler
	DirectorySvc    DirectoryService
}

func NewDirectoryHandlers(deps *Deps) *directoryHandlers {
	return &directoryHandlers{
		ResponseHandler: deps.ResponseHandler,
		DirectorySvc:    deps.DirectorySvc,
	}
}

func (h *directoryHandlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	status := dto.NewDirectoryStatus(h.DirectorySvc.Snapshot())
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, status)
}

func (h *directoryHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.DirectorySvc.Refresh(r.Context()); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	status := dto.NewDirectoryStatus(h.DirectorySvc.Snapshot())
	h.ResponseHandler.WriteSuccess(w, r, http.StatusAccepted, status)
}

// StreamStatus sends one server-sent event per published snapshot until the
// client goes away.
func (h *directoryHandlers) StreamStatus(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.ResponseHandler.WriteError(w, r, http.StatusInternalServerError, "streaming_unsupported", "streaming is not supported")
		return
	}
	log := logger.FromContext(r.Context())

	updates, cancel := h.DirectorySvc.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			log.Debug("status stream closed by client")
			return
		case snap, ok := <-updates:
			if !ok {
				return
			}
			b, err := json.Marshal(dto.NewDirectoryStatus(snap))
			if err != nil {
				log.Error("failed to encode status event", "error", err)
				return
			}
			if _, err := fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", b); err != nil {
				log.Debug("status stream write failed", "error", err)
				return
			}
			flusher.Flush()
		}
	}
}
