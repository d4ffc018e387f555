package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/banks-directory/internal/dto"
	"github.com/GregMSThompson/banks-directory/internal/response"
)

type bankHandlers struct {
	ResponseHandler response.ResponseHandler
	BrowserSvc      BrowserService
}

func NewBankHandlers(deps *Deps) *bankHandlers {
	return &bankHandlers{
		ResponseHandler: deps.ResponseHandler,
		BrowserSvc:      deps.BrowserSvc,
	}
}

func (h *bankHandlers) BankRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListBanks)
	r.Get("/{bic}", h.GetBank)
	r.Get("/{bic}/rows/{key}", h.GetRow)
	return r
}

// ListBanks always answers 200; the view's state tells loading and error apart.
func (h *bankHandlers) ListBanks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	view := h.BrowserSvc.ListBanks(r.Context(), query)
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, view)
}

func (h *bankHandlers) GetBank(w http.ResponseWriter, r *http.Request) {
	bic := chi.URLParam(r, "bic")

	detail, err := h.BrowserSvc.GetBank(r.Context(), bic)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, detail)
}

// GetRow returns one row's raw value as text, ready to be copied.
func (h *bankHandlers) GetRow(w http.ResponseWriter, r *http.Request) {
	bic := chi.URLParam(r, "bic")
	key := dto.RowKey(chi.URLParam(r, "key"))

	row, err := h.BrowserSvc.RowValue(r.Context(), bic, key)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteText(w, r, http.StatusOK, row.Value)
}
