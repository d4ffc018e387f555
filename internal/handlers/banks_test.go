package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/banks-directory/internal/dto"
	"github.com/GregMSThompson/banks-directory/internal/errs"
	"github.com/GregMSThompson/banks-directory/internal/models"
	"github.com/GregMSThompson/banks-directory/internal/response"
	"github.com/GregMSThompson/banks-directory/pkg/logger"
)

type stubBrowserService struct {
	view      dto.ListView
	detail    dto.BankDetail
	row       dto.DetailRow
	err       error
	lastQuery string
	lastBIC   string
	lastKey   dto.RowKey
}

func (s *stubBrowserService) ListBanks(_ context.Context, query string) dto.ListView {
	s.lastQuery = query
	return s.view
}

func (s *stubBrowserService) GetBank(_ context.Context, bic string) (dto.BankDetail, error) {
	s.lastBIC = bic
	return s.detail, s.err
}

func (s *stubBrowserService) RowValue(_ context.Context, bic string, key dto.RowKey) (dto.DetailRow, error) {
	s.lastBIC = bic
	s.lastKey = key
	return s.row, s.err
}

func newTestDeps(browser BrowserService, directory DirectoryService) *Deps {
	log := slog.New(logger.NewTestHandler(slog.LevelInfo))
	return &Deps{
		Log:             log,
		ResponseHandler: response.New(log),
		BrowserSvc:      browser,
		DirectorySvc:    directory,
	}
}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) {
	t.Helper()
	env := struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, rr.Body.String())
	}
	if !env.Success {
		t.Fatalf("expected success envelope, got %s", rr.Body.String())
	}
	if err := json.Unmarshal(env.Data, data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestListBanksPassesQuery(t *testing.T) {
	svc := &stubBrowserService{view: dto.ListView{
		State: dto.ViewLoaded,
		Query: "сбер",
		Total: 2,
		Rows:  []dto.ListRow{{BIC: "044525225", Name: "ПАО Сбербанк"}},
	}}
	h := NewBankHandlers(newTestDeps(svc, nil))

	req := httptest.NewRequest(http.MethodGet, "/?q=%D1%81%D0%B1%D0%B5%D1%80", nil)
	rr := httptest.NewRecorder()
	h.ListBanks(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if svc.lastQuery != "сбер" {
		t.Fatalf("query = %q", svc.lastQuery)
	}
	var view dto.ListView
	decodeEnvelope(t, rr, &view)
	if view.State != dto.ViewLoaded || len(view.Rows) != 1 || view.Rows[0].BIC != "044525225" {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestListBanksErrorViewIsStillOK(t *testing.T) {
	svc := &stubBrowserService{view: dto.ListView{State: dto.ViewError, Message: dto.ErrorText, Rows: []dto.ListRow{}}}
	h := NewBankHandlers(newTestDeps(svc, nil))

	rr := httptest.NewRecorder()
	h.ListBanks(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var view dto.ListView
	decodeEnvelope(t, rr, &view)
	if view.Message != dto.ErrorText {
		t.Fatalf("message = %q", view.Message)
	}
}

func TestGetBank(t *testing.T) {
	svc := &stubBrowserService{detail: dto.BankDetail{
		BIC:  "044525225",
		Rows: []dto.DetailRow{{Key: dto.RowBIC, Label: "БИК", Value: "044525225"}},
	}}
	h := NewBankHandlers(newTestDeps(svc, nil))

	req := withChiParams(httptest.NewRequest(http.MethodGet, "/044525225", nil), map[string]string{"bic": "044525225"})
	rr := httptest.NewRecorder()
	h.GetBank(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if svc.lastBIC != "044525225" {
		t.Fatalf("bic = %q", svc.lastBIC)
	}
	var detail dto.BankDetail
	decodeEnvelope(t, rr, &detail)
	if len(detail.Rows) != 1 || detail.Rows[0].Label != "БИК" {
		t.Fatalf("unexpected detail: %+v", detail)
	}
}

func TestGetBankErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", errs.NewNotFoundError("bank x not found"), http.StatusNotFound},
		{"loading", errs.NewUnavailableError(models.PhaseLoading), http.StatusServiceUnavailable},
		{"failed", errs.NewUnavailableError(models.PhaseFailed), http.StatusBadGateway},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := NewBankHandlers(newTestDeps(&stubBrowserService{err: c.err}, nil))

			req := withChiParams(httptest.NewRequest(http.MethodGet, "/x", nil), map[string]string{"bic": "x"})
			rr := httptest.NewRecorder()
			h.GetBank(rr, req)

			if rr.Code != c.status {
				t.Fatalf("status = %d, want %d", rr.Code, c.status)
			}
		})
	}
}

func TestGetRowReturnsRawText(t *testing.T) {
	svc := &stubBrowserService{row: dto.DetailRow{Key: dto.RowAddress, Label: "Адрес", Value: " Москва, ул. Вавилова, 19 "}}
	h := NewBankHandlers(newTestDeps(svc, nil))

	req := withChiParams(httptest.NewRequest(http.MethodGet, "/1/rows/address", nil),
		map[string]string{"bic": "1", "key": "address"})
	rr := httptest.NewRecorder()
	h.GetRow(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Body.String() != " Москва, ул. Вавилова, 19 " {
		t.Fatalf("body = %q", rr.Body.String())
	}
	if svc.lastKey != dto.RowAddress {
		t.Fatalf("key = %q", svc.lastKey)
	}
}

func TestGetRowUnknownKey(t *testing.T) {
	svc := &stubBrowserService{err: errs.NewValidationError("unknown row swift")}
	h := NewBankHandlers(newTestDeps(svc, nil))

	req := withChiParams(httptest.NewRequest(http.MethodGet, "/1/rows/swift", nil),
		map[string]string{"bic": "1", "key": "swift"})
	rr := httptest.NewRecorder()
	h.GetRow(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
}
