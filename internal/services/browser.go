package services

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/GregMSThompson/banks-directory/internal/dto"
	"github.com/GregMSThompson/banks-directory/internal/errs"
	"github.com/GregMSThompson/banks-directory/internal/models"
	"github.com/GregMSThompson/banks-directory/pkg/logger"
)

type snapshotSource interface {
	Snapshot() models.Snapshot
}

type clipboardWriter interface {
	WriteText(text string) error
}

// browserService renders the list and detail views from the current
// directory snapshot.
type browserService struct {
	directory snapshotSource
	clip      clipboardWriter
}

func NewBrowserService(directory snapshotSource, clip clipboardWriter) *browserService {
	return &browserService{
		directory: directory,
		clip:      clip,
	}
}

func (s *browserService) ListBanks(ctx context.Context, query string) dto.ListView {
	view := NewListDetail(s.directory.Snapshot()).WithQuery(query).List()

	if logger.IsDebugEnabled(ctx) {
		logger.FromContext(ctx).Debug("list rendered", "state", view.State, "query", query, "rows", len(view.Rows))
	}
	return view
}

func (s *browserService) GetBank(ctx context.Context, bic string) (dto.BankDetail, error) {
	snap := s.directory.Snapshot()
	ld := NewListDetail(snap)
	if ld.State() != dto.ViewLoaded {
		return dto.BankDetail{}, errs.NewUnavailableError(snap.Phase)
	}

	detail, ok := ld.Select(bic).Detail()
	if !ok {
		return dto.BankDetail{}, errs.NewNotFoundError("bank " + bic + " not found")
	}
	return detail, nil
}

func (s *browserService) RowValue(ctx context.Context, bic string, key dto.RowKey) (dto.DetailRow, error) {
	if RowLabel(key) == "" {
		return dto.DetailRow{}, errs.NewValidationError("unknown row " + string(key))
	}

	detail, err := s.GetBank(ctx, bic)
	if err != nil {
		return dto.DetailRow{}, err
	}
	for _, row := range detail.Rows {
		if row.Key == key {
			return row, nil
		}
	}
	return dto.DetailRow{}, errs.NewNotFoundError("bank " + bic + " has no " + string(key))
}

// CopyRow writes the raw value of one detail row to the clipboard.
func (s *browserService) CopyRow(ctx context.Context, bic string, key dto.RowKey) (dto.DetailRow, error) {
	row, err := s.RowValue(ctx, bic, key)
	if err != nil {
		return dto.DetailRow{}, err
	}
	if s.clip == nil {
		return dto.DetailRow{}, eris.New("no clipboard configured")
	}
	if err := s.clip.WriteText(row.Value); err != nil {
		return dto.DetailRow{}, eris.Wrap(err, "copying row")
	}

	logger.FromContext(ctx).Info("row copied", "bic", bic, "row", key)
	return row, nil
}
