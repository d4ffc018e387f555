package handlers

import (
	"context"
	"log/slog"

	"github.com/GregMSThompson/banks-directory/internal/dto"
	"github.com/GregMSThompson/banks-directory/internal/models"
	"github.com/GregMSThompson/banks-directory/internal/response"
)

type BrowserService interface {
	ListBanks(ctx context.Context, query string) dto.ListView
	GetBank(ctx context.Context, bic string) (dto.BankDetail, error)
	RowValue(ctx context.Context, bic string, key dto.RowKey) (dto.DetailRow, error)
}

type DirectoryService interface {
	Snapshot() models.Snapshot
	Subscribe() (<-chan models.Snapshot, func())
	Refresh(ctx context.Context) error
}

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	BrowserSvc      BrowserService
	DirectorySvc    DirectoryService
}
