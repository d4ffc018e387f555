package services

import (
	"github.com/GregMSThompson/banks-directory/internal/dto"
	"github.com/GregMSThompson/banks-directory/internal/models"
)

// ListDetail is the list/detail composite: one snapshot plus the user's
// query and selection. Changing the query or selection never touches the
// snapshot.
type ListDetail struct {
	snapshot models.Snapshot
	query    string
	selected string
}

func NewListDetail(snapshot models.Snapshot) ListDetail {
	return ListDetail{snapshot: snapshot}
}

func (v ListDetail) State() dto.ViewState {
	switch {
	case v.snapshot.IsLoading:
		return dto.ViewLoading
	case v.snapshot.IsError:
		return dto.ViewError
	default:
		return dto.ViewLoaded
	}
}

func (v ListDetail) Query() string    { return v.query }
func (v ListDetail) Selected() string { return v.selected }

func (v ListDetail) WithQuery(query string) ListDetail {
	v.query = query
	return v
}

func (v ListDetail) Select(bic string) ListDetail {
	v.selected = bic
	return v
}

// Visible is the filtered subset; empty unless loaded.
func (v ListDetail) Visible() []models.Bank {
	if v.State() != dto.ViewLoaded {
		return []models.Bank{}
	}
	return FilterBanks(v.snapshot.Banks, v.query)
}

func (v ListDetail) List() dto.ListView {
	view := dto.ListView{
		State: v.State(),
		Query: v.query,
		Rows:  []dto.ListRow{},
	}

	switch view.State {
	case dto.ViewError:
		view.Message = dto.ErrorText
	case dto.ViewLoaded:
		view.Total = len(v.snapshot.Banks)
		for _, b := range v.Visible() {
			view.Rows = append(view.Rows, dto.ListRow{BIC: b.BIC, Name: b.Name})
		}
	}

	return view
}

// Detail resolves the selection against the snapshot. ok is false when
// nothing is selected or the BIC is unknown.
func (v ListDetail) Detail() (dto.BankDetail, bool) {
	if v.selected == "" || v.State() != dto.ViewLoaded {
		return dto.BankDetail{}, false
	}
	bank, ok := FindBank(v.snapshot.Banks, v.selected)
	if !ok {
		return dto.BankDetail{}, false
	}
	return dto.BankDetail{BIC: bank.BIC, Rows: DetailRows(bank)}, true
}
