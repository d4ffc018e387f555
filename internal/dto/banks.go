package dto

import (
	"encoding/json"
	"time"

	"github.com/GregMSThompson/banks-directory/internal/models"
)

// BankPayload is one element of the banks.json array as it arrives on the
// wire. Pointers distinguish absent required fields from present ones; the
// optional fields stay raw so a value of the wrong type cannot fail the record.
type BankPayload struct {
	BIC             *string         `json:"bic"`
	Name            *string         `json:"name"`
	NameInEnglish   json.RawMessage `json:"nameInEnglish"`
	RegistryNumber  json.RawMessage `json:"registryNumber"`
	AddressCombined json.RawMessage `json:"addressCombined"`
}

type ViewState string

const (
	ViewLoading ViewState = "loading"
	ViewError   ViewState = "error"
	ViewLoaded  ViewState = "loaded"
)

// ErrorText is the fixed message shown in place of the list after a failed fetch.
const ErrorText = "Ошибка"

type ListRow struct {
	BIC  string `json:"bic"`
	Name string `json:"name"`
}

type ListView struct {
	State   ViewState `json:"state"`
	Message string    `json:"message,omitempty"`
	Query   string    `json:"query"`
	Total   int       `json:"total"`
	Rows    []ListRow `json:"rows"`
}

type RowKey string

const (
	RowBIC            RowKey = "bic"
	RowName           RowKey = "name"
	RowNameInEnglish  RowKey = "nameInEnglish"
	RowRegistryNumber RowKey = "registryNumber"
	RowAddress        RowKey = "address"
)

type DetailRow struct {
	Key   RowKey `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type BankDetail struct {
	BIC  string      `json:"bic"`
	Rows []DetailRow `json:"rows"`
}

type DirectoryStatus struct {
	Phase      models.Phase `json:"phase"`
	IsLoading  bool         `json:"isLoading"`
	IsError    bool         `json:"isError"`
	Count      int          `json:"count"`
	Generation string       `json:"generation,omitempty"`
	UpdatedAt  *time.Time   `json:"updatedAt,omitempty"`
}

func NewDirectoryStatus(s models.Snapshot) DirectoryStatus {
	status := DirectoryStatus{
		Phase:      s.Phase,
		IsLoading:  s.IsLoading,
		IsError:    s.IsError,
		Count:      len(s.Banks),
		Generation: s.Generation,
	}
	if !s.UpdatedAt.IsZero() {
		updated := s.UpdatedAt
		status.UpdatedAt = &updated
	}
	return status
}
