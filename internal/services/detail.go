package services

import (
	"github.com/GregMSThompson/banks-directory/internal/dto"
	"github.com/GregMSThompson/banks-directory/internal/models"
	"github.com/GregMSThompson/banks-directory/pkg/helpers"
)

var rowLabels = map[dto.RowKey]string{
	dto.RowBIC:            "БИК",
	dto.RowName:           "Наименование",
	dto.RowNameInEnglish:  "Наименование на английском языке",
	dto.RowRegistryNumber: "Регистрационный номер",
	dto.RowAddress:        "Адрес",
}

// RowLabel returns the display caption for key.
func RowLabel(key dto.RowKey) string {
	return rowLabels[key]
}

// DetailRows lists the copyable rows of bank in fixed order. BIC and name
// are always present; optional fields are skipped when absent or blank.
func DetailRows(bank models.Bank) []dto.DetailRow {
	rows := []dto.DetailRow{
		newRow(dto.RowBIC, bank.BIC),
		newRow(dto.RowName, bank.Name),
	}

	optional := []struct {
		key dto.RowKey
		val *string
	}{
		{dto.RowNameInEnglish, bank.NameInEnglish},
		{dto.RowRegistryNumber, bank.RegistryNumber},
		{dto.RowAddress, bank.AddressCombined},
	}
	for _, o := range optional {
		if helpers.Present(o.val) {
			rows = append(rows, newRow(o.key, *o.val))
		}
	}

	return rows
}

// FindBank looks a bank up by exact BIC.
func FindBank(banks []models.Bank, bic string) (models.Bank, bool) {
	for _, b := range banks {
		if b.BIC == bic {
			return b, true
		}
	}
	return models.Bank{}, false
}

func newRow(key dto.RowKey, value string) dto.DetailRow {
	return dto.DetailRow{Key: key, Label: rowLabels[key], Value: value}
}
