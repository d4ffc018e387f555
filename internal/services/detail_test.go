package services

import (
	"reflect"
	"testing"

	"github.com/GregMSThompson/banks-directory/internal/dto"
	"github.com/GregMSThompson/banks-directory/internal/models"
	"github.com/GregMSThompson/banks-directory/pkg/helpers"
)

func rowKeys(rows []dto.DetailRow) []dto.RowKey {
	out := []dto.RowKey{}
	for _, r := range rows {
		out = append(out, r.Key)
	}
	return out
}

func TestDetailRowsRequiredOnly(t *testing.T) {
	rows := DetailRows(models.Bank{BIC: "044525225", Name: "Bank A"})

	want := []dto.DetailRow{
		{Key: dto.RowBIC, Label: "БИК", Value: "044525225"},
		{Key: dto.RowName, Label: "Наименование", Value: "Bank A"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("DetailRows = %+v, want %+v", rows, want)
	}
}

func TestDetailRowsAllFieldsInFixedOrder(t *testing.T) {
	bank := models.Bank{
		BIC:             "1",
		Name:            "Alpha",
		NameInEnglish:   helpers.Ptr("Alpha Bank"),
		RegistryNumber:  helpers.Ptr("1481"),
		AddressCombined: helpers.Ptr(" Москва "),
	}

	rows := DetailRows(bank)
	want := []dto.RowKey{dto.RowBIC, dto.RowName, dto.RowNameInEnglish, dto.RowRegistryNumber, dto.RowAddress}
	if got := rowKeys(rows); !reflect.DeepEqual(got, want) {
		t.Fatalf("row order = %v, want %v", got, want)
	}
	if rows[4].Value != " Москва " {
		t.Fatalf("value should be raw, got %q", rows[4].Value)
	}
	if rows[2].Label != "Наименование на английском языке" || rows[3].Label != "Регистрационный номер" || rows[4].Label != "Адрес" {
		t.Fatalf("unexpected labels: %+v", rows)
	}
}

func TestDetailRowsOmitsBlankOptionals(t *testing.T) {
	cases := []struct {
		name string
		bank models.Bank
		want []dto.RowKey
	}{
		{
			name: "empty english name",
			bank: models.Bank{BIC: "1", Name: "Alpha", NameInEnglish: helpers.Ptr("")},
			want: []dto.RowKey{dto.RowBIC, dto.RowName},
		},
		{
			name: "whitespace registry number",
			bank: models.Bank{BIC: "1", Name: "Alpha", RegistryNumber: helpers.Ptr("   ")},
			want: []dto.RowKey{dto.RowBIC, dto.RowName},
		},
		{
			name: "only address",
			bank: models.Bank{BIC: "1", Name: "Alpha", NameInEnglish: helpers.Ptr("\t"), AddressCombined: helpers.Ptr("Москва")},
			want: []dto.RowKey{dto.RowBIC, dto.RowName, dto.RowAddress},
		},
		{
			name: "registry without english name",
			bank: models.Bank{BIC: "1", Name: "Alpha", RegistryNumber: helpers.Ptr("1"), AddressCombined: helpers.Ptr("")},
			want: []dto.RowKey{dto.RowBIC, dto.RowName, dto.RowRegistryNumber},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := rowKeys(DetailRows(c.bank)); !reflect.DeepEqual(got, c.want) {
				t.Fatalf("rows = %v, want %v", got, c.want)
			}
		})
	}
}

func TestFindBank(t *testing.T) {
	banks := sampleBanks()

	b, ok := FindBank(banks, "1")
	if !ok || b.Name != "Alpha Bank" {
		t.Fatalf("FindBank(1) = %+v, %v", b, ok)
	}
	if _, ok := FindBank(banks, "04452522"); ok {
		t.Fatal("FindBank must match exactly")
	}
	if _, ok := FindBank(nil, "1"); ok {
		t.Fatal("FindBank on empty collection")
	}
}
