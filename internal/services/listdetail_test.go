package services

import (
	"testing"

	"github.com/GregMSThompson/banks-directory/internal/dto"
	"github.com/GregMSThompson/banks-directory/internal/models"
	"github.com/GregMSThompson/banks-directory/pkg/helpers"
)

func loadedSnapshot(banks ...models.Bank) models.Snapshot {
	return models.Snapshot{Banks: banks, Phase: models.PhaseLoaded}
}

func TestListDetailLoadingState(t *testing.T) {
	ld := NewListDetail(models.InitialSnapshot()).WithQuery("a")

	view := ld.List()
	if view.State != dto.ViewLoading || len(view.Rows) != 0 || view.Message != "" {
		t.Fatalf("unexpected loading view: %+v", view)
	}
	if _, ok := ld.Select("1").Detail(); ok {
		t.Fatal("detail must be empty while loading")
	}
}

func TestListDetailErrorState(t *testing.T) {
	snap := models.Snapshot{Banks: []models.Bank{}, IsError: true, Phase: models.PhaseFailed}

	view := NewListDetail(snap).List()
	if view.State != dto.ViewError || view.Message != dto.ErrorText || len(view.Rows) != 0 {
		t.Fatalf("unexpected error view: %+v", view)
	}
}

func TestListDetailSingleBankScenario(t *testing.T) {
	ld := NewListDetail(loadedSnapshot(models.Bank{BIC: "044525225", Name: "Bank A"}))

	view := ld.List()
	if view.State != dto.ViewLoaded || view.Total != 1 || len(view.Rows) != 1 {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Rows[0] != (dto.ListRow{BIC: "044525225", Name: "Bank A"}) {
		t.Fatalf("unexpected row: %+v", view.Rows[0])
	}

	detail, ok := ld.Select("044525225").Detail()
	if !ok || len(detail.Rows) != 2 {
		t.Fatalf("detail = %+v, %v; want two rows", detail, ok)
	}
}

func TestListDetailQueryKeepsSnapshotAndSelection(t *testing.T) {
	ld := NewListDetail(loadedSnapshot(sampleBanks()...)).Select("044525974")

	narrowed := ld.WithQuery("alp")
	if narrowed.Query() != "alp" || ld.Query() != "" {
		t.Fatal("WithQuery must return a new value")
	}
	if got := bics(narrowed.Visible()); len(got) != 1 || got[0] != "1" {
		t.Fatalf("visible = %v, want [1]", got)
	}
	if narrowed.List().Total != 4 {
		t.Fatalf("total should count the whole snapshot")
	}

	// the selected bank is filtered out of the list but still resolvable
	detail, ok := narrowed.Detail()
	if !ok || detail.BIC != "044525974" {
		t.Fatalf("detail = %+v, %v", detail, ok)
	}
}

func TestListDetailUnknownSelection(t *testing.T) {
	ld := NewListDetail(loadedSnapshot(sampleBanks()...))

	if _, ok := ld.Detail(); ok {
		t.Fatal("no selection should render nothing")
	}
	if _, ok := ld.Select("missing").Detail(); ok {
		t.Fatal("unknown BIC should render nothing")
	}
}

func TestListDetailBlankEnglishNameScenario(t *testing.T) {
	bank := models.Bank{BIC: "1", Name: "Alpha", NameInEnglish: helpers.Ptr("")}

	detail, ok := NewListDetail(loadedSnapshot(bank)).Select("1").Detail()
	if !ok {
		t.Fatal("expected detail")
	}
	for _, r := range detail.Rows {
		if r.Key == dto.RowNameInEnglish {
			t.Fatalf("english name row should be omitted: %+v", detail.Rows)
		}
	}
}
