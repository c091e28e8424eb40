package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/gaming-league/internal/domain/result"
)

func TestResultRepository_DeleteByLeagueKeepsOtherLeagues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewResultRepository()
	for _, item := range []result.Report{
		{ID: "rp-1", LeagueID: "lg-1", FixtureID: "fx-1", Status: result.StatusPending},
		{ID: "rp-2", LeagueID: "lg-2", FixtureID: "fx-9", Status: result.StatusPending},
		{ID: "rp-3", LeagueID: "lg-1", FixtureID: "fx-2", Status: result.StatusRejected},
	} {
		if err := repo.Create(ctx, item); err != nil {
			t.Fatalf("create %s: %v", item.ID, err)
		}
	}

	if err := repo.DeleteByLeague(ctx, "lg-1"); err != nil {
		t.Fatalf("delete by league: %v", err)
	}

	gone, err := repo.ListByLeague(ctx, "lg-1", "")
	if err != nil {
		t.Fatalf("list lg-1: %v", err)
	}
	if len(gone) != 0 {
		t.Fatalf("expected no reports left in lg-1, got %+v", gone)
	}
	if _, exists, _ := repo.GetByID(ctx, "rp-1"); exists {
		t.Fatalf("expected rp-1 to be removed")
	}

	kept, err := repo.ListByLeague(ctx, "lg-2", "")
	if err != nil {
		t.Fatalf("list lg-2: %v", err)
	}
	if len(kept) != 1 || kept[0].ID != "rp-2" {
		t.Fatalf("unexpected reports in lg-2: %+v", kept)
	}
}
