package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/gaming-league/internal/domain/player"
)

func TestPlayerRepository_RejectsFoldedGamertagDuplicate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPlayerRepository(SeedPlayers())

	dup := player.Player{
		ID:          "pl-new",
		LeagueID:    LeagueIDDemo,
		Name:        "Copycat",
		Gamertag:    "MAYHEM",
		GamertagKey: player.GamertagKey("MAYHEM"),
		Status:      player.StatusActive,
	}
	if err := repo.Create(ctx, dup); !errors.Is(err, player.ErrDuplicateGamertag) {
		t.Fatalf("expected ErrDuplicateGamertag, got %v", err)
	}

	dup.LeagueID = "other-league"
	if err := repo.Create(ctx, dup); err != nil {
		t.Fatalf("same gamertag in another league should be allowed: %v", err)
	}
}

func TestPlayerRepository_DeleteKeepsOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPlayerRepository(SeedPlayers())

	if err := repo.Delete(ctx, LeagueIDDemo, "pl-demo-02"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	items, err := repo.ListByLeague(ctx, LeagueIDDemo)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 4 || items[0].ID != "pl-demo-01" || items[1].ID != "pl-demo-03" {
		t.Fatalf("unexpected players after delete: %+v", items)
	}
	if err := repo.Delete(ctx, LeagueIDDemo, "pl-demo-02"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
