package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/gaming-league/internal/domain/player"
)

// PlayerRepository keeps players per league in registration order.
type PlayerRepository struct {
	mu              sync.RWMutex
	playersByLeague map[string][]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	playersByLeague := make(map[string][]player.Player)
	for _, item := range players {
		if item.GamertagKey == "" {
			item.GamertagKey = player.GamertagKey(item.Gamertag)
		}
		playersByLeague[item.LeagueID] = append(playersByLeague[item.LeagueID], item)
	}

	return &PlayerRepository{playersByLeague: playersByLeague}
}

func (r *PlayerRepository) ListByLeague(_ context.Context, leagueID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.playersByLeague[leagueID]
	out := make([]player.Player, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, leagueID, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(leagueID, playerID)
	if idx < 0 {
		return player.Player{}, false, nil
	}
	return r.playersByLeague[leagueID][idx], true, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(item.LeagueID, item.ID) >= 0 {
		return fmt.Errorf("player %s already exists", item.ID)
	}
	if r.gamertagTaken(item) {
		return fmt.Errorf("%w: %s", player.ErrDuplicateGamertag, item.Gamertag)
	}
	r.playersByLeague[item.LeagueID] = append(r.playersByLeague[item.LeagueID], item)
	return nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(item.LeagueID, item.ID)
	if idx < 0 {
		return fmt.Errorf("%w: player=%s", ErrRecordNotFound, item.ID)
	}
	if r.gamertagTaken(item) {
		return fmt.Errorf("%w: %s", player.ErrDuplicateGamertag, item.Gamertag)
	}
	r.playersByLeague[item.LeagueID][idx] = item
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, leagueID, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(leagueID, playerID)
	if idx < 0 {
		return fmt.Errorf("%w: player=%s", ErrRecordNotFound, playerID)
	}
	items := r.playersByLeague[leagueID]
	r.playersByLeague[leagueID] = append(items[:idx:idx], items[idx+1:]...)
	return nil
}

func (r *PlayerRepository) indexOf(leagueID, playerID string) int {
	for i, item := range r.playersByLeague[leagueID] {
		if item.ID == playerID {
			return i
		}
	}
	return -1
}

func (r *PlayerRepository) gamertagTaken(candidate player.Player) bool {
	for _, item := range r.playersByLeague[candidate.LeagueID] {
		if item.ID != candidate.ID && item.GamertagKey == candidate.GamertagKey {
			return true
		}
	}
	return false
}
