package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/gaming-league/internal/domain/fixture"
	"github.com/riskibarqy/gaming-league/internal/domain/league"
	"github.com/riskibarqy/gaming-league/internal/domain/player"
	idgen "github.com/riskibarqy/gaming-league/internal/platform/id"
)

type RegisterPlayerInput struct {
	LeagueID string
	Name     string
	Gamertag string
	Email    string
	Phone    string
}

type UpdatePlayerInput struct {
	LeagueID string
	PlayerID string
	Name     *string
	Gamertag *string
	Email    *string
	Phone    *string
}

type PlayerService struct {
	leagueRepo  league.Repository
	playerRepo  player.Repository
	fixtureRepo fixture.Repository
	idGen       idgen.Generator
	standings   standingsRefresher
	phoneRegion string
	now         func() time.Time
}

func NewPlayerService(
	leagueRepo league.Repository,
	playerRepo player.Repository,
	fixtureRepo fixture.Repository,
	standings standingsRefresher,
	idGen idgen.Generator,
	phoneRegion string,
) *PlayerService {
	return &PlayerService{
		leagueRepo:  leagueRepo,
		playerRepo:  playerRepo,
		fixtureRepo: fixtureRepo,
		standings:   standings,
		idGen:       idGen,
		phoneRegion: phoneRegion,
		now:         time.Now,
	}
}

func (s *PlayerService) RegisterPlayer(ctx context.Context, input RegisterPlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.RegisterPlayer")
	defer span.End()

	item, err := loadLeague(ctx, s.leagueRepo, input.LeagueID)
	if err != nil {
		return player.Player{}, err
	}
	if !item.AcceptsRegistrations() {
		return player.Player{}, fmt.Errorf("%w: league %s is %s and closed for registration", ErrConflict, item.ID, item.Status)
	}

	phone, err := player.NormalizePhone(input.Phone, s.phoneRegion)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	now := s.now().UTC()
	gamertag := player.NormalizeGamertag(input.Gamertag)
	registered := player.Player{
		ID:           playerID,
		LeagueID:     item.ID,
		Name:         strings.TrimSpace(input.Name),
		Gamertag:     gamertag,
		GamertagKey:  player.GamertagKey(gamertag),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:        phone,
		Status:       player.StatusActive,
		RegisteredAt: now,
		UpdatedAt:    now,
	}
	if err := registered.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ensureGamertagAvailable(ctx, registered); err != nil {
		return player.Player{}, err
	}
	if err := s.playerRepo.Create(ctx, registered); err != nil {
		if errors.Is(err, player.ErrDuplicateGamertag) {
			return player.Player{}, fmt.Errorf("%w: gamertag %q is already taken", ErrConflict, registered.Gamertag)
		}
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	refreshStandings(ctx, s.standings, registered.LeagueID)

	return registered, nil
}

// ListPlayers returns league players in registration order. A blank
// status returns every player.
func (s *PlayerService) ListPlayers(ctx context.Context, leagueID, status string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}

	status = strings.ToUpper(strings.TrimSpace(status))
	if status != "" && status != player.StatusActive && status != player.StatusWithdrawn {
		return nil, fmt.Errorf("%w: unknown player status %q", ErrInvalidInput, status)
	}

	players, err := s.playerRepo.ListByLeague(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list players by league: %w", err)
	}

	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		if status != "" && p.Status != status {
			continue
		}
		out = append(out, p)
	}
	sortByRegistration(out)

	return out, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, leagueID, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	return s.loadPlayer(ctx, leagueID, playerID)
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, input UpdatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	item, err := s.loadPlayer(ctx, input.LeagueID, input.PlayerID)
	if err != nil {
		return player.Player{}, err
	}

	gamertagChanged := false
	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Gamertag != nil {
		gamertag := player.NormalizeGamertag(*input.Gamertag)
		key := player.GamertagKey(gamertag)
		gamertagChanged = key != item.GamertagKey
		item.Gamertag = gamertag
		item.GamertagKey = key
	}
	if input.Email != nil {
		item.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Phone != nil {
		phone, err := player.NormalizePhone(*input.Phone, s.phoneRegion)
		if err != nil {
			return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		item.Phone = phone
	}
	item.UpdatedAt = s.now().UTC()

	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if gamertagChanged {
		if err := s.ensureGamertagAvailable(ctx, item); err != nil {
			return player.Player{}, err
		}
	}

	if err := s.playerRepo.Update(ctx, item); err != nil {
		if errors.Is(err, player.ErrDuplicateGamertag) {
			return player.Player{}, fmt.Errorf("%w: gamertag %q is already taken", ErrConflict, item.Gamertag)
		}
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	refreshStandings(ctx, s.standings, item.LeagueID)

	return item, nil
}

// WithdrawPlayer marks the player inactive. Existing fixtures and
// results are kept; the player is left out of the next schedule.
func (s *PlayerService) WithdrawPlayer(ctx context.Context, leagueID, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.WithdrawPlayer")
	defer span.End()

	item, err := s.loadPlayer(ctx, leagueID, playerID)
	if err != nil {
		return player.Player{}, err
	}
	if item.Status == player.StatusWithdrawn {
		return item, nil
	}

	item.Status = player.StatusWithdrawn
	item.UpdatedAt = s.now().UTC()
	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("withdraw player: %w", err)
	}

	return item, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, leagueID, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	item, err := s.loadPlayer(ctx, leagueID, playerID)
	if err != nil {
		return err
	}

	fixtures, err := s.fixtureRepo.ListByLeague(ctx, item.LeagueID)
	if err != nil {
		return fmt.Errorf("list fixtures by league: %w", err)
	}
	for _, fx := range fixtures {
		if fx.Involves(item.ID) {
			return fmt.Errorf("%w: player %s already has fixtures, withdraw instead", ErrConflict, item.ID)
		}
	}

	if err := s.playerRepo.Delete(ctx, item.LeagueID, item.ID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	refreshStandings(ctx, s.standings, item.LeagueID)

	return nil
}

func (s *PlayerService) loadPlayer(ctx context.Context, leagueID, playerID string) (player.Player, error) {
	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return player.Player{}, err
	}

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	found, exists, err := s.playerRepo.GetByID(ctx, item.ID, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return found, nil
}

func (s *PlayerService) ensureGamertagAvailable(ctx context.Context, candidate player.Player) error {
	players, err := s.playerRepo.ListByLeague(ctx, candidate.LeagueID)
	if err != nil {
		return fmt.Errorf("list players by league: %w", err)
	}
	for _, p := range players {
		if p.ID != candidate.ID && p.GamertagKey == candidate.GamertagKey {
			return fmt.Errorf("%w: gamertag %q is already taken", ErrConflict, candidate.Gamertag)
		}
	}
	return nil
}

func sortByRegistration(players []player.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		if !players[i].RegisteredAt.Equal(players[j].RegisteredAt) {
			return players[i].RegisteredAt.Before(players[j].RegisteredAt)
		}
		return players[i].ID < players[j].ID
	})
}
