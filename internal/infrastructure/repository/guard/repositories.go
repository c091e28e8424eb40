// Package guard wraps repositories with a circuit breaker so a failing
// database is reported as unavailable instead of piling up slow requests.
package guard

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/gaming-league/internal/domain/fixture"
	"github.com/riskibarqy/gaming-league/internal/domain/league"
	"github.com/riskibarqy/gaming-league/internal/domain/leaguestanding"
	"github.com/riskibarqy/gaming-league/internal/domain/player"
	"github.com/riskibarqy/gaming-league/internal/domain/result"
	"github.com/riskibarqy/gaming-league/internal/platform/resilience"
)

// IsDependencyFailure reports whether err should count against the
// breaker. Domain rejections and canceled requests do not.
func IsDependencyFailure(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled):
		return false
	case errors.Is(err, player.ErrDuplicateGamertag):
		return false
	default:
		return true
	}
}

func run(b *resilience.CircuitBreaker, op string, fn func() error) error {
	err := b.Execute(fn)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return fmt.Errorf("%s: %s: %w", op, b.Name(), err)
	}
	return err
}

func list[T any](b *resilience.CircuitBreaker, op string, fn func() ([]T, error)) ([]T, error) {
	var out []T
	err := run(b, op, func() error {
		var err error
		out, err = fn()
		return err
	})
	return out, err
}

func get[T any](b *resilience.CircuitBreaker, op string, fn func() (T, bool, error)) (T, bool, error) {
	var (
		out    T
		exists bool
	)
	err := run(b, op, func() error {
		var err error
		out, exists, err = fn()
		return err
	})
	return out, exists, err
}

type LeagueRepository struct {
	next    league.Repository
	breaker *resilience.CircuitBreaker
}

func NewLeagueRepository(next league.Repository, breaker *resilience.CircuitBreaker) *LeagueRepository {
	return &LeagueRepository{next: next, breaker: breaker}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	return list(r.breaker, "list leagues", func() ([]league.League, error) { return r.next.List(ctx) })
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	return get(r.breaker, "get league", func() (league.League, bool, error) { return r.next.GetByID(ctx, leagueID) })
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) error {
	return run(r.breaker, "create league", func() error { return r.next.Create(ctx, item) })
}

func (r *LeagueRepository) Update(ctx context.Context, item league.League) error {
	return run(r.breaker, "update league", func() error { return r.next.Update(ctx, item) })
}

type PlayerRepository struct {
	next    player.Repository
	breaker *resilience.CircuitBreaker
}

func NewPlayerRepository(next player.Repository, breaker *resilience.CircuitBreaker) *PlayerRepository {
	return &PlayerRepository{next: next, breaker: breaker}
}

func (r *PlayerRepository) ListByLeague(ctx context.Context, leagueID string) ([]player.Player, error) {
	return list(r.breaker, "list players", func() ([]player.Player, error) { return r.next.ListByLeague(ctx, leagueID) })
}

func (r *PlayerRepository) GetByID(ctx context.Context, leagueID, playerID string) (player.Player, bool, error) {
	return get(r.breaker, "get player", func() (player.Player, bool, error) { return r.next.GetByID(ctx, leagueID, playerID) })
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	return run(r.breaker, "create player", func() error { return r.next.Create(ctx, item) })
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	return run(r.breaker, "update player", func() error { return r.next.Update(ctx, item) })
}

func (r *PlayerRepository) Delete(ctx context.Context, leagueID, playerID string) error {
	return run(r.breaker, "delete player", func() error { return r.next.Delete(ctx, leagueID, playerID) })
}

type FixtureRepository struct {
	next    fixture.Repository
	breaker *resilience.CircuitBreaker
}

func NewFixtureRepository(next fixture.Repository, breaker *resilience.CircuitBreaker) *FixtureRepository {
	return &FixtureRepository{next: next, breaker: breaker}
}

func (r *FixtureRepository) ListByLeague(ctx context.Context, leagueID string) ([]fixture.Fixture, error) {
	return list(r.breaker, "list fixtures", func() ([]fixture.Fixture, error) { return r.next.ListByLeague(ctx, leagueID) })
}

func (r *FixtureRepository) GetByID(ctx context.Context, leagueID, fixtureID string) (fixture.Fixture, bool, error) {
	return get(r.breaker, "get fixture", func() (fixture.Fixture, bool, error) { return r.next.GetByID(ctx, leagueID, fixtureID) })
}

func (r *FixtureRepository) ReplaceByLeague(ctx context.Context, leagueID string, fixtures []fixture.Fixture) error {
	return run(r.breaker, "replace fixtures", func() error { return r.next.ReplaceByLeague(ctx, leagueID, fixtures) })
}

func (r *FixtureRepository) Update(ctx context.Context, item fixture.Fixture) error {
	return run(r.breaker, "update fixture", func() error { return r.next.Update(ctx, item) })
}

type ResultRepository struct {
	next    result.Repository
	breaker *resilience.CircuitBreaker
}

func NewResultRepository(next result.Repository, breaker *resilience.CircuitBreaker) *ResultRepository {
	return &ResultRepository{next: next, breaker: breaker}
}

func (r *ResultRepository) ListByLeague(ctx context.Context, leagueID, status string) ([]result.Report, error) {
	return list(r.breaker, "list reports", func() ([]result.Report, error) { return r.next.ListByLeague(ctx, leagueID, status) })
}

func (r *ResultRepository) ListByFixture(ctx context.Context, fixtureID string) ([]result.Report, error) {
	return list(r.breaker, "list fixture reports", func() ([]result.Report, error) { return r.next.ListByFixture(ctx, fixtureID) })
}

func (r *ResultRepository) GetByID(ctx context.Context, reportID string) (result.Report, bool, error) {
	return get(r.breaker, "get report", func() (result.Report, bool, error) { return r.next.GetByID(ctx, reportID) })
}

func (r *ResultRepository) Create(ctx context.Context, item result.Report) error {
	return run(r.breaker, "create report", func() error { return r.next.Create(ctx, item) })
}

func (r *ResultRepository) Update(ctx context.Context, item result.Report) error {
	return run(r.breaker, "update report", func() error { return r.next.Update(ctx, item) })
}

func (r *ResultRepository) DeleteByLeague(ctx context.Context, leagueID string) error {
	return run(r.breaker, "delete reports", func() error { return r.next.DeleteByLeague(ctx, leagueID) })
}

type LeagueStandingRepository struct {
	next    leaguestanding.Repository
	breaker *resilience.CircuitBreaker
}

func NewLeagueStandingRepository(next leaguestanding.Repository, breaker *resilience.CircuitBreaker) *LeagueStandingRepository {
	return &LeagueStandingRepository{next: next, breaker: breaker}
}

func (r *LeagueStandingRepository) ListByLeague(ctx context.Context, leagueID string) ([]leaguestanding.Standing, error) {
	return list(r.breaker, "list standings", func() ([]leaguestanding.Standing, error) { return r.next.ListByLeague(ctx, leagueID) })
}

func (r *LeagueStandingRepository) ReplaceByLeague(ctx context.Context, leagueID string, standings []leaguestanding.Standing) error {
	return run(r.breaker, "replace standings", func() error { return r.next.ReplaceByLeague(ctx, leagueID, standings) })
}
