package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/gaming-league/internal/app"
	"github.com/riskibarqy/gaming-league/internal/config"
	"github.com/riskibarqy/gaming-league/internal/platform/logging"
	"github.com/riskibarqy/gaming-league/internal/usecase"
)

func main() {
	path := flag.String("file", "db/seeds/demo.yaml", "YAML file with leagues and players")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewJSON(cfg.LogLevel, "gaming-league-seed")
	defer func() { _ = logger.Sync() }()

	if cfg.StorageDriver != config.StoragePostgres {
		logger.Warn("seeding in-memory storage, data is discarded on exit", "driver", cfg.StorageDriver)
	}

	file, err := readSeedFile(*path)
	if err != nil {
		logger.Error("read seed file", "path", *path, "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	services, closeFn, err := app.NewServices(ctx, cfg, logger)
	if err != nil {
		logger.Error("build services", "error", err)
		os.Exit(1)
	}
	defer func() { _ = closeFn() }()

	if err := seed(ctx, services, file, logger); err != nil {
		logger.Error("seed failed", "error", err)
		_ = closeFn()
		os.Exit(1)
	}
}

func seed(ctx context.Context, services app.Services, file seedFile, logger *logging.Logger) error {
	for _, item := range file.Leagues {
		interval, err := item.interval()
		if err != nil {
			return err
		}

		created, err := services.Leagues.CreateLeague(ctx, usecase.CreateLeagueInput{
			Name:             item.Name,
			Game:             item.Game,
			Season:           item.Season,
			Rounds:           item.Rounds,
			MatchdayInterval: interval,
		})
		if err != nil {
			return fmt.Errorf("create league %q: %w", item.Name, err)
		}

		for _, p := range item.Players {
			if _, err := services.Players.RegisterPlayer(ctx, usecase.RegisterPlayerInput{
				LeagueID: created.ID,
				Name:     p.Name,
				Gamertag: p.Gamertag,
				Email:    p.Email,
				Phone:    p.Phone,
			}); err != nil {
				return fmt.Errorf("register %q in %q: %w", p.Gamertag, item.Name, err)
			}
		}

		fixtures := 0
		if item.Schedule != nil {
			startAt, every, err := item.Schedule.parse()
			if err != nil {
				return err
			}
			generated, err := services.Fixtures.GenerateSchedule(ctx, usecase.GenerateScheduleInput{
				LeagueID: created.ID,
				StartAt:  startAt,
				Every:    every,
			})
			if err != nil {
				return fmt.Errorf("generate schedule for %q: %w", item.Name, err)
			}
			fixtures = len(generated)
		}

		logger.InfoContext(ctx, "league seeded",
			"league_id", created.ID,
			"name", created.Name,
			"players", len(item.Players),
			"fixtures", fixtures,
		)
	}
	return nil
}
