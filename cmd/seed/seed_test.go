package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/riskibarqy/gaming-league/internal/app"
	"github.com/riskibarqy/gaming-league/internal/config"
	"github.com/riskibarqy/gaming-league/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

const sampleSeed = `
leagues:
  - name: Tuesday Smash
    game: Super Smash Bros. Ultimate
    season: "S1"
    rounds: 1
    matchdayInterval: 72h
    schedule:
      startAt: "2026-04-07T18:00:00Z"
    players:
      - name: Ana
        gamertag: AnaBanana
      - name: Ben
        gamertag: Benji
      - name: Cy
        gamertag: CyKlone
`

func TestParseSeedFile(t *testing.T) {
	file, err := parseSeedFile([]byte(sampleSeed))
	require.NoError(t, err)
	require.Len(t, file.Leagues, 1)
	require.Len(t, file.Leagues[0].Players, 3)

	interval, err := file.Leagues[0].interval()
	require.NoError(t, err)
	require.Equal(t, 72*time.Hour, interval)

	startAt, every, err := file.Leagues[0].Schedule.parse()
	require.NoError(t, err)
	require.NotNil(t, startAt)
	require.Equal(t, time.Date(2026, 4, 7, 18, 0, 0, 0, time.UTC), *startAt)
	require.Zero(t, every)
}

func TestParseSeedFile_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty":          "leagues: []\n",
		"unknown field":  "leagues:\n  - name: A\n    colour: red\n",
		"missing name":   "leagues:\n  - game: X\n",
		"bad interval":   "leagues:\n  - name: A\n    matchdayInterval: weekly\n",
		"bad start time": "leagues:\n  - name: A\n    schedule:\n      startAt: tomorrow\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseSeedFile([]byte(raw))
			require.Error(t, err)
		})
	}
}

func TestSeed_MemoryServices(t *testing.T) {
	cfg := config.Config{
		StorageDriver:           config.StorageMemory,
		PlayerPhoneRegion:       "US",
		StandingsRebuildWorkers: 1,
	}
	services, closeFn, err := app.NewServices(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	defer func() { _ = closeFn() }()

	file, err := parseSeedFile([]byte(sampleSeed))
	require.NoError(t, err)

	before, err := services.Leagues.ListLeagues(context.Background())
	require.NoError(t, err)

	require.NoError(t, seed(context.Background(), services, file, logging.NewNop()))

	after, err := services.Leagues.ListLeagues(context.Background())
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)

	var leagueID string
	for _, item := range after {
		if item.Name == "Tuesday Smash" {
			leagueID = item.ID
		}
	}
	require.NotEmpty(t, leagueID)

	fixtures, err := services.Fixtures.ListFixtures(context.Background(), leagueID, 0)
	require.NoError(t, err)
	// three players plus a bye: 3 matchdays with one real fixture each
	require.Len(t, fixtures, 3)
}

func TestReadSeedFile_Demo(t *testing.T) {
	if _, err := os.Stat("../../db/seeds/demo.yaml"); err != nil {
		t.Skip("demo seed file not available")
	}
	file, err := readSeedFile("../../db/seeds/demo.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, file.Leagues)
}
