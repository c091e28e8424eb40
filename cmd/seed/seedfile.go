package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Leagues []seedLeague `yaml:"leagues"`
}

type seedLeague struct {
	Name             string        `yaml:"name"`
	Game             string        `yaml:"game"`
	Season           string        `yaml:"season"`
	Rounds           int           `yaml:"rounds"`
	MatchdayInterval string        `yaml:"matchdayInterval"`
	Players          []seedPlayer  `yaml:"players"`
	Schedule         *seedSchedule `yaml:"schedule"`
}

type seedPlayer struct {
	Name     string `yaml:"name"`
	Gamertag string `yaml:"gamertag"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
}

type seedSchedule struct {
	StartAt string `yaml:"startAt"`
	Every   string `yaml:"every"`
}

func readSeedFile(path string) (seedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return seedFile{}, fmt.Errorf("read seed file: %w", err)
	}
	return parseSeedFile(raw)
}

func parseSeedFile(raw []byte) (seedFile, error) {
	var out seedFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil {
		return seedFile{}, fmt.Errorf("decode seed file: %w", err)
	}
	if len(out.Leagues) == 0 {
		return seedFile{}, errors.New("seed file has no leagues")
	}
	for i, item := range out.Leagues {
		if strings.TrimSpace(item.Name) == "" {
			return seedFile{}, fmt.Errorf("leagues[%d]: name is required", i)
		}
		if _, err := item.interval(); err != nil {
			return seedFile{}, fmt.Errorf("leagues[%d]: %w", i, err)
		}
		if item.Schedule != nil {
			if _, _, err := item.Schedule.parse(); err != nil {
				return seedFile{}, fmt.Errorf("leagues[%d].schedule: %w", i, err)
			}
		}
	}
	return out, nil
}

func (l seedLeague) interval() (time.Duration, error) {
	return parseDuration("matchdayInterval", l.MatchdayInterval)
}

func (s seedSchedule) parse() (*time.Time, time.Duration, error) {
	var startAt *time.Time
	if raw := strings.TrimSpace(s.StartAt); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, 0, fmt.Errorf("startAt must be RFC3339: %w", err)
		}
		at = at.UTC()
		startAt = &at
	}
	every, err := parseDuration("every", s.Every)
	if err != nil {
		return nil, 0, err
	}
	return startAt, every, nil
}

func parseDuration(field, raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", field)
	}
	return d, nil
}
