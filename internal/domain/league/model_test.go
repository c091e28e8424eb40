package league

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestLeague_Validate(t *testing.T) {
	t.Parallel()

	valid := League{
		ID:     "lg-fc26-s1",
		Name:   "Sunday FC League",
		Game:   "EA FC 26",
		Season: "2026 Spring",
		Rounds: DefaultRounds,
		Status: StatusDraft,
	}

	tests := []struct {
		name   string
		mutate func(*League)
		ok     bool
	}{
		{name: "valid", mutate: func(*League) {}, ok: true},
		{name: "missing name", mutate: func(l *League) { l.Name = " " }},
		{name: "missing game", mutate: func(l *League) { l.Game = "" }},
		{name: "zero rounds", mutate: func(l *League) { l.Rounds = 0 }},
		{name: "too many rounds", mutate: func(l *League) { l.Rounds = MaxRounds + 1 }},
		{name: "unknown status", mutate: func(l *League) { l.Status = "ARCHIVED" }},
		{name: "negative interval", mutate: func(l *League) { l.MatchdayInterval = -1 }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			item := valid
			tc.mutate(&item)
			err := item.Validate()
			if tc.ok && err != nil {
				t.Fatalf("expected valid league, got %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidLeague) {
				t.Fatalf("expected ErrInvalidLeague, got %v", err)
			}
		})
	}
}

func TestLeague_AcceptsRegistrations(t *testing.T) {
	t.Parallel()

	if !(League{Status: StatusDraft}).AcceptsRegistrations() {
		t.Fatalf("draft league should accept registrations")
	}
	if (League{Status: StatusCompleted}).AcceptsRegistrations() {
		t.Fatalf("completed league should not accept registrations")
	}
	if NormalizeStatus(" active ") != StatusActive {
		t.Fatalf("expected status normalization")
	}
}
