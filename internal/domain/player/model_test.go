package player

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestGamertagKey_FoldsCaseAndWhitespace(t *testing.T) {
	t.Parallel()

	a := GamertagKey("  Noob   Master ")
	b := GamertagKey("noob master")
	if a != b {
		t.Fatalf("expected equal keys, got %q and %q", a, b)
	}

	// "é" composed vs "e" + combining acute.
	if GamertagKey("Jos\u00e9") != GamertagKey("Jose\u0301") {
		t.Fatalf("expected NFC-equivalent gamertags to collide")
	}
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	got, err := NormalizePhone("(650) 253-0000", "US")
	if err != nil {
		t.Fatalf("NormalizePhone error: %v", err)
	}
	if got != "+16502530000" {
		t.Fatalf("unexpected E.164 number: %s", got)
	}

	got, err = NormalizePhone("  ", "US")
	if err != nil || got != "" {
		t.Fatalf("expected blank phone to pass through, got %q err=%v", got, err)
	}

	if _, err := NormalizePhone("12", "US"); !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}
}

func TestPlayer_Validate(t *testing.T) {
	t.Parallel()

	item := Player{ID: "pl-1", LeagueID: "lg-1", Name: "Rudi", Gamertag: "rudi_99", Status: StatusActive}
	if err := item.Validate(); err != nil {
		t.Fatalf("expected valid player, got %v", err)
	}

	item.Gamertag = "this-gamertag-is-definitely-way-too-long"
	if err := item.Validate(); !errors.Is(err, ErrInvalidPlayer) {
		t.Fatalf("expected ErrInvalidPlayer, got %v", err)
	}

	item.Gamertag = "ok"
	item.Status = "BANNED"
	if err := item.Validate(); !errors.Is(err, ErrInvalidPlayer) {
		t.Fatalf("expected ErrInvalidPlayer for status, got %v", err)
	}
}
