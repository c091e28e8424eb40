package result

import (
	"errors"
	"strings"
	"testing"
)

func TestReport_Validate(t *testing.T) {
	t.Parallel()

	valid := Report{ID: "rp-1", FixtureID: "fx-1", ReportedBy: "pl-1", HomeScore: 2, AwayScore: 0, Status: StatusPending}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid report, got %v", err)
	}

	cases := map[string]func(r *Report){
		"missing id":       func(r *Report) { r.ID = "" },
		"missing fixture":  func(r *Report) { r.FixtureID = " " },
		"missing reporter": func(r *Report) { r.ReportedBy = "" },
		"negative score":   func(r *Report) { r.AwayScore = -1 },
		"long note":        func(r *Report) { r.Note = strings.Repeat("x", MaxNoteLength+1) },
		"unknown status":   func(r *Report) { r.Status = "DISPUTED" },
	}
	for name, mutate := range cases {
		item := valid
		mutate(&item)
		if err := item.Validate(); !errors.Is(err, ErrInvalidReport) {
			t.Fatalf("%s: expected ErrInvalidReport, got %v", name, err)
		}
	}
}

func TestNormalizeStatus(t *testing.T) {
	t.Parallel()

	if got := NormalizeStatus(" pending "); got != StatusPending {
		t.Fatalf("unexpected status: %s", got)
	}
	if IsValidStatus(NormalizeStatus("")) {
		t.Fatalf("blank status must not be valid")
	}
}
