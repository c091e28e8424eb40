package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("players").
		Where(Eq("league_public_id", "lg-1"), IsNull("deleted_at"), NotEq("status", "WITHDRAWN")).
		OrderBy("registered_at", "id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM players WHERE league_public_id = $1 AND deleted_at IS NULL AND status <> $2 ORDER BY registered_at, id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{"lg-1", "WITHDRAWN"}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_InAndExpr(t *testing.T) {
	query, args, err := Select("*").
		From("fixtures").
		Where(In("status", []any{"PLAYED", "AWAITING_APPROVAL"}), Expr("(home_player_public_id = ? OR away_player_public_id = ?)", "p1", "p1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM fixtures WHERE status IN ($1, $2) AND (home_player_public_id = $3 OR away_player_public_id = $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}

	query, _, err = Select("*").From("fixtures").Where(In("status", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build empty in query: %v", err)
	}
	if query != "SELECT * FROM fixtures WHERE 1=0" {
		t.Fatalf("unexpected empty IN query: %s", query)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("leagues").
		Columns("public_id", "name").
		Values("lg-1", "Friday Night FC").
		Values("lg-2", "Sunday Cup").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO leagues (public_id, name) VALUES ($1, $2), ($3, $4) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[2] != "lg-2" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertInto("leagues").Columns("a", "b").Values(1).ToSQL(); err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("players").
		Set("status", "WITHDRAWN").
		SetExpr("updated_at", "NOW()").
		SetExpr("note", "COALESCE(?, note)", "n").
		Where(Eq("public_id", "p1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE players SET status = $1, updated_at = NOW(), note = COALESCE($2, note) WHERE public_id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{"WITHDRAWN", "n", "p1"}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("league_standings").Where(Eq("league_public_id", "lg-1")).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM league_standings WHERE league_public_id = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("league_standings").ToSQL(); err == nil {
		t.Fatalf("expected unconditional delete to be refused")
	}
}

type testRow struct {
	PublicID string `db:"public_id"`
	Points   int    `db:"points"`
	Ignored  string `db:"-"`
	internal string
}

func TestInsertModels(t *testing.T) {
	query, args, err := InsertModels("league_standings", []any{
		testRow{PublicID: "a", Points: 3, internal: "x"},
		&testRow{PublicID: "b", Points: 1},
	}, "")
	if err != nil {
		t.Fatalf("build insert models query: %v", err)
	}

	wantQuery := "INSERT INTO league_standings (public_id, points) VALUES ($1, $2), ($3, $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{"a", 3, "b", 1}) {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModels("t", []any{testRow{}, struct {
		X int `db:"x"`
	}{}}, ""); err == nil {
		t.Fatalf("expected mixed model types to fail")
	}
	if _, _, err := InsertModels("t", nil, ""); err == nil {
		t.Fatalf("expected empty models to fail")
	}
}
