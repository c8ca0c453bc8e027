package db

import (
	"context"
	"errors"
	"strings"
	"testing"

	"docassist/internal/config"
)

func TestOpenNone(t *testing.T) {
	conn, err := Open(&config.Config{DBType: "none"})
	if err != nil {
		t.Fatalf("open none: %v", err)
	}
	defer conn.Close()

	if conn.Kind() != KindNone {
		t.Fatalf("kind: %s", conn.Kind())
	}
	_, err = conn.Query(context.Background(), "select 1")
	if !errors.Is(err, ErrNoDatabase) {
		t.Fatalf("expected ErrNoDatabase, got %v", err)
	}
}

func TestOpenUnknownKind(t *testing.T) {
	if _, err := Open(&config.Config{DBType: "cassandra"}); err == nil {
		t.Fatal("unknown db type must fail")
	}
}

func TestMockVectorSubstringSearch(t *testing.T) {
	mv := NewMockVector()
	defer mv.Close()

	rows, err := mv.Query(context.Background(), "acme")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0]["customer"] != "Acme Corp" {
		t.Fatalf("unexpected row: %v", rows[0])
	}
}

func TestMockVectorEmptyQueryReturnsAll(t *testing.T) {
	mv := NewMockVector()
	rows, err := mv.Query(context.Background(), "  ")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected all seed rows, got %d", len(rows))
	}
}

func TestMockVectorAdd(t *testing.T) {
	mv := NewMockVector()
	mv.Add(Row{"id": 99, "note": "bespoke entry"})

	rows, err := mv.Query(context.Background(), "bespoke")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 1 || rows[0]["id"] != 99 {
		t.Fatalf("added row not found: %v", rows)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	conn, err := Open(&config.Config{DBType: "sqlite", SQLitePath: ":memory:"})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer conn.Close()

	sc := conn.(*sqlConnector)
	ctx := context.Background()
	if _, err := sc.db.ExecContext(ctx, `CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := sc.db.ExecContext(ctx, `INSERT INTO items (name) VALUES ('apple'), ('banana')`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	rows, err := conn.Query(ctx, `SELECT id, name FROM items ORDER BY id`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["name"] != "apple" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
}

func TestRenderRows(t *testing.T) {
	got := RenderRows([]Row{{"b": 2, "a": "x"}})
	if got != "1. a=x, b=2" {
		t.Fatalf("render: %q", got)
	}
	if RenderRows(nil) != "(no rows)" {
		t.Fatal("empty render")
	}
	multi := RenderRows([]Row{{"a": 1}, {"a": 2}})
	if !strings.Contains(multi, "1. a=1") || !strings.Contains(multi, "2. a=2") {
		t.Fatalf("multi render: %q", multi)
	}
}
