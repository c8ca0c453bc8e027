// Package db provides a uniform query interface over a tagged set of
// connector kinds: none, sqlite, postgres and a mock vector store.
package db

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"docassist/internal/config"
)

// ErrNoDatabase is returned by the none connector for every query.
var ErrNoDatabase = errors.New("no database configured")

// Kind tags the connector variant.
type Kind string

const (
	KindNone       Kind = "none"
	KindSQLite     Kind = "sqlite"
	KindPostgres   Kind = "postgres"
	KindMockVector Kind = "mockvector"
)

// Row is one result row keyed by column name.
type Row map[string]any

// Connector runs queries against the configured backend.
type Connector interface {
	Kind() Kind
	Query(ctx context.Context, q string) ([]Row, error)
	Close() error
}

// Open builds the connector named by cfg.DBType.
func Open(cfg *config.Config) (Connector, error) {
	switch Kind(cfg.DBType) {
	case KindNone:
		return noneConnector{}, nil
	case KindSQLite:
		return openSQL(KindSQLite, "sqlite3", cfg.SQLitePath)
	case KindPostgres:
		return openSQL(KindPostgres, "postgres", cfg.DatabaseURL)
	case KindMockVector:
		return NewMockVector(), nil
	default:
		return nil, fmt.Errorf("unknown database type %q", cfg.DBType)
	}
}

type noneConnector struct{}

func (noneConnector) Kind() Kind { return KindNone }

func (noneConnector) Query(ctx context.Context, q string) ([]Row, error) {
	return nil, ErrNoDatabase
}

func (noneConnector) Close() error { return nil }

// RenderRows formats rows as readable text for a chat reply. Columns are
// sorted so output is stable.
func RenderRows(rows []Row) string {
	if len(rows) == 0 {
		return "(no rows)"
	}
	var sb strings.Builder
	for i, row := range rows {
		cols := make([]string, 0, len(row))
		for c := range row {
			cols = append(cols, c)
		}
		sort.Strings(cols)
		parts := make([]string, 0, len(cols))
		for _, c := range cols {
			parts = append(parts, fmt.Sprintf("%s=%v", c, row[c]))
		}
		fmt.Fprintf(&sb, "%d. %s\n", i+1, strings.Join(parts, ", "))
	}
	return strings.TrimRight(sb.String(), "\n")
}
