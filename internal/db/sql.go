package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// sqlConnector covers the sqlite and postgres kinds through database/sql.
type sqlConnector struct {
	kind Kind
	db   *sql.DB
}

func openSQL(kind Kind, driver, dsn string) (*sqlConnector, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", kind, err)
	}
	return &sqlConnector{kind: kind, db: db}, nil
}

func (c *sqlConnector) Kind() Kind { return c.kind }

func (c *sqlConnector) Query(ctx context.Context, q string) ([]Row, error) {
	rows, err := c.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s query: %w", c.kind, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []Row
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			if b, ok := vals[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = vals[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (c *sqlConnector) Close() error {
	return c.db.Close()
}
