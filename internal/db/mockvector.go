package db

import (
	"context"
	"strings"
	"sync"
)

// MockVector fakes a vector store for demos: it holds rows in memory and
// answers a "similarity" query with literal substring matches. No
// embeddings are involved.
type MockVector struct {
	mu   sync.RWMutex
	rows []Row
}

func NewMockVector() *MockVector {
	return &MockVector{
		rows: []Row{
			{"id": 1, "name": "Sample data", "value": "Sample content"},
			{"id": 2, "customer": "Acme Corp", "revenue": 10000},
			{"id": 3, "name": "Quarterly report", "value": "Revenue grew 12% quarter over quarter"},
		},
	}
}

func (m *MockVector) Kind() Kind { return KindMockVector }

// Add appends rows to the store.
func (m *MockVector) Add(rows ...Row) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, rows...)
}

// Query returns rows whose rendered text contains the query, case
// insensitively. An empty query returns everything.
func (m *MockVector) Query(ctx context.Context, q string) ([]Row, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(q))
	if needle == "" {
		return append([]Row(nil), m.rows...), nil
	}
	var out []Row
	for _, row := range m.rows {
		if strings.Contains(strings.ToLower(RenderRows([]Row{row})), needle) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *MockVector) Close() error { return nil }
