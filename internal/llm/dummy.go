package llm

import (
	"context"
	"strings"
)

// Dummy is a no-op backend for running without any model dependency.
// Responses are deterministic: first matching keyword wins.
type Dummy struct {
	keys      []string
	responses map[string]string
}

func NewDummy() *Dummy {
	return &Dummy{
		keys: []string{"hello", "help", "database", "file"},
		responses: map[string]string{
			"hello":    "Hello! How can I help you today?",
			"help":     "I can help you access information from your files and databases.",
			"database": "I can run queries through the configured database connector. Try 'query db: <sql>'.",
			"file":     "I can read files for you. Try 'list files' or 'read file: filename.txt'.",
		},
	}
}

func (d *Dummy) Name() string { return "dummy" }

func (d *Dummy) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	lower := strings.ToLower(prompt)
	for _, key := range d.keys {
		if strings.Contains(lower, key) {
			return d.responses[key], nil
		}
	}
	return "I'm processing your request. In a full deployment this reply would come from a real language model.", nil
}
