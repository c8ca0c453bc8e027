package llm

import (
	"context"
	"testing"
)

func TestDummyDeterministicAndNonEmpty(t *testing.T) {
	d := NewDummy()
	prompts := []string{"hello there", "I need help", "tell me about the database", "what files do you have", "random question", ""}
	for _, p := range prompts {
		first, err := d.Generate(context.Background(), p)
		if err != nil {
			t.Fatalf("dummy must not error: %v", err)
		}
		if first == "" {
			t.Fatalf("dummy must not return empty output for %q", p)
		}
		second, _ := d.Generate(context.Background(), p)
		if first != second {
			t.Fatalf("dummy not deterministic for %q: %q vs %q", p, first, second)
		}
	}
}

func TestDummyKeywordRouting(t *testing.T) {
	d := NewDummy()
	got, _ := d.Generate(context.Background(), "well HELLO assistant")
	if got != "Hello! How can I help you today?" {
		t.Fatalf("keyword response: %q", got)
	}
}
