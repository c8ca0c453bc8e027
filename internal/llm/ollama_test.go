package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var req ollamaGenerateRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Stream {
			t.Error("streaming should be off")
		}
		json.NewEncoder(w).Encode(map[string]any{"response": "Hello there!", "done": true})
	}))
	defer server.Close()

	backend := NewOllama(server.URL, "test-model")
	got, err := backend.Generate(context.Background(), "Hi")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got != "Hello there!" {
		t.Fatalf("response: %q", got)
	}
}

func TestOllamaServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	backend := NewOllama(server.URL, "test")
	_, err := backend.Generate(context.Background(), "test")
	if !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestOllamaUnreachable(t *testing.T) {
	backend := NewOllama("http://127.0.0.1:1", "test")
	_, err := backend.Generate(context.Background(), "test")
	if !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestOllamaDefaults(t *testing.T) {
	backend := NewOllama("", "")
	if backend.baseURL != "http://localhost:11434" {
		t.Errorf("default base url: %s", backend.baseURL)
	}
	if backend.model != "llama3.2" {
		t.Errorf("default model: %s", backend.model)
	}
}
