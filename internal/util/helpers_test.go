package util

import (
	"strings"
	"testing"
)

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("hello", 10); got != "hello" {
		t.Fatalf("short string changed: %s", got)
	}
	if got := TruncateRunes("hello", 2); got != "he" {
		t.Fatalf("truncate: %s", got)
	}
	if got := TruncateRunes("héllo", 2); got != "hé" {
		t.Fatalf("rune-safe truncate: %s", got)
	}
	if got := TruncateRunes("hello", 0); got != "" {
		t.Fatalf("zero length: %q", got)
	}
}

func TestSafeJoin(t *testing.T) {
	got := SafeJoin("/data", "../../etc/passwd")
	if strings.Contains(got, "..") {
		t.Fatalf("path escape not stripped: %s", got)
	}
	if got != "/data/passwd" {
		t.Fatalf("unexpected join: %s", got)
	}
}

func TestTimestamped(t *testing.T) {
	got := Timestamped("report.pdf")
	if !strings.HasSuffix(got, "__report.pdf") {
		t.Fatalf("unexpected format: %s", got)
	}
}
