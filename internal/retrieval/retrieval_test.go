package retrieval

import (
	"strings"
	"testing"

	"docassist/internal/model"
)

func doc(name, content string) *model.Document {
	return &model.Document{ID: name, Filename: name, Content: content}
}

func TestRetrieveScenario(t *testing.T) {
	docs := []*model.Document{
		doc("a.txt", "hello world"),
		doc("b.csv", "name | price\napple | 1"),
	}

	matches := Retrieve("hello", docs, 3)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Doc.Filename != "a.txt" {
		t.Fatalf("expected a.txt, got %s", matches[0].Doc.Filename)
	}
	if matches[0].Score <= 0 {
		t.Fatalf("expected positive score, got %f", matches[0].Score)
	}
	if !strings.Contains(strings.ToLower(matches[0].Snippet), "hello") {
		t.Fatalf("snippet should contain the term: %q", matches[0].Snippet)
	}
}

func TestRetrieveEmptyQueryAndCorpus(t *testing.T) {
	docs := []*model.Document{doc("a.txt", "content")}

	if got := Retrieve("", docs, 3); got != nil {
		t.Fatalf("empty query should yield empty result, got %d", len(got))
	}
	if got := Retrieve("   ", docs, 3); got != nil {
		t.Fatalf("whitespace query should yield empty result, got %d", len(got))
	}
	if got := Retrieve("hello", nil, 3); got != nil {
		t.Fatalf("empty corpus should yield empty result, got %d", len(got))
	}
}

func TestRetrieveIsSubset(t *testing.T) {
	docs := []*model.Document{
		doc("a.txt", "alpha beta"),
		doc("b.txt", "beta gamma"),
		doc("c.txt", "delta"),
	}
	matches := Retrieve("beta", docs, 10)
	known := map[string]bool{"a.txt": true, "b.txt": true, "c.txt": true}
	for _, m := range matches {
		if !known[m.Doc.Filename] {
			t.Fatalf("match outside corpus: %s", m.Doc.Filename)
		}
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
}

func TestRetrieveCaseInsensitive(t *testing.T) {
	docs := []*model.Document{doc("a.txt", "The QUICK brown fox")}
	if got := Retrieve("quick", docs, 3); len(got) != 1 {
		t.Fatalf("case-insensitive match failed, got %d", len(got))
	}
}

func TestRetrieveTiePreservesScanOrder(t *testing.T) {
	docs := []*model.Document{
		doc("first.txt", "token filler filler"),
		doc("second.txt", "token filler filler"),
	}
	matches := Retrieve("token", docs, 5)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Doc.Filename != "first.txt" || matches[1].Doc.Filename != "second.txt" {
		t.Fatalf("tie broke scan order: %s, %s", matches[0].Doc.Filename, matches[1].Doc.Filename)
	}
}

func TestRetrieveRanksHigherFrequencyFirst(t *testing.T) {
	docs := []*model.Document{
		doc("sparse.txt", "apple once here"),
		doc("dense.txt", "apple apple apple everywhere"),
	}
	matches := Retrieve("apple", docs, 2)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Doc.Filename != "dense.txt" {
		t.Fatalf("expected dense.txt first, got %s", matches[0].Doc.Filename)
	}
}

func TestRetrieveTermInEveryDocumentStillMatches(t *testing.T) {
	docs := []*model.Document{
		doc("a.txt", "shared term"),
		doc("b.txt", "shared term too"),
	}
	if got := Retrieve("shared", docs, 5); len(got) != 2 {
		t.Fatalf("ubiquitous term should still match, got %d", len(got))
	}
}

func TestRetrieveRespectsTopK(t *testing.T) {
	var docs []*model.Document
	for _, n := range []string{"a", "b", "c", "d", "e"} {
		docs = append(docs, doc(n+".txt", "common word"))
	}
	if got := Retrieve("common", docs, 2); len(got) != 2 {
		t.Fatalf("topK not applied, got %d", len(got))
	}
}
