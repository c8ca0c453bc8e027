// Package retrieval selects documents relevant to a query by keyword
// matching. There is no ranking model and no embeddings; scoring is a
// smoothed TF-IDF over lowercase word tokens.
package retrieval

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"docassist/internal/model"
	"docassist/internal/util"
)

// Match pairs a matched document with a snippet around the first hit.
type Match struct {
	Doc     *model.Document `json:"document"`
	Snippet string          `json:"snippet"`
	Score   float64         `json:"relevance_score"`
}

const snippetRadius = 80

// Retrieve returns up to topK documents matching the query, best first.
// Ties keep scan order. An empty query or corpus yields an empty result.
func Retrieve(query string, docs []*model.Document, topK int) []Match {
	terms := tokenize(query)
	if len(terms) == 0 || len(docs) == 0 {
		return nil
	}
	if topK <= 0 {
		topK = 3
	}

	// Document frequency per query term.
	df := make(map[string]int, len(terms))
	tokenized := make([]map[string]int, len(docs))
	for i, doc := range docs {
		counts := countTokens(tokenize(doc.Content))
		tokenized[i] = counts
		for _, term := range terms {
			if counts[term] > 0 {
				df[term]++
			}
		}
	}

	type scored struct {
		idx   int
		score float64
	}
	var hits []scored
	for i := range docs {
		var score float64
		for _, term := range terms {
			tf := tokenized[i][term]
			if tf == 0 {
				continue
			}
			// Smoothed so a term present in every document still counts.
			idf := math.Log(1 + float64(len(docs))/float64(df[term]))
			score += float64(tf) * idf
		}
		if score > 0 {
			hits = append(hits, scored{idx: i, score: score})
		}
	}

	// Stable keeps scan order for equal scores.
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].score > hits[b].score
	})
	if len(hits) > topK {
		hits = hits[:topK]
	}

	out := make([]Match, 0, len(hits))
	for _, h := range hits {
		out = append(out, Match{
			Doc:     docs[h.idx],
			Snippet: snippet(docs[h.idx].Content, terms),
			Score:   h.score,
		})
	}
	return out
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func countTokens(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}

// snippet extracts a window around the earliest occurrence of any term.
func snippet(content string, terms []string) string {
	lower := strings.ToLower(content)
	first := -1
	for _, term := range terms {
		if idx := strings.Index(lower, term); idx >= 0 && (first < 0 || idx < first) {
			first = idx
		}
	}
	if first < 0 {
		return strings.TrimSpace(util.TruncateRunes(content, 2*snippetRadius))
	}

	runes := []rune(content)
	pos := len([]rune(content[:first]))
	start := pos - snippetRadius
	if start < 0 {
		start = 0
	}
	end := pos + snippetRadius
	if end > len(runes) {
		end = len(runes)
	}
	return strings.TrimSpace(string(runes[start:end]))
}
