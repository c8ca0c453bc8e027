package chat

import (
	"fmt"
	"strings"

	"docassist/internal/retrieval"
	"docassist/internal/util"
)

const maxDocRunes = 500

// buildPrompt assembles the model prompt: instructions, numbered source
// excerpts, recent conversation turns, then the question.
func buildPrompt(query string, matches []retrieval.Match, history []turn) string {
	var sb strings.Builder
	sb.WriteString("You are a file assistant. Answer the question using the provided file excerpts. ")
	sb.WriteString("If the excerpts are not sufficient, say so honestly.\n\n")

	if len(matches) > 0 {
		sb.WriteString("Relevant information:\n")
		for i, m := range matches {
			fmt.Fprintf(&sb, "[Document %d] Source: %s\n", i+1, m.Doc.Filename)
			content := util.TruncateRunes(m.Doc.Content, maxDocRunes)
			if len(content) < len(m.Doc.Content) {
				content += "..."
			}
			fmt.Fprintf(&sb, "Content: %s\n\n", content)
		}
	}

	if len(history) > 0 {
		sb.WriteString("Recent conversation:\n")
		for _, t := range history {
			fmt.Fprintf(&sb, "User: %s\nAssistant: %s\n\n", t.Query, t.Response)
		}
	}

	fmt.Fprintf(&sb, "Question: %s\n\nAnswer:", query)
	return sb.String()
}
