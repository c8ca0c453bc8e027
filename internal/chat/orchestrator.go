// Package chat composes the file handler, retrieval and model backend into
// the per-turn orchestrator behind the chat endpoint.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"docassist/internal/db"
	"docassist/internal/files"
	"docassist/internal/llm"
	"docassist/internal/retrieval"
)

const maxHistory = 20

type turn struct {
	Query    string
	Response string
}

// Orchestrator handles one user session. File commands short-circuit the
// model; everything else goes retrieval -> prompt -> backend.
type Orchestrator struct {
	files   *files.Handler
	backend llm.Backend
	conn    db.Connector
	topK    int
	history []turn
}

func New(fh *files.Handler, backend llm.Backend, conn db.Connector, topK int) *Orchestrator {
	if topK <= 0 {
		topK = 3
	}
	return &Orchestrator{files: fh, backend: backend, conn: conn, topK: topK}
}

// Respond produces the assistant's reply for one user message. Failures
// degrade to a visible error reply, never a crash.
func (o *Orchestrator) Respond(ctx context.Context, message string) string {
	message = strings.TrimSpace(message)
	lower := strings.ToLower(message)

	switch {
	case lower == "":
		return "Say something like 'list files', or ask a question about your documents."
	case strings.HasPrefix(lower, "list files"), lower == "files":
		return o.listFiles()
	case strings.HasPrefix(lower, "refresh"):
		return o.refresh()
	case strings.HasPrefix(lower, "read file:"), strings.HasPrefix(lower, "open file:"):
		return o.readFile(argAfterColon(message))
	case strings.HasPrefix(lower, "search files:"), strings.HasPrefix(lower, "find:"):
		return o.searchFiles(argAfterColon(message))
	case strings.HasPrefix(lower, "query db:"), strings.HasPrefix(lower, "query database:"):
		return o.queryDB(ctx, argAfterColon(message))
	case lower == "help":
		return helpText
	}
	return o.answer(ctx, message)
}

const helpText = "Available commands:\n" +
	"- 'list files' - show all tracked files\n" +
	"- 'read file: filename.txt' - view the contents of a file\n" +
	"- 'search files: term' - find files mentioning a term\n" +
	"- 'refresh files' - update the index after adding files\n" +
	"- 'query db: <sql>' - run a query through the database connector\n" +
	"Anything else is answered using the configured model."

func (o *Orchestrator) listFiles() string {
	docs := o.files.List()
	if len(docs) == 0 {
		return "No files are tracked yet. Add files to the data directory and run 'refresh files'."
	}
	var sb strings.Builder
	sb.WriteString("Available files:\n")
	for _, d := range docs {
		note := ""
		if d.Unreadable {
			note = " (unreadable)"
		}
		fmt.Fprintf(&sb, "- %s [%s, %d bytes]%s\n", d.Filename, d.Type, d.Size, note)
	}
	sb.WriteString("\nUse 'read file: filename' to view the full contents of any file.")
	return sb.String()
}

func (o *Orchestrator) refresh() string {
	res, err := o.files.Refresh()
	if err != nil {
		return fmt.Sprintf("Refresh failed: %v", err)
	}
	return fmt.Sprintf("File index refreshed: %d added, %d updated, %d removed, %d unchanged.",
		res.Added, res.Updated, res.Removed, res.Unchanged)
}

func (o *Orchestrator) readFile(name string) string {
	if name == "" {
		return "Please specify a filename to read, e.g. 'read file: notes.txt'."
	}
	doc, err := o.files.Read(name)
	switch {
	case errors.Is(err, files.ErrNotFound):
		return fmt.Sprintf("File '%s' not found. Use 'list files' to see available files.", name)
	case errors.Is(err, files.ErrUnsupportedType):
		return fmt.Sprintf("File '%s' has an unsupported type. Supported: txt, pdf, docx, json, csv.", name)
	case err != nil:
		return fmt.Sprintf("Could not read '%s': %v", name, err)
	}
	return fmt.Sprintf("Contents of '%s':\n\n%s", doc.Filename, doc.Content)
}

func (o *Orchestrator) searchFiles(term string) string {
	if term == "" {
		return "Please specify a search term after 'search files:'."
	}
	matches := retrieval.Retrieve(term, o.files.List(), o.topK)
	if len(matches) == 0 {
		return fmt.Sprintf("No files mention '%s'.", term)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Files mentioning '%s':\n", term)
	for _, m := range matches {
		fmt.Fprintf(&sb, "- %s: %s\n", m.Doc.Filename, m.Snippet)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (o *Orchestrator) queryDB(ctx context.Context, q string) string {
	if q == "" {
		return "Please provide a query after 'query db:'."
	}
	rows, err := o.conn.Query(ctx, q)
	switch {
	case errors.Is(err, db.ErrNoDatabase):
		return "No database is configured. Set DB_TYPE to sqlite, postgres or mockvector."
	case err != nil:
		return fmt.Sprintf("Database query failed: %v", err)
	}
	return "Query results:\n" + db.RenderRows(rows)
}

func (o *Orchestrator) answer(ctx context.Context, query string) string {
	matches := retrieval.Retrieve(query, o.files.List(), o.topK)
	prompt := buildPrompt(query, matches, o.recentHistory())

	reply, err := o.backend.Generate(ctx, prompt)
	if err != nil {
		log.Printf("generate error (%s): %v", o.backend.Name(), err)
		return fmt.Sprintf("Sorry, the model is currently unavailable: %v", err)
	}
	if strings.TrimSpace(reply) == "" {
		reply = "The model returned an empty response. Try rephrasing your question."
	}
	o.remember(query, reply)
	return reply
}

func (o *Orchestrator) remember(query, response string) {
	o.history = append(o.history, turn{Query: query, Response: response})
	if len(o.history) > maxHistory {
		o.history = o.history[len(o.history)-maxHistory:]
	}
}

func (o *Orchestrator) recentHistory() []turn {
	if len(o.history) <= 5 {
		return o.history
	}
	return o.history[len(o.history)-5:]
}

func argAfterColon(message string) string {
	parts := strings.SplitN(message, ":", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
