package model

import "time"

// FileType identifies the supported document formats.
type FileType string

const (
	FileTypeTxt  FileType = "txt"
	FileTypePDF  FileType = "pdf"
	FileTypeDocx FileType = "docx"
	FileTypeJSON FileType = "json"
	FileTypeCSV  FileType = "csv"
)

// Document is one tracked file with its extracted text content.
// Filename is the cache key; re-scanning a changed file replaces the entry.
type Document struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Type       FileType  `json:"type"`
	Content    string    `json:"content"`
	Size       int64     `json:"size"`
	ModTime    time.Time `json:"last_modified"`
	Unreadable bool      `json:"unreadable,omitempty"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the assistant's reply for one turn.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// RefreshResult summarises one refresh pass over the tracked directory.
type RefreshResult struct {
	Added     int `json:"added"`
	Updated   int `json:"updated"`
	Removed   int `json:"removed"`
	Unchanged int `json:"unchanged"`
}

// UploadResult reports the outcome of a single uploaded file.
type UploadResult struct {
	Filename string `json:"filename"`
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
}
