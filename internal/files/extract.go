package files

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
	"rsc.io/pdf"

	"docassist/internal/model"
)

// DetectType maps a file name to its supported type by extension.
func DetectType(filename string) (model.FileType, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return model.FileTypeTxt, true
	case ".pdf":
		return model.FileTypePDF, true
	case ".docx":
		return model.FileTypeDocx, true
	case ".json":
		return model.FileTypeJSON, true
	case ".csv":
		return model.FileTypeCSV, true
	default:
		return "", false
	}
}

// Extract converts a file's raw bytes into prompt-ready text.
func Extract(path string, ft model.FileType) (string, error) {
	switch ft {
	case model.FileTypeTxt:
		return extractText(path)
	case model.FileTypePDF:
		return extractPDF(path)
	case model.FileTypeDocx:
		return extractDocx(path)
	case model.FileTypeJSON:
		return extractJSON(path)
	case model.FileTypeCSV:
		return extractCSV(path)
	default:
		return "", ErrUnsupportedType
	}
}

func extractText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(b), "�"), nil
}

func extractPDF(path string) (string, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		for _, t := range p.Content().Text {
			sb.WriteString(strings.ReplaceAll(t.S, "\x00", ""))
		}
		sb.WriteString("\n")
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", fmt.Errorf("no extractable text in %s", filepath.Base(path))
	}
	return sb.String(), nil
}

func extractDocx(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}

	var sb strings.Builder
	for _, it := range doc.Document.Body.Items {
		switch it.(type) {
		case *docx.Paragraph, *docx.Table:
			fmt.Fprintln(&sb, it)
		}
	}
	return sb.String(), nil
}

func extractJSON(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return "", fmt.Errorf("parse json: %w", err)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func extractCSV(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parse csv: %w", err)
	}
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(strings.Join(row, " | "))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// Sanitize collapses whitespace for single-line display of extracted text.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.Join(strings.Fields(s), " ")
}
