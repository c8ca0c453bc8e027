package api

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"

	"docassist/internal/chat"
	"docassist/internal/files"
	"docassist/internal/model"
)

// Handler holds the dependencies the HTTP handlers need.
type Handler struct {
	orch  *chat.Orchestrator
	files *files.Handler
}

func NewHandler(orch *chat.Orchestrator, fh *files.Handler) *Handler {
	return &Handler{orch: orch, files: fh}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// Chat runs one conversational turn.
func (h *Handler) Chat(c *fiber.Ctx) error {
	var req model.ChatRequest
	if err := c.BodyParser(&req); err != nil || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request, expected JSON: {\"message\":\"...\"}"})
	}
	reply := h.orch.Respond(c.Context(), req.Message)
	return c.JSON(model.ChatResponse{Reply: reply})
}

// ListFiles returns metadata for every tracked document, scan order.
func (h *Handler) ListFiles(c *fiber.Ctx) error {
	type fileInfo struct {
		ID         string         `json:"id"`
		Filename   string         `json:"filename"`
		Type       model.FileType `json:"type"`
		Size       int64          `json:"size"`
		ModTime    string         `json:"last_modified"`
		Unreadable bool           `json:"unreadable,omitempty"`
	}
	docs := h.files.List()
	out := make([]fileInfo, 0, len(docs))
	for _, d := range docs {
		out = append(out, fileInfo{
			ID:         d.ID,
			Filename:   d.Filename,
			Type:       d.Type,
			Size:       d.Size,
			ModTime:    d.ModTime.Format(time.RFC3339),
			Unreadable: d.Unreadable,
		})
	}
	return c.JSON(fiber.Map{"files": out, "count": len(out)})
}

// GetFile returns one document with its extracted content.
func (h *Handler) GetFile(c *fiber.Ctx) error {
	name := c.Params("name")
	doc, err := h.files.Read(name)
	switch {
	case errors.Is(err, files.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "file not found"})
	case errors.Is(err, files.ErrUnsupportedType):
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{"error": "unsupported file type"})
	case err != nil:
		log.Printf("read %s: %v", name, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(doc)
}

// Refresh re-scans the tracked directory.
func (h *Handler) Refresh(c *fiber.Ctx) error {
	res, err := h.files.Refresh()
	if err != nil {
		log.Printf("refresh error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(res)
}

// Upload accepts one or more files (multipart field "files") and tracks
// them alongside the scanned directory. Failures are reported per file.
func (h *Handler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "at least one file is required (form field: files)"})
	}

	results := make([]model.UploadResult, 0, len(form.File["files"]))
	saved := 0
	for _, fh := range form.File["files"] {
		res := model.UploadResult{Filename: fh.Filename}
		data, err := readMultipart(fh)
		if err == nil {
			_, err = h.files.Upload(fh.Filename, data)
		}
		if err != nil {
			log.Printf("upload %s: %v", fh.Filename, err)
			res.Message = err.Error()
		} else {
			res.Success = true
			saved++
		}
		results = append(results, res)
	}

	status := fiber.StatusOK
	if saved == 0 {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{
		"status":   "ok",
		"uploaded": saved,
		"files":    results,
	})
}

func readMultipart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
