package api

import (
	"github.com/gofiber/fiber/v2"

	"docassist/internal/chat"
	"docassist/internal/files"
)

func RegisterRoutes(app *fiber.App, orch *chat.Orchestrator, fh *files.Handler) {
	h := NewHandler(orch, fh)

	app.Get("/", h.Index)
	app.Get("/health", h.Health)
	app.Post("/api/chat", h.Chat)
	app.Get("/api/files", h.ListFiles)
	app.Post("/api/files/upload", h.Upload)
	app.Post("/api/files/refresh", h.Refresh)
	app.Get("/api/files/:name", h.GetFile)
}
