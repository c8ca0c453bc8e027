package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"docassist/internal/api"
	"docassist/internal/chat"
	"docassist/internal/config"
	"docassist/internal/db"
	"docassist/internal/files"
	"docassist/internal/llm"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("configuration error: ", err)
	}

	fh, err := files.NewHandler(cfg.DataDir)
	if err != nil {
		log.Fatal(err)
	}
	names, err := fh.Scan()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("tracking %d files in %s", len(names), cfg.DataDir)

	backend, err := llm.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("model backend: %s", backend.Name())

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if cfg.WatchFiles {
		watcher, err := files.NewWatcher(fh)
		if err != nil {
			log.Printf("file watcher disabled: %v", err)
		} else {
			defer watcher.Stop()
			go watcher.Start(context.Background())
		}
	}

	orch := chat.New(fh, backend, conn, cfg.TopK)

	app := fiber.New()
	api.RegisterRoutes(app, orch, fh)

	log.Printf("🚀 Server started at %s", cfg.ServerAddr)
	log.Fatal(app.Listen(cfg.ServerAddr))
}
