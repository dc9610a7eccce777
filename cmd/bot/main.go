package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"unityplan-bot/internal/assistant"
	"unityplan-bot/internal/config"
	"unityplan-bot/internal/db"
	"unityplan-bot/internal/goals"
	"unityplan-bot/internal/llm"
	"unityplan-bot/internal/storage"
	"unityplan-bot/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer func() { _ = db.Close(conn) }()

	if err := db.RunMigrations(conn.DB); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	llmClient, err := llm.NewClient(cfg)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	var rec storage.Recorder
	if cfg.AskLogPath != "" {
		fr, err := storage.NewFileRecorder(cfg.AskLogPath)
		if err != nil {
			log.Printf("failed to init ask recorder: %v", err)
		} else {
			rec = fr
		}
	}

	bot, err := telegram.New(
		cfg.TelegramBotToken,
		goals.NewRepository(conn),
		assistant.New(llmClient, rec),
	)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	bot.Start(context.Background())
}
