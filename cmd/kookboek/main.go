package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/wouterdom/kookboek/internal/config"
	"github.com/wouterdom/kookboek/internal/db"
	"github.com/wouterdom/kookboek/internal/extract/anthropic"
	"github.com/wouterdom/kookboek/internal/fetch"
	"github.com/wouterdom/kookboek/internal/grocery"
	"github.com/wouterdom/kookboek/internal/imagestore/local"
	"github.com/wouterdom/kookboek/internal/importer"
	"github.com/wouterdom/kookboek/internal/logging"
	"github.com/wouterdom/kookboek/internal/store"
	"github.com/wouterdom/kookboek/internal/web"
)

func main() {
	// A missing .env is fine; the environment may be set by the deployment.
	_ = godotenv.Load()

	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	if cfg.AnthropicAPIKey == "" {
		logger.Error("ANTHROPIC_API_KEY is required")
		return
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	recipeStore := store.NewRecipeStore(database)
	jobStore := store.NewJobStore(database)
	categoryStore := store.NewCategoryStore(database)
	groceryStore := store.NewGroceryStore(database)

	extractor := anthropic.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	fetcher := fetch.NewPageFetcher(time.Duration(cfg.FetchTimeoutSecs) * time.Second)

	images, err := local.NewLocalImageStore(cfg.ImagePath, "/images")
	if err != nil {
		logger.Error("failed to initialize image store", "error", err)
		return
	}

	runner := importer.NewRunner(cfg.ImportWorkers, cfg.ImportQueueSize, logger)
	runner.Start()
	defer runner.Stop()

	imp := importer.NewImporter(recipeStore, jobStore, categoryStore,
		extractor, fetcher, images, nil, runner, logger)
	voice := grocery.NewVoiceService(groceryStore, extractor, logger)
	list := grocery.NewListService(groceryStore, recipeStore, logger)

	server := web.NewServer(imp, recipeStore, voice, list, groceryStore, images, logger)
	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
