package main

import (
	"context"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"github.com/joho/godotenv"

	"storebot/internal/catalog"
	"storebot/internal/chat"
	"storebot/internal/completion"
	"storebot/internal/config"
	"storebot/internal/logger"
	"storebot/internal/moderation"
	"storebot/internal/server"
	"storebot/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.Log); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	ctx := context.Background()

	store, err := buildCatalog(cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("Failed to load catalog")
	}
	logger.Info().Int("keys", store.Len()).Msg("Catalog loaded")

	gate := moderation.NewGate(
		openai.NewClient(cfg.OpenAIAPIKey),
		cfg.Moderation.Model,
		moderation.Policy(cfg.Moderation.Policy),
	)

	completer, err := completion.New(ctx, cfg.Completion, cfg.OpenAIAPIKey)
	if err != nil {
		logger.Fatal().Err(err).Str("provider", cfg.Completion.Provider).Msg("Failed to create completion client")
	}

	sessions, err := buildSessionStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create session store")
	}

	controller := chat.NewController(store, gate, completer)
	srv := server.New(controller, sessions, store)

	logger.Info().
		Str("addr", cfg.ListenAddr).
		Str("provider", cfg.Completion.Provider).
		Str("model", cfg.Completion.Model).
		Str("moderation_policy", cfg.Moderation.Policy).
		Msg("Starting storefront assistant")

	if err := srv.Router().Run(cfg.ListenAddr); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}
}

func buildCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.CatalogPath)
}

func buildSessionStore(ctx context.Context, cfg *config.Config) (session.Store, error) {
	if cfg.Session.RedisURL == "" {
		logger.Info().Msg("Using in-memory session store")
		return session.NewMemoryStore(), nil
	}
	logger.Info().Dur("ttl", cfg.Session.TTL).Msg("Using Redis session store")
	return session.NewRedisStore(ctx, cfg.Session.RedisURL, cfg.Session.TTL)
}
