// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"waypoint/internal/ai"
	"waypoint/internal/config"
	httptransport "waypoint/internal/http"
	"waypoint/internal/infra"
	"waypoint/internal/maps"
	"waypoint/internal/modules/catalog"
	"waypoint/internal/modules/conversation"
	"waypoint/internal/modules/matching"
	"waypoint/internal/modules/suggestions"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	generator, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatal().Err(err).Msg("init gemini")
	}
	defer generator.Close()

	var attractions conversation.AttractionFinder
	if cfg.AI.MapsKey != "" {
		places, err := maps.NewPlacesService(cfg.AI.MapsKey)
		if err != nil {
			log.Fatal().Err(err).Msg("init places client")
		}
		attractions = places
	}

	catalogStore := catalog.NewStore(dbPool)
	matchingStore := matching.NewStore(redisClient, time.Duration(cfg.Matching.CacheTTLSeconds)*time.Second)
	convStore := conversation.NewPGStore(dbPool)

	convSvc := conversation.NewService(conversation.Deps{
		Store:        convStore,
		Catalog:      catalogStore,
		Generator:    generator,
		Cache:        matchingStore,
		Attractions:  attractions,
		Conversation: cfg.Conversation,
		Matching:     cfg.Matching,
		Log:          log,
	})
	suggestionSvc := suggestions.NewService(generator, log)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Conversation: convSvc,
		Suggestions:  suggestionSvc,
		ChatTimeout:  time.Duration(cfg.Conversation.GenerateTimeoutSeconds) * time.Second,
		Log:          log,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.HTTP.Addr).Msg("waypoint api listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server")
	}
}
