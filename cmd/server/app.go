package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/champion-grid/internal/catalog"
	"github.com/KirkDiggler/champion-grid/internal/config"
	"github.com/KirkDiggler/champion-grid/internal/dataset"
	"github.com/KirkDiggler/champion-grid/internal/engine"
	"github.com/KirkDiggler/champion-grid/internal/index"
	"github.com/KirkDiggler/champion-grid/internal/observe"
	"github.com/KirkDiggler/champion-grid/internal/orchestrators/game"
	"github.com/KirkDiggler/champion-grid/internal/pkg/clock"
	"github.com/KirkDiggler/champion-grid/internal/pkg/idgen"
	"github.com/KirkDiggler/champion-grid/internal/redis"
	gamerepo "github.com/KirkDiggler/champion-grid/internal/repositories/game"
)

var (
	configPath    string
	championsPath string
	redisAddrs    []string
	logLevel      string
)

// addDataFlags registers the flags every command that loads the dataset needs
func addDataFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&championsPath, "champions", "", "Champion dataset (.json, .yaml); overrides data.champions_path")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// loadConfig reads --config when given and applies flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("champions") {
		cfg.Data.ChampionsPath = championsPath
	}
	if flags.Changed("log-level") {
		cfg.Server.LogLevel = config.LogLevel(logLevel)
	}
	if flags.Lookup("port") != nil && flags.Changed("port") {
		cfg.Server.GRPCPort = grpcPort
	}
	if flags.Lookup("metrics-addr") != nil && flags.Changed("metrics-addr") {
		cfg.Server.MetricsAddr = metricsAddr
	}
	if flags.Lookup("redis") != nil && flags.Changed("redis") {
		cfg.Redis.Addrs = redisAddrs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.SetDefault(newLogger(cfg.Server.LogLevel))
	return cfg, nil
}

func newLogger(level config.LogLevel) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level.SlogLevel()}))
}

// buildIndex loads the dataset and indexes it against the default catalog
func buildIndex(cfg *config.Config) (*index.Index, error) {
	champions, err := dataset.Load(cfg.Data.ChampionsPath)
	if err != nil {
		return nil, err
	}

	idx, err := index.New(&index.Config{
		Champions: champions,
		Catalog:   catalog.Default(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to index champions: %w", err)
	}
	return idx, nil
}

// buildGenerator creates the grid generator from the generator config section
func buildGenerator(cfg *config.Config, idx *index.Index, metrics *observe.Metrics) (*engine.Generator, error) {
	gen, err := engine.NewGenerator(&engine.Config{
		Index:           idx,
		Metrics:         metrics,
		MaxAttempts:     cfg.Generator.MaxAttempts,
		Tolerance:       cfg.Generator.Tolerance,
		RecencyCapacity: cfg.Generator.RecencyCapacity,
		CrossTypeFactor: cfg.Generator.CrossTypeFactor,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}
	return gen, nil
}

// buildRepository picks Redis when addresses are configured and process
// memory otherwise. The returned func releases the store.
func buildRepository(cfg *config.Config) (gamerepo.Repository, func(), error) {
	if !cfg.Redis.Enabled() {
		slog.Info("Using in-memory game store")
		return gamerepo.NewInMemory(&gamerepo.InMemoryConfig{Clock: clock.New()}), func() {}, nil
	}

	client, err := redis.NewClient(cfg.Redis.Addrs, &redis.Options{
		MasterName: cfg.Redis.MasterName,
		Password:   cfg.Redis.Password,
		DB:         cfg.Redis.DB,
		PoolSize:   cfg.Redis.PoolSize,
		UseTLS:     cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	repo, err := gamerepo.NewRedis(&gamerepo.RedisConfig{Client: client})
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to create game repository: %w", err)
	}

	slog.Info("Using redis game store", "addrs", cfg.Redis.Addrs)
	return repo, func() { _ = client.Close() }, nil
}

// buildGameService wires the game orchestrator. The returned func releases
// the store.
func buildGameService(cfg *config.Config, bus events.EventBus, metrics *observe.Metrics) (game.Service, func(), error) {
	idx, err := buildIndex(cfg)
	if err != nil {
		return nil, nil, err
	}

	gen, err := buildGenerator(cfg, idx, metrics)
	if err != nil {
		return nil, nil, err
	}

	repo, closeRepo, err := buildRepository(cfg)
	if err != nil {
		return nil, nil, err
	}

	svc, err := game.NewOrchestrator(&game.Config{
		Engine:            gen,
		Index:             idx,
		Repository:        repo,
		Clock:             clock.New(),
		IDGenerator:       idgen.NewUUID("game"),
		EventBus:          bus,
		Metrics:           metrics,
		SessionTTL:        cfg.Game.SessionTTL,
		DefaultDifficulty: cfg.Game.DefaultDifficulty,
		DailyDifficulty:   cfg.Game.DailyDifficulty,
	})
	if err != nil {
		closeRepo()
		return nil, nil, fmt.Errorf("failed to create game orchestrator: %w", err)
	}

	return svc, closeRepo, nil
}

// newEventBus creates the bus and subscribes the audit logger to game events
func newEventBus() events.EventBus {
	bus := events.NewBus()
	for _, eventType := range []string{game.EventGameOver, game.EventDailyCreated} {
		bus.SubscribeFunc(eventType, 0, logEvent)
	}
	return bus
}

func logEvent(ctx context.Context, event events.Event) error {
	attrs := []any{"event_type", event.Type()}
	if target := event.Target(); target != nil {
		attrs = append(attrs, "target_id", target.GetID(), "target_type", target.GetType())
	}
	for _, key := range []string{game.EventKeyScore, game.EventKeyDate, game.EventKeyDifficulty} {
		if v, ok := event.Context().Get(key); ok {
			attrs = append(attrs, key, v)
		}
	}
	observe.Logger(ctx).Info("Game event", attrs...)
	return nil
}
