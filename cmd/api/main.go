package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartmeet/config"
	_ "smartmeet/docs" // Swagger docs
	"smartmeet/internal/directory"
	"smartmeet/internal/httpserver"
	"smartmeet/internal/meeting/repository/memory"
	meetingUC "smartmeet/internal/meeting/usecase"
	"smartmeet/internal/middleware"
	"smartmeet/internal/parser"
	"smartmeet/pkg/datemath"
	"smartmeet/pkg/llmprovider"
	"smartmeet/pkg/log"
)

// @title       SmartMeet API
// @description Natural-language meeting scheduling: LLM-backed extraction with a heuristic fallback, directory validation and conflict-aware slot suggestions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting SmartMeet...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Contact directory (static, read-only after load)
	dir, err := loadDirectory(cfg.Directory.File)
	if err != nil {
		logger.Errorf(ctx, "Failed to load contact directory: %v", err)
		return
	}
	logger.Infof(ctx, "Contact directory loaded: %d entries", dir.Len())

	// 4. DateMath parser
	dates, err := datemath.NewParser(cfg.Meetings.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Meetings.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// 5. Extraction engine: LLM provider chain, or the regex engine when
	// configured explicitly or when no provider comes up
	engine := buildEngine(ctx, logger, cfg, dates)
	logger.Infof(ctx, "Extraction engine: %s", engine.Name())

	// 6. Meeting repository (in-memory, LRU-bounded)
	repo, err := memory.New(cfg.Meetings.StoreCapacity, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to create meeting store: %v", err)
		return
	}

	// 7. Meeting UseCase
	uc := meetingUC.New(logger, engine, dir, repo, dates,
		cfg.Meetings.BusinessStartHour, cfg.Meetings.BusinessEndHour)

	// 8. Middleware
	mw := middleware.New(logger, cfg.HTTPServer)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     mw,
		MeetingUseCase: uc,
		Directory:      dir,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// loadDirectory reads the roster file when one is configured, otherwise
// serves the built-in company dataset.
func loadDirectory(path string) (*directory.Directory, error) {
	if path == "" {
		return directory.Default(), nil
	}
	return directory.Load(path)
}

// buildEngine wires the configured extraction engine. The LLM engine
// needs at least one working provider; when none comes up the service
// degrades to the heuristic engine instead of refusing to start.
func buildEngine(ctx context.Context, logger log.Logger, cfg *config.Config, dates *datemath.Parser) parser.Engine {
	if cfg.Parser.Engine == parser.EngineHeuristic {
		return parser.NewHeuristicEngine(dates)
	}

	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "No usable LLM provider (%v), falling back to heuristic engine", err)
		return parser.NewHeuristicEngine(dates)
	}

	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	return parser.NewLLMEngine(logger, manager, dates, parseDuration(cfg.Parser.Timeout, parser.DefaultParseTimeout))
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
