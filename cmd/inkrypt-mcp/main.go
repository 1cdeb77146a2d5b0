package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"inkrypt/internal/adapters/filesystem"
	mcpadapter "inkrypt/internal/adapters/mcp"
	"inkrypt/internal/adapters/sqlite"
	"inkrypt/internal/adapters/watcher"
	"inkrypt/internal/config"
	"inkrypt/internal/domain"
	"inkrypt/internal/logger"
)

var version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "inkrypt-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var overrides config.Config
	configPath := flag.String("config", "", "config file (default <data-dir>/config.toml)")
	flag.StringVar(&overrides.DataDir, "data-dir", "", "directory holding the vault registry and indexes")
	flag.StringVar(&overrides.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flag.StringVar(&overrides.LogFormat, "log-format", "", "log format (json, console)")
	flag.Parse()

	cfg, err := config.Load(*configPath, &overrides)
	if err != nil {
		return err
	}

	// stdout carries the protocol
	log := logger.New("inkrypt-mcp", cfg.LogLevel, cfg.LogFormat)

	manager, err := filesystem.NewManager(
		cfg.RegistryPath(domain.RegistryFileName),
		filesystem.WithLogger(log.Component("manager")),
	)
	if err != nil {
		return err
	}

	w := watcher.New(watcher.Options{
		Debounce:   cfg.Watcher.Debounce,
		BufferSize: cfg.Watcher.BufferSize,
		Pending:    watcher.NewPendingSet(cfg.Watcher.PendingTTL),
		Logger:     log.Component("watcher"),
	})
	defer w.Close()

	index := sqlite.NewIndex(cfg.IndexDir(), log.Component("index"))
	defer index.Close()

	indexLog := log.Component("index")
	stopIndexing := w.Subscribe(func(batch []domain.FileSystemEvent) {
		if err := index.Apply(batch); err != nil && !errors.Is(err, sqlite.ErrNotOpen) {
			indexLog.Warn().Err(err).Int("events", len(batch)).Msg("failed to update index")
		}
	})
	defer stopIndexing()

	mcpServer := server.NewMCPServer(
		"inkrypt-mcp",
		version,
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	deps := mcpadapter.Deps{Manager: manager, Watcher: w, Index: index}
	mcpadapter.RegisterReadTools(mcpServer, deps)
	mcpadapter.RegisterWriteTools(mcpServer, deps)

	stopForwarding := mcpadapter.ForwardChanges(mcpServer, w)
	defer stopForwarding()

	log.Info().Str("data_dir", cfg.DataDir).Str("version", version).Msg("serving MCP over stdio")
	return server.ServeStdio(mcpServer,
		server.WithStdioContextFunc(func(ctx context.Context) context.Context {
			return log.WithContext(ctx)
		}),
	)
}
