package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yanchr/history-arrow-2/internal/config"
	"github.com/yanchr/history-arrow-2/internal/domain/event"
	"github.com/yanchr/history-arrow-2/internal/domain/label"
	"github.com/yanchr/history-arrow-2/internal/mcp"
	"github.com/yanchr/history-arrow-2/internal/render"
	"github.com/yanchr/history-arrow-2/internal/sqlite"
	"github.com/yanchr/history-arrow-2/internal/timeline"
	"github.com/yanchr/history-arrow-2/internal/timeline/view"
	"github.com/yanchr/history-arrow-2/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Server.Mode == "stdio" {
		logWriter = os.Stderr
	}
	if logPath := os.Getenv("ARROW_LOG_PATH"); logPath != "" {
		file, err := openLogFile(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer file.Close()
			logWriter = file
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	eventRepo := sqlite.NewEventRepository(db)
	labelRepo := sqlite.NewLabelRepository(db)

	eventSvc := event.NewService(eventRepo, logger)
	labelSvc := label.NewService(labelRepo, logger)

	bounds := view.DefaultBounds()
	engine := timeline.NewEngine(cfg.Timeline, logger)

	mcpServer := mcp.NewServer(mcp.ServerConfig{
		Services: mcp.Services{
			Events: eventSvc,
			Labels: labelSvc,
		},
		Engine: engine,
		Bounds: bounds,
		Logger: logger,
	})

	if cfg.Server.Mode == "stdio" {
		runStdioMode(logger, mcpServer)
		return
	}

	handler := mcp.NewHandler(eventSvc, labelSvc, engine, bounds)
	renderer := render.NewRenderer(render.DefaultOptions())
	svgSvc := render.NewService(eventSvc, labelSvc, engine, renderer, bounds)
	runHTTPMode(logger, mcpServer, handler, svgSvc, cfg.Server.Host, cfg.Server.Port)
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or the context is canceled.
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(logger *slog.Logger, mcpServer *sdkmcp.Server, handler *mcp.Handler, svgSvc *render.Service, host string, port int) {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)

	// One router serves both surfaces: the MCP streamable endpoint and the
	// host UI's JSON-RPC plus the SVG snapshot.
	router := transport.NewServer(handler, svgSvc)
	router.Handle("/mcp", mcpHandler)
	router.Handle("/mcp/*", mcpHandler)

	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func openLogFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
