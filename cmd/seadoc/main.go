package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dampeche/seadoc/internal/app"
	"github.com/dampeche/seadoc/internal/catalog"
	"github.com/dampeche/seadoc/internal/document"
	dochttp "github.com/dampeche/seadoc/internal/document/http"
	"github.com/dampeche/seadoc/internal/parse"
	"github.com/dampeche/seadoc/internal/platform/cache"
	"github.com/dampeche/seadoc/internal/render"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer redisClient.Close()

	catalogStore := catalog.NewStore(redisClient, logger)
	catalogService, err := catalog.NewService(ctx, catalogStore, logger)
	if err != nil {
		logger.Error("load catalogs", slog.Any("error", err))
		os.Exit(1)
	}

	docService := document.NewService(catalogService, document.DefaultMolluskNames, logger)

	parserClient := &parse.Client{
		BaseURL: cfg.ParserBaseURL,
		APIKey:  cfg.ParserAPIKey,
		Model:   cfg.ParserModel,
		HTTPClient: &http.Client{
			Timeout: cfg.ParserTimeout,
		},
	}
	parserService := parse.NewService(parserClient, logger)

	exporter, err := render.NewExporter(cfg.GotenbergURL, &http.Client{Timeout: 60 * time.Second})
	if err != nil {
		logger.Error("load document templates", slog.Any("error", err))
		os.Exit(1)
	}

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		CatalogHandler:  catalog.NewHandler(logger, catalogService),
		DocumentHandler: dochttp.NewHandler(docService, catalogService, parserService),
		ExportHandler:   render.NewHandler(logger, exporter, docService),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
