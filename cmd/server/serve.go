package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"morafo/config"
	"morafo/database"
	"morafo/pkg/ai"
	"morafo/pkg/logging"
	"morafo/router"

	chatCtrlImp "morafo/pkg/chat/controllerImp"
	chatRepoImp "morafo/pkg/chat/repositoryImp"
	chatSvcImp "morafo/pkg/chat/serviceImp"

	diagCtrlImp "morafo/pkg/diagnosis/controllerImp"
	diagSvcImp "morafo/pkg/diagnosis/serviceImp"

	marketCtrlImp "morafo/pkg/market/controllerImp"
	marketRepoImp "morafo/pkg/market/repositoryImp"
	marketSvcImp "morafo/pkg/market/serviceImp"

	feedCtrlImp "morafo/pkg/feed/controllerImp"
	feedRepoImp "morafo/pkg/feed/repositoryImp"
	feedSvcImp "morafo/pkg/feed/serviceImp"

	weatherCtrlImp "morafo/pkg/weather/controllerImp"
	weatherSvcImp "morafo/pkg/weather/serviceImp"

	insightsCtrlImp "morafo/pkg/insights/controllerImp"
	insightsSvcImp "morafo/pkg/insights/serviceImp"

	healthCtrlImp "morafo/pkg/health/controllerImp"
	sessionCtrlImp "morafo/pkg/session/controllerImp"
	shellCtrlImp "morafo/pkg/shell/controllerImp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log, err := logging.New(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg := config.Load(log)

	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}

	llm, mode, err := newClient(ctx, cfg, log)
	if err != nil {
		return err
	}

	dir, err := openDirectory(ctx, cfg.SuppliersFile, log)
	if err != nil {
		return err
	}

	e := build(db, llm, mode, dir, cfg, log)
	serveStatic(e, cfg.StaticDir, log)

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("port", cfg.Port), zap.String("inference", mode))
		errc <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("shutting down")
	return e.Shutdown(shutdownCtx)
}

// newClient picks the Gemini client when a key is configured and the offline
// stand-in otherwise.
func newClient(ctx context.Context, cfg config.AppConfig, log *zap.Logger) (ai.Client, string, error) {
	if cfg.GeminiAPIKey == "" {
		log.Warn("no Gemini API key configured, running offline")
		return ai.NewMock(), "offline", nil
	}
	c, err := ai.NewGemini(ctx, ai.GeminiConfig{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel}, log)
	if err != nil {
		return nil, "", err
	}
	return c, "gemini", nil
}

// openDirectory loads the supplier table from path, or the built-in one when
// path is empty, and keeps watching the file for edits.
func openDirectory(ctx context.Context, path string, log *zap.Logger) (*feedRepoImp.Directory, error) {
	if path == "" {
		return feedRepoImp.NewDirectory(feedRepoImp.Builtin()), nil
	}
	list, err := feedRepoImp.LoadFile(path)
	if err != nil {
		return nil, err
	}
	dir := feedRepoImp.NewDirectory(list)
	if err := feedRepoImp.Watch(ctx, path, dir, log); err != nil {
		log.Warn("supplier file will not be reloaded", zap.String("file", path), zap.Error(err))
	}
	return dir, nil
}

func build(db *gorm.DB, llm ai.Client, mode string, dir *feedRepoImp.Directory, cfg config.AppConfig, log *zap.Logger) *echo.Echo {
	marketSvc := marketSvcImp.NewMarketService(marketRepoImp.New(db), llm, log)

	ctl := router.Controllers{
		Shell:     shellCtrlImp.New(),
		Feed:      feedCtrlImp.New(feedSvcImp.NewFeedService(dir)),
		Chat:      chatCtrlImp.New(chatSvcImp.NewChatService(chatRepoImp.New(db), llm, log)),
		Diagnosis: diagCtrlImp.New(diagSvcImp.NewDiagnosisService(llm, log)),
		Market:    marketCtrlImp.New(marketSvc),
		Weather:   weatherCtrlImp.New(weatherSvcImp.NewWeatherService(llm, log)),
		Insights:  insightsCtrlImp.New(insightsSvcImp.NewInsightsService(llm, log)),
		Session:   sessionCtrlImp.NewSessionController(marketSvc),
		Health:    healthCtrlImp.NewHealthCtrl(db, mode),
	}

	e := echo.New()
	e.HideBanner = true
	return router.New(e, log, router.Options{
		AllowOrigins:  cfg.AllowOrigins,
		RatePerMinute: cfg.RatePerMinute,
		SlowRequest:   2 * time.Second,
	}, ctl)
}

func serveStatic(e *echo.Echo, dir string, log *zap.Logger) {
	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		log.Info("no static frontend", zap.String("dir", dir))
		return
	}
	e.Static("/static", dir)
	e.File("/", index)
}
