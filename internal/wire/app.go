package wire

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"github.com/bossbot/backend/internal/application/alert"
	"github.com/bossbot/backend/internal/domain/boss"
	"github.com/bossbot/backend/internal/infrastructure/config"
	applog "github.com/bossbot/backend/internal/infrastructure/log"
	httpserver "github.com/bossbot/backend/internal/interfaces/http"
)

// App 應用主結構，組合所有服務
type App struct {
	httpServer *httpserver.HTTPServer
	poller     *alert.Poller
	db         *sql.DB
	logger     *slog.Logger
}

// NewApp 建立應用實例
func NewApp(server *httpserver.HTTPServer, poller *alert.Poller, db *sql.DB) *App {
	return &App{
		httpServer: server,
		poller:     poller,
		db:         db,
		logger:     applog.NewModuleLogger("app", "main"),
	}
}

// ProvideClock 由配置建立偏移時鐘
func ProvideClock(cfg *config.Config) boss.Clock {
	return boss.NewOffsetClock(cfg.TimeOffsetMinutes)
}

// Start 啟動所有服務
func (a *App) Start() error {
	a.logger.Info("starting bossbot application")

	// 啟動重生通報輪詢
	a.poller.Start()

	// HTTP 服務器在背景執行，main 以訊號等待結束
	go func() {
		if err := a.httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("HTTP server exited unexpectedly",
				"error", err,
			)
		}
	}()

	return nil
}

// Stop 優雅關閉所有服務
func (a *App) Stop() error {
	a.poller.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("error during HTTP server shutdown",
			"error", err,
		)
	}

	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
