package http

import (
	"context"
	"net/http"

	"log/slog"

	"github.com/bossbot/backend/internal/infrastructure/config"
	"github.com/bossbot/backend/internal/infrastructure/log"
	"github.com/bossbot/backend/internal/interfaces/http/handler"
	"github.com/bossbot/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPServer HTTP 服務器
type HTTPServer struct {
	router *gin.Engine
	addr   string
	server *http.Server
	logger *slog.Logger
}

// NewServer 建立 HTTP 服務器
func NewServer(webhookHandler *handler.WebhookHandler, cfg *config.Config) *HTTPServer {
	router := gin.Default()
	router.Use(middleware.RequestID())

	logger := log.NewModuleLogger("http", "server")

	// 存活確認
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Boss Timer Bot is running!")
	})

	// 健康檢查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// LINE Webhook 回呼
	router.POST("/callback", webhookHandler.Callback)

	// Prometheus 指標
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &HTTPServer{
		router: router,
		addr:   cfg.Addr,
		logger: logger,
	}
}

// Start 啟動服務器
func (s *HTTPServer) Start() error {
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.router,
	}

	s.logger.Info("HTTP server starting",
		"addr", s.addr,
	)

	return s.server.ListenAndServe()
}

// Shutdown 優雅關閉
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// Router 取得路由器（測試用）
func (s *HTTPServer) Router() *gin.Engine {
	return s.router
}
