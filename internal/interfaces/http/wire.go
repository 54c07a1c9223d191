package http

import (
	"github.com/bossbot/backend/internal/application/command"
	"github.com/bossbot/backend/internal/infrastructure/config"
	"github.com/bossbot/backend/internal/infrastructure/line"
	"github.com/bossbot/backend/internal/infrastructure/metrics"
	"github.com/bossbot/backend/internal/interfaces/http/handler"
	"github.com/google/wire"
)

// ProviderSet HTTP 介面層 ProviderSet
var ProviderSet = wire.NewSet(
	ProvideWebhookHandler,
	NewServer,
)

// ProvideWebhookHandler 由配置建立 Webhook 處理器
func ProvideWebhookHandler(interpreter *command.Service, client *line.Client, cfg *config.Config, m *metrics.Metrics) *handler.WebhookHandler {
	return handler.NewWebhookHandler(interpreter, client, cfg.LineChannelSecret, m)
}
