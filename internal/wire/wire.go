//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/bossbot/backend/internal/application/alert"
	"github.com/bossbot/backend/internal/application/command"
	"github.com/bossbot/backend/internal/infrastructure/config"
	"github.com/bossbot/backend/internal/infrastructure/line"
	"github.com/bossbot/backend/internal/infrastructure/metrics"
	"github.com/bossbot/backend/internal/infrastructure/storage"
	httpserver "github.com/bossbot/backend/internal/interfaces/http"
	"github.com/google/wire"
)

// InitializeApp 初始化整個應用
func InitializeApp() (*App, error) {
	wire.Build(
		// 按層組合 ProviderSet
		config.ProviderSet,
		storage.ProviderSet,
		metrics.ProviderSet,
		line.ProviderSet,
		command.ProviderSet,
		alert.ProviderSet,
		httpserver.ProviderSet,
		ProvideClock,
		// 介面綁定：alert.Pusher -> line.AlertPusher
		wire.Bind(new(alert.Pusher), new(*line.AlertPusher)),
		NewApp,
	)
	return nil, nil
}
