package line

import (
	"github.com/bossbot/backend/internal/infrastructure/config"
	"github.com/google/wire"
)

// ProviderSet LINE 客戶端 ProviderSet
var ProviderSet = wire.NewSet(
	ProvideClient,
	ProvideAlertPusher,
)

// ProvideClient 由配置建立 LINE 客戶端
func ProvideClient(cfg *config.Config) *Client {
	return NewClient(cfg.LineChannelAccessToken)
}

// ProvideAlertPusher 由配置建立通報推播器
func ProvideAlertPusher(client *Client, cfg *config.Config) *AlertPusher {
	return NewAlertPusher(client, cfg.LineGroupID)
}
