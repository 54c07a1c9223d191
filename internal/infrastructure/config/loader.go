package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvConfigFile 配置檔路徑環境變數名
const EnvConfigFile = "BOSSBOT_CONFIG"

// Load 分層載入配置，優先順序由低到高：
//  1. 預設值 (NewConfig)
//  2. YAML 檔（BOSSBOT_CONFIG 有設定時）
//  3. 環境變數（BOSSBOT_ 前綴）
func Load() (*Config, error) {
	base := NewConfig()

	k := koanf.New(".")

	// 配置檔（可選）
	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// 環境變數：BOSSBOT_ADDR、BOSSBOT_TIME_OFFSET_MINUTES、...
	// 保留底線直接對應扁平鍵
	envProvider := env.Provider("BOSSBOT_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "bossbot_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	// 基本驗證
	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.AlertLeadMinutes <= 0 {
		return nil, errors.New("alert_lead_minutes must be positive")
	}
	if cfg.PollIntervalSeconds <= 0 {
		return nil, errors.New("poll_interval_seconds must be positive")
	}

	return &cfg, nil
}
