package log

import (
	"log/slog"
	"os"
	"strings"
)

// 全局 logger 實例
var (
	defaultLogger *slog.Logger
	debugMode     bool
)

// Init 初始化日誌系統
func Init(cfg *Config) {
	if cfg == nil {
		cfg = NewConfigFromEnv()
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	// 開發環境加上來源檔資訊
	if cfg.AddSource {
		opts.AddSource = true
	}

	// 依格式選擇處理器
	var logHandler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		logHandler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		logHandler = slog.NewTextHandler(os.Stdout, opts)
	}

	// 加上服務識別
	defaultLogger = slog.New(logHandler.WithAttrs([]slog.Attr{
		slog.String("service", "bossbot"),
	}))

	debugMode = strings.ToLower(cfg.Level) == "debug"

	slog.SetDefault(defaultLogger)
}

// GetLogger 取得預設 logger
func GetLogger() *slog.Logger {
	if defaultLogger == nil {
		// 未初始化，使用預設配置
		Init(nil)
	}
	return defaultLogger
}

// With 建立帶額外欄位的 logger
func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}

// NewModuleLogger 為特定模組建立 logger
func NewModuleLogger(module, component string) *slog.Logger {
	return GetLogger().With(
		slog.String("module", module),
		slog.String("component", component),
	)
}

// IsDebugMode 是否為除錯模式
func IsDebugMode() bool {
	return debugMode
}

// parseLevel 解析日誌級別
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
