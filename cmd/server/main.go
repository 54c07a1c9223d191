package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bossbot/backend/internal/infrastructure/log"
	"github.com/bossbot/backend/internal/wire"
)

func main() {
	// 初始化日誌系統
	log.Init(nil)

	// Wire 生成的初始化函式
	app, err := wire.InitializeApp()
	if err != nil {
		log.GetLogger().Error("failed to initialize application",
			"error", err,
		)
		os.Exit(1)
	}

	// 啟動所有服務
	if err := app.Start(); err != nil {
		log.GetLogger().Error("failed to start application",
			"error", err,
		)
		os.Exit(1)
	}

	// 優雅關閉
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.GetLogger().Info("shutting down application...")
	if err := app.Stop(); err != nil {
		log.GetLogger().Error("error during application shutdown",
			"error", err,
		)
	}
	log.GetLogger().Info("application stopped")
}
