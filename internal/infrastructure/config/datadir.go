package config

import (
	"os"
	"path/filepath"
	"sync"
)

const (
	// EnvDataDir 資料目錄環境變數名
	EnvDataDir = "BOSSBOT_DATA_DIR"
	// DefaultDataDirName 預設資料目錄名
	DefaultDataDirName = ".bossbot"
)

var (
	dataDirOnce sync.Once
	dataDirPath string
)

// GetDataDir 取得資料根目錄
// 優先讀取 BOSSBOT_DATA_DIR 環境變數，預設 ~/.bossbot/
// 所有資料路徑都必須經過這個入口，禁止自行拼接 homeDir
func GetDataDir() string {
	dataDirOnce.Do(func() {
		if dir := os.Getenv(EnvDataDir); dir != "" {
			dataDirPath = dir
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				// 回退到當前目錄
				dataDirPath = DefaultDataDirName
				return
			}
			dataDirPath = filepath.Join(homeDir, DefaultDataDirName)
		}
	})
	return dataDirPath
}

// ResetDataDir 重置資料目錄快取（僅供測試）
func ResetDataDir() {
	dataDirOnce = sync.Once{}
	dataDirPath = ""
}
