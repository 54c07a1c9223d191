package config

// Config 應用配置
// 扁平鍵值，環境變數加 BOSSBOT_ 前綴後對應 koanf 標籤
// 例如 BOSSBOT_LINE_CHANNEL_SECRET -> line_channel_secret
type Config struct {
	// Addr HTTP 監聽位址
	Addr string `koanf:"addr"`

	// DatabasePath SQLite 資料庫路徑，留空表示 <資料目錄>/boss.db
	DatabasePath string `koanf:"database_path"`

	// LineChannelAccessToken LINE Messaging API 存取權杖
	LineChannelAccessToken string `koanf:"line_channel_access_token"`

	// LineChannelSecret LINE Webhook 簽章密鑰
	LineChannelSecret string `koanf:"line_channel_secret"`

	// LineGroupID 指定只通報的群組（可選）；留空改用 broadcast
	LineGroupID string `koanf:"line_group_id"`

	// TimeOffsetMinutes 固定時差（分鐘）
	// 伺服器是 UTC 而要用台灣時間時設 480 (UTC+8)
	TimeOffsetMinutes int `koanf:"time_offset_minutes"`

	// AlertLeadMinutes 重生前幾分鐘通報
	AlertLeadMinutes int `koanf:"alert_lead_minutes"`

	// PollIntervalSeconds 輪詢間隔（秒）
	PollIntervalSeconds int `koanf:"poll_interval_seconds"`
}

// NewConfig 建立預設配置
func NewConfig() *Config {
	return &Config{
		Addr:                ":8080",
		DatabasePath:        "", // 空表示使用資料目錄下的 boss.db
		TimeOffsetMinutes:   0,
		AlertLeadMinutes:    5,
		PollIntervalSeconds: 60,
	}
}
