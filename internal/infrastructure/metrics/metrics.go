package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics 應用指標
type Metrics struct {
	// WebhookRequests webhook 請求數，依結果分類（ok / bad_signature / bad_request）
	WebhookRequests *prometheus.CounterVec

	// CommandsProcessed 處理的指令數，依意圖分類
	CommandsProcessed *prometheus.CounterVec

	// AlertsSent 成功送出的重生通報數
	AlertsSent prometheus.Counter

	// PushErrors 推播失敗數（吞掉不中斷，但要能觀察）
	PushErrors prometheus.Counter
}

// New 建立並註冊指標（預設 registry）
func New() *Metrics {
	return newWith(prometheus.DefaultRegisterer)
}

// newWith 以指定 registerer 建立指標，測試用獨立 registry 避免重複註冊
func newWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		WebhookRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bossbot",
			Subsystem: "webhook",
			Name:      "requests_total",
			Help:      "Total webhook requests by outcome.",
		}, []string{"outcome"}),
		CommandsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bossbot",
			Subsystem: "command",
			Name:      "processed_total",
			Help:      "Total chat commands processed by intent.",
		}, []string{"intent"}),
		AlertsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "bossbot",
			Subsystem: "alert",
			Name:      "sent_total",
			Help:      "Total respawn alerts pushed.",
		}),
		PushErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "bossbot",
			Subsystem: "alert",
			Name:      "push_errors_total",
			Help:      "Total failed pushes to the messaging platform.",
		}),
	}
}
