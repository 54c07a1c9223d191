package alert

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/bossbot/backend/internal/domain/boss"
	"github.com/bossbot/backend/internal/infrastructure/config"
	"github.com/bossbot/backend/internal/infrastructure/log"
	"github.com/bossbot/backend/internal/infrastructure/metrics"
)

// Poller 重生通報輪詢器
// 固定間隔掃描倉儲，分鐘精度比對「現在 == 重生前 N 分鐘」，命中就推播；
// 無狀態、不補發：錯過的 tick 就是錯過（盡力而為語意）
type Poller struct {
	repo        boss.Repository
	clock       boss.Clock
	pusher      Pusher
	leadMinutes int
	interval    time.Duration
	logger      *slog.Logger
	metrics     *metrics.Metrics

	ctx    context.Context
	cancel context.CancelFunc
}

// NewPoller 建立輪詢器
func NewPoller(repo boss.Repository, clock boss.Clock, pusher Pusher, cfg *config.Config, m *metrics.Metrics) *Poller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Poller{
		repo:        repo,
		clock:       clock,
		pusher:      pusher,
		leadMinutes: cfg.AlertLeadMinutes,
		interval:    time.Duration(cfg.PollIntervalSeconds) * time.Second,
		logger:      log.NewModuleLogger("alert", "poller"),
		metrics:     m,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start 啟動輪詢
func (p *Poller) Start() {
	p.logger.Info("alert poller started",
		"interval", p.interval.String(),
		"lead_minutes", p.leadMinutes,
	)
	go p.loop()
}

// Stop 停止輪詢
func (p *Poller) Stop() {
	p.cancel()
	p.logger.Info("alert poller stopped")
}

// loop 輪詢主迴圈
func (p *Poller) loop() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.checkOnce()
		}
	}
}

// checkOnce 執行一次掃描與比對
// 單筆推播失敗只記錄不中斷，同一 tick 內其餘 Boss 照常處理
func (p *Poller) checkOnce() {
	bosses, err := p.repo.FindAll()
	if err != nil {
		p.logger.Error("failed to scan bosses", "error", err)
		return
	}

	now := boss.ClockTimeOf(p.clock.Now())

	for _, b := range bosses {
		if !b.HasSchedule() || !b.Notify {
			continue
		}

		alertAt := boss.AlertTime(*b.NextSpawn, p.leadMinutes)
		if now != alertAt {
			continue
		}

		msg := fmt.Sprintf("⚠️ %s 即將於 %d 分鐘後在 %s 重生！請準備進場！",
			b.Name, p.leadMinutes, b.Location)

		if err := p.pusher.Push(msg); err != nil {
			p.logger.Error("failed to push alert",
				"boss", b.Name,
				"error", err,
			)
			if p.metrics != nil {
				p.metrics.PushErrors.Inc()
			}
			continue
		}

		p.logger.Info("respawn alert sent",
			"boss", b.Name,
			"next_spawn", b.NextSpawn.String(),
		)
		if p.metrics != nil {
			p.metrics.AlertsSent.Inc()
		}
	}
}
