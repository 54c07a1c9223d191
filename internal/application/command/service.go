package command

import (
	"fmt"
	"strconv"
	"strings"

	"log/slog"

	"github.com/bossbot/backend/internal/domain/boss"
	"github.com/bossbot/backend/internal/infrastructure/log"
	"github.com/bossbot/backend/internal/infrastructure/metrics"
)

// 回覆文案
const (
	usageText = "指令：\n新增 名稱 地點 分鐘\n名稱 死亡 HH:MM\n清單\n名稱 通報開/通報關"
	errorText = "指令錯誤，請用：\n新增 名稱 地點 分鐘\n名稱 死亡 HH:MM\n清單\n名稱 通報開/通報關"

	replyInvalidMinutes = "❌ 重生間隔必須是正整數"
	replyInvalidTime    = "❌ 時間格式錯誤，請用 HH:MM（例如 09:30）"
	replyNoBosses       = "目前沒有任何 Boss 資料。"
	replyInternalError  = "❌ 系統發生錯誤，請稍後再試"

	notSetText = "未設定"
)

// Service 指令解讀服務
// 把聊天文字轉成意圖並對倉儲執行，回傳回覆文字；所有錯誤都收斂成回覆，不往外拋
type Service struct {
	repo    boss.Repository
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService 建立指令解讀服務
func NewService(repo boss.Repository, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		logger:  log.NewModuleLogger("command", "service"),
		metrics: m,
	}
}

// Execute 處理一行指令並回傳回覆文字
func (s *Service) Execute(text string) string {
	intent := ParseIntent(text)
	s.countIntent(intent.Kind)

	switch intent.Kind {
	case KindCreate:
		return s.create(intent)
	case KindReportDeath:
		return s.reportDeath(intent)
	case KindList:
		return s.list()
	case KindToggleNotify:
		return s.toggleNotify(intent)
	default:
		if strings.TrimSpace(text) == "" {
			return usageText
		}
		return errorText
	}
}

// create 新增或覆蓋 Boss
func (s *Service) create(intent Intent) string {
	minutes, err := strconv.Atoi(intent.MinutesRaw)
	if err != nil || !boss.ValidRespawnMinutes(minutes) {
		return replyInvalidMinutes
	}

	if err := s.repo.Upsert(intent.Name, intent.Location, minutes); err != nil {
		s.logger.Error("failed to upsert boss", "name", intent.Name, "error", err)
		return replyInternalError
	}

	return fmt.Sprintf("✅ 已新增 %s（%s）重生間隔 %d 分鐘", intent.Name, intent.Location, minutes)
}

// reportDeath 回報死亡時間並更新預測重生
func (s *Service) reportDeath(intent Intent) string {
	found, err := s.repo.FindByName(intent.Name)
	if err != nil {
		s.logger.Error("failed to find boss", "name", intent.Name, "error", err)
		return replyInternalError
	}
	if found == nil {
		return notFoundReply(intent.Name)
	}

	death, err := boss.ParseClockTime(intent.TimeRaw)
	if err != nil {
		return replyInvalidTime
	}

	next := boss.NextSpawn(death, found.RespawnMinutes)
	if _, err := s.repo.UpdateDeath(intent.Name, death, next); err != nil {
		s.logger.Error("failed to update death time", "name", intent.Name, "error", err)
		return replyInternalError
	}

	return fmt.Sprintf("☠️ 已設定 %s 死亡時間 %s\n預測重生時間：%s", intent.Name, intent.TimeRaw, next)
}

// list 列出全部 Boss
func (s *Service) list() string {
	bosses, err := s.repo.FindAll()
	if err != nil {
		s.logger.Error("failed to list bosses", "error", err)
		return replyInternalError
	}
	if len(bosses) == 0 {
		return replyNoBosses
	}

	blocks := make([]string, 0, len(bosses))
	for _, b := range bosses {
		blocks = append(blocks, renderBoss(b))
	}
	return strings.Join(blocks, "\n\n")
}

// toggleNotify 切換通報開關
// 與死亡回報一致：名稱不存在時明確回覆找不到，而不是靜默略過
func (s *Service) toggleNotify(intent Intent) string {
	affected, err := s.repo.SetNotify(intent.Name, intent.Enable)
	if err != nil {
		s.logger.Error("failed to set notify", "name", intent.Name, "error", err)
		return replyInternalError
	}
	if affected == 0 {
		return notFoundReply(intent.Name)
	}

	state := "關閉"
	if intent.Enable {
		state = "開啟"
	}
	return fmt.Sprintf("🔔 %s 通報已%s", intent.Name, state)
}

// renderBoss 把一筆 Boss 渲染成清單區塊
func renderBoss(b *boss.Boss) string {
	lastDeath := notSetText
	if b.LastDeath != nil {
		lastDeath = b.LastDeath.String()
	}
	nextSpawn := notSetText
	if b.NextSpawn != nil {
		nextSpawn = b.NextSpawn.String()
	}
	notify := "關"
	if b.Notify {
		notify = "開"
	}

	return fmt.Sprintf(
		"🐲 %s（%s）\n重生間隔：%d 分鐘\n死亡時間：%s\n下次重生：%s\n通知：%s",
		b.Name, b.Location, b.RespawnMinutes, lastDeath, nextSpawn, notify,
	)
}

// notFoundReply 找不到名稱時的回覆
func notFoundReply(name string) string {
	return fmt.Sprintf("❌ 找不到 %s，請先用『新增』指令建立", name)
}

// countIntent 記錄指令計數
func (s *Service) countIntent(kind Kind) {
	if s.metrics != nil {
		s.metrics.CommandsProcessed.WithLabelValues(kind.String()).Inc()
	}
}
