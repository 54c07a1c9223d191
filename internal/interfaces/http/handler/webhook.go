package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"log/slog"

	"github.com/bossbot/backend/internal/application/command"
	"github.com/bossbot/backend/internal/infrastructure/line"
	"github.com/bossbot/backend/internal/infrastructure/log"
	"github.com/bossbot/backend/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
)

// WebhookHandler LINE Webhook 處理器
type WebhookHandler struct {
	interpreter   *command.Service
	client        *line.Client
	channelSecret string
	logger        *slog.Logger
	metrics       *metrics.Metrics
}

// NewWebhookHandler 建立 Webhook 處理器
func NewWebhookHandler(interpreter *command.Service, client *line.Client, channelSecret string, m *metrics.Metrics) *WebhookHandler {
	return &WebhookHandler{
		interpreter:   interpreter,
		client:        client,
		channelSecret: channelSecret,
		logger:        log.NewModuleLogger("http", "webhook"),
		metrics:       m,
	}
}

// Callback 處理 LINE Webhook 回呼
// 簽章驗證失敗一律 400，不會進到指令處理；回覆失敗只記錄不影響其他事件
func (h *WebhookHandler) Callback(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.countRequest("bad_request")
		c.String(http.StatusBadRequest, "failed to read body")
		return
	}

	signature := c.GetHeader(line.SignatureHeader)
	if !line.ValidateSignature(h.channelSecret, body, signature) {
		h.logger.Warn("webhook signature validation failed",
			"request_id", log.RequestIDFromContext(c.Request.Context()),
		)
		h.countRequest("bad_signature")
		c.String(http.StatusBadRequest, "invalid signature")
		return
	}

	var req line.WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.countRequest("bad_request")
		c.String(http.StatusBadRequest, "invalid payload")
		return
	}

	for i := range req.Events {
		h.handleEvent(&req.Events[i])
	}

	h.countRequest("ok")
	c.String(http.StatusOK, "OK")
}

// handleEvent 處理單一 webhook 事件
func (h *WebhookHandler) handleEvent(event *line.Event) {
	if !event.IsTextMessage() {
		return
	}

	text := strings.TrimSpace(event.Message.Text)

	// 在群組中輸入 groupid 取得群組 ID（傳輸層指令，不進指令解讀）
	if strings.EqualFold(text, "groupid") && event.Source.Type == line.SourceTypeGroup {
		h.reply(event.ReplyToken, fmt.Sprintf("群組ID：%s", event.Source.GroupID))
		return
	}

	h.reply(event.ReplyToken, h.interpreter.Execute(text))
}

// reply 回覆訊息，失敗只記錄
func (h *WebhookHandler) reply(replyToken, text string) {
	if err := h.client.Reply(replyToken, text); err != nil {
		h.logger.Error("failed to reply message", "error", err)
	}
}

// countRequest 記錄 webhook 請求結果
func (h *WebhookHandler) countRequest(outcome string) {
	if h.metrics != nil {
		h.metrics.WebhookRequests.WithLabelValues(outcome).Inc()
	}
}
