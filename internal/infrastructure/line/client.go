package line

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/bossbot/backend/internal/infrastructure/log"
)

// defaultBaseURL LINE Messaging API 端點
const defaultBaseURL = "https://api.line.me"

// Client LINE Messaging API 客戶端
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	logger      *slog.Logger
}

// Option 客戶端選項
type Option func(*Client)

// WithBaseURL 覆蓋 API 端點（測試用）
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient 覆蓋底層 HTTP 客戶端
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient 建立 LINE 客戶端
func NewClient(accessToken string, opts ...Option) *Client {
	c := &Client{
		baseURL:     defaultBaseURL,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: log.NewModuleLogger("line", "client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// textMessage 文字訊息
type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// replyRequest 回覆請求
type replyRequest struct {
	ReplyToken string        `json:"replyToken"`
	Messages   []textMessage `json:"messages"`
}

// pushRequest 推播請求
type pushRequest struct {
	To       string        `json:"to"`
	Messages []textMessage `json:"messages"`
}

// broadcastRequest 廣播請求
type broadcastRequest struct {
	Messages []textMessage `json:"messages"`
}

// Reply 以 reply token 回覆文字訊息
func (c *Client) Reply(replyToken, text string) error {
	body := replyRequest{
		ReplyToken: replyToken,
		Messages:   []textMessage{{Type: "text", Text: text}},
	}
	return c.post("/v2/bot/message/reply", body)
}

// Push 推播文字訊息給指定對象（使用者、群組或聊天室 ID）
func (c *Client) Push(to, text string) error {
	body := pushRequest{
		To:       to,
		Messages: []textMessage{{Type: "text", Text: text}},
	}
	return c.post("/v2/bot/message/push", body)
}

// Broadcast 廣播文字訊息給所有好友
func (c *Client) Broadcast(text string) error {
	body := broadcastRequest{
		Messages: []textMessage{{Type: "text", Text: text}},
	}
	return c.post("/v2/bot/message/broadcast", body)
}

// post 送出 JSON 請求
func (c *Client) post(path string, body any) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + path
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("LINE API request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("LINE API returned status %d: %s", resp.StatusCode, excerpt)
	}

	c.logger.Debug("LINE API request succeeded",
		"path", path,
		"status", resp.StatusCode,
	)
	return nil
}
