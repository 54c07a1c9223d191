package handler

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bossbot/backend/internal/application/command"
	"github.com/bossbot/backend/internal/domain/boss"
	"github.com/bossbot/backend/internal/infrastructure/line"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-channel-secret"

// fakeRepo 單筆資料的記憶體倉儲
type fakeRepo struct {
	bosses map[string]*boss.Boss
}

func (f *fakeRepo) Upsert(name, location string, respawnMinutes int) error {
	f.bosses[name] = &boss.Boss{Name: name, Location: location, RespawnMinutes: respawnMinutes, Notify: true}
	return nil
}

func (f *fakeRepo) FindByName(name string) (*boss.Boss, error) {
	return f.bosses[name], nil
}

func (f *fakeRepo) FindAll() ([]*boss.Boss, error) { return nil, nil }

func (f *fakeRepo) UpdateDeath(name string, lastDeath, nextSpawn boss.ClockTime) (int64, error) {
	b, ok := f.bosses[name]
	if !ok {
		return 0, nil
	}
	b.LastDeath = &lastDeath
	b.NextSpawn = &nextSpawn
	return 1, nil
}

func (f *fakeRepo) SetNotify(name string, enabled bool) (int64, error) {
	b, ok := f.bosses[name]
	if !ok {
		return 0, nil
	}
	b.Notify = enabled
	return 1, nil
}

// replyCapture 攔截送往 LINE API 的回覆
type replyCapture struct {
	texts []string
}

// setupWebhook 組出測試用路由與回覆攔截
func setupWebhook(t *testing.T) (*gin.Engine, *replyCapture) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	capture := &replyCapture{}
	lineSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		var req struct {
			Messages []struct {
				Text string `json:"text"`
			} `json:"messages"`
		}
		_ = json.Unmarshal(data, &req)
		for _, m := range req.Messages {
			capture.texts = append(capture.texts, m.Text)
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(lineSrv.Close)

	repo := &fakeRepo{bosses: make(map[string]*boss.Boss)}
	interpreter := command.NewService(repo, nil)
	client := line.NewClient("test-token", line.WithBaseURL(lineSrv.URL))
	h := NewWebhookHandler(interpreter, client, testSecret, nil)

	router := gin.New()
	router.POST("/callback", h.Callback)
	return router, capture
}

// sign 計算測試請求體的簽章
func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// postCallback 送出 webhook 請求
func postCallback(router *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/callback", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(line.SignatureHeader, signature)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// textEventBody 組出單一文字訊息事件的請求體
func textEventBody(t *testing.T, text, sourceType, groupID string) []byte {
	t.Helper()
	req := line.WebhookRequest{
		Events: []line.Event{{
			Type:       line.EventTypeMessage,
			ReplyToken: "reply-token-1",
			Source:     line.Source{Type: sourceType, GroupID: groupID},
			Message:    line.Message{Type: line.MessageTypeText, Text: text},
		}},
	}
	data, err := json.Marshal(req)
	require.NoError(t, err)
	return data
}

func TestCallbackRejectsBadSignature(t *testing.T) {
	router, capture := setupWebhook(t)

	body := textEventBody(t, "清單", "user", "")

	// 缺簽章
	w := postCallback(router, body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 錯簽章
	w = postCallback(router, body, "aW52YWxpZA==")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 簽章失敗不應觸發任何回覆
	assert.Empty(t, capture.texts)
}

func TestCallbackRejectsMalformedPayload(t *testing.T) {
	router, _ := setupWebhook(t)

	body := []byte("not json")
	w := postCallback(router, body, sign(body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCallbackExecutesCommand(t *testing.T) {
	router, capture := setupWebhook(t)

	body := textEventBody(t, "新增 飛龍 山谷 180", "user", "")
	w := postCallback(router, body, sign(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	require.Len(t, capture.texts, 1)
	assert.Equal(t, "✅ 已新增 飛龍（山谷）重生間隔 180 分鐘", capture.texts[0])
}

func TestCallbackGroupID(t *testing.T) {
	router, capture := setupWebhook(t)

	// 群組內輸入 groupid（大小寫不拘）回覆群組 ID
	body := textEventBody(t, "GroupID", line.SourceTypeGroup, "C123456")
	w := postCallback(router, body, sign(body))

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, capture.texts, 1)
	assert.Equal(t, "群組ID：C123456", capture.texts[0])

	// 非群組來源的 groupid 當一般指令處理（落到用法說明）
	capture.texts = nil
	body = textEventBody(t, "groupid", "user", "")
	postCallback(router, body, sign(body))
	require.Len(t, capture.texts, 1)
	assert.Contains(t, capture.texts[0], "指令錯誤")
}

func TestCallbackSkipsNonTextEvents(t *testing.T) {
	router, capture := setupWebhook(t)

	req := line.WebhookRequest{
		Events: []line.Event{
			{Type: "follow", ReplyToken: "rt-1"},
			{Type: line.EventTypeMessage, ReplyToken: "rt-2", Message: line.Message{Type: "sticker"}},
		},
	}
	body, err := json.Marshal(req)
	require.NoError(t, err)

	w := postCallback(router, body, sign(body))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, capture.texts)
}
