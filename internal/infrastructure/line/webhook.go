package line

// Webhook 事件型別與來源型別常數
const (
	EventTypeMessage = "message"
	MessageTypeText  = "text"
	SourceTypeGroup  = "group"
)

// WebhookRequest Webhook 請求封包
type WebhookRequest struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

// Event Webhook 事件
type Event struct {
	Type       string  `json:"type"`
	ReplyToken string  `json:"replyToken"`
	Source     Source  `json:"source"`
	Message    Message `json:"message"`
}

// Source 事件來源（使用者、群組或聊天室）
type Source struct {
	Type    string `json:"type"`
	UserID  string `json:"userId"`
	GroupID string `json:"groupId"`
}

// Message 訊息內容
type Message struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// IsTextMessage 是否為文字訊息事件
func (e *Event) IsTextMessage() bool {
	return e.Type == EventTypeMessage && e.Message.Type == MessageTypeText
}
