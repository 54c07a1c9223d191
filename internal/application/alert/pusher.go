package alert

// Pusher 推播介面（定義在 application 層）
// 這是應用層需要的技術能力，不是領域概念；由 LINE 基礎設施提供實作
type Pusher interface {
	Push(text string) error
}
