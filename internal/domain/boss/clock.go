package boss

import "time"

// Clock 時間來源
// 全系統的「現在時間」都必須經過這個介面，偏移量語意才會一致
type Clock interface {
	Now() time.Time
}

// OffsetClock 帶固定分鐘偏移的系統時鐘
// 伺服器時區與遊戲時區不一致時（例如 UTC 主機要用台灣時間），
// 以固定偏移取代時區資料庫，例如 UTC+8 設 480
type OffsetClock struct {
	offset time.Duration
}

// NewOffsetClock 建立帶偏移的時鐘，offsetMinutes 可為 0 或負值
func NewOffsetClock(offsetMinutes int) *OffsetClock {
	return &OffsetClock{offset: time.Duration(offsetMinutes) * time.Minute}
}

// Now 回傳套用偏移後的現在時間
func (c *OffsetClock) Now() time.Time {
	return time.Now().UTC().Add(c.offset)
}

var _ Clock = (*OffsetClock)(nil)
