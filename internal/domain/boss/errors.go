package boss

import "errors"

// Boss 相關錯誤
var (
	// ErrInvalidClockTime 時刻格式錯誤
	ErrInvalidClockTime = errors.New("invalid clock time, expected HH:MM")
)
