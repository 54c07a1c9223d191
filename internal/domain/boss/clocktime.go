package boss

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// minutesPerDay 一天的分鐘數
const minutesPerDay = 24 * 60

// ClockTime 時刻值（HH:MM，不含日期）
// 儲存與比對一律丟棄日期，跨午夜的運算會繞回隔日的同一表示法，
// 因此系統只在單日視野內有意義（與原始行為一致）
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime 解析 HH:MM 字串
// 接受 0-23 時、0-59 分；已經過去的時刻照原樣接受（不自動跳到隔天），
// 讓使用者可以補登今天稍早的死亡時間
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	return ClockTime{Hour: hour, Minute: minute}, nil
}

// ClockTimeOf 取出 time.Time 的時刻部分（分鐘精度，秒以下捨去）
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

// Add 加上指定分鐘數，跨午夜時繞回
func (c ClockTime) Add(minutes int) ClockTime {
	total := (c.Hour*60 + c.Minute + minutes) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return ClockTime{Hour: total / 60, Minute: total % 60}
}

// At 以 reference 的日期為基準還原成完整時間點
func (c ClockTime) At(reference time.Time) time.Time {
	return time.Date(
		reference.Year(), reference.Month(), reference.Day(),
		c.Hour, c.Minute, 0, 0, reference.Location(),
	)
}

// String 輸出 HH:MM
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
