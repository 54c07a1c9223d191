package command

import "strings"

// Kind 指令意圖
type Kind int

const (
	// KindUnknown 無法辨識的輸入
	KindUnknown Kind = iota
	// KindCreate 新增 Boss
	KindCreate
	// KindReportDeath 回報死亡時間
	KindReportDeath
	// KindList 列出全部 Boss
	KindList
	// KindToggleNotify 切換通報開關
	KindToggleNotify
)

// String 意圖名稱（指標標籤用）
func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "create"
	case KindReportDeath:
		return "report_death"
	case KindList:
		return "list"
	case KindToggleNotify:
		return "toggle_notify"
	default:
		return "unknown"
	}
}

// 指令字面記號
const (
	tokenCreate    = "新增"
	tokenDeath     = "死亡"
	tokenList      = "清單"
	tokenNotifyOn  = "通報開"
	tokenNotifyOff = "通報關"
)

// Intent 解析後的指令意圖
type Intent struct {
	Kind       Kind
	Name       string
	Location   string
	MinutesRaw string // 新增指令的分鐘欄位，交給執行端驗證
	TimeRaw    string // 死亡回報的 HH:MM 欄位，交給執行端驗證
	Enable     bool   // 通報開關目標狀態
}

// ParseIntent 把一行文字解析成指令意圖
// 以空白切詞，依固定優先順序比對：新增 → 死亡回報 → 清單 → 通報開關 → 未知
// 只看詞數與字面記號，不做模糊比對
func ParseIntent(text string) Intent {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return Intent{Kind: KindUnknown}
	}

	// 新增 名稱 地點 分鐘
	if parts[0] == tokenCreate && len(parts) >= 4 {
		return Intent{
			Kind:       KindCreate,
			Name:       parts[1],
			Location:   parts[2],
			MinutesRaw: parts[3],
		}
	}

	// 名稱 死亡 HH:MM
	if len(parts) == 3 && parts[1] == tokenDeath {
		return Intent{
			Kind:    KindReportDeath,
			Name:    parts[0],
			TimeRaw: parts[2],
		}
	}

	// 清單
	if len(parts) == 1 && parts[0] == tokenList {
		return Intent{Kind: KindList}
	}

	// 名稱 通報開 / 名稱 通報關
	if len(parts) == 2 && (parts[1] == tokenNotifyOn || parts[1] == tokenNotifyOff) {
		return Intent{
			Kind:   KindToggleNotify,
			Name:   parts[0],
			Enable: parts[1] == tokenNotifyOn,
		}
	}

	return Intent{Kind: KindUnknown}
}
