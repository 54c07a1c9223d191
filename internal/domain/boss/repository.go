package boss

// Repository Boss 倉儲介面
type Repository interface {
	// Upsert 新增或整筆覆蓋同名 Boss
	// 覆蓋時 LastDeath/NextSpawn 重設為未設定、Notify 重設為開啟
	Upsert(name, location string, respawnMinutes int) error

	// FindByName 依名稱查找，不存在時回傳 nil, nil
	FindByName(name string) (*Boss, error)

	// FindAll 取得全部 Boss，依名稱遞增排序（固定順序方便測試重現）
	FindAll() ([]*Boss, error)

	// UpdateDeath 更新死亡時間與預測重生時間，回傳受影響列數
	UpdateDeath(name string, lastDeath, nextSpawn ClockTime) (int64, error)

	// SetNotify 設定是否通報，回傳受影響列數
	SetNotify(name string, enabled bool) (int64, error)
}
