package boss

// Boss 追蹤中的 Boss 實體
// name 為唯一鍵，重複新增會整筆覆蓋（死亡時間、預測重生與通報設定一併重設）
type Boss struct {
	Name           string     // 唯一名稱
	Location       string     // 出沒地點（僅作描述）
	RespawnMinutes int        // 重生間隔（分鐘，必須為正整數）
	LastDeath      *ClockTime // 最後回報的死亡時間，未回報前為 nil
	NextSpawn      *ClockTime // 預測重生時間 = LastDeath + RespawnMinutes，未回報前為 nil
	Notify         bool       // 是否通報，預設開啟
}

// HasSchedule 是否已有預測重生時間
func (b *Boss) HasSchedule() bool {
	return b.NextSpawn != nil
}

// RecordDeath 記錄一次死亡並更新預測重生時間
func (b *Boss) RecordDeath(death ClockTime) {
	next := NextSpawn(death, b.RespawnMinutes)
	b.LastDeath = &death
	b.NextSpawn = &next
}
