package boss

// DefaultLeadMinutes 預設提前通報分鐘數
const DefaultLeadMinutes = 5

// NextSpawn 由死亡時刻與重生間隔算出預測重生時刻
// 運算在單日時刻上進行，超過午夜會繞回隔日的同一 HH:MM 表示
func NextSpawn(death ClockTime, respawnMinutes int) ClockTime {
	return death.Add(respawnMinutes)
}

// AlertTime 由預測重生時刻回推通報時刻（重生前 leadMinutes 分鐘）
func AlertTime(spawn ClockTime, leadMinutes int) ClockTime {
	return spawn.Add(-leadMinutes)
}

// ValidRespawnMinutes 重生間隔必須為正整數
func ValidRespawnMinutes(minutes int) bool {
	return minutes > 0
}
