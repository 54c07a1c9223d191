package storage

import (
	"database/sql"
	"fmt"

	"github.com/bossbot/backend/internal/domain/boss"
)

// bossRepository Boss SQLite 倉儲實作
type bossRepository struct {
	db *sql.DB
}

// NewBossRepository 建立 Boss 倉儲實例
func NewBossRepository(db *sql.DB) boss.Repository {
	return &bossRepository{db: db}
}

// Upsert 新增或整筆覆蓋同名 Boss
// INSERT OR REPLACE 不帶舊欄位，覆蓋後 last_death/next_spawn 為 NULL、notify 回到預設
func (r *bossRepository) Upsert(name, location string, respawnMinutes int) error {
	query := `
		INSERT OR REPLACE INTO bosses (name, location, respawn_minutes)
		VALUES (?, ?, ?)`

	if _, err := r.db.Exec(query, name, location, respawnMinutes); err != nil {
		return fmt.Errorf("failed to upsert boss: %w", err)
	}
	return nil
}

// FindByName 依名稱查找，不存在時回傳 nil, nil
func (r *bossRepository) FindByName(name string) (*boss.Boss, error) {
	query := `
		SELECT name, location, respawn_minutes, last_death, next_spawn, notify
		FROM bosses
		WHERE name = ?`

	b, err := scanBoss(r.db.QueryRow(query, name))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query boss: %w", err)
	}
	return b, nil
}

// FindAll 取得全部 Boss，依名稱遞增排序
func (r *bossRepository) FindAll() ([]*boss.Boss, error) {
	query := `
		SELECT name, location, respawn_minutes, last_death, next_spawn, notify
		FROM bosses
		ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bosses: %w", err)
	}
	defer rows.Close()

	var bosses []*boss.Boss
	for rows.Next() {
		b, err := scanBoss(rows)
		if err != nil {
			continue
		}
		bosses = append(bosses, b)
	}

	return bosses, rows.Err()
}

// UpdateDeath 更新死亡時間與預測重生時間
func (r *bossRepository) UpdateDeath(name string, lastDeath, nextSpawn boss.ClockTime) (int64, error) {
	query := `UPDATE bosses SET last_death = ?, next_spawn = ? WHERE name = ?`

	result, err := r.db.Exec(query, lastDeath.String(), nextSpawn.String(), name)
	if err != nil {
		return 0, fmt.Errorf("failed to update death time: %w", err)
	}
	return result.RowsAffected()
}

// SetNotify 設定是否通報
func (r *bossRepository) SetNotify(name string, enabled bool) (int64, error) {
	query := `UPDATE bosses SET notify = ? WHERE name = ?`

	notify := 0
	if enabled {
		notify = 1
	}

	result, err := r.db.Exec(query, notify, name)
	if err != nil {
		return 0, fmt.Errorf("failed to set notify: %w", err)
	}
	return result.RowsAffected()
}

// rowScanner QueryRow 與 Rows 共用的掃描介面
type rowScanner interface {
	Scan(dest ...any) error
}

// scanBoss 掃描一列 bosses 資料
func scanBoss(row rowScanner) (*boss.Boss, error) {
	var b boss.Boss
	var lastDeath, nextSpawn sql.NullString
	var notify int

	if err := row.Scan(
		&b.Name,
		&b.Location,
		&b.RespawnMinutes,
		&lastDeath,
		&nextSpawn,
		&notify,
	); err != nil {
		return nil, err
	}

	if lastDeath.Valid {
		ct, err := boss.ParseClockTime(lastDeath.String)
		if err == nil {
			b.LastDeath = &ct
		}
	}
	if nextSpawn.Valid {
		ct, err := boss.ParseClockTime(nextSpawn.String)
		if err == nil {
			b.NextSpawn = &ct
		}
	}
	b.Notify = notify == 1

	return &b, nil
}

// 編譯時檢查介面實作
var _ boss.Repository = (*bossRepository)(nil)
