package command

import (
	"sort"
	"testing"

	"github.com/bossbot/backend/internal/domain/boss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo 記憶體倉儲，模擬 SQLite 的覆蓋與零列更新語意
type fakeRepo struct {
	bosses map[string]*boss.Boss
	err    error // 非 nil 時所有操作回傳此錯誤
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bosses: make(map[string]*boss.Boss)}
}

func (f *fakeRepo) Upsert(name, location string, respawnMinutes int) error {
	if f.err != nil {
		return f.err
	}
	f.bosses[name] = &boss.Boss{
		Name:           name,
		Location:       location,
		RespawnMinutes: respawnMinutes,
		Notify:         true,
	}
	return nil
}

func (f *fakeRepo) FindByName(name string) (*boss.Boss, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.bosses[name]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) FindAll() ([]*boss.Boss, error) {
	if f.err != nil {
		return nil, f.err
	}
	names := make([]string, 0, len(f.bosses))
	for name := range f.bosses {
		names = append(names, name)
	}
	sort.Strings(names)

	all := make([]*boss.Boss, 0, len(names))
	for _, name := range names {
		copied := *f.bosses[name]
		all = append(all, &copied)
	}
	return all, nil
}

func (f *fakeRepo) UpdateDeath(name string, lastDeath, nextSpawn boss.ClockTime) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	b, ok := f.bosses[name]
	if !ok {
		return 0, nil
	}
	b.LastDeath = &lastDeath
	b.NextSpawn = &nextSpawn
	return 1, nil
}

func (f *fakeRepo) SetNotify(name string, enabled bool) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	b, ok := f.bosses[name]
	if !ok {
		return 0, nil
	}
	b.Notify = enabled
	return 1, nil
}

var _ boss.Repository = (*fakeRepo)(nil)

func TestExecuteCreate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	reply := svc.Execute("新增 飛龍 山谷 180")
	assert.Equal(t, "✅ 已新增 飛龍（山谷）重生間隔 180 分鐘", reply)

	created, err := repo.FindByName("飛龍")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "山谷", created.Location)
	assert.Equal(t, 180, created.RespawnMinutes)
	assert.Nil(t, created.LastDeath)
	assert.Nil(t, created.NextSpawn)
	assert.True(t, created.Notify)
}

func TestExecuteCreateInvalidMinutes(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	// 非整數
	reply := svc.Execute("新增 飛龍 山谷 abc")
	assert.Equal(t, replyInvalidMinutes, reply)

	// 零與負數
	assert.Equal(t, replyInvalidMinutes, svc.Execute("新增 飛龍 山谷 0"))
	assert.Equal(t, replyInvalidMinutes, svc.Execute("新增 飛龍 山谷 -5"))

	// 驗證失敗不應寫入
	created, err := repo.FindByName("飛龍")
	require.NoError(t, err)
	assert.Nil(t, created)
}

func TestExecuteReportDeath(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	svc.Execute("新增 飛龍 山谷 180")

	reply := svc.Execute("飛龍 死亡 10:00")
	assert.Equal(t, "☠️ 已設定 飛龍 死亡時間 10:00\n預測重生時間：13:00", reply)

	updated, err := repo.FindByName("飛龍")
	require.NoError(t, err)
	assert.Equal(t, "10:00", updated.LastDeath.String())
	assert.Equal(t, "13:00", updated.NextSpawn.String())
}

func TestExecuteReportDeathNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	reply := svc.Execute("飛龍 死亡 10:00")
	assert.Equal(t, "❌ 找不到 飛龍，請先用『新增』指令建立", reply)
	assert.Empty(t, repo.bosses, "找不到時不應有任何寫入")
}

func TestExecuteReportDeathInvalidTime(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	svc.Execute("新增 飛龍 山谷 180")

	reply := svc.Execute("飛龍 死亡 25:99")
	assert.Equal(t, replyInvalidTime, reply)

	// 時間格式錯誤不應寫入死亡時間
	found, err := repo.FindByName("飛龍")
	require.NoError(t, err)
	assert.Nil(t, found.LastDeath)
}

func TestExecuteList(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	// 空清單
	assert.Equal(t, replyNoBosses, svc.Execute("清單"))

	svc.Execute("新增 飛龍 山谷 180")
	svc.Execute("飛龍 死亡 10:00")

	reply := svc.Execute("清單")
	assert.Contains(t, reply, "🐲 飛龍（山谷）")
	assert.Contains(t, reply, "重生間隔：180 分鐘")
	assert.Contains(t, reply, "死亡時間：10:00")
	assert.Contains(t, reply, "下次重生：13:00")
	assert.Contains(t, reply, "通知：開")
}

func TestExecuteListNotSet(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	svc.Execute("新增 飛龍 山谷 180")

	reply := svc.Execute("清單")
	assert.Contains(t, reply, "死亡時間：未設定")
	assert.Contains(t, reply, "下次重生：未設定")
}

func TestExecuteToggleNotify(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	svc.Execute("新增 飛龍 山谷 180")

	// 關閉兩次仍是關閉（冪等）
	assert.Equal(t, "🔔 飛龍 通報已關閉", svc.Execute("飛龍 通報關"))
	assert.Equal(t, "🔔 飛龍 通報已關閉", svc.Execute("飛龍 通報關"))

	found, _ := repo.FindByName("飛龍")
	assert.False(t, found.Notify)

	assert.Equal(t, "🔔 飛龍 通報已開啟", svc.Execute("飛龍 通報開"))
	found, _ = repo.FindByName("飛龍")
	assert.True(t, found.Notify)
}

func TestExecuteToggleNotifyNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	// 與死亡回報一致：明確回覆找不到
	reply := svc.Execute("飛龍 通報關")
	assert.Equal(t, "❌ 找不到 飛龍，請先用『新增』指令建立", reply)
}

func TestExecuteUnknown(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	assert.Equal(t, usageText, svc.Execute(""))
	assert.Equal(t, usageText, svc.Execute("   "))
	assert.Equal(t, errorText, svc.Execute("亂打的指令"))
	assert.Equal(t, errorText, svc.Execute("飛龍 出現 10:00"))
}

func TestExecuteRepoError(t *testing.T) {
	repo := newFakeRepo()
	repo.err = assert.AnError
	svc := NewService(repo, nil)

	// 倉儲錯誤收斂成失敗回覆，不往外拋
	assert.Equal(t, replyInternalError, svc.Execute("新增 飛龍 山谷 180"))
	assert.Equal(t, replyInternalError, svc.Execute("飛龍 死亡 10:00"))
	assert.Equal(t, replyInternalError, svc.Execute("清單"))
	assert.Equal(t, replyInternalError, svc.Execute("飛龍 通報關"))
}
