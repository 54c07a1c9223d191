package storage

import "github.com/google/wire"

// ProviderSet 儲存層 ProviderSet
var ProviderSet = wire.NewSet(
	OpenDB,
	NewBossRepository,
)
