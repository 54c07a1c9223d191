package alert

import "github.com/google/wire"

// ProviderSet 通報輪詢 ProviderSet
var ProviderSet = wire.NewSet(
	NewPoller,
)
