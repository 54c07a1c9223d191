package metrics

import "github.com/google/wire"

// ProviderSet 指標 ProviderSet
var ProviderSet = wire.NewSet(
	New,
)
