package command

import "github.com/google/wire"

// ProviderSet 指令服務 ProviderSet
var ProviderSet = wire.NewSet(
	NewService,
)
