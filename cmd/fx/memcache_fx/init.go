package memcache_fx

import (
	"go.uber.org/fx"

	mem "wayfare/pkg/memcache"
)

var Module = fx.Provide(provideShareTokenStore)

func provideShareTokenStore() mem.ShareTokenStore {
	return mem.NewShareTokens()
}
