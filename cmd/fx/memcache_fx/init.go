package memcache_fx

import (
	"go.uber.org/fx"
	mem "travelai/pkg/memcache"
)

var Module = fx.Provide(provideMemcacheClient)

func provideMemcacheClient() *mem.Store {
	return mem.NewStore()
}
