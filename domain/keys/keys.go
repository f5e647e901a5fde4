package keys

import (
	"strings"
)

const (
	// PfxPriceFeed is used for prefixing cached oracle rates
	PfxPriceFeed = "pricefeed"
)

// CustomKey is used to join the customized key by components with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the cache key by components
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}
