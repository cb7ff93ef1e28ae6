package common

import "time"

const (
	ProviderKeyCacheTTL = 5 * time.Minute
)
