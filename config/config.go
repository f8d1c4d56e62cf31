package config

import "github.com/MixinNetwork/fraction/logger"

const (
	BuildVersion = "v0.3.0-BUILD_VERSION"

	DefaultRPCPort       = 6860
	DefaultCacheSize     = 32 * 1024 * 1024
	DefaultDecimalPlaces = 8
	DefaultLogLevel      = logger.INFO

	MaximumDecimalExponent = 1024
	MaximumDecimalPlaces   = 1024
)
