package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

type Custom struct {
	Logger struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"logger"`
	RPC struct {
		Port      int  `toml:"port"`
		CacheSize int  `toml:"cache-size"`
		CORS      bool `toml:"cors"`
	} `toml:"rpc"`
	Format struct {
		DecimalPlaces int32 `toml:"decimal-places"`
	} `toml:"format"`
}

// Default is the configuration used when no file is given.
func Default() *Custom {
	var config Custom
	config.fillDefaults(nil)
	return &config
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	tree, err := toml.LoadBytes(f)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = tree.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	if config.Format.DecimalPlaces < 0 || config.Format.DecimalPlaces > MaximumDecimalPlaces {
		return nil, fmt.Errorf("invalid decimal places %d", config.Format.DecimalPlaces)
	}
	config.fillDefaults(tree)
	return &config, nil
}

// fillDefaults replaces zero values, except decimal places where an explicit
// 0 in tree means integers only.
func (config *Custom) fillDefaults(tree *toml.Tree) {
	if config.Logger.Level == 0 {
		config.Logger.Level = DefaultLogLevel
	}
	if config.RPC.Port == 0 {
		config.RPC.Port = DefaultRPCPort
	}
	if config.RPC.CacheSize == 0 {
		config.RPC.CacheSize = DefaultCacheSize
	}
	if tree == nil || !tree.Has("format.decimal-places") {
		config.Format.DecimalPlaces = DefaultDecimalPlaces
	}
}
