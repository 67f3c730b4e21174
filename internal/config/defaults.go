package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"storage": map[string]interface{}{
			"path": "~/.yotei/yotei.db",
		},
		"notifications": map[string]interface{}{
			"enabled": true,
		},
		"scheduler": map[string]interface{}{
			"buffer":    64,
			"lead":      10,           // minutes
			"lookahead": 24,           // hours
			"resync":    "@every 30m", // authoritative-collection refresh
		},
		"ui": map[string]interface{}{
			"colored": true,
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}

func GetDefaultConfigPath() string {
	return "~/.yotei/config.yaml"
}
