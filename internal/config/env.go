package config

import (
	"os"
	"strconv"
)

// FromEnv applies environment overrides on top of cfg.
func FromEnv(cfg Config) Config {
	if mode := os.Getenv("CRITTERS_MODE"); mode != "" {
		cfg.Mode = mode
	}
	if dir := os.Getenv("CRITTERS_ASSETS"); dir != "" {
		cfg.AssetDir = dir
	}
	if v, ok := getEnvBool("CRITTERS_SOUND"); ok {
		cfg.Sound = v
	}
	if v, ok := getEnvBool("CRITTERS_DARK"); ok {
		cfg.DarkMode = v
	}
	if v := getEnvFloat("CRITTERS_MAX_ZOOM"); v > 0 {
		cfg.Viewport.MaxZoom = v
	}
	if v := getEnvInt64("CRITTERS_SEED"); v != 0 {
		cfg.Seed = v
	}
	return cfg
}

// Path returns the config file location.
func Path() string {
	if p := os.Getenv("CRITTERS_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

func getEnvBool(key string) (bool, bool) {
	val := os.Getenv(key)
	if val == "" {
		return false, false
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, false
	}
	return b, true
}

func getEnvFloat(key string) float64 {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return f
}

func getEnvInt64(key string) int64 {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	i, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}
	return i
}
