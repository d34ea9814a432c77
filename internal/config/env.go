package config

import (
	"os"

	"github.com/joho/godotenv"
)

// ApplyEnv loads a .env file from the working directory (when present) and
// applies SLOWGLASS_* overrides to cfg. Flags parsed afterwards win over env
// values, so precedence is defaults < env < flags.
func ApplyEnv(cfg *Config) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	if v := os.Getenv("SLOWGLASS_PRESET"); v != "" {
		cfg.PresetName = v
	}
	if v := os.Getenv("SLOWGLASS_PRESET_FILE"); v != "" {
		cfg.PresetFile = v
	}
	if v := os.Getenv("SLOWGLASS_OUT"); v != "" {
		cfg.OutputName = v
	}
	if v := os.Getenv("SLOWGLASS_LOG"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("SLOWGLASS_COLOR"); v != "" {
		cfg.ColorMode = ColorMode(v)
	}
}
