package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	NarrationStorageMemory     = "memory"
	NarrationStorageTempFile   = "temp-file"
	NarrationStorageLegacyFile = "legacy-file"
)

// ServerConfig carries everything that is tunable but not a credential.
// The permissive CORS default suits local frontends only; set
// CORS_ALLOWED_ORIGINS before exposing the service anywhere real.
type ServerConfig struct {
	Port                 string   `env:"PORT" env-default:"8080"`
	HTTPClientTimeoutSec int      `env:"HTTP_CLIENT_TIMEOUT_SEC" env-default:"30"`
	CORSAllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	NarrationStorage     string   `env:"NARRATION_STORAGE" env-default:"memory"`
	NarrationFilePath    string   `env:"NARRATION_FILE_PATH" env-default:"output.wav"`
}

func GetServerConfig() (*ServerConfig, error) {
	var cfg ServerConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}
	switch cfg.NarrationStorage {
	case NarrationStorageMemory, NarrationStorageTempFile, NarrationStorageLegacyFile:
	default:
		return nil, fmt.Errorf("unknown NARRATION_STORAGE %q", cfg.NarrationStorage)
	}
	if cfg.HTTPClientTimeoutSec <= 0 {
		return nil, fmt.Errorf("HTTP_CLIENT_TIMEOUT_SEC must be positive")
	}
	return &cfg, nil
}
