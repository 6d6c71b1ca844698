package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override file configuration.
const (
	EnvDB       = "MAZEY_DB"
	EnvLogLevel = "MAZEY_LOG_LEVEL"
	EnvSSHAddr  = "MAZEY_SSH_ADDR"
	EnvHTTPAddr = "MAZEY_HTTP_ADDR"
)

// LoadDotEnv loads variables from the given .env files (./.env when none
// are given) without overriding variables already set. Missing files are
// not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// ApplyEnv copies set MAZEY_* variables into cfg.
func ApplyEnv(cfg *Config) {
	setFromEnv(&cfg.Storage.DBPath, EnvDB)
	setFromEnv(&cfg.LogLevel, EnvLogLevel)
	setFromEnv(&cfg.Server.SSHAddr, EnvSSHAddr)
	setFromEnv(&cfg.Server.HTTPAddr, EnvHTTPAddr)
}

func setFromEnv(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
