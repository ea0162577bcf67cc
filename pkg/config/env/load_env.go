package env

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from .env files.
// ENV_PATH, when set, replaces defaultPaths. Variables already present in the
// environment win over file values. A missing file is an error only in local mode.
func LoadDotEnv(env string, defaultPaths ...string) error {
	paths := defaultPaths
	if p := os.Getenv("ENV_PATH"); p != "" {
		paths = []string{p}
	} else {
		slog.Info("ENV_PATH is not set, using default path", "defaultPaths", defaultPaths)
	}

	if len(paths) == 0 {
		return nil
	}

	err := godotenv.Load(paths...)
	if err != nil {
		if env == "local" || env == "" {
			slog.Error("Failed to load environment variables in local mode", "error", err)
			return err
		}
		slog.Debug("Skipping .env ...")
	}

	return nil
}

// StringOr returns the value of key, or def when it is unset or empty.
func StringOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// BoolOr parses key as a boolean, returning def when it is unset or malformed.
func BoolOr(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
