package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the environment-derived settings for a deployment run.
// Values are read once at startup and immutable for the process lifetime.
type Config struct {
	// Port is the port the application server binds to.
	Port int

	// VolumePath is the persistent volume mount checked by the media step.
	VolumePath string

	// DatabaseURL locates the database for the connectivity probe.
	DatabaseURL string

	// Python is the interpreter for the management script.
	Python string

	// ManagePath is the path to the management script.
	ManagePath string

	// AppDir is the working directory for management commands.
	AppDir string

	// StaticRoot is the static asset output directory.
	StaticRoot string

	// LocaleDir is the root of the translation catalog tree.
	LocaleDir string

	// MetricsAddr is the metrics listen address. Empty disables the server.
	MetricsAddr string

	// ServerBin is the application server executable.
	ServerBin string

	// WSGIModule is the module the application server loads.
	WSGIModule string

	// AppName labels metrics and logs.
	AppName string
}

// Load reads configuration from the environment, overlaying a .env file when
// one is present.
func Load() (Config, error) {
	// Best effort: absence of a .env file is the normal production case.
	_ = godotenv.Load()

	cfg := Config{
		VolumePath:  getEnv("VOLUME_PATH", "/data"),
		DatabaseURL: getEnv("DATABASE_URL", "sqlite:db.sqlite3"),
		Python:      getEnv("PYTHON_BIN", "python"),
		ManagePath:  getEnv("MANAGE_PY", "manage.py"),
		AppDir:      getEnv("APP_DIR", ""),
		StaticRoot:  getEnv("STATIC_ROOT", "staticfiles"),
		LocaleDir:   getEnv("LOCALE_DIR", "locale"),
		MetricsAddr: getEnv("METRICS_ADDR", ""),
		ServerBin:   getEnv("SERVER_BIN", "gunicorn"),
		WSGIModule:  getEnv("WSGI_MODULE", "config.wsgi:application"),
		AppName:     getEnv("APP_NAME", "web"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8000"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PORT: %w", err)
	}
	if port < 1 || port > 65535 {
		return Config{}, fmt.Errorf("PORT %d out of range", port)
	}
	cfg.Port = port

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
