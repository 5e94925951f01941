package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIURL      string
	TokenFile   string
	HTTPTimeout time.Duration
	LogLevel    string
	MetricsAddr string

	OTLPEndpoint string
	OTLPInsecure bool

	Sandbox Sandbox
}

// Sandbox configures the local fake backend.
type Sandbox struct {
	Addr           string
	JWTSecret      string
	AdminEmail     string
	AdminPassword  string
	LoginLimit     int
	LoginWindow    time.Duration
	RequestTimeout time.Duration
}

// Load reads the environment. .env files are loaded by main before this runs.
func Load() Config {
	return Config{
		APIURL:       readString("NETOPS_API_URL", "http://localhost:8080/api"),
		TokenFile:    os.Getenv("NETOPS_TOKEN_FILE"),
		HTTPTimeout:  time.Duration(readInt("NETOPS_HTTP_TIMEOUT_SECONDS", 0)) * time.Second,
		LogLevel:     readString("NETOPS_LOG_LEVEL", "info"),
		MetricsAddr:  os.Getenv("NETOPS_METRICS_ADDR"),
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTLPInsecure: os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") == "true",
		Sandbox: Sandbox{
			Addr:           readString("SANDBOX_ADDR", ":8080"),
			JWTSecret:      readString("SANDBOX_JWT_SECRET", "sandbox-secret"),
			AdminEmail:     readString("SANDBOX_ADMIN_EMAIL", "admin@netops.local"),
			AdminPassword:  readString("SANDBOX_ADMIN_PASSWORD", "admin"),
			LoginLimit:     readInt("SANDBOX_LOGIN_LIMIT", 10),
			LoginWindow:    time.Duration(readInt("SANDBOX_LOGIN_WINDOW_SECONDS", 300)) * time.Second,
			RequestTimeout: time.Duration(readInt("SANDBOX_REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		},
	}
}

func readString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func readInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
