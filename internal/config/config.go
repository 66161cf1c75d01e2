package config

import (
	"os"
	"strconv"
	"strings"
)

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port string
	// RoutePrefix is prepended to the analyze route, e.g. "/api".
	RoutePrefix string
	// BodyLimitMB caps the size of an uploaded file. The whole file is held
	// in memory while it is parsed, so this is also the memory bound.
	BodyLimitMB int
}

// CORSConfig holds the cross-origin allow-list.
type CORSConfig struct {
	// AllowOrigins are the exact origins allowed to call the API.
	AllowOrigins []string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Server ServerConfig
	CORS   CORSConfig
	// PreviewRows is the number of table rows included in the response preview.
	PreviewRows int
}

// defaultAllowOrigins is the deployed frontend plus the local dev server.
const defaultAllowOrigins = "https://csvtool.netlify.app,http://localhost:5173"

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RoutePrefix: getEnv("ROUTE_PREFIX", ""),
			BodyLimitMB: getEnvInt("BODY_LIMIT_MB", 10),
		},
		CORS: CORSConfig{
			AllowOrigins: splitCSV(getEnv("CORS_ALLOW_ORIGINS", defaultAllowOrigins)),
		},
		PreviewRows: getEnvInt("PREVIEW_ROWS", 20),
	}
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
