package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// JwtKey signs and verifies access tokens. Loaded once at startup.
var JwtKey []byte

// JWTExpirationHours controls how long issued tokens stay valid.
var JWTExpirationHours = 24

// AvgScanSizeGB is the average data size of a single scan, used to project
// expected volume into data-load estimates.
var AvgScanSizeGB = 0.25

// ServerPort is the listen port for the HTTP server.
var ServerPort = "8080"

// Load reads the process configuration from environment variables.
func Load() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "flux-crm-secret-key-2024"
		slog.Warn("JWT_SECRET not set, using built-in development secret")
	}
	JwtKey = []byte(secret)

	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			JWTExpirationHours = hours
		} else {
			slog.Warn("Invalid JWT_EXPIRATION_HOURS, keeping default", "value", v)
		}
	}

	if v := os.Getenv("AVG_SCAN_SIZE_GB"); v != "" {
		if size, err := strconv.ParseFloat(v, 64); err == nil && size > 0 {
			AvgScanSizeGB = size
		} else {
			slog.Warn("Invalid AVG_SCAN_SIZE_GB, keeping default", "value", v)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		ServerPort = v
	}
}

// CORSOrigins returns the allowed CORS origins from CORS_ORIGINS
// (comma-separated). An empty variable allows all origins.
func CORSOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}
	origins := strings.Split(raw, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}
