// Env loader
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultGatewayURL   = "https://ai.gateway.lovable.dev/v1/chat/completions"
	DefaultGatewayModel = "google/gemini-2.5-flash"
	DefaultRelayURL     = "http://localhost:8080/spiritual-guidance"
)

// ErrMissingAPIKey is returned when the AI gateway credential is absent.
var ErrMissingAPIKey = errors.New("LOVABLE_API_KEY is not configured")

type Config struct {
	AppEnv  string
	Port    string
	LogMode string

	// relay
	GatewayAPIKey  string
	GatewayURL     string
	GatewayModel   string
	GatewayTimeout time.Duration
	AllowedOrigins []string

	// client
	RelayURL       string
	DataDir        string
	SpeechAudio    string
	SpeechLanguage string
	SpeechEndpoint string
	TTSCommand     string
}

// LoadConfig loads environment variables from the .env file
func LoadConfig() *Config {

	appEnv := os.Getenv("APP_ENV")

	switch appEnv {
	case "production":
		if err := godotenv.Load(".env.production"); err == nil {
			fmt.Println("Loaded .env.production")
		}
	default:
		if err := godotenv.Load(".env.development"); err == nil {
			fmt.Println("Loaded .env.development")
		}
	}

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		LogMode:        getEnv("LOG_MODE", getEnv("APP_ENV", "development")),
		GatewayAPIKey:  strings.TrimSpace(getEnv("LOVABLE_API_KEY", "")),
		GatewayURL:     getEnv("AI_GATEWAY_URL", DefaultGatewayURL),
		GatewayModel:   getEnv("AI_GATEWAY_MODEL", DefaultGatewayModel),
		GatewayTimeout: getDuration("AI_GATEWAY_TIMEOUT", 60*time.Second),
		AllowedOrigins: getList("ALLOWED_ORIGINS", []string{"*"}),
		RelayURL:       getEnv("RELAY_URL", DefaultRelayURL),
		DataDir:        getEnv("DIVINE_DATA_DIR", defaultDataDir()),
		SpeechAudio:    getEnv("SPEECH_AUDIO_FILE", ""),
		SpeechLanguage: getEnv("SPEECH_LANGUAGE", "en-US"),
		SpeechEndpoint: getEnv("SPEECH_ENDPOINT", ""),
		TTSCommand:     getEnv("TTS_COMMAND", ""),
	}

	return cfg
}

// ValidateRelay reports configuration the relay cannot start without.
func (c *Config) ValidateRelay() error {
	if c.GatewayAPIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	// bare numbers are seconds
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func getList(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "divine-answers")
	}
	return ".divine"
}
