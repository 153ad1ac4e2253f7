package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"carepulse/internal/common"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// MySQL delivery-audit store
	Database DatabaseConfig `json:"database"`

	// MongoDB message/alert document store
	Mongo MongoConfig `json:"mongo"`

	// Urgent-message pipeline tuning
	Pipeline PipelineConfig `json:"pipeline"`

	// Emergency SOS fan-out
	Sos SosConfig `json:"sos"`

	// Identity of the user this process routes for
	User UserConfig `json:"user"`
}

type UserConfig struct {
	ID      string            `json:"id"`
	Role    common.SenderRole `json:"role"`
	PeerIDs []string          `json:"peer_ids"`
}

type ServerConfig struct {
	Port         string `json:"port"`
	Host         string `json:"host"`
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
	Environment  string `json:"environment"` // development, staging, production
}

type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

type MongoConfig struct {
	URI      string `json:"uri"`
	Database string `json:"database"`
}

// PipelineConfig names the windows that were scattered magic constants in the
// product this replaces.
type PipelineConfig struct {
	// RecencyWindow bounds "how late is too late to alert": messages older
	// than this at observation time are treated as already handled, even when
	// unread and urgent (cold subscription starts replay historical backlog).
	RecencyWindow time.Duration `json:"recency_window"`

	// SeenTTL bounds the dedup memory: ids of messages created within this
	// window are remembered so re-delivery from listener churn cannot
	// re-present them; older ids age out to bound memory.
	SeenTTL time.Duration `json:"seen_ttl"`

	// ResumeSettleDelay is how long after a foreground transition the router
	// waits before rescanning, giving subscriptions time to reattach.
	ResumeSettleDelay time.Duration `json:"resume_settle_delay"`

	// AlwaysNotifyKinds are message kinds surfaced even without the urgent
	// flag.
	AlwaysNotifyKinds []common.MessageKind `json:"always_notify_kinds"`
}

type SosConfig struct {
	DefaultCountryCode string        `json:"default_country_code"`
	LocationTimeout    time.Duration `json:"location_timeout"`
	RelayAPIKey        string        `json:"relay_api_key"`
	RelayDeviceID      string        `json:"relay_device_id"`
	RelayBaseURL       string        `json:"relay_base_url"`
}

// Load builds the configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8085"),
			Host:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:  getEnvIntOrDefault("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvIntOrDefault("SERVER_WRITE_TIMEOUT", 15),
			Environment:  getEnvOrDefault("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnvOrDefault("DB_HOST", "localhost"),
			Port:         getEnvOrDefault("DB_PORT", "3306"),
			Username:     getEnvOrDefault("DB_USER", "carepulse_user"),
			Password:     getEnvOrDefault("DB_PASSWORD", ""),
			DatabaseName: getEnvOrDefault("DB_NAME", "carepulse_db"),
			MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 5),
		},
		Mongo: MongoConfig{
			URI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnvOrDefault("MONGO_DB", "carepulse"),
		},
		Pipeline: PipelineConfig{
			RecencyWindow:     getEnvDurationOrDefault("PIPELINE_RECENCY_WINDOW", 2*time.Minute),
			SeenTTL:           getEnvDurationOrDefault("PIPELINE_SEEN_TTL", 5*time.Minute),
			ResumeSettleDelay: getEnvDurationOrDefault("PIPELINE_RESUME_SETTLE_DELAY", 1500*time.Millisecond),
			AlwaysNotifyKinds: parseKinds(getEnvOrDefault("PIPELINE_ALWAYS_NOTIFY_KINDS",
				string(common.KindSeizureAlert)+","+string(common.KindEmergency))),
		},
		Sos: SosConfig{
			DefaultCountryCode: getEnvOrDefault("SOS_DEFAULT_COUNTRY_CODE", "+91"),
			LocationTimeout:    getEnvDurationOrDefault("SOS_LOCATION_TIMEOUT", 10*time.Second),
			RelayAPIKey:        getEnvOrDefault("SOS_RELAY_API_KEY", ""),
			RelayDeviceID:      getEnvOrDefault("SOS_RELAY_DEVICE_ID", ""),
			RelayBaseURL:       getEnvOrDefault("SOS_RELAY_BASE_URL", "https://api.textbee.dev/api/v1"),
		},
		User: UserConfig{
			ID:      getEnvOrDefault("USER_ID", ""),
			Role:    common.SenderRole(getEnvOrDefault("USER_ROLE", string(common.RolePatient))),
			PeerIDs: splitCSV(getEnvOrDefault("USER_PEER_IDS", "")),
		},
	}
}

// DSN builds the MySQL connection string for the audit store.
func (cfg *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func parseKinds(raw string) []common.MessageKind {
	parts := splitCSV(raw)
	kinds := make([]common.MessageKind, 0, len(parts))
	for _, p := range parts {
		kinds = append(kinds, common.MessageKind(p))
	}
	return kinds
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDurationOrDefault(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
