package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"hotel_procurement/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Config is the process configuration, read from the environment.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - LOG_LEVEL (default: info)
//   - STORAGE_BACKEND: dynamodb | memory (default: dynamodb)
//   - PURCHASE_REQUESTS_TABLE, CATALOG_TABLE, SUPPLIERS_TABLE, USERS_TABLE, ROLES_TABLE, BRANCHES_TABLE, COUNTERS_TABLE
//   - REDIS_ADDRESS (optional; enables redis locks and preview cache)
//   - PM_ESCALATION_THRESHOLD (default: 5000)
//   - REFERENCE_NUMBER_START (default: 1000; first request gets start+1)
//   - AI_TIMEOUT (default: 30s), OPENAI_API_KEY, OPENAI_MODEL, AI_MOCK
//   - PREVIEW_TTL (default: 30m)
//   - JWT_SECRET, JWT_TTL (default: 12h)
//   - GCS_BUCKET (optional; blobs kept in memory when empty)
//   - PUBSUB_PROJECT_ID, PUBSUB_TOPIC (optional; events dropped when empty)
//   - COMPLETION_ACTIONS (comma separated; default: "Bank Round Completed")
//   - CORS_ALLOWED_ORIGINS (comma separated; every origin when empty)
//   - ADMIN_EMAIL, ADMIN_PASSWORD (first admin, created when no admin exists)
type Config struct {
	Port               string
	LogLevel           string
	StorageBackend     string
	CORSAllowedOrigins string

	Tables Tables

	RedisAddress string

	EscalationThreshold  decimal.Decimal
	ReferenceNumberStart int64
	CompletionActions    []entities.HistoryAction

	AITimeout    time.Duration
	OpenAIAPIKey string
	OpenAIModel  string
	AIMock       bool

	PreviewTTL time.Duration

	JWTSecret string
	JWTTTL    time.Duration

	GCSBucket       string
	PubSubProjectID string
	PubSubTopic     string

	AdminEmail    string
	AdminPassword string
}

type Tables struct {
	PurchaseRequests string
	Catalog          string
	Suppliers        string
	Users            string
	Roles            string
	Branches         string
	Counters         string
}

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

// Load reads the configuration. Malformed values are reported rather than
// silently replaced by defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:               getenvDefault("PORT", "8080"),
		LogLevel:           getenvDefault("LOG_LEVEL", "info"),
		StorageBackend:     strings.ToLower(getenvDefault("STORAGE_BACKEND", StorageDynamoDB)),
		CORSAllowedOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),
		Tables: Tables{
			PurchaseRequests: getenvDefault("PURCHASE_REQUESTS_TABLE", "purchase_requests"),
			Catalog:          getenvDefault("CATALOG_TABLE", "catalog_items"),
			Suppliers:        getenvDefault("SUPPLIERS_TABLE", "suppliers"),
			Users:            getenvDefault("USERS_TABLE", "users"),
			Roles:            getenvDefault("ROLES_TABLE", "roles"),
			Branches:         getenvDefault("BRANCHES_TABLE", "branches"),
			Counters:         getenvDefault("COUNTERS_TABLE", "counters"),
		},
		RedisAddress:    os.Getenv("REDIS_ADDRESS"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getenvDefault("OPENAI_MODEL", "gpt-4o"),
		JWTSecret:       getenvDefault("JWT_SECRET", "change-me"),
		GCSBucket:       os.Getenv("GCS_BUCKET"),
		PubSubProjectID: os.Getenv("PUBSUB_PROJECT_ID"),
		PubSubTopic:     os.Getenv("PUBSUB_TOPIC"),
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.StorageBackend != StorageDynamoDB && cfg.StorageBackend != StorageMemory {
		return Config{}, fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StorageDynamoDB, StorageMemory, cfg.StorageBackend)
	}

	threshold, err := decimal.NewFromString(getenvDefault("PM_ESCALATION_THRESHOLD", "5000"))
	if err != nil {
		return Config{}, fmt.Errorf("PM_ESCALATION_THRESHOLD: %w", err)
	}
	if threshold.IsNegative() {
		return Config{}, fmt.Errorf("PM_ESCALATION_THRESHOLD must not be negative")
	}
	cfg.EscalationThreshold = threshold

	start, err := strconv.ParseInt(getenvDefault("REFERENCE_NUMBER_START", "1000"), 10, 64)
	if err != nil || start < 0 {
		return Config{}, fmt.Errorf("REFERENCE_NUMBER_START must be a non-negative integer")
	}
	cfg.ReferenceNumberStart = start

	if cfg.AITimeout, err = durationEnv("AI_TIMEOUT", "30s"); err != nil {
		return Config{}, err
	}
	if cfg.PreviewTTL, err = durationEnv("PREVIEW_TTL", "30m"); err != nil {
		return Config{}, err
	}
	if cfg.JWTTTL, err = durationEnv("JWT_TTL", "12h"); err != nil {
		return Config{}, err
	}

	mock := strings.ToLower(strings.TrimSpace(os.Getenv("AI_MOCK")))
	cfg.AIMock = mock == "1" || mock == "true" || mock == "yes" || cfg.OpenAIAPIKey == ""

	for _, a := range strings.Split(getenvDefault("COMPLETION_ACTIONS", string(entities.ActionBankRoundCompleted)), ",") {
		if a = strings.TrimSpace(a); a != "" {
			cfg.CompletionActions = append(cfg.CompletionActions, entities.HistoryAction(a))
		}
	}
	if len(cfg.CompletionActions) == 0 {
		cfg.CompletionActions = []entities.HistoryAction{entities.ActionBankRoundCompleted}
	}

	return cfg, nil
}

func durationEnv(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
