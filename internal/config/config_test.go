package config

import (
	"testing"
	"time"

	"hotel_procurement/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		t.Setenv("PM_ESCALATION_THRESHOLD", "")
		t.Setenv("STORAGE_BACKEND", "")
		t.Setenv("COMPLETION_ACTIONS", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.EscalationThreshold.Equal(decimal.NewFromInt(5000)) {
			t.Fatalf("expected threshold 5000, got %s", cfg.EscalationThreshold)
		}
		if cfg.ReferenceNumberStart != 1000 || cfg.AITimeout != 30*time.Second || cfg.StorageBackend != StorageDynamoDB {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if !cfg.AIMock {
			t.Fatalf("expected mock AI without an api key")
		}
		if len(cfg.CompletionActions) != 1 || cfg.CompletionActions[0] != entities.ActionBankRoundCompleted {
			t.Fatalf("unexpected completion actions: %v", cfg.CompletionActions)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("AI_MOCK", "false")
		t.Setenv("PM_ESCALATION_THRESHOLD", "7500.50")
		t.Setenv("STORAGE_BACKEND", "memory")
		t.Setenv("AI_TIMEOUT", "5s")
		t.Setenv("COMPLETION_ACTIONS", "Bank Round Completed, Approved")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.AIMock {
			t.Fatalf("expected live AI")
		}
		if !cfg.EscalationThreshold.Equal(decimal.RequireFromString("7500.5")) || cfg.StorageBackend != StorageMemory || cfg.AITimeout != 5*time.Second {
			t.Fatalf("unexpected config: %+v", cfg)
		}
		if len(cfg.CompletionActions) != 2 || cfg.CompletionActions[1] != entities.ActionApproved {
			t.Fatalf("unexpected completion actions: %v", cfg.CompletionActions)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		cases := map[string]string{
			"PM_ESCALATION_THRESHOLD": "lots",
			"AI_TIMEOUT":              "soon",
			"STORAGE_BACKEND":         "postgres",
			"REFERENCE_NUMBER_START":  "-4",
		}
		for key, val := range cases {
			t.Run(key, func(t *testing.T) {
				t.Setenv(key, val)
				if _, err := Load(); err == nil {
					t.Fatalf("expected error for %s=%s", key, val)
				}
			})
		}
	})
}
