package messaging

import (
	"context"
	"testing"

	"hotel_procurement/internal/domain/entities"
)

func TestProjectID(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "from-env")
	t.Setenv("GCP_PROJECT", "")
	if got := ProjectID("explicit"); got != "explicit" {
		t.Fatalf("expected explicit, got %s", got)
	}
	if got := ProjectID(""); got != "from-env" {
		t.Fatalf("expected from-env, got %s", got)
	}
}

func TestNewClient_RequiresProject(t *testing.T) {
	if _, err := NewClient(context.Background(), ""); err == nil {
		t.Fatalf("expected error without a project id")
	}
}

func TestLogPublisher(t *testing.T) {
	err := LogPublisher{}.PublishTransition(context.Background(), entities.TransitionEvent{RequestID: "r1"})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
