package messaging

import (
	"context"
	"errors"
	"os"
	"strings"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

// ProjectID resolves the pubsub project: explicit value first, then the
// variables Cloud Run and Cloud Functions set.
func ProjectID(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv("GOOGLE_CLOUD_PROJECT"); v != "" {
		return v
	}
	return os.Getenv("GCP_PROJECT")
}

// NewClient opens a pubsub client, honouring PUBSUB_CREDENTIALS_JSON when set.
func NewClient(ctx context.Context, projectID string) (*pubsub.Client, error) {
	if projectID == "" {
		return nil, errors.New("PUBSUB_PROJECT_ID/GOOGLE_CLOUD_PROJECT not set")
	}
	if credJSON := os.Getenv("PUBSUB_CREDENTIALS_JSON"); strings.TrimSpace(credJSON) != "" {
		return pubsub.NewClient(ctx, projectID, option.WithCredentialsJSON([]byte(credJSON)))
	}
	return pubsub.NewClient(ctx, projectID)
}
