package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/usecase/interfaces"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSBlobStore writes invoice documents and attachments to a bucket and
// returns gs:// URIs.
type GCSBlobStore struct {
	client *gcs.Client
	bucket string
}

var _ interfaces.IBlobStore = (*GCSBlobStore)(nil)

// NewGCSClient uses application default credentials unless
// GCS_CREDENTIALS_JSON carries an explicit service account.
func NewGCSClient(ctx context.Context) (*gcs.Client, error) {
	if credJSON := os.Getenv("GCS_CREDENTIALS_JSON"); strings.TrimSpace(credJSON) != "" {
		return gcs.NewClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
	}
	return gcs.NewClient(ctx)
}

func NewGCSBlobStore(client *gcs.Client, bucket string) *GCSBlobStore {
	return &GCSBlobStore{client: client, bucket: bucket}
}

func (s *GCSBlobStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	wc := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := wc.Write(data); err != nil {
		_ = wc.Close()
		return "", entities.ExternalServiceError("gcs", err)
	}
	if err := wc.Close(); err != nil {
		return "", entities.ExternalServiceError("gcs", err)
	}
	return fmt.Sprintf("gs://%s/%s", s.bucket, key), nil
}

func (s *GCSBlobStore) Delete(ctx context.Context, uri string) error {
	bucket, object, err := parseGSURI(uri)
	if err != nil {
		return err
	}
	err = s.client.Bucket(bucket).Object(object).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil
	}
	if err != nil {
		return entities.ExternalServiceError("gcs", err)
	}
	return nil
}

func parseGSURI(uri string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(uri, "gs://")
	if !ok {
		return "", "", entities.Validationf("not a gs:// uri: %s", uri)
	}
	bucket, object, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", entities.Validationf("malformed gs:// uri: %s", uri)
	}
	return bucket, object, nil
}
