package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const previewKeyPrefix = "invoice-preview:"

// RedisPreviewStore keeps previews as JSON values with a redis TTL.
type RedisPreviewStore struct {
	rdb *redis.Client
}

var _ interfaces.IPreviewStore = (*RedisPreviewStore)(nil)

func NewRedisPreviewStore(rdb *redis.Client) *RedisPreviewStore {
	return &RedisPreviewStore{rdb: rdb}
}

func (s *RedisPreviewStore) Save(ctx context.Context, p entities.InvoicePreview, ttl time.Duration) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, previewKeyPrefix+p.ID, raw, ttl).Err()
}

func (s *RedisPreviewStore) Get(ctx context.Context, id string) (entities.InvoicePreview, error) {
	val, err := s.rdb.Get(ctx, previewKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.InvoicePreview{}, entities.NotFoundf("invoice preview %s", id)
	}
	if err != nil {
		return entities.InvoicePreview{}, err
	}
	var p entities.InvoicePreview
	if err := json.Unmarshal(val, &p); err != nil {
		return entities.InvoicePreview{}, err
	}
	return p, nil
}

func (s *RedisPreviewStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, previewKeyPrefix+id).Err()
}
