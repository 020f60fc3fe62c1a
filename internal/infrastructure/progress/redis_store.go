package progress

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	"github.com/rafikey/rafikey-admin/internal/domain/repository"
	"github.com/rafikey/rafikey-admin/pkg/helpers"
)

const keyPrefix = "upload:progress:"

// RedisStore keeps upload progress as JSON with a TTL so it can be polled
// from any replica.
type RedisStore struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{RDB: rdb, TTL: ttl}
}

func (s *RedisStore) Save(ctx context.Context, p entity.UploadProgress) error {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now()
	}
	return helpers.RedisSetJSON(ctx, s.RDB, keyPrefix+p.ID, p, s.TTL)
}

func (s *RedisStore) Get(ctx context.Context, id string) (*entity.UploadProgress, error) {
	var p entity.UploadProgress
	ok, err := helpers.RedisGetJSON(ctx, s.RDB, keyPrefix+id, &p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

var _ repository.ProgressRepository = (*RedisStore)(nil)
