package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	pkgRedis "content-srv/pkg/redis"
)

const (
	Prefix     = "search:embedding:"
	DefaultTTL = 24 * time.Hour
)

// Key - Cache key of a query text. Case and surrounding space do not change it.
func Key(text string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(text))))
	return Prefix + hex.EncodeToString(sum[:])
}

func (r *implRepository) Get(ctx context.Context, text string) ([]float32, bool, error) {
	data, err := r.redis.Get(ctx, Key(text))
	if errors.Is(err, pkgRedis.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "search.repository.redis.Get: %v", err)
		return nil, false, err
	}

	var vector []float32
	if err := json.Unmarshal([]byte(data), &vector); err != nil {
		r.l.Warnf(ctx, "search.repository.redis.Get: unmarshal error, treating as miss: %v", err)
		return nil, false, nil
	}
	return vector, true, nil
}

func (r *implRepository) Save(ctx context.Context, text string, vector []float32, ttl time.Duration) error {
	data, err := json.Marshal(vector)
	if err != nil {
		r.l.Errorf(ctx, "search.repository.redis.Save: %v", err)
		return err
	}

	if ttl == 0 {
		ttl = DefaultTTL
	}

	if err := r.redis.Set(ctx, Key(text), data, ttl); err != nil {
		r.l.Errorf(ctx, "search.repository.redis.Save: %v", err)
		return err
	}
	return nil
}
