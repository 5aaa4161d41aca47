package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"dreamhouse/internal/domain"
	"dreamhouse/internal/store"

	"go.uber.org/zap"
)

const designCacheKeyPrefix = "dreamhouse:design:"

// CachedDesignsRepo reads single designs through a KV cache.
// Saved designs never change, so entries only expire by TTL.
type CachedDesignsRepo struct {
	inner  DesignsRepository
	kv     store.KV
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedDesignsRepo(inner DesignsRepository, kv store.KV, ttl time.Duration, logger *zap.Logger) *CachedDesignsRepo {
	return &CachedDesignsRepo{inner: inner, kv: kv, ttl: ttl, logger: logger}
}

var _ DesignsRepository = (*CachedDesignsRepo)(nil)

func designCacheKey(id int64) string {
	return designCacheKeyPrefix + strconv.FormatInt(id, 10)
}

func (r *CachedDesignsRepo) Save(ctx context.Context, name, prompt, data string) (int64, error) {
	return r.inner.Save(ctx, name, prompt, data)
}

func (r *CachedDesignsRepo) List(ctx context.Context) ([]domain.SavedDesign, error) {
	return r.inner.List(ctx)
}

func (r *CachedDesignsRepo) Get(ctx context.Context, id int64) (*domain.SavedDesign, error) {
	key := designCacheKey(id)

	raw, err := r.kv.Get(ctx, key)
	switch {
	case err == nil:
		var d domain.SavedDesign
		if err := json.Unmarshal([]byte(raw), &d); err == nil {
			return &d, nil
		}
		r.logger.Warn("discarding undecodable cache entry", zap.String("key", key))
	case !errors.Is(err, store.ErrMiss):
		// cache unavailable: serve from the store
		r.logger.Warn("design cache read failed", zap.String("key", key), zap.Error(err))
	}

	d, err := r.inner.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(d); err == nil {
		if err := r.kv.Set(ctx, key, string(b), r.ttl); err != nil {
			r.logger.Warn("design cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return d, nil
}
