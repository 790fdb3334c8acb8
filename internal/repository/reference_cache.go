package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/ticket-triage/internal/domain"
)

const (
	cacheKeyCategories = "ref:categories"
	cacheKeyStatuses   = "ref:statuses"
	cacheKeyAdmins     = "ref:admins"
)

// CachedReferenceRepository is a read-through Redis cache in front of the
// reference tables. Cache misses and Redis failures both fall back to the
// inner repository; a cache error never surfaces to callers.
type CachedReferenceRepository struct {
	inner  ReferenceRepository
	client *redis.Client
	ttl    time.Duration
}

// NewCachedReferenceRepository wraps inner with a Redis cache. A nil client
// disables caching entirely.
func NewCachedReferenceRepository(inner ReferenceRepository, client *redis.Client, ttl time.Duration) *CachedReferenceRepository {
	return &CachedReferenceRepository{inner: inner, client: client, ttl: ttl}
}

func (r *CachedReferenceRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var cached []domain.Category
	if r.lookup(ctx, cacheKeyCategories, &cached) {
		return cached, nil
	}
	result, err := r.inner.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, cacheKeyCategories, result)
	return result, nil
}

func (r *CachedReferenceRepository) ListStatuses(ctx context.Context) ([]domain.TicketStatus, error) {
	var cached []domain.TicketStatus
	if r.lookup(ctx, cacheKeyStatuses, &cached) {
		return cached, nil
	}
	result, err := r.inner.ListStatuses(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, cacheKeyStatuses, result)
	return result, nil
}

func (r *CachedReferenceRepository) ListAdmins(ctx context.Context) ([]domain.AdminAccount, error) {
	var cached []domain.AdminAccount
	if r.lookup(ctx, cacheKeyAdmins, &cached) {
		return cached, nil
	}
	result, err := r.inner.ListAdmins(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, cacheKeyAdmins, result)
	return result, nil
}

// GetCategory is a validation read on the create path; it always goes to the
// store so a freshly added category is usable immediately.
func (r *CachedReferenceRepository) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return r.inner.GetCategory(ctx, id)
}

func (r *CachedReferenceRepository) OpenStatusID(ctx context.Context) (int64, error) {
	return r.inner.OpenStatusID(ctx)
}

func (r *CachedReferenceRepository) lookup(ctx context.Context, key string, dest any) bool {
	if r.client == nil {
		return false
	}
	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(payload, dest) == nil
}

func (r *CachedReferenceRepository) store(ctx context.Context, key string, value any) {
	if r.client == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	r.client.Set(ctx, key, payload, r.ttl)
}
