/*
Package cache provides a read-through cache in front of a user.Store.

Lookups by id are served from a key-value Cache (Redis in production) and
fall back to the wrapped store on a miss. Updates and deletes invalidate the
cached entry both before and after the write, so a read that lands while the
write is in flight can re-cache the old record for no longer than the write
itself takes. Cache failures never fail a request; they are logged and the
wrapped store answers instead.
*/
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/soaresgus/community-backend/internal/app/user"
	"github.com/soaresgus/community-backend/internal/pkg/logx"
)

// ErrMiss is returned by Cache.Get when the key is absent.
var ErrMiss = errors.New("cache: miss")

// Cache is the minimal key-value contract the decorator needs.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Redis implements Cache with go-redis.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to the server described by a redis:// URL and pings it.
func NewRedis(ctx context.Context, url string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Redis{client: client}, nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return b, err
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *Redis) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

// Close releases the connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}

// UserStore decorates a user.Store with an id-keyed cache.
type UserStore struct {
	user.Store

	cache Cache
	ttl   time.Duration
}

// NewUserStore wraps next. Entries expire after ttl.
func NewUserStore(next user.Store, c Cache, ttl time.Duration) *UserStore {
	return &UserStore{Store: next, cache: c, ttl: ttl}
}

func userKey(id string) string {
	return "user:" + id
}

func (s *UserStore) FindByID(ctx context.Context, id string) (user.User, error) {
	key := userKey(id)

	b, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var u user.User
		if jerr := json.Unmarshal(b, &u); jerr == nil {
			return u, nil
		}
		logx.Warn("cache: dropping undecodable entry", "key", key)
	case !errors.Is(err, ErrMiss):
		logx.Warn("cache: get failed, reading through", "key", key, "error", err.Error())
	}

	u, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}

	if b, err := json.Marshal(u); err == nil {
		if err := s.cache.Set(ctx, key, b, s.ttl); err != nil {
			logx.Warn("cache: set failed", "key", key, "error", err.Error())
		}
	}
	return u, nil
}

func (s *UserStore) Update(ctx context.Context, u user.User) (user.User, error) {
	s.evict(ctx, u.ID)
	updated, err := s.Store.Update(ctx, u)
	s.evict(ctx, u.ID)
	if err != nil {
		return user.User{}, err
	}
	return updated, nil
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	s.evict(ctx, id)
	err := s.Store.Delete(ctx, id)
	s.evict(ctx, id)
	return err
}

func (s *UserStore) evict(ctx context.Context, id string) {
	if err := s.cache.Del(ctx, userKey(id)); err != nil {
		logx.Warn("cache: delete failed", "key", userKey(id), "error", err.Error())
	}
}
