/*
Package redis provides a Redis-backed implementation of the KV interface.

PURPOSE:
  Shared storage for drafts and calculation history when several server
  instances sit behind a load balancer. A plain Redis string per key, plus
  one index set tracking all keys so Keys and Clear stay O(stored keys)
  instead of scanning the whole keyspace.

SEE ALSO:
  - lease/store.go: Interface definition
  - store/sqlite/sqlite.go: Embedded single-node alternative
*/
package redis

import (
	"context"
	"errors"
	"sort"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "lease:kv:"
	indexKey  = "lease:kv:keys"
)

// KV implements lease.KV on a Redis instance.
type KV struct {
	client *redis.Client
}

// New connects to the Redis instance at addr (host:port).
func New(addr string) *KV {
	return &KV{client: redis.NewClient(&redis.Options{Addr: addr})}
}

// Ping verifies the connection.
func (s *KV) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the client.
func (s *KV) Close() error {
	return s.client.Close()
}

func (s *KV) Save(ctx context.Context, key, value string) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, keyPrefix+key, value, 0)
	pipe.SAdd(ctx, indexKey, key)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *KV) Load(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *KV) Delete(ctx context.Context, key string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, keyPrefix+key)
	pipe.SRem(ctx, indexKey, key)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *KV) Clear(ctx context.Context) error {
	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	for _, key := range keys {
		pipe.Del(ctx, keyPrefix+key)
	}
	pipe.Del(ctx, indexKey)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *KV) Keys(ctx context.Context) ([]string, error) {
	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}
