package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyValueStore 带过期时间的键值存储接口（密码重置令牌等一次性凭据）
type KeyValueStore interface {
	Put(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}

// RedisKeyValueStore Redis 实现
type RedisKeyValueStore struct {
	client *redis.Client
	prefix string
}

// NewRedisKeyValueStore 创建 Redis 键值存储
func NewRedisKeyValueStore(client *redis.Client, prefix string) *RedisKeyValueStore {
	return &RedisKeyValueStore{client: client, prefix: strings.TrimSpace(prefix)}
}

func (s *RedisKeyValueStore) storeKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

// Put 写入键值并设置过期时间
func (s *RedisKeyValueStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, s.storeKey(key), value, ttl).Err()
}

// Get 读取键值，不存在或已过期返回 false
func (s *RedisKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, s.storeKey(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Delete 删除键值
func (s *RedisKeyValueStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.storeKey(key)).Err()
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryKeyValueStore 进程内实现（未启用 Redis 时的回退）
type MemoryKeyValueStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry

	// Now 时间源，测试可注入
	Now func() time.Time
}

// NewMemoryKeyValueStore 创建进程内键值存储
func NewMemoryKeyValueStore() *MemoryKeyValueStore {
	return &MemoryKeyValueStore{
		entries: make(map[string]memoryEntry),
		Now:     time.Now,
	}
}

// Put 写入键值并设置过期时间
func (s *MemoryKeyValueStore) Put(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = s.Now().Add(ttl)
	}
	s.entries[key] = entry
	s.sweepLocked()
	return nil
}

// Get 读取键值，不存在或已过期返回 false
func (s *MemoryKeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		return "", false, nil
	}
	if !entry.expiresAt.IsZero() && !s.Now().Before(entry.expiresAt) {
		delete(s.entries, key)
		return "", false, nil
	}
	return entry.value, true, nil
}

// Delete 删除键值
func (s *MemoryKeyValueStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Items 返回未过期条目快照
func (s *MemoryKeyValueStore) Items() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.Now()
	out := make(map[string]string, len(s.entries))
	for key, entry := range s.entries {
		if !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt) {
			continue
		}
		out[key] = entry.value
	}
	return out
}

// sweepLocked 清理已过期条目（调用方需持锁）
func (s *MemoryKeyValueStore) sweepLocked() {
	now := s.Now()
	for key, entry := range s.entries {
		if !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt) {
			delete(s.entries, key)
		}
	}
}
