package attendance

import (
	"context"
	"sync"

	DB "Backend-SriSudha-School/src/database"

	"github.com/redis/go-redis/v9"
)

// คีย์เดิมที่ frontend ใช้กับ localStorage, เก็บไว้ให้ migration ง่าย
const (
	StoreKey  = "sri_sudha_attendance_v1"
	ReportKey = "sri_sudha_attendance_reports_v1"
)

// BlobStore is the key-value persistence boundary for the attendance manager.
// Two string keys hold JSON blobs: the record store and the report cache.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// RedisBlobStore persists blobs in the shared Redis client.
type RedisBlobStore struct{}

func (RedisBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	if DB.RedisClient == nil {
		return nil, redis.Nil
	}
	return DB.RedisClient.Get(ctx, key).Bytes()
}

func (RedisBlobStore) Set(ctx context.Context, key string, value []byte) error {
	if DB.RedisClient == nil {
		return nil // dev mode ไม่มี Redis - ข้าม
	}
	return DB.RedisClient.Set(ctx, key, value, 0).Err()
}

// MemoryBlobStore เก็บใน memory, ใช้ตอน test และ dev mode
type MemoryBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string][]byte)}
}

func (s *MemoryBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[key]
	if !ok {
		return nil, redis.Nil
	}
	return b, nil
}

func (s *MemoryBlobStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	s.blobs[key] = cp
	return nil
}
