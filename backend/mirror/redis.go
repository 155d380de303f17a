package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"eduplatform/backend/models"

	goredis "github.com/redis/go-redis/v9"
)

const (
	snapshotKeyPrefix  = "platform:state:"
	favoritesKeyPrefix = "platform:favorites:"
	opTimeout          = 5 * time.Second
)

// RedisMirror persists snapshots and favorite sets as JSON values in redis,
// one key per session, one per favorites partition.
type RedisMirror struct {
	rdb *goredis.Client
}

func NewRedisMirror(addr string) (*RedisMirror, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: opTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisMirror{rdb: rdb}, nil
}

func (m *RedisMirror) SaveSnapshot(key string, snap models.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return m.rdb.Set(ctx, snapshotKeyPrefix+key, raw, 0).Err()
}

// LoadSnapshot returns (nil, nil) for a missing blob and treats a corrupt one
// the same way: the store falls back to defaults without surfacing an error.
func (m *RedisMirror) LoadSnapshot(key string) (*models.Snapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	raw, err := m.rdb.Get(ctx, snapshotKeyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, nil
	}
	return &snap, nil
}

func (m *RedisMirror) SaveFavorites(key string, courseIDs []int) error {
	raw, err := json.Marshal(courseIDs)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return m.rdb.Set(ctx, favoritesKeyPrefix+key, raw, 0).Err()
}

func (m *RedisMirror) LoadFavorites(key string) ([]int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	raw, err := m.rdb.Get(ctx, favoritesKeyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, nil
	}
	return ids, nil
}

func (m *RedisMirror) Close() error {
	return m.rdb.Close()
}
