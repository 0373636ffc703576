package realtime

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store mirrors booking state into Redis for mobile clients. Keys are
// hierarchical paths; Write overwrites a path, Append pushes an ordered
// entry that is never rewritten. All delivery is best-effort.
type Store struct {
	client *redis.Client
}

func NewStore(addr string) (*Store, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("realtime store connect: %w", err)
	}

	log.Println("[realtime] connected to redis")
	return &Store{client: client}, nil
}

// Key joins path segments into a realtime store key.
func Key(segments ...string) string {
	return strings.Join(segments, "/")
}

func (s *Store) Write(ctx context.Context, path string, value any) error {
	data, err := marshal(value)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, path, data, 0).Err(); err != nil {
		return fmt.Errorf("realtime write %s: %w", path, err)
	}
	return nil
}

func (s *Store) Append(ctx context.Context, path string, value any) error {
	data, err := marshal(value)
	if err != nil {
		return err
	}
	if err := s.client.RPush(ctx, path, data).Err(); err != nil {
		return fmt.Errorf("realtime append %s: %w", path, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
