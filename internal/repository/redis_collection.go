package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/brokerdesk/brokerage-service/internal/domain"
)

// RedisCollection stores each document under its own key and keeps
// insertion order in a sorted set scored by a per-collection counter.
type RedisCollection struct {
	client redis.UniversalClient
	name   string
}

// NewRedisCollection binds a named collection to the client.
func NewRedisCollection(client redis.UniversalClient, name string) *RedisCollection {
	return &RedisCollection{client: client, name: name}
}

func (r *RedisCollection) idsKey() string { return r.name + ":ids" }
func (r *RedisCollection) seqKey() string { return r.name + ":seq" }
func (r *RedisCollection) docKey(id string) string {
	return r.name + ":doc:" + id
}

func (r *RedisCollection) List(ctx context.Context) ([]domain.Record, error) {
	ids, err := r.client.ZRange(ctx, r.idsKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.name, err)
	}
	records := []domain.Record{}
	if len(ids) == 0 {
		return records, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.docKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", r.name, err)
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// index entry without a document; a concurrent delete is in flight
			continue
		}
		doc, err := domain.DecodeDocument([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", r.name, ids[i], err)
		}
		doc[domain.IDField] = ids[i]
		records = append(records, domain.Record{ID: ids[i], Document: doc})
	}
	return records, nil
}

func (r *RedisCollection) Insert(ctx context.Context, doc domain.Document) (string, error) {
	body, err := json.Marshal(doc.WithoutID())
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", r.name, err)
	}
	seq, err := r.client.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return "", fmt.Errorf("sequence %s: %w", r.name, err)
	}

	id := uuid.NewString()
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.docKey(id), body, 0)
		pipe.ZAdd(ctx, r.idsKey(), redis.Z{Score: float64(seq), Member: id})
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", r.name, err)
	}
	return id, nil
}

// Replace overwrites an existing document only; unknown ids succeed silently.
func (r *RedisCollection) Replace(ctx context.Context, id string, doc domain.Document) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	body, err := json.Marshal(doc.WithoutID())
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.name, err)
	}
	if err := r.client.SetXX(ctx, r.docKey(id), body, 0).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("update %s/%s: %w", r.name, id, err)
	}
	return nil
}

// Remove deletes the document and its index entry. Unknown ids succeed silently.
func (r *RedisCollection) Remove(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.docKey(id))
		pipe.ZRem(ctx, r.idsKey(), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", r.name, id, err)
	}
	return nil
}

func (r *RedisCollection) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
