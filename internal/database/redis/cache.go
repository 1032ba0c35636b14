package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ds124wfegd/activity-registration/internal/entity"

	"github.com/redis/go-redis/v9"
)

// AgendaCache is a read-through cache for day agendas and the event summary.
// It is never authoritative: misses and redis failures fall back to postgres.
type AgendaCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAgendaCache(client *redis.Client, ttl time.Duration) *AgendaCache {
	return &AgendaCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *AgendaCache) SetDayAgenda(ctx context.Context, dateKey string, agenda []*entity.PlaceAgenda) error {
	data, err := json.Marshal(agenda)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, "agenda:day:"+dateKey, data, c.ttl).Err()
}

func (c *AgendaCache) GetDayAgenda(ctx context.Context, dateKey string) ([]*entity.PlaceAgenda, error) {
	data, err := c.client.Get(ctx, "agenda:day:"+dateKey).Result()
	if err != nil {
		return nil, err
	}

	var agenda []*entity.PlaceAgenda
	if err := json.Unmarshal([]byte(data), &agenda); err != nil {
		return nil, err
	}

	return agenda, nil
}

func (c *AgendaCache) DeleteDayAgenda(ctx context.Context, dateKey string) error {
	return c.client.Del(ctx, "agenda:day:"+dateKey).Err()
}

func (c *AgendaCache) SetSummary(ctx context.Context, summary *entity.EventSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, "agenda:summary", data, c.ttl).Err()
}

func (c *AgendaCache) GetSummary(ctx context.Context) (*entity.EventSummary, error) {
	data, err := c.client.Get(ctx, "agenda:summary").Result()
	if err != nil {
		return nil, err
	}

	var summary entity.EventSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (c *AgendaCache) DeleteSummary(ctx context.Context) error {
	return c.client.Del(ctx, "agenda:summary").Err()
}
