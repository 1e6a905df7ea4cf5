package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// AuditEvent mirrors an audit entry onto the shared Redis stream so
// operator tooling and other server processes see mutations without
// polling Postgres.
type AuditEvent struct {
	Action      string
	Description string
	ActorID     *int64
}

type Producer interface {
	Publish(ctx context.Context, evt AuditEvent) error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Publish(ctx context.Context, evt AuditEvent) error {
	fields := map[string]any{
		"action":      evt.Action,
		"description": evt.Description,
	}
	if evt.ActorID != nil {
		fields["actor_id"] = *evt.ActorID
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("publish audit event: %w", err)
	}

	p.logger.DebugContext(ctx, "published audit event", "action", evt.Action)
	return nil
}
