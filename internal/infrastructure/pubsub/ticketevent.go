package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dunner/internal/shared/logger"
)

// TicketChangeType represents the type of ticket change event
type TicketChangeType string

const (
	// TicketChangeStatus indicates a ticket status changed
	TicketChangeStatus TicketChangeType = "status_change"
	// TicketChangeMerge indicates invoices were merged into a ticket
	TicketChangeMerge TicketChangeType = "merge"
	// TicketChangeInvoices indicates the ticket invoice set changed
	TicketChangeInvoices TicketChangeType = "invoices"
)

// TicketChangeEvent tells other instances that a ticket needs a reload.
type TicketChangeEvent struct {
	TicketID   uint             `json:"ticket_id"`
	ChangeType TicketChangeType `json:"change_type"`
	Timestamp  int64            `json:"timestamp"`
}

// TicketEventHandler is a callback function for handling ticket events
type TicketEventHandler func(ctx context.Context, event TicketChangeEvent)

// TicketEventPublisher defines the interface for publishing ticket events
type TicketEventPublisher interface {
	PublishStatusChange(ctx context.Context, ticketID uint) error
	PublishMerge(ctx context.Context, ticketID uint) error
	PublishInvoicesChanged(ctx context.Context, ticketID uint) error
}

// TicketEventSubscriber defines the interface for subscribing to ticket events
type TicketEventSubscriber interface {
	Subscribe(ctx context.Context, handler TicketEventHandler) error
}

const ticketChangeChannel = "dunner:ticket:change"

// RedisTicketEventBus implements both TicketEventPublisher and
// TicketEventSubscriber using Redis Pub/Sub for cross-instance distribution.
type RedisTicketEventBus struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisTicketEventBus(client *redis.Client, logger logger.Interface) *RedisTicketEventBus {
	return &RedisTicketEventBus{
		client: client,
		logger: logger,
	}
}

func (b *RedisTicketEventBus) PublishStatusChange(ctx context.Context, ticketID uint) error {
	return b.publish(ctx, TicketChangeEvent{
		TicketID:   ticketID,
		ChangeType: TicketChangeStatus,
		Timestamp:  time.Now().Unix(),
	})
}

func (b *RedisTicketEventBus) PublishMerge(ctx context.Context, ticketID uint) error {
	return b.publish(ctx, TicketChangeEvent{
		TicketID:   ticketID,
		ChangeType: TicketChangeMerge,
		Timestamp:  time.Now().Unix(),
	})
}

func (b *RedisTicketEventBus) PublishInvoicesChanged(ctx context.Context, ticketID uint) error {
	return b.publish(ctx, TicketChangeEvent{
		TicketID:   ticketID,
		ChangeType: TicketChangeInvoices,
		Timestamp:  time.Now().Unix(),
	})
}

func (b *RedisTicketEventBus) publish(ctx context.Context, event TicketChangeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.client.Publish(ctx, ticketChangeChannel, data).Err(); err != nil {
		b.logger.Errorw("failed to publish ticket change event",
			"ticket_id", event.TicketID,
			"change_type", event.ChangeType,
			"error", err,
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debugw("ticket change event published",
		"ticket_id", event.TicketID,
		"change_type", event.ChangeType,
	)
	return nil
}

// Subscribe subscribes to ticket change events and calls the handler for each
// event. It blocks until the context is cancelled.
func (b *RedisTicketEventBus) Subscribe(ctx context.Context, handler TicketEventHandler) error {
	pubsub := b.client.Subscribe(ctx, ticketChangeChannel)
	defer pubsub.Close()

	// Wait for subscription confirmation
	_, err := pubsub.Receive(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}

	b.logger.Infow("subscribed to ticket change events",
		"channel", ticketChangeChannel,
	)

	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			b.logger.Infow("ticket event subscriber stopped",
				"reason", ctx.Err(),
			)
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				b.logger.Warnw("ticket event channel closed")
				return nil
			}

			var event TicketChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Warnw("failed to unmarshal ticket event",
					"payload", msg.Payload,
					"error", err,
				)
				continue
			}

			// Handle event in background goroutine to avoid blocking the event loop
			go handler(context.Background(), event)
		}
	}
}
