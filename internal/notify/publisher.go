package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"toko-pos/internal/connections/rabbitmq"
	"toko-pos/internal/domain"
)

// Exchange carries order lifecycle events; each station consumes its own
// routing keys.
const Exchange = "orders_topic"

type Publisher interface {
	OrderCreated(ctx context.Context, event domain.OrderCreatedEvent) error
}

// Noop is used when no broker is configured.
type Noop struct{}

func (Noop) OrderCreated(context.Context, domain.OrderCreatedEvent) error { return nil }

type AMQP struct {
	client *rabbitmq.Client
}

func NewAMQP(client *rabbitmq.Client) (*AMQP, error) {
	if err := client.DeclareTopicExchange(Exchange); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", Exchange, err)
	}
	return &AMQP{client: client}, nil
}

// OrderCreated publishes one persistent message per derived station so each
// station queue only sees its own tickets. Orders with no station publish
// nothing.
func (p *AMQP) OrderCreated(ctx context.Context, event domain.OrderCreatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	for _, station := range event.Printers {
		key := "printer." + strings.ToLower(station)
		pub := amqp.Publishing{
			DeliveryMode:  amqp.Persistent,
			ContentType:   "application/json",
			Body:          body,
			MessageId:     uuid.NewString(),
			CorrelationId: strconv.FormatInt(event.OrderID, 10),
			Timestamp:     time.Now().UTC(),
		}
		if err := p.client.Publish(ctx, Exchange, key, pub); err != nil {
			return fmt.Errorf("failed to publish to %s: %w", key, err)
		}
	}
	return nil
}
