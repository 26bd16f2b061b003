package events

import (
	"context"
	"encoding/json"
	"time"
)

const TypeOrderPlaced = "order.placed"

// Event is one domain event. Key groups related events; for orders it is
// the order id.
type Event struct {
	Type       string
	Key        string
	Payload    any
	OccurredAt time.Time
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

func (e Event) encode() ([]byte, error) {
	return json.Marshal(e.Payload)
}
