package kafka

import (
	"fmt"
	"time"

	"wandshop/internal/core/domain/model/order"

	"github.com/linkedin/goavro/v2"
)

// Encoder turns order events into Avro binary. goavro codecs are safe for
// concurrent use.
type Encoder struct {
	codec *goavro.Codec
}

func NewEncoder() (*Encoder, error) {
	codec, err := goavro.NewCodec(OrderChangedSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to create avro codec: %w", err)
	}
	return &Encoder{codec: codec}, nil
}

func (e *Encoder) Encode(event order.ChangedEvent) ([]byte, error) {
	var previous any
	if event.Previous != order.Unknown {
		previous = goavro.Union("string", event.Previous.String())
	}

	native := map[string]any{
		"order_id":    event.OrderID.String(),
		"wizard_id":   event.WizardID.String(),
		"wand_id":     event.WandID.String(),
		"previous":    previous,
		"status":      event.Status.String(),
		"occurred_at": event.OccurredAt.UTC(),
	}

	binary, err := e.codec.BinaryFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("failed to encode to avro binary: %w", err)
	}
	return binary, nil
}

// Decoded is the consumer view of an encoded event.
type Decoded struct {
	OrderID    string
	WizardID   string
	WandID     string
	Previous   string
	Status     string
	OccurredAt time.Time
}

func (e *Encoder) Decode(binary []byte) (Decoded, error) {
	native, _, err := e.codec.NativeFromBinary(binary)
	if err != nil {
		return Decoded{}, fmt.Errorf("failed to decode avro binary: %w", err)
	}

	record, ok := native.(map[string]any)
	if !ok {
		return Decoded{}, fmt.Errorf("unexpected avro native type %T", native)
	}

	d := Decoded{
		OrderID:  record["order_id"].(string),
		WizardID: record["wizard_id"].(string),
		WandID:   record["wand_id"].(string),
		Status:   record["status"].(string),
	}
	if union, ok := record["previous"].(map[string]any); ok {
		d.Previous, _ = union["string"].(string)
	}
	d.OccurredAt, _ = record["occurred_at"].(time.Time)
	return d, nil
}
