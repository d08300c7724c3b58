package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types published by the services.
const (
	// TypeDrawRecorded fires after a daily draw of record is committed.
	TypeDrawRecorded = "draw.recorded"

	// TypeInterpretationEnhanced fires after a premium interpretation is
	// generated and persisted.
	TypeInterpretationEnhanced = "interpretation.enhanced"
)

// Event is one published domain event. The payload is serialized JSON so
// handlers stay decoupled from the emitting service's types.
type Event struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants
	Type string `json:"type"`

	// Payload contains the event-specific data serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *Event) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEvent creates an Event of the given type with the payload serialized
// to JSON.
func NewEvent(eventType string, payload interface{}) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now(),
	}, nil
}

// DrawRecordedPayload is the payload of TypeDrawRecorded events.
type DrawRecordedPayload struct {
	UserID   uuid.UUID `json:"user_id"`
	CardID   int       `json:"card_id"`
	CardName string    `json:"card_name"`
	DrawDate string    `json:"draw_date"`
	Mood     string    `json:"mood"`
}

// Handler processes published events.
type Handler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *Event) error
}

// Emitter publishes events to all registered handlers.
type Emitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *Event) error
}
