package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	seen []*Event
	err  error
}

func (h *recordingHandler) HandleEvent(_ context.Context, event *Event) error {
	h.seen = append(h.seen, event)
	return h.err
}

func TestEmitEventDeliversToAllHandlers(t *testing.T) {
	t.Parallel()

	emitter := NewInMemoryEmitter(nil)
	first := &recordingHandler{}
	second := &recordingHandler{}
	emitter.RegisterHandler(first)
	emitter.RegisterHandler(second)

	event, err := NewEvent(TypeDrawRecorded, DrawRecordedPayload{CardID: 17, Mood: "hopeful"})
	require.NoError(t, err)

	require.NoError(t, emitter.EmitEvent(context.Background(), event))
	assert.Len(t, first.seen, 1)
	assert.Len(t, second.seen, 1)
}

func TestEmitEventContinuesPastFailingHandler(t *testing.T) {
	t.Parallel()

	emitter := NewInMemoryEmitter(nil)
	failing := &recordingHandler{err: errors.New("handler broke")}
	healthy := &recordingHandler{}
	emitter.RegisterHandler(failing)
	emitter.RegisterHandler(healthy)

	event, err := NewEvent(TypeDrawRecorded, DrawRecordedPayload{CardID: 3})
	require.NoError(t, err)

	err = emitter.EmitEvent(context.Background(), event)
	assert.EqualError(t, err, "handler broke")
	assert.Len(t, healthy.seen, 1, "later handlers still run")
}

func TestEmitEventWithoutHandlers(t *testing.T) {
	t.Parallel()

	emitter := NewInMemoryEmitter(nil)
	event, err := NewEvent(TypeDrawRecorded, DrawRecordedPayload{})
	require.NoError(t, err)

	assert.NoError(t, emitter.EmitEvent(context.Background(), event))
}

func TestEventPayloadRoundTrip(t *testing.T) {
	t.Parallel()

	payload := DrawRecordedPayload{CardID: 17, CardName: "The Star", DrawDate: "2025-06-01"}
	event, err := NewEvent(TypeDrawRecorded, payload)
	require.NoError(t, err)
	assert.NotEqual(t, "", event.ID.String())
	assert.False(t, event.CreatedAt.IsZero())

	var decoded DrawRecordedPayload
	require.NoError(t, event.UnmarshalPayload(&decoded))
	assert.Equal(t, payload, decoded)
}
