package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanadaily/arcana-api/internal/domain"
	"github.com/arcanadaily/arcana-api/internal/events"
	"github.com/arcanadaily/arcana-api/internal/generation"
	"github.com/arcanadaily/arcana-api/internal/store"
)

// fakeDrawStore is an in-memory DrawStore keyed by user and date.
type fakeDrawStore struct {
	draws map[string]*domain.CardDraw
	usage map[string]int
}

var _ store.DrawStore = (*fakeDrawStore)(nil)

func newFakeDrawStore() *fakeDrawStore {
	return &fakeDrawStore{
		draws: map[string]*domain.CardDraw{},
		usage: map[string]int{},
	}
}

func drawKey(userID uuid.UUID, date string) string { return userID.String() + "/" + date }

func (f *fakeDrawStore) WithTx(*sql.Tx) store.DrawStore { return f }

func (f *fakeDrawStore) Create(_ context.Context, draw *domain.CardDraw) error {
	key := drawKey(draw.UserID, draw.DrawDate)
	if _, ok := f.draws[key]; ok {
		return store.ErrDrawExists
	}
	f.draws[key] = draw
	return nil
}

func (f *fakeDrawStore) GetByUserAndDate(
	_ context.Context,
	userID uuid.UUID,
	drawDate string,
) (*domain.CardDraw, error) {
	if draw, ok := f.draws[drawKey(userID, drawDate)]; ok {
		return draw, nil
	}
	return nil, store.ErrDrawNotFound
}

func (f *fakeDrawStore) ListByUser(
	_ context.Context,
	userID uuid.UUID,
	limit int,
) ([]domain.CardDraw, error) {
	var out []domain.CardDraw
	for _, draw := range f.draws {
		if draw.UserID == userID && len(out) < limit {
			out = append(out, *draw)
		}
	}
	return out, nil
}

func (f *fakeDrawStore) SetEnhancedInterpretation(
	_ context.Context,
	userID uuid.UUID,
	drawDate string,
	interpretation string,
) error {
	draw, ok := f.draws[drawKey(userID, drawDate)]
	if !ok {
		return store.ErrDrawNotFound
	}
	draw.InterpretationEnhanced = interpretation
	return nil
}

func (f *fakeDrawStore) CountForDate(_ context.Context, userID uuid.UUID, usageDate string) (int, error) {
	return f.usage[drawKey(userID, usageDate)], nil
}

func (f *fakeDrawStore) IncrementUsage(_ context.Context, userID uuid.UUID, usageDate string) error {
	f.usage[drawKey(userID, usageDate)]++
	return nil
}

// fakeInterpreter returns a canned interpretation.
type fakeInterpreter struct {
	text string
	err  error
}

func (f fakeInterpreter) Interpret(context.Context, domain.Card, domain.UserContext) (string, error) {
	return f.text, f.err
}

func newDailyDrawService(t *testing.T, draws *fakeDrawStore, interp generation.Interpreter) *dailyDrawServiceImpl {
	t.Helper()
	svc, err := NewDailyDrawService(
		&sql.DB{}, draws, newTestSelector(), interp, nil, nil, 1, nil,
	)
	require.NoError(t, err)

	impl := svc.(*dailyDrawServiceImpl)
	// Bypass the real transaction machinery; the fake store is not
	// transactional.
	impl.runTx = func(ctx context.Context, _ *sql.DB, fn store.TxFn) error {
		return fn(ctx, nil)
	}
	return impl
}

func TestPerformDailyDrawHappyPath(t *testing.T) {
	t.Parallel()

	draws := newFakeDrawStore()
	svc := newDailyDrawService(t, draws, nil)
	userID := uuid.New()

	draw, err := svc.PerformDailyDraw(context.Background(), userID, domain.MoodHopeful, "what now")
	require.NoError(t, err)
	require.NotNil(t, draw)
	assert.Equal(t, userID, draw.UserID)
	assert.NotEmpty(t, draw.CardName)
	assert.NotEmpty(t, draw.InterpretationBasic)

	count, err := draws.CountForDate(context.Background(), userID, draw.DrawDate)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPerformDailyDrawReplaysExisting(t *testing.T) {
	t.Parallel()

	draws := newFakeDrawStore()
	svc := newDailyDrawService(t, draws, nil)
	userID := uuid.New()

	first, err := svc.PerformDailyDraw(context.Background(), userID, domain.MoodCurious, "first ask")
	require.NoError(t, err)

	second, err := svc.PerformDailyDraw(context.Background(), userID, domain.MoodAnxious, "second ask")
	assert.ErrorIs(t, err, ErrAlreadyDrawnToday)
	require.NotNil(t, second, "the existing draw accompanies the rejection")
	assert.Equal(t, first.ID, second.ID)

	// The replay must not bump usage.
	count, err := draws.CountForDate(context.Background(), userID, first.DrawDate)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPerformDailyDrawEnforcesQuota(t *testing.T) {
	t.Parallel()

	draws := newFakeDrawStore()
	svc := newDailyDrawService(t, draws, nil)
	userID := uuid.New()

	// Usage spent but no draw row for today (e.g. limit consumed through
	// another path).
	today := domain.CalendarDay(time.Now())
	draws.usage[drawKey(userID, today)] = 1

	_, err := svc.PerformDailyDraw(context.Background(), userID, domain.MoodExcited, "one more")
	assert.ErrorIs(t, err, ErrDailyLimitReached)
}

func TestPerformDailyDrawValidatesContext(t *testing.T) {
	t.Parallel()

	svc := newDailyDrawService(t, newFakeDrawStore(), nil)

	_, err := svc.PerformDailyDraw(context.Background(), uuid.New(), "", "question")
	assert.ErrorIs(t, err, domain.ErrEmptyMood)

	_, err = svc.PerformDailyDraw(context.Background(), uuid.New(), domain.MoodCurious, "  ")
	assert.ErrorIs(t, err, domain.ErrEmptyQuestion)
}

func TestTodayStatus(t *testing.T) {
	t.Parallel()

	draws := newFakeDrawStore()
	svc := newDailyDrawService(t, draws, nil)
	userID := uuid.New()

	status, err := svc.TodayStatus(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, status.HasDrawn)
	assert.True(t, status.CanDraw)
	assert.Nil(t, status.Draw)
	assert.Equal(t, 1, status.Limit)

	_, err = svc.PerformDailyDraw(context.Background(), userID, domain.MoodPeaceful, "today")
	require.NoError(t, err)

	status, err = svc.TodayStatus(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, status.HasDrawn)
	assert.False(t, status.CanDraw)
	require.NotNil(t, status.Draw)
	assert.Equal(t, 1, status.DrawsToday)
}

func TestCardMeaning(t *testing.T) {
	t.Parallel()

	svc := newDailyDrawService(t, newFakeDrawStore(), nil)

	card, err := svc.CardMeaning(0)
	require.NoError(t, err)
	assert.Equal(t, "The Fool", card.Name)

	_, err = svc.CardMeaning(99)
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}

func TestEnhanceInterpretation(t *testing.T) {
	t.Parallel()

	draws := newFakeDrawStore()
	svc := newDailyDrawService(t, draws, fakeInterpreter{text: "a deeper reading"})

	premium := &domain.User{ID: uuid.New(), Email: "p@example.com", Premium: true}
	free := &domain.User{ID: uuid.New(), Email: "f@example.com"}

	// Premium gate comes first.
	_, err := svc.EnhanceInterpretation(context.Background(), free, "")
	assert.ErrorIs(t, err, ErrPremiumRequired)
	_, err = svc.EnhanceInterpretation(context.Background(), nil, "")
	assert.ErrorIs(t, err, ErrPremiumRequired)

	// No draw today yet.
	_, err = svc.EnhanceInterpretation(context.Background(), premium, "")
	assert.ErrorIs(t, err, store.ErrDrawNotFound)

	_, err = svc.PerformDailyDraw(context.Background(), premium.ID, domain.MoodHopeful, "deeper meaning")
	require.NoError(t, err)

	text, err := svc.EnhanceInterpretation(context.Background(), premium, "")
	require.NoError(t, err)
	assert.Equal(t, "a deeper reading", text)

	// Persisted on the draw and reused without regenerating.
	svc.interpreter = fakeInterpreter{err: errors.New("must not be called")}
	text, err = svc.EnhanceInterpretation(context.Background(), premium, "")
	require.NoError(t, err)
	assert.Equal(t, "a deeper reading", text)
}

func TestPerformDailyDrawEmitsEvent(t *testing.T) {
	t.Parallel()

	emitter := events.NewInMemoryEmitter(nil)
	var seen []*events.Event
	emitter.RegisterHandler(eventHandlerFunc(func(_ context.Context, e *events.Event) error {
		seen = append(seen, e)
		return nil
	}))

	draws := newFakeDrawStore()
	svc := newDailyDrawService(t, draws, nil)
	svc.emitter = emitter
	userID := uuid.New()

	draw, err := svc.PerformDailyDraw(context.Background(), userID, domain.MoodCurious, "listen")
	require.NoError(t, err)

	require.Len(t, seen, 1)
	assert.Equal(t, events.TypeDrawRecorded, seen[0].Type)
	var payload events.DrawRecordedPayload
	require.NoError(t, seen[0].UnmarshalPayload(&payload))
	assert.Equal(t, userID, payload.UserID)
	assert.Equal(t, draw.CardID, payload.CardID)

	// A replay is not a new draw and must not re-emit.
	_, err = svc.PerformDailyDraw(context.Background(), userID, domain.MoodCurious, "again")
	assert.ErrorIs(t, err, ErrAlreadyDrawnToday)
	assert.Len(t, seen, 1)
}

type eventHandlerFunc func(ctx context.Context, e *events.Event) error

func (f eventHandlerFunc) HandleEvent(ctx context.Context, e *events.Event) error {
	return f(ctx, e)
}

func TestEnhanceInterpretationDisabled(t *testing.T) {
	t.Parallel()

	draws := newFakeDrawStore()
	svc := newDailyDrawService(t, draws, generation.Disabled{})
	premium := &domain.User{ID: uuid.New(), Email: "p@example.com", Premium: true}

	_, err := svc.PerformDailyDraw(context.Background(), premium.ID, domain.MoodHopeful, "anything")
	require.NoError(t, err)

	_, err = svc.EnhanceInterpretation(context.Background(), premium, "")
	assert.ErrorIs(t, err, generation.ErrDisabled)
}
