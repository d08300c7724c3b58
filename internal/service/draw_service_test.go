package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanadaily/arcana-api/internal/domain"
	"github.com/arcanadaily/arcana-api/internal/domain/selection"
	"github.com/arcanadaily/arcana-api/internal/ledger"
)

// fakeLedger is an in-memory DrawLedger with injectable failures.
type fakeLedger struct {
	record      *domain.DrawRecord
	history     []domain.DrawRecord
	statusErr   error
	recordErr   error
	recordCalls int
}

var _ ledger.DrawLedger = (*fakeLedger)(nil)

func (f *fakeLedger) HasDrawnToday(_ context.Context) (bool, error) {
	if f.statusErr != nil {
		return false, f.statusErr
	}
	return f.record != nil, nil
}

func (f *fakeLedger) TodaysCard(_ context.Context) (*domain.DrawRecord, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return f.record, nil
}

func (f *fakeLedger) RecordDraw(
	_ context.Context,
	card domain.Card,
	userCtx domain.UserContext,
	interpretation string,
) (*domain.DrawRecord, error) {
	f.recordCalls++
	if f.recordErr != nil {
		return nil, f.recordErr
	}
	rec := domain.NewDrawRecord(card, userCtx, interpretation, time.Now())
	f.record = &rec
	f.history = append([]domain.DrawRecord{rec}, f.history...)
	return &rec, nil
}

func (f *fakeLedger) History(_ context.Context) ([]domain.DrawRecord, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return f.history, nil
}

// spyRecorder counts metric observations.
type spyRecorder struct {
	draws      map[string]int
	rejections map[string]int
	fallbacks  int
}

func newSpyRecorder() *spyRecorder {
	return &spyRecorder{draws: map[string]int{}, rejections: map[string]int{}}
}

func (r *spyRecorder) RecordDraw(backend string)                    { r.draws[backend]++ }
func (r *spyRecorder) RecordDrawRejected(reason string)             { r.rejections[reason]++ }
func (r *spyRecorder) RecordRemoteFallback()                        { r.fallbacks++ }
func (r *spyRecorder) RecordHTTPRequest(string, int, time.Duration) {}
func (r *spyRecorder) RecordInterpretation(string)                  {}

func newTestSelector() *selection.Selector {
	return selection.NewSelector(domain.Cards(), nil, nil)
}

func TestNewDrawServiceValidatesDependencies(t *testing.T) {
	t.Parallel()

	_, err := NewDrawService(nil, nil, newTestSelector(), nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = NewDrawService(&fakeLedger{}, nil, nil, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	svc, err := NewDrawService(&fakeLedger{}, nil, newTestSelector(), nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestDrawValidatesContext(t *testing.T) {
	t.Parallel()

	local := &fakeLedger{}
	svc, err := NewDrawService(local, nil, newTestSelector(), nil, nil)
	require.NoError(t, err)

	_, err = svc.Draw(context.Background(), "", "a question")
	assert.ErrorIs(t, err, domain.ErrEmptyMood)

	_, err = svc.Draw(context.Background(), domain.MoodCurious, "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyQuestion)

	assert.Zero(t, local.recordCalls, "invalid context must not reach the ledger")
}

func TestDrawIsIdempotentPerDay(t *testing.T) {
	t.Parallel()

	local := &fakeLedger{}
	spy := newSpyRecorder()
	svc, err := NewDrawService(local, nil, newTestSelector(), spy, nil)
	require.NoError(t, err)

	first, err := svc.Draw(context.Background(), domain.MoodHopeful, "what should I focus on")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := svc.Draw(context.Background(), domain.MoodAnxious, "a different question")
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, first.ID, second.ID, "second draw must replay the first record")
	assert.Equal(t, 1, local.recordCalls, "replay must not write again")
	assert.Len(t, local.history, 1)
	assert.Equal(t, 1, spy.draws["local"])
}

func TestDrawPrefersRemoteAndMirrorsLocally(t *testing.T) {
	t.Parallel()

	local := &fakeLedger{}
	remote := &fakeLedger{}
	spy := newSpyRecorder()
	svc, err := NewDrawService(local, remote, newTestSelector(), spy, nil)
	require.NoError(t, err)

	record, err := svc.Draw(context.Background(), domain.MoodCurious, "what awaits")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, 1, remote.recordCalls)
	assert.Equal(t, 1, local.recordCalls, "remote success must be cached locally")
	assert.Equal(t, 1, spy.draws["remote"])
	assert.Zero(t, spy.fallbacks)
}

func TestDrawReplaysRemoteAlreadyDrawn(t *testing.T) {
	t.Parallel()

	card, err := domain.CardByID(13)
	require.NoError(t, err)
	existing := domain.NewDrawRecord(card, domain.UserContext{}, "", time.Now())

	// Status says not drawn yet, but the write races into a rejection.
	remote := &fakeLedger{recordErr: ledger.ErrAlreadyDrawn}
	local := &fakeLedger{}
	spy := newSpyRecorder()
	svc, err := NewDrawService(local, remote, newTestSelector(), spy, nil)
	require.NoError(t, err)

	remote.statusErr = nil
	record, err := svc.Draw(context.Background(), domain.MoodPeaceful, "again")
	// TodaysCard is nil after the race in this fake, so the rejection surfaces.
	assert.ErrorIs(t, err, ledger.ErrAlreadyDrawn)
	assert.Nil(t, record)

	// With a card of record present, the rejection turns into a replay.
	remote.record = &existing
	remote.recordErr = ledger.ErrAlreadyDrawn
	record, err = svc.Draw(context.Background(), domain.MoodPeaceful, "again")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, record.ID)

	assert.Zero(t, local.recordCalls, "already-drawn must never fall back to local")
	assert.Positive(t, spy.rejections["already_drawn"])
}

func TestDrawSurfacesQuotaExceeded(t *testing.T) {
	t.Parallel()

	remote := &fakeLedger{recordErr: ledger.ErrQuotaExceeded}
	local := &fakeLedger{}
	spy := newSpyRecorder()
	svc, err := NewDrawService(local, remote, newTestSelector(), spy, nil)
	require.NoError(t, err)

	_, err = svc.Draw(context.Background(), domain.MoodExcited, "one more")
	assert.ErrorIs(t, err, ledger.ErrQuotaExceeded)
	assert.Zero(t, local.recordCalls, "quota rejection must never fall back to local")
	assert.Equal(t, 1, spy.rejections["quota_exceeded"])
}

func TestDrawFallsBackWhenRemoteUnavailable(t *testing.T) {
	t.Parallel()

	remote := &fakeLedger{statusErr: ledger.ErrUnavailable}
	local := &fakeLedger{}
	spy := newSpyRecorder()
	svc, err := NewDrawService(local, remote, newTestSelector(), spy, nil)
	require.NoError(t, err)

	record, err := svc.Draw(context.Background(), domain.MoodFrustrated, "why is it down")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, 1, local.recordCalls)
	assert.Equal(t, 1, spy.fallbacks)
	assert.Equal(t, 1, spy.draws["local"])
}

func TestReadPathsFallBackWhenRemoteUnavailable(t *testing.T) {
	t.Parallel()

	card, err := domain.CardByID(7)
	require.NoError(t, err)
	cached := domain.NewDrawRecord(card, domain.UserContext{}, "", time.Now())

	remote := &fakeLedger{statusErr: ledger.ErrUnavailable}
	local := &fakeLedger{record: &cached, history: []domain.DrawRecord{cached}}
	svc, err := NewDrawService(local, remote, newTestSelector(), nil, nil)
	require.NoError(t, err)

	drawn, err := svc.HasDrawnToday(context.Background())
	require.NoError(t, err)
	assert.True(t, drawn)

	record, err := svc.TodaysDraw(context.Background())
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, cached.ID, record.ID)

	history, err := svc.History(context.Background())
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestTodaysDrawBackfillsContextFromLocalMirror(t *testing.T) {
	t.Parallel()

	card, err := domain.CardByID(17)
	require.NoError(t, err)

	// The remote status endpoint carries only a card summary, so the remote
	// ledger reconstructs the record without mood or question.
	bare := domain.NewDrawRecord(card, domain.UserContext{}, card.TraditionalMeaning, time.Now())
	mirrored := domain.NewDrawRecord(card, domain.UserContext{
		Mood:     domain.MoodHopeful,
		Question: "what awaits",
	}, card.TraditionalMeaning, time.Now())

	remote := &fakeLedger{record: &bare}
	local := &fakeLedger{record: &mirrored}
	svc, err := NewDrawService(local, remote, newTestSelector(), nil, nil)
	require.NoError(t, err)

	record, err := svc.TodaysDraw(context.Background())
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, domain.MoodHopeful, record.Context.Mood)
	assert.Equal(t, "what awaits", record.Context.Question)

	// A mirror for a different card must not bleed its context in.
	other, err := domain.CardByID(0)
	require.NoError(t, err)
	stale := domain.NewDrawRecord(other, mirrored.Context, "", time.Now())
	fresh := domain.NewDrawRecord(card, domain.UserContext{}, card.TraditionalMeaning, time.Now())
	local.record = &stale
	remote.record = &fresh

	record, err = svc.TodaysDraw(context.Background())
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Empty(t, record.Context.Mood)
}

func TestReadPathsSurfaceNonFallbackErrors(t *testing.T) {
	t.Parallel()

	failure := errors.New("token expired")
	remote := &fakeLedger{statusErr: failure}
	local := &fakeLedger{}
	svc, err := NewDrawService(local, remote, newTestSelector(), nil, nil)
	require.NoError(t, err)

	_, err = svc.HasDrawnToday(context.Background())
	assert.ErrorIs(t, err, failure)

	_, err = svc.TodaysDraw(context.Background())
	assert.ErrorIs(t, err, failure)
}
