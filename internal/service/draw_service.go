package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/arcanadaily/arcana-api/internal/domain"
	"github.com/arcanadaily/arcana-api/internal/domain/selection"
	"github.com/arcanadaily/arcana-api/internal/ledger"
	"github.com/arcanadaily/arcana-api/internal/metrics"
)

// Backend labels for draw metrics and logs.
const (
	backendLocal  = "local"
	backendRemote = "remote"
)

// DrawService orchestrates the daily draw: validate the user context, pick
// the backend of record, enforce once-per-day idempotency, run card
// selection, and record the result.
type DrawService interface {
	// Draw performs (or replays) today's draw for the given context. It is
	// idempotent per local calendar day: once a draw exists, the same record
	// comes back and nothing new is written. ledger.ErrAlreadyDrawn and
	// ledger.ErrQuotaExceeded surface unchanged when the remote backend
	// rejects the attempt.
	Draw(ctx context.Context, mood domain.Mood, question string) (*domain.DrawRecord, error)

	// TodaysDraw returns today's record, or nil when no draw exists yet.
	TodaysDraw(ctx context.Context) (*domain.DrawRecord, error)

	// HasDrawnToday reports whether today's draw already happened.
	HasDrawnToday(ctx context.Context) (bool, error)

	// History returns past draws, newest first.
	History(ctx context.Context) ([]domain.DrawRecord, error)
}

// drawServiceImpl implements DrawService over a mandatory local ledger and
// an optional remote one. When the remote ledger is present it is the
// backend of record; the local ledger then serves as cache and fallback.
type drawServiceImpl struct {
	local    ledger.DrawLedger
	remote   ledger.DrawLedger
	selector *selection.Selector
	recorder metrics.Recorder
	logger   *slog.Logger
	timeFunc func() time.Time
}

var _ DrawService = (*drawServiceImpl)(nil)

// NewDrawService creates a DrawService. The remote ledger may be nil for
// anonymous sessions; everything else is required.
func NewDrawService(
	local ledger.DrawLedger,
	remote ledger.DrawLedger,
	selector *selection.Selector,
	recorder metrics.Recorder,
	logger *slog.Logger,
) (DrawService, error) {
	if local == nil {
		return nil, fmt.Errorf("%w: local ledger cannot be nil", domain.ErrValidation)
	}
	if selector == nil {
		return nil, fmt.Errorf("%w: selector cannot be nil", domain.ErrValidation)
	}
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &drawServiceImpl{
		local:    local,
		remote:   remote,
		selector: selector,
		recorder: recorder,
		logger:   logger.With(slog.String("component", "draw_service")),
		timeFunc: time.Now,
	}, nil
}

// Draw implements DrawService.Draw.
func (s *drawServiceImpl) Draw(
	ctx context.Context,
	mood domain.Mood,
	question string,
) (*domain.DrawRecord, error) {
	userCtx := domain.NewUserContext(mood, question, s.timeFunc())
	if err := userCtx.Validate(); err != nil {
		return nil, err
	}

	if s.remote != nil {
		record, err := s.drawRemote(ctx, userCtx)
		if err == nil || !errors.Is(err, ledger.ErrUnavailable) {
			return record, err
		}
		// Only unreachability falls through; business rejections never do.
		s.logger.Warn("remote ledger unavailable, falling back to local",
			slog.String("error", err.Error()))
		s.recorder.RecordRemoteFallback()
	}

	return s.drawOn(ctx, s.local, userCtx, backendLocal)
}

// drawRemote runs the draw against the remote backend of record and mirrors
// a successful result into the local cache.
func (s *drawServiceImpl) drawRemote(
	ctx context.Context,
	userCtx domain.UserContext,
) (*domain.DrawRecord, error) {
	record, err := s.drawOn(ctx, s.remote, userCtx, backendRemote)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrAlreadyDrawn):
			// The service already holds today's draw; replay it.
			s.recorder.RecordDrawRejected("already_drawn")
			existing, terr := s.remote.TodaysCard(ctx)
			if terr == nil && existing != nil {
				return s.backfillContext(ctx, existing), nil
			}
			return nil, err
		case errors.Is(err, ledger.ErrQuotaExceeded):
			s.recorder.RecordDrawRejected("quota_exceeded")
			return nil, err
		default:
			return nil, err
		}
	}

	// Best-effort cache write; a broken local disk must not undo a draw the
	// backend of record already accepted.
	if _, cerr := s.local.RecordDraw(ctx, record.Card, userCtx, record.Interpretation); cerr != nil {
		s.logger.Warn("failed to mirror remote draw into local cache",
			slog.String("error", cerr.Error()))
	}
	return record, nil
}

// drawOn applies the idempotency check and then records a freshly selected
// card on the given ledger.
func (s *drawServiceImpl) drawOn(
	ctx context.Context,
	l ledger.DrawLedger,
	userCtx domain.UserContext,
	backend string,
) (*domain.DrawRecord, error) {
	drawn, err := l.HasDrawnToday(ctx)
	if err != nil {
		return nil, err
	}
	if drawn {
		existing, err := l.TodaysCard(ctx)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			s.logger.Debug("replaying existing draw",
				slog.String("backend", backend),
				slog.Int("card_id", existing.Card.ID))
			return existing, nil
		}
	}

	card := s.selector.Select(userCtx)
	record, err := l.RecordDraw(ctx, card, userCtx, card.TraditionalMeaning)
	if err != nil {
		return nil, err
	}

	s.recorder.RecordDraw(backend)
	s.logger.Info("daily draw recorded",
		slog.String("backend", backend),
		slog.Int("card_id", record.Card.ID),
		slog.String("mood", string(userCtx.Mood)),
		slog.String("date", record.Date))
	return record, nil
}

// backfillContext fills in the mood and question from the local cache mirror
// when a remote record lacks them. The status endpoint does not carry the
// user context, so a replayed remote draw loses it otherwise.
func (s *drawServiceImpl) backfillContext(
	ctx context.Context,
	record *domain.DrawRecord,
) *domain.DrawRecord {
	if record == nil || record.Context.Mood != "" {
		return record
	}
	cached, err := s.local.TodaysCard(ctx)
	if err != nil || cached == nil || cached.Card.ID != record.Card.ID {
		return record
	}
	record.Context = cached.Context
	return record
}

// TodaysDraw implements DrawService.TodaysDraw.
func (s *drawServiceImpl) TodaysDraw(ctx context.Context) (*domain.DrawRecord, error) {
	if s.remote != nil {
		record, err := s.remote.TodaysCard(ctx)
		if err == nil {
			return s.backfillContext(ctx, record), nil
		}
		if !errors.Is(err, ledger.ErrUnavailable) {
			return nil, err
		}
		s.recorder.RecordRemoteFallback()
	}
	return s.local.TodaysCard(ctx)
}

// HasDrawnToday implements DrawService.HasDrawnToday.
func (s *drawServiceImpl) HasDrawnToday(ctx context.Context) (bool, error) {
	if s.remote != nil {
		drawn, err := s.remote.HasDrawnToday(ctx)
		if err == nil {
			return drawn, nil
		}
		if !errors.Is(err, ledger.ErrUnavailable) {
			return false, err
		}
		s.recorder.RecordRemoteFallback()
	}
	return s.local.HasDrawnToday(ctx)
}

// History implements DrawService.History.
func (s *drawServiceImpl) History(ctx context.Context) ([]domain.DrawRecord, error) {
	if s.remote != nil {
		history, err := s.remote.History(ctx)
		if err == nil {
			return history, nil
		}
		if !errors.Is(err, ledger.ErrUnavailable) {
			return nil, err
		}
		s.recorder.RecordRemoteFallback()
	}
	return s.local.History(ctx)
}
