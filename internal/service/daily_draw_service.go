package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/arcanadaily/arcana-api/internal/domain"
	"github.com/arcanadaily/arcana-api/internal/domain/selection"
	"github.com/arcanadaily/arcana-api/internal/events"
	"github.com/arcanadaily/arcana-api/internal/generation"
	"github.com/arcanadaily/arcana-api/internal/metrics"
	"github.com/arcanadaily/arcana-api/internal/store"
)

// DrawStatus describes an account's draw state for the current day.
type DrawStatus struct {
	HasDrawn   bool
	CanDraw    bool
	Draw       *domain.CardDraw
	DrawsToday int
	Limit      int
}

// DailyDrawService provides the server-side daily draw operations: the
// once-per-day draw of record, status, history, catalog lookups and premium
// interpretation enhancement.
type DailyDrawService interface {
	// PerformDailyDraw selects and records today's card for the account.
	// When a draw already exists for today it is returned together with
	// ErrAlreadyDrawnToday. Returns ErrDailyLimitReached when the account's
	// quota is spent (premium accounts are exempt).
	PerformDailyDraw(
		ctx context.Context,
		userID uuid.UUID,
		mood domain.Mood,
		question string,
	) (*domain.CardDraw, error)

	// TodayStatus reports whether the account drew today, the card of
	// record, and quota usage.
	TodayStatus(ctx context.Context, userID uuid.UUID) (*DrawStatus, error)

	// History returns up to limit past draws, newest first.
	History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CardDraw, error)

	// CardMeaning returns the full catalog entry for a card ID.
	CardMeaning(cardID int) (domain.Card, error)

	// EnhanceInterpretation generates and persists a personalized
	// interpretation for the account's draw on drawDate. Premium only;
	// returns ErrPremiumRequired otherwise.
	EnhanceInterpretation(
		ctx context.Context,
		user *domain.User,
		drawDate string,
	) (string, error)
}

// dailyDrawServiceImpl implements the DailyDrawService interface.
type dailyDrawServiceImpl struct {
	db          *sql.DB
	drawStore   store.DrawStore
	selector    *selection.Selector
	interpreter generation.Interpreter
	recorder    metrics.Recorder
	emitter     events.Emitter
	logger      *slog.Logger
	dailyLimit  int
	timeFunc    func() time.Time
	runTx       func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

var _ DailyDrawService = (*dailyDrawServiceImpl)(nil)

// NewDailyDrawService creates a DailyDrawService. The interpreter may be
// generation.Disabled when no LLM backend is configured; the emitter may be
// nil when nothing subscribes to draw events.
func NewDailyDrawService(
	db *sql.DB,
	drawStore store.DrawStore,
	selector *selection.Selector,
	interpreter generation.Interpreter,
	recorder metrics.Recorder,
	emitter events.Emitter,
	dailyLimit int,
	logger *slog.Logger,
) (DailyDrawService, error) {
	if db == nil {
		return nil, fmt.Errorf("%w: db cannot be nil", domain.ErrValidation)
	}
	if drawStore == nil {
		return nil, fmt.Errorf("%w: drawStore cannot be nil", domain.ErrValidation)
	}
	if selector == nil {
		return nil, fmt.Errorf("%w: selector cannot be nil", domain.ErrValidation)
	}
	if interpreter == nil {
		interpreter = generation.Disabled{}
	}
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	if dailyLimit <= 0 {
		dailyLimit = 1
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &dailyDrawServiceImpl{
		db:          db,
		drawStore:   drawStore,
		selector:    selector,
		interpreter: interpreter,
		recorder:    recorder,
		emitter:     emitter,
		logger:      logger.With(slog.String("component", "daily_draw_service")),
		dailyLimit:  dailyLimit,
		timeFunc:    time.Now,
		runTx:       store.RunInTransaction,
	}, nil
}

// PerformDailyDraw implements DailyDrawService.PerformDailyDraw. The check,
// insert and usage bump run in one transaction; the unique index on
// (user_id, draw_date) closes the race between concurrent requests.
func (s *dailyDrawServiceImpl) PerformDailyDraw(
	ctx context.Context,
	userID uuid.UUID,
	mood domain.Mood,
	question string,
) (*domain.CardDraw, error) {
	now := s.timeFunc()
	userCtx := domain.NewUserContext(mood, question, now)
	if err := userCtx.Validate(); err != nil {
		return nil, err
	}
	today := domain.CalendarDay(now)

	var result *domain.CardDraw
	var resultErr error
	txErr := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		draws := s.drawStore.WithTx(tx)

		existing, err := draws.GetByUserAndDate(ctx, userID, today)
		if err == nil {
			result = existing
			resultErr = ErrAlreadyDrawnToday
			return nil
		}
		if !errors.Is(err, store.ErrDrawNotFound) {
			return err
		}

		count, err := draws.CountForDate(ctx, userID, today)
		if err != nil {
			return err
		}
		if count >= s.dailyLimit {
			resultErr = ErrDailyLimitReached
			return nil
		}

		card := s.selector.Select(userCtx)
		draw := domain.NewCardDraw(userID, card, userCtx, now)

		if err := draws.Create(ctx, draw); err != nil {
			if errors.Is(err, store.ErrDrawExists) {
				// Lost the race to a concurrent request; that draw wins.
				existing, gerr := draws.GetByUserAndDate(ctx, userID, today)
				if gerr != nil {
					return gerr
				}
				result = existing
				resultErr = ErrAlreadyDrawnToday
				return nil
			}
			return err
		}
		if err := draws.IncrementUsage(ctx, userID, today); err != nil {
			return err
		}

		result = draw
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("failed to perform daily draw: %w", txErr)
	}

	switch {
	case errors.Is(resultErr, ErrAlreadyDrawnToday):
		s.recorder.RecordDrawRejected("already_drawn")
		return result, resultErr
	case errors.Is(resultErr, ErrDailyLimitReached):
		s.recorder.RecordDrawRejected("quota_exceeded")
		return nil, resultErr
	}

	s.recorder.RecordDraw("server")
	s.logger.Info("daily draw recorded",
		slog.String("user_id", userID.String()),
		slog.Int("card_id", result.CardID),
		slog.String("date", result.DrawDate))
	s.emit(ctx, events.TypeDrawRecorded, events.DrawRecordedPayload{
		UserID:   userID,
		CardID:   result.CardID,
		CardName: result.CardName,
		DrawDate: result.DrawDate,
		Mood:     string(result.Mood),
	})
	return result, nil
}

// emit publishes an event, logging rather than failing the operation when
// the payload or a handler misbehaves.
func (s *dailyDrawServiceImpl) emit(ctx context.Context, eventType string, payload any) {
	if s.emitter == nil {
		return
	}
	event, err := events.NewEvent(eventType, payload)
	if err != nil {
		s.logger.Error("failed to build event", "error", err, "event_type", eventType)
		return
	}
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.Warn("event delivery failed", "error", err, "event_type", eventType)
	}
}

// TodayStatus implements DailyDrawService.TodayStatus.
func (s *dailyDrawServiceImpl) TodayStatus(
	ctx context.Context,
	userID uuid.UUID,
) (*DrawStatus, error) {
	today := domain.CalendarDay(s.timeFunc())

	draw, err := s.drawStore.GetByUserAndDate(ctx, userID, today)
	if err != nil && !errors.Is(err, store.ErrDrawNotFound) {
		return nil, fmt.Errorf("failed to read today's draw: %w", err)
	}

	count, err := s.drawStore.CountForDate(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to read daily usage: %w", err)
	}

	return &DrawStatus{
		HasDrawn:   draw != nil,
		CanDraw:    draw == nil && count < s.dailyLimit,
		Draw:       draw,
		DrawsToday: count,
		Limit:      s.dailyLimit,
	}, nil
}

// History implements DailyDrawService.History.
func (s *dailyDrawServiceImpl) History(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]domain.CardDraw, error) {
	if limit <= 0 || limit > domain.HistoryLimit {
		limit = domain.HistoryLimit
	}
	draws, err := s.drawStore.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list draw history: %w", err)
	}
	return draws, nil
}

// CardMeaning implements DailyDrawService.CardMeaning.
func (s *dailyDrawServiceImpl) CardMeaning(cardID int) (domain.Card, error) {
	return domain.CardByID(cardID)
}

// EnhanceInterpretation implements DailyDrawService.EnhanceInterpretation.
func (s *dailyDrawServiceImpl) EnhanceInterpretation(
	ctx context.Context,
	user *domain.User,
	drawDate string,
) (string, error) {
	if user == nil || !user.Premium {
		return "", ErrPremiumRequired
	}
	if drawDate == "" {
		drawDate = domain.CalendarDay(s.timeFunc())
	}

	draw, err := s.drawStore.GetByUserAndDate(ctx, user.ID, drawDate)
	if err != nil {
		return "", err
	}

	// A prior enhancement is reused rather than regenerated.
	if draw.InterpretationEnhanced != "" {
		return draw.InterpretationEnhanced, nil
	}

	card, err := domain.CardByID(draw.CardID)
	if err != nil {
		return "", err
	}

	interpretation, err := s.interpreter.Interpret(ctx, card, domain.UserContext{
		Mood:     draw.Mood,
		Question: draw.Question,
	})
	if err != nil {
		s.recorder.RecordInterpretation("error")
		return "", err
	}

	if err := s.drawStore.SetEnhancedInterpretation(ctx, user.ID, drawDate, interpretation); err != nil {
		s.recorder.RecordInterpretation("error")
		return "", fmt.Errorf("failed to persist enhanced interpretation: %w", err)
	}

	s.recorder.RecordInterpretation("success")
	s.emit(ctx, events.TypeInterpretationEnhanced, events.DrawRecordedPayload{
		UserID:   user.ID,
		CardID:   draw.CardID,
		CardName: draw.CardName,
		DrawDate: draw.DrawDate,
		Mood:     string(draw.Mood),
	})
	return interpretation, nil
}
