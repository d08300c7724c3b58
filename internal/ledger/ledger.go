// Package ledger tracks the draw-of-record: whether the user has drawn
// today, the card that draw produced, and a bounded history of past draws.
// Two implementations share the contract: a local file-backed variant and a
// remote service-backed variant. When the remote service is the backend of
// record, the local ledger is only a cache/fallback.
package ledger

import (
	"context"
	"errors"

	"github.com/arcanadaily/arcana-api/internal/domain"
)

// Business conditions reported by ledger implementations. These are
// recognized states, not failures: callers surface them to the user instead
// of treating them as errors.
var (
	// ErrAlreadyDrawn indicates the backend of record already holds a draw
	// for today.
	ErrAlreadyDrawn = errors.New("daily draw already completed")

	// ErrQuotaExceeded indicates the account's daily draw quota is spent.
	// Distinct from ErrAlreadyDrawn: a quota can reject a draw even when no
	// card-of-record exists (e.g. limit zero or multi-device races).
	ErrQuotaExceeded = errors.New("daily draw limit reached")

	// ErrUnavailable indicates the ledger backend could not be reached.
	// The orchestrator may fall back to the local ledger on this error.
	ErrUnavailable = errors.New("ledger backend unavailable")
)

// DrawLedger is the shared contract over the draw-of-record state machine.
// Per user and calendar day the state is NOT_DRAWN until a successful
// RecordDraw, after which it is DRAWN_TODAY; the day boundary resets it to
// NOT_DRAWN implicitly via the calendar-day comparison; there is no reset
// operation.
type DrawLedger interface {
	// HasDrawnToday reports whether a draw is recorded for the current
	// local calendar day.
	HasDrawnToday(ctx context.Context) (bool, error)

	// TodaysCard returns today's draw record, or nil when no draw is
	// recorded for today.
	TodaysCard(ctx context.Context) (*domain.DrawRecord, error)

	// RecordDraw stores the card as today's draw-of-record and prepends it
	// to the history, truncating the history to domain.HistoryLimit.
	// Remote implementations may reject with ErrAlreadyDrawn or
	// ErrQuotaExceeded discovered at call time.
	RecordDraw(
		ctx context.Context,
		card domain.Card,
		userCtx domain.UserContext,
		interpretation string,
	) (*domain.DrawRecord, error)

	// History returns past draw records, newest first, at most
	// domain.HistoryLimit entries.
	History(ctx context.Context) ([]domain.DrawRecord, error)
}

// Quota describes the per-account draw allowance reported by the remote
// backend. The local ledger has no quota beyond the one-per-day rule.
type Quota struct {
	DrawsToday int `json:"draws_today"`
	Limit      int `json:"limit"`
}
