package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/arcanadaily/arcana-api/internal/domain"
	"github.com/arcanadaily/arcana-api/internal/remote"
)

// RemoteLedger is the service-backed DrawLedger used for authenticated
// sessions. The service is the backend of record: it performs its own card
// selection on RecordDraw and enforces the daily quota, so the card argument
// is advisory context, not the card that gets recorded.
type RemoteLedger struct {
	client   *remote.Client
	logger   *slog.Logger
	timeFunc func() time.Time
}

var _ DrawLedger = (*RemoteLedger)(nil)

// NewRemoteLedger creates a RemoteLedger over an authenticated client.
func NewRemoteLedger(client *remote.Client, logger *slog.Logger) *RemoteLedger {
	if logger == nil {
		logger = slog.Default()
	}
	return &RemoteLedger{
		client:   client,
		logger:   logger.With(slog.String("component", "remote_ledger")),
		timeFunc: time.Now,
	}
}

// HasDrawnToday implements DrawLedger.HasDrawnToday against the service's
// authoritative status endpoint.
func (l *RemoteLedger) HasDrawnToday(ctx context.Context) (bool, error) {
	status, err := l.client.GetTodayStatus(ctx)
	if err != nil {
		return false, l.classify(err)
	}
	return status.HasDrawn, nil
}

// TodaysCard implements DrawLedger.TodaysCard. The status endpoint only
// carries a card summary, so the full record is reconstructed from the
// local catalog.
func (l *RemoteLedger) TodaysCard(ctx context.Context) (*domain.DrawRecord, error) {
	status, err := l.client.GetTodayStatus(ctx)
	if err != nil {
		return nil, l.classify(err)
	}
	if !status.HasDrawn || status.Card == nil {
		return nil, nil
	}

	card, err := domain.CardByID(status.Card.ID)
	if err != nil {
		return nil, fmt.Errorf("service returned unknown card %d: %w", status.Card.ID, err)
	}
	record := domain.NewDrawRecord(card, domain.UserContext{}, card.TraditionalMeaning, l.timeFunc())
	return &record, nil
}

// RecordDraw implements DrawLedger.RecordDraw. The service selects its own
// card of record; the locally selected card is discarded and the server's
// choice is returned. Rejections map to ErrAlreadyDrawn and ErrQuotaExceeded.
func (l *RemoteLedger) RecordDraw(
	ctx context.Context,
	_ domain.Card,
	userCtx domain.UserContext,
	_ string,
) (*domain.DrawRecord, error) {
	result, err := l.client.PerformDailyDraw(ctx, string(userCtx.Mood), userCtx.Question)
	if err != nil {
		return nil, l.classify(err)
	}

	card, err := domain.CardByID(result.Card.CardID)
	if err != nil {
		return nil, fmt.Errorf("service returned unknown card %d: %w", result.Card.CardID, err)
	}

	record := domain.NewDrawRecord(card, userCtx, result.Card.InterpretationBasic, l.timeFunc())
	if result.Card.DrawDate != "" {
		record.Date = result.Card.DrawDate
	}

	l.logger.Debug("recorded remote draw",
		slog.Int("card_id", card.ID),
		slog.String("date", record.Date))
	return &record, nil
}

// History implements DrawLedger.History, mapping the service's rows onto
// catalog cards. Rows referencing unknown cards are skipped rather than
// failing the whole listing.
func (l *RemoteLedger) History(ctx context.Context) ([]domain.DrawRecord, error) {
	result, err := l.client.GetDrawHistory(ctx, domain.HistoryLimit)
	if err != nil {
		return nil, l.classify(err)
	}

	records := make([]domain.DrawRecord, 0, len(result.Draws))
	for _, draw := range result.Draws {
		card, err := domain.CardByID(draw.CardID)
		if err != nil {
			l.logger.Warn("skipping history row with unknown card",
				slog.Int("card_id", draw.CardID))
			continue
		}

		interpretation := draw.InterpretationEnhanced
		if interpretation == "" {
			interpretation = draw.InterpretationBasic
		}
		records = append(records, domain.DrawRecord{
			ID:             draw.ID,
			Card:           card,
			Context:        domain.UserContext{Mood: domain.Mood(draw.Mood), Question: draw.Question},
			Interpretation: interpretation,
			Date:           draw.DrawDate,
			Timestamp:      draw.CreatedAt.UnixMilli(),
		})
	}
	return records, nil
}

// Status returns the service's current quota for the account.
func (l *RemoteLedger) Status(ctx context.Context) (*Quota, error) {
	status, err := l.client.GetTodayStatus(ctx)
	if err != nil {
		return nil, l.classify(err)
	}
	return &Quota{DrawsToday: status.DrawsToday, Limit: status.Limit}, nil
}

// classify maps client errors to ledger sentinels: HTTP 409 is the
// already-drawn signal, HTTP 403 the quota signal, and server-side or
// transport failures become ErrUnavailable so callers can fall back.
func (l *RemoteLedger) classify(err error) error {
	switch status := remote.StatusOf(err); {
	case status == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrAlreadyDrawn, err.Error())
	case status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, err.Error())
	case status >= 500:
		return fmt.Errorf("%w: %s", ErrUnavailable, err.Error())
	case status != 0:
		// Other client-side rejections (400, 401) are real errors, not
		// fallback triggers.
		return err
	default:
		// No HTTP status at all means the request never completed.
		return fmt.Errorf("%w: %s", ErrUnavailable, err.Error())
	}
}
