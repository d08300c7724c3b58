package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/arcanadaily/arcana-api/internal/domain"
)

// Storage file names inside the ledger directory. The names mirror the
// storage keys of the original browser client so existing exports stay
// readable.
const (
	lastDrawFile = "lastCardDraw.json"
	historyFile  = "cardHistory.json"
)

// LocalLedger is the file-backed DrawLedger used when no authenticated
// remote session exists, or as a fallback when the remote service is
// unreachable. Corrupted or unreadable state degrades to "not drawn" /
// empty history; persistence corruption is never fatal here.
type LocalLedger struct {
	dir      string
	logger   *slog.Logger
	timeFunc func() time.Time // injectable for day-boundary tests
}

var _ DrawLedger = (*LocalLedger)(nil)

// NewLocalLedger creates a LocalLedger persisting under dir, creating the
// directory if needed. If logger is nil, the default logger is used.
func NewLocalLedger(dir string, logger *slog.Logger) (*LocalLedger, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create ledger directory: %w", err)
	}

	return &LocalLedger{
		dir:      dir,
		logger:   logger.With(slog.String("component", "local_ledger")),
		timeFunc: time.Now,
	}, nil
}

// HasDrawnToday implements DrawLedger.HasDrawnToday by comparing the stored
// record's calendar day against today's in local time.
func (l *LocalLedger) HasDrawnToday(_ context.Context) (bool, error) {
	last := l.readLastDraw()
	return last != nil && last.IsToday(l.timeFunc()), nil
}

// TodaysCard implements DrawLedger.TodaysCard.
func (l *LocalLedger) TodaysCard(_ context.Context) (*domain.DrawRecord, error) {
	last := l.readLastDraw()
	if last == nil || !last.IsToday(l.timeFunc()) {
		return nil, nil
	}
	return last, nil
}

// RecordDraw implements DrawLedger.RecordDraw. It overwrites the
// most-recent slot and prepends to the history, truncating to
// domain.HistoryLimit. The previous day's record is superseded, not deleted.
func (l *LocalLedger) RecordDraw(
	_ context.Context,
	card domain.Card,
	userCtx domain.UserContext,
	interpretation string,
) (*domain.DrawRecord, error) {
	record := domain.NewDrawRecord(card, userCtx, interpretation, l.timeFunc())

	if err := l.writeJSON(lastDrawFile, record); err != nil {
		return nil, fmt.Errorf("failed to persist draw: %w", err)
	}

	history := l.readHistory()
	history = append([]domain.DrawRecord{record}, history...)
	if len(history) > domain.HistoryLimit {
		history = history[:domain.HistoryLimit]
	}
	if err := l.writeJSON(historyFile, history); err != nil {
		return nil, fmt.Errorf("failed to persist history: %w", err)
	}

	l.logger.Debug("recorded local draw",
		slog.Int("card_id", card.ID),
		slog.String("date", record.Date))
	return &record, nil
}

// History implements DrawLedger.History.
func (l *LocalLedger) History(_ context.Context) ([]domain.DrawRecord, error) {
	return l.readHistory(), nil
}

// readLastDraw loads the most-recent slot. Missing or unparsable state
// returns nil.
func (l *LocalLedger) readLastDraw() *domain.DrawRecord {
	data, err := os.ReadFile(filepath.Join(l.dir, lastDrawFile))
	if err != nil {
		return nil
	}

	var record domain.DrawRecord
	if err := json.Unmarshal(data, &record); err != nil {
		l.logger.Warn("discarding corrupted draw record", slog.String("error", err.Error()))
		return nil
	}
	return &record
}

// readHistory loads the history slice. Missing or unparsable state returns
// an empty history.
func (l *LocalLedger) readHistory() []domain.DrawRecord {
	data, err := os.ReadFile(filepath.Join(l.dir, historyFile))
	if err != nil {
		return nil
	}

	var history []domain.DrawRecord
	if err := json.Unmarshal(data, &history); err != nil {
		l.logger.Warn("discarding corrupted draw history", slog.String("error", err.Error()))
		return nil
	}
	if len(history) > domain.HistoryLimit {
		history = history[:domain.HistoryLimit]
	}
	return history
}

// writeJSON writes the value atomically: to a temp file in the same
// directory, then renamed over the target.
func (l *LocalLedger) writeJSON(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(l.dir, name+".tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(l.dir, name))
}
