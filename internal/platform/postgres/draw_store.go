package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/arcanadaily/arcana-api/internal/domain"
	"github.com/arcanadaily/arcana-api/internal/store"
)

// defaultHistoryLimit bounds ListByUser when the caller passes a
// non-positive limit.
const defaultHistoryLimit = 20

// DrawStore implements the store.DrawStore interface using a PostgreSQL
// database as the storage backend. The (user_id, draw_date) unique index on
// card_draws is the database-level idempotency guarantee for the daily draw.
type DrawStore struct {
	db store.DBTX
}

// NewDrawStore creates a new PostgreSQL implementation of the DrawStore
// interface.
func NewDrawStore(db *sql.DB) *DrawStore {
	return &DrawStore{db: db}
}

var _ store.DrawStore = (*DrawStore)(nil)

// WithTx implements store.DrawStore.WithTx
func (s *DrawStore) WithTx(tx *sql.Tx) store.DrawStore {
	return &DrawStore{db: tx}
}

// Create implements store.DrawStore.Create
func (s *DrawStore) Create(ctx context.Context, draw *domain.CardDraw) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO card_draws (id, user_id, card_id, card_name, draw_date,
		                        interpretation_basic, mood, question, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, draw.ID, draw.UserID, draw.CardID, draw.CardName, draw.DrawDate,
		draw.InterpretationBasic, string(draw.Mood), draw.Question, draw.CreatedAt)
	if err != nil {
		return MapUniqueViolation(MapError(err), store.ErrDrawExists)
	}
	return nil
}

// GetByUserAndDate implements store.DrawStore.GetByUserAndDate
func (s *DrawStore) GetByUserAndDate(
	ctx context.Context,
	userID uuid.UUID,
	drawDate string,
) (*domain.CardDraw, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, card_id, card_name, draw_date::text,
		       COALESCE(interpretation_basic, ''),
		       COALESCE(interpretation_enhanced, ''),
		       COALESCE(mood, ''), COALESCE(question, ''), created_at
		FROM card_draws
		WHERE user_id = $1 AND draw_date = $2
	`, userID, drawDate)

	draw, err := scanDraw(row)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, store.ErrDrawNotFound
		}
		return nil, MapError(err)
	}
	return draw, nil
}

// ListByUser implements store.DrawStore.ListByUser
func (s *DrawStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]domain.CardDraw, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, card_id, card_name, draw_date::text,
		       COALESCE(interpretation_basic, ''),
		       COALESCE(interpretation_enhanced, ''),
		       COALESCE(mood, ''), COALESCE(question, ''), created_at
		FROM card_draws
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	draws := make([]domain.CardDraw, 0, limit)
	for rows.Next() {
		draw, err := scanDraw(rows)
		if err != nil {
			return nil, MapError(err)
		}
		draws = append(draws, *draw)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return draws, nil
}

// SetEnhancedInterpretation implements store.DrawStore.SetEnhancedInterpretation
func (s *DrawStore) SetEnhancedInterpretation(
	ctx context.Context,
	userID uuid.UUID,
	drawDate string,
	interpretation string,
) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE card_draws
		SET interpretation_enhanced = $3
		WHERE user_id = $1 AND draw_date = $2
	`, userID, drawDate, interpretation)
	if err != nil {
		return MapError(err)
	}
	if err := CheckRowsAffected(result, "draw"); err != nil {
		return store.ErrDrawNotFound
	}
	return nil
}

// CountForDate implements store.DrawStore.CountForDate
func (s *DrawStore) CountForDate(
	ctx context.Context,
	userID uuid.UUID,
	usageDate string,
) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(draws_count, 0)
		FROM daily_usage
		WHERE user_id = $1 AND usage_date = $2
	`, userID, usageDate).Scan(&count)
	if err != nil {
		if IsNotFoundError(err) {
			return 0, nil
		}
		return 0, MapError(err)
	}
	return count, nil
}

// IncrementUsage implements store.DrawStore.IncrementUsage
func (s *DrawStore) IncrementUsage(
	ctx context.Context,
	userID uuid.UUID,
	usageDate string,
) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO daily_usage (id, user_id, usage_date, draws_count)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (user_id, usage_date)
		DO UPDATE SET draws_count = daily_usage.draws_count + 1
	`, uuid.New(), userID, usageDate)
	if err != nil {
		return fmt.Errorf("failed to increment daily usage: %w", MapError(err))
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDraw(row rowScanner) (*domain.CardDraw, error) {
	var draw domain.CardDraw
	var mood string
	err := row.Scan(
		&draw.ID,
		&draw.UserID,
		&draw.CardID,
		&draw.CardName,
		&draw.DrawDate,
		&draw.InterpretationBasic,
		&draw.InterpretationEnhanced,
		&mood,
		&draw.Question,
		&draw.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	draw.Mood = domain.Mood(mood)
	return &draw, nil
}
