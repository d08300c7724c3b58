package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/arcanadaily/arcana-api/internal/domain"
)

// DrawStore defines the interface for daily draw persistence.
type DrawStore interface {
	// Create saves a new draw record.
	// Returns ErrDrawExists if a draw already exists for the user and date.
	Create(ctx context.Context, draw *domain.CardDraw) error

	// GetByUserAndDate retrieves the draw recorded for a user on the given
	// calendar day (YYYY-MM-DD).
	// Returns ErrDrawNotFound if no draw exists.
	GetByUserAndDate(ctx context.Context, userID uuid.UUID, drawDate string) (*domain.CardDraw, error)

	// ListByUser retrieves up to limit past draws for the user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CardDraw, error)

	// SetEnhancedInterpretation stores the premium interpretation for the
	// user's draw on the given date.
	// Returns ErrDrawNotFound if no draw exists for that date.
	SetEnhancedInterpretation(
		ctx context.Context,
		userID uuid.UUID,
		drawDate string,
		interpretation string,
	) error

	// CountForDate returns the number of draws the user performed on the
	// given calendar day, as tracked by the usage table. Returns 0 when no
	// usage row exists.
	CountForDate(ctx context.Context, userID uuid.UUID, usageDate string) (int, error)

	// IncrementUsage records one more draw for the user on the given day,
	// creating the usage row if needed.
	IncrementUsage(ctx context.Context, userID uuid.UUID, usageDate string) error

	// WithTx returns a new DrawStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) DrawStore
}
