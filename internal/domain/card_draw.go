package domain

import (
	"time"

	"github.com/google/uuid"
)

// CardDraw is the server-side record of a user's daily draw. One row exists
// per user and calendar day; the (UserID, DrawDate) pair is the idempotency
// key enforced by the store.
type CardDraw struct {
	ID                     uuid.UUID `json:"id"`
	UserID                 uuid.UUID `json:"user_id"`
	CardID                 int       `json:"card_id"`
	CardName               string    `json:"card_name"`
	DrawDate               string    `json:"draw_date"`
	InterpretationBasic    string    `json:"interpretation_basic"`
	InterpretationEnhanced string    `json:"interpretation_enhanced,omitempty"`
	Mood                   Mood      `json:"mood"`
	Question               string    `json:"question"`
	CreatedAt              time.Time `json:"created_at"`
}

// NewCardDraw creates the record for a freshly drawn card.
func NewCardDraw(userID uuid.UUID, card Card, userCtx UserContext, now time.Time) *CardDraw {
	return &CardDraw{
		ID:                  uuid.New(),
		UserID:              userID,
		CardID:              card.ID,
		CardName:            card.Name,
		DrawDate:            CalendarDay(now),
		InterpretationBasic: card.TraditionalMeaning,
		Mood:                userCtx.Mood,
		Question:            userCtx.Question,
		CreatedAt:           now,
	}
}
