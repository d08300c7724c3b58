package domain

import (
	"fmt"
	"strings"
	"time"
)

// DrawDateFormat is the calendar-day layout used as the uniqueness key for
// "today". Days are compared in the user's local time zone, not UTC.
const DrawDateFormat = "2006-01-02"

// HistoryLimit caps the number of draw records kept in a ledger's history.
const HistoryLimit = 30

// CalendarDay formats a time as a local calendar-day string.
func CalendarDay(t time.Time) string {
	return t.Local().Format(DrawDateFormat)
}

// UserContext is the ephemeral input to a draw: the user's reported mood,
// their free-text question and the moment the context was created.
type UserContext struct {
	Mood      Mood      `json:"mood"`
	Question  string    `json:"question"`
	Timestamp time.Time `json:"timestamp"`
}

// NewUserContext creates a UserContext stamped with the given time.
func NewUserContext(mood Mood, question string, now time.Time) UserContext {
	return UserContext{
		Mood:      mood,
		Question:  question,
		Timestamp: now,
	}
}

// Validate checks the context is complete enough to draw on.
// The selection algorithm itself tolerates unknown moods and empty questions;
// this is the caller-facing gate for the draw operation.
func (c UserContext) Validate() error {
	if c.Mood == "" {
		return ErrEmptyMood
	}
	if strings.TrimSpace(c.Question) == "" {
		return ErrEmptyQuestion
	}
	return nil
}

// DrawRecord is the persisted outcome of one daily draw.
type DrawRecord struct {
	// ID is a composite identifier formed from the millisecond timestamp
	// and the card ID, e.g. "1735689600000-17".
	ID             string      `json:"id"`
	Card           Card        `json:"card"`
	Context        UserContext `json:"context"`
	Interpretation string      `json:"interpretation,omitempty"`

	// Date is the local calendar day of the draw and the uniqueness key
	// for "has drawn today".
	Date string `json:"date"`

	// Timestamp is the draw time in milliseconds since the Unix epoch.
	Timestamp int64 `json:"timestamp"`
}

// NewDrawRecord builds a DrawRecord for a card drawn now.
func NewDrawRecord(card Card, ctx UserContext, interpretation string, now time.Time) DrawRecord {
	ms := now.UnixMilli()
	return DrawRecord{
		ID:             fmt.Sprintf("%d-%d", ms, card.ID),
		Card:           card,
		Context:        ctx,
		Interpretation: interpretation,
		Date:           CalendarDay(now),
		Timestamp:      ms,
	}
}

// IsToday reports whether the record's calendar day matches the local
// calendar day of now.
func (r DrawRecord) IsToday(now time.Time) bool {
	return r.Date == CalendarDay(now)
}
