package generation

import (
	"context"

	"github.com/arcanadaily/arcana-api/internal/domain"
)

// Interpreter defines the interface for generating personalized card
// interpretations. This interface serves as a boundary between the
// application core and external AI/LLM services, following the hexagonal
// architecture pattern.
type Interpreter interface {
	// Interpret creates a personalized interpretation of the drawn card in
	// light of the user's mood and question. It returns the interpretation
	// text or an error if generation fails (see errors.go for the specific
	// error values).
	Interpret(ctx context.Context, card domain.Card, userCtx domain.UserContext) (string, error)
}

// Disabled is an Interpreter that always reports the feature as not
// configured. Used when no API key is present.
type Disabled struct{}

var _ Interpreter = Disabled{}

// Interpret implements Interpreter.
func (Disabled) Interpret(context.Context, domain.Card, domain.UserContext) (string, error) {
	return "", ErrDisabled
}
