// Package gemini implements the generation.Interpreter interface using
// Google's Gemini API.
package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"text/template"
	"time"

	"google.golang.org/genai"

	"github.com/arcanadaily/arcana-api/internal/config"
	"github.com/arcanadaily/arcana-api/internal/domain"
	"github.com/arcanadaily/arcana-api/internal/generation"
)

// promptTemplate frames the card and the user context for the model. The
// output is prose shown directly to the user, so the prompt asks for plain
// text without headings or markup.
const promptTemplate = `You are an experienced tarot reader writing a short daily reflection.

Card drawn: {{.CardName}} ({{.Number}})
Traditional meaning: {{.Meaning}}
Light aspects: {{.Light}}
Shadow aspects: {{.Shadow}}

The seeker is feeling {{.Mood}} and asked: "{{.Question}}"

Write a warm, grounded interpretation of this card for the seeker, 120 to 180
words, speaking directly to their mood and question. Plain text only, no
headings, no lists, no markup.`

const (
	defaultMaxRetries = 3
	baseRetryDelay    = 2 * time.Second
)

// Interpreter implements generation.Interpreter against the Gemini API.
type Interpreter struct {
	logger   *slog.Logger
	client   *genai.Client
	model    string
	tmpl     *template.Template
	maxRetry int
}

var _ generation.Interpreter = (*Interpreter)(nil)

// NewInterpreter creates an Interpreter from LLM configuration. The API key
// and model name are required; use generation.Disabled when the feature is
// not configured.
func NewInterpreter(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
) (*Interpreter, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	tmpl, err := template.New("interpretation").Parse(promptTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			generation.ErrInvalidConfig, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Interpreter{
		logger:   logger.With(slog.String("component", "gemini_interpreter")),
		client:   client,
		model:    cfg.ModelName,
		tmpl:     tmpl,
		maxRetry: defaultMaxRetries,
	}, nil
}

// Interpret implements generation.Interpreter.Interpret.
func (g *Interpreter) Interpret(
	ctx context.Context,
	card domain.Card,
	userCtx domain.UserContext,
) (string, error) {
	prompt, err := g.buildPrompt(card, userCtx)
	if err != nil {
		return "", err
	}
	return g.callWithRetry(ctx, prompt)
}

// buildPrompt renders the prompt template for the card and context.
func (g *Interpreter) buildPrompt(card domain.Card, userCtx domain.UserContext) (string, error) {
	var buf bytes.Buffer
	err := g.tmpl.Execute(&buf, map[string]string{
		"CardName": card.Name,
		"Number":   card.Number,
		"Meaning":  card.TraditionalMeaning,
		"Light":    strings.Join(card.LightAspects, ", "),
		"Shadow":   strings.Join(card.ShadowAspects, ", "),
		"Mood":     string(userCtx.Mood),
		"Question": userCtx.Question,
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to render prompt: %v", generation.ErrGenerationFailed, err)
	}
	return buf.String(), nil
}

// callWithRetry calls the Gemini API with exponential backoff and jitter for
// transient errors. Permanent errors (safety blocks, unparsable responses)
// return immediately.
func (g *Interpreter) callWithRetry(ctx context.Context, prompt string) (string, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var lastErr error
	for attempt := 0; attempt <= g.maxRetry; attempt++ {
		text, err := g.call(ctx, prompt)
		if err == nil {
			g.logger.DebugContext(ctx, "gemini call succeeded", "attempt", attempt+1)
			return text, nil
		}
		lastErr = err

		if errors.Is(err, generation.ErrContentBlocked) ||
			errors.Is(err, generation.ErrInvalidResponse) {
			return "", err
		}

		g.logger.WarnContext(ctx, "gemini call failed",
			"attempt", attempt+1,
			"max_attempts", g.maxRetry+1,
			"error", err)

		if attempt == g.maxRetry {
			break
		}

		// Exponential backoff with up to one second of jitter.
		delay := time.Duration(math.Pow(2, float64(attempt))) * baseRetryDelay
		delay += time.Duration(rng.Int63n(int64(time.Second)))
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}

	return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, lastErr)
}

// call performs a single API round trip and extracts the response text.
func (g *Interpreter) call(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	return extractText(resp)
}

// extractText pulls the generated prose out of a response, mapping safety
// blocks and empty candidates to the generation sentinel errors.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: blocked by safety filters", generation.ErrContentBlocked)
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: response contained no text", generation.ErrInvalidResponse)
	}
	return text, nil
}
