package gemini

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/arcanadaily/arcana-api/internal/config"
	"github.com/arcanadaily/arcana-api/internal/domain"
	"github.com/arcanadaily/arcana-api/internal/generation"
)

func TestNewInterpreterValidatesConfig(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	_, err := NewInterpreter(context.Background(), nil, config.LLMConfig{
		GeminiAPIKey: "key", ModelName: "gemini-2.0-flash",
	})
	assert.Error(t, err)

	_, err = NewInterpreter(context.Background(), logger, config.LLMConfig{
		ModelName: "gemini-2.0-flash",
	})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = NewInterpreter(context.Background(), logger, config.LLMConfig{
		GeminiAPIKey: "key",
	})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestBuildPromptIncludesCardAndContext(t *testing.T) {
	t.Parallel()

	tmpl, err := template.New("interpretation").Parse(promptTemplate)
	require.NoError(t, err)
	g := &Interpreter{tmpl: tmpl}

	card, err := domain.CardByID(17)
	require.NoError(t, err)

	prompt, err := g.buildPrompt(card, domain.UserContext{
		Mood:     domain.MoodHopeful,
		Question: "Will the project succeed?",
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "The Star")
	assert.Contains(t, prompt, card.TraditionalMeaning)
	assert.Contains(t, prompt, "hopeful")
	assert.Contains(t, prompt, "Will the project succeed?")
	assert.NotContains(t, prompt, "{{", "template must render fully")
}

func textResponse(finish genai.FinishReason, parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      &genai.Content{Parts: parts},
			FinishReason: finish,
		}},
	}
}

func TestExtractText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		want    string
		wantErr error
	}{
		{
			name: "joins text parts",
			resp: textResponse(genai.FinishReasonStop,
				&genai.Part{Text: "The Star speaks of renewal"},
				&genai.Part{Text: " and quiet hope."}),
			want: "The Star speaks of renewal and quiet hope.",
		},
		{
			name: "trims surrounding whitespace",
			resp: textResponse(genai.FinishReasonStop, &genai.Part{Text: "  steady ground.\n"}),
			want: "steady ground.",
		},
		{
			name:    "nil response",
			resp:    nil,
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name:    "no candidates",
			resp:    &genai.GenerateContentResponse{},
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name:    "safety block",
			resp:    textResponse(genai.FinishReasonSafety, &genai.Part{Text: "withheld"}),
			wantErr: generation.ErrContentBlocked,
		},
		{
			name: "nil content",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonStop}},
			},
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name:    "no text in parts",
			resp:    textResponse(genai.FinishReasonStop, nil, &genai.Part{Text: "   "}),
			wantErr: generation.ErrInvalidResponse,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := extractText(tc.resp)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
