// Package remote is the HTTP client for the optional backend service. Every
// endpoint gets an explicit response struct; fields the server omits are
// defaulted rather than trusted, so malformed responses degrade instead of
// propagating surprises into the domain.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// APIError is a non-2xx response from the backend service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: HTTP %d", e.Status)
	}
	return fmt.Sprintf("api error: HTTP %d: %s", e.Status, e.Message)
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not an
// APIError.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Client talks to the backend service. It is constructed explicitly and
// passed around by the caller; there is no package-level instance. The zero
// value is not usable.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	token      string
}

// NewClient creates a Client for the service at baseURL (including any
// /api prefix). A nil httpClient gets a 10 second timeout default.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger.With(slog.String("component", "remote_client")),
	}
}

// SetToken installs the bearer token used for authenticated endpoints.
// An empty token returns the client to the unauthenticated state.
func (c *Client) SetToken(token string) { c.token = token }

// Authenticated reports whether the client holds a session token. It does
// not verify the token against the server.
func (c *Client) Authenticated() bool { return c.token != "" }

// AuthResult is the response to register and login calls.
type AuthResult struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

// UserPayload is the user object embedded in auth responses.
type UserPayload struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Premium bool   `json:"premium"`
}

// Register creates an account and installs the returned session token.
func (c *Client) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	var result AuthResult
	body := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", body, &result); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

// Login authenticates and installs the returned session token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var result AuthResult
	body := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &result); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

// TodayStatus is the response of GET /draws/today.
type TodayStatus struct {
	HasDrawn   bool       `json:"has_drawn"`
	CanDraw    bool       `json:"can_draw"`
	Card       *CardOfDay `json:"card"`
	DrawsToday int        `json:"draws_today"`
	Limit      int        `json:"limit"`
}

// CardOfDay is the card-of-record summary inside TodayStatus.
type CardOfDay struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	TraditionalMeaning string `json:"traditional_meaning"`
}

// GetTodayStatus fetches the authoritative has-drawn state and quota.
func (c *Client) GetTodayStatus(ctx context.Context) (*TodayStatus, error) {
	var status TodayStatus
	if err := c.doJSON(ctx, http.MethodGet, "/draws/today", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// DailyDrawResult is the response of POST /draws/daily.
type DailyDrawResult struct {
	Success bool      `json:"success"`
	Card    DrawnCard `json:"card"`
}

// DrawnCard is the server-selected card inside DailyDrawResult.
type DrawnCard struct {
	CardID              int    `json:"card_id"`
	CardName            string `json:"card_name"`
	Number              string `json:"number"`
	InterpretationBasic string `json:"interpretation_basic"`
	DrawDate            string `json:"draw_date"`
}

// PerformDailyDraw asks the server to select and record today's card.
// An HTTP 409 means the account already drew today; HTTP 403 means the
// daily quota is exhausted. Both surface as *APIError for the caller to map.
func (c *Client) PerformDailyDraw(ctx context.Context, mood, question string) (*DailyDrawResult, error) {
	var result DailyDrawResult
	body := map[string]string{"mood": mood, "question": question}
	if err := c.doJSON(ctx, http.MethodPost, "/draws/daily", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// HistoryResult is the response of GET /draws/history.
type HistoryResult struct {
	Draws []HistoryDraw `json:"draws"`
	Count int           `json:"count"`
}

// HistoryDraw is one record of the server-side draw history.
type HistoryDraw struct {
	ID                     string    `json:"id"`
	CardID                 int       `json:"card_id"`
	CardName               string    `json:"card_name"`
	DrawDate               string    `json:"draw_date"`
	InterpretationBasic    string    `json:"interpretation_basic"`
	InterpretationEnhanced string    `json:"interpretation_enhanced"`
	Mood                   string    `json:"mood"`
	Question               string    `json:"question"`
	CreatedAt              time.Time `json:"created_at"`
}

// GetDrawHistory fetches up to limit past draws, newest first.
func (c *Client) GetDrawHistory(ctx context.Context, limit int) (*HistoryResult, error) {
	var result HistoryResult
	path := fmt.Sprintf("/draws/history?limit=%d", limit)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	if result.Draws == nil {
		result.Draws = []HistoryDraw{}
	}
	return &result, nil
}

// CardMeaningResult is the response of GET /cards/{id}/meaning.
type CardMeaningResult struct {
	Card CardPayload `json:"card"`
}

// CardPayload mirrors the catalog card shape served by the backend.
type CardPayload struct {
	ID                 int                `json:"id"`
	Name               string             `json:"name"`
	Number             string             `json:"number"`
	Keywords           []string           `json:"keywords"`
	Archetypes         []string           `json:"archetypes"`
	Elements           []string           `json:"elements"`
	Astrology          string             `json:"astrology"`
	TraditionalMeaning string             `json:"traditional_meaning"`
	LightAspects       []string           `json:"light_aspects"`
	ShadowAspects      []string           `json:"shadow_aspects"`
	ImageryDescription string             `json:"imagery_description"`
	Colors             []string           `json:"colors"`
	Symbols            []string           `json:"symbols"`
	MoodWeights        map[string]float64 `json:"mood_weights"`
}

// GetCardMeaning fetches the full catalog entry for a card ID.
func (c *Client) GetCardMeaning(ctx context.Context, cardID int) (*CardPayload, error) {
	var result CardMeaningResult
	path := fmt.Sprintf("/cards/%d/meaning", cardID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result.Card, nil
}

// InterpretationResult is the response of POST /interpretations/enhanced.
type InterpretationResult struct {
	Interpretation string `json:"interpretation"`
}

// GetEnhancedInterpretation requests a premium personalized interpretation
// for today's card.
func (c *Client) GetEnhancedInterpretation(
	ctx context.Context,
	cardID int,
	mood, question, drawDate string,
) (string, error) {
	body := map[string]any{
		"card_id":   cardID,
		"mood":      mood,
		"question":  question,
		"draw_date": drawDate,
	}
	var result InterpretationResult
	if err := c.doJSON(ctx, http.MethodPost, "/interpretations/enhanced", body, &result); err != nil {
		return "", err
	}
	return result.Interpretation, nil
}

// errorPayload accepts both error response shapes the service has used:
// {"error": "..."} and {"error": true, "message": "..."}.
type errorPayload struct {
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}

func (p errorPayload) text() string {
	if p.Message != "" {
		return p.Message
	}
	var s string
	if json.Unmarshal(p.Error, &s) == nil {
		return s
	}
	return ""
}

// doJSON performs one request/response cycle: encode the body, attach the
// bearer token when present, decode a 2xx into out, and map everything else
// to *APIError.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var payload errorPayload
		_ = json.NewDecoder(resp.Body).Decode(&payload)

		message := payload.text()
		if message == "" {
			message = resp.Status
		}
		c.logger.Debug("api call rejected",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode))
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
