package api

import (
	"time"

	"github.com/arcanadaily/arcana-api/internal/domain"
	"github.com/arcanadaily/arcana-api/internal/service"
)

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest is the payload for POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// DailyDrawRequest is the payload for POST /draws/daily.
type DailyDrawRequest struct {
	Mood     string `json:"mood"     validate:"required"`
	Question string `json:"question" validate:"required"`
}

// EnhanceInterpretationRequest is the payload for POST
// /interpretations/enhanced. DrawDate defaults to today when empty.
type EnhanceInterpretationRequest struct {
	DrawDate string `json:"draw_date"`
}

// UserResponse is the user object embedded in auth responses.
type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Premium bool   `json:"premium"`
}

// AuthResponse is the response to register, login and refresh calls. The
// user object is omitted on refresh, where clients already hold it.
type AuthResponse struct {
	Token        string        `json:"token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user,omitempty"`
}

// CardSummaryResponse is the card-of-record summary in TodayStatusResponse.
type CardSummaryResponse struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	TraditionalMeaning string `json:"traditional_meaning"`
}

// TodayStatusResponse is the response of GET /draws/today.
type TodayStatusResponse struct {
	HasDrawn   bool                 `json:"has_drawn"`
	CanDraw    bool                 `json:"can_draw"`
	Card       *CardSummaryResponse `json:"card"`
	DrawsToday int                  `json:"draws_today"`
	Limit      int                  `json:"limit"`
}

// DrawnCardResponse is the recorded card in DailyDrawResponse.
type DrawnCardResponse struct {
	CardID              int    `json:"card_id"`
	CardName            string `json:"card_name"`
	Number              string `json:"number"`
	InterpretationBasic string `json:"interpretation_basic"`
	DrawDate            string `json:"draw_date"`
}

// DailyDrawResponse is the response of POST /draws/daily.
type DailyDrawResponse struct {
	Success bool              `json:"success"`
	Card    DrawnCardResponse `json:"card"`
}

// HistoryDrawResponse is one record in HistoryResponse.
type HistoryDrawResponse struct {
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

// HistoryResponse is the response of GET /draws/history.
type HistoryResponse struct {
	Draws []HistoryDrawResponse `json:"draws"`
	Count int                   `json:"count"`
}

// CardMeaningResponse is the response of GET /cards/{cardID}/meaning.
type CardMeaningResponse struct {
	Card domain.Card `json:"card"`
}

// InterpretationResponse is the response of POST /interpretations/enhanced.
type InterpretationResponse struct {
	Interpretation string `json:"interpretation"`
}

func newUserResponse(user *domain.User) *UserResponse {
	return &UserResponse{
		ID:      user.ID.String(),
		Email:   user.Email,
		Premium: user.Premium,
	}
}

func newAuthResponse(user *domain.User, tokens *service.TokenPair) AuthResponse {
	return AuthResponse{
		Token:        tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         newUserResponse(user),
	}
}

func newTodayStatusResponse(status *service.DrawStatus) TodayStatusResponse {
	resp := TodayStatusResponse{
		HasDrawn:   status.HasDrawn,
		CanDraw:    status.CanDraw,
		DrawsToday: status.DrawsToday,
		Limit:      status.Limit,
	}
	if status.Draw != nil {
		resp.Card = &CardSummaryResponse{
			ID:                 status.Draw.CardID,
			Name:               status.Draw.CardName,
			TraditionalMeaning: status.Draw.InterpretationBasic,
		}
	}
	return resp
}

func newDrawnCardResponse(draw *domain.CardDraw) DrawnCardResponse {
	resp := DrawnCardResponse{
		CardID:              draw.CardID,
		CardName:            draw.CardName,
		InterpretationBasic: draw.InterpretationBasic,
		DrawDate:            draw.DrawDate,
	}
	// The roman numeral lives only in the catalog, not the stored draw.
	if card, err := domain.CardByID(draw.CardID); err == nil {
		resp.Number = card.Number
	}
	return resp
}

func newHistoryResponse(draws []domain.CardDraw) HistoryResponse {
	out := make([]HistoryDrawResponse, 0, len(draws))
	for _, draw := range draws {
		out = append(out, HistoryDrawResponse{
			ID:                     draw.ID.String(),
			CardID:                 draw.CardID,
			CardName:               draw.CardName,
			DrawDate:               draw.DrawDate,
			InterpretationBasic:    draw.InterpretationBasic,
			InterpretationEnhanced: draw.InterpretationEnhanced,
			Mood:                   string(draw.Mood),
			Question:               draw.Question,
			CreatedAt:              draw.CreatedAt,
		})
	}
	return HistoryResponse{Draws: out, Count: len(out)}
}
