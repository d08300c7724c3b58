package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arcanadaily/arcana-api/internal/api/middleware"
	"github.com/arcanadaily/arcana-api/internal/api/shared"
	"github.com/arcanadaily/arcana-api/internal/domain"
	"github.com/arcanadaily/arcana-api/internal/service"
)

// DrawHandler handles the daily draw, history and catalog endpoints.
type DrawHandler struct {
	drawService service.DailyDrawService
	userService service.UserService
	logger      *slog.Logger
}

// NewDrawHandler creates a new DrawHandler.
func NewDrawHandler(
	drawService service.DailyDrawService,
	userService service.UserService,
	logger *slog.Logger,
) (*DrawHandler, error) {
	if drawService == nil {
		return nil, fmt.Errorf("%w: drawService cannot be nil", domain.ErrValidation)
	}
	if userService == nil {
		return nil, fmt.Errorf("%w: userService cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DrawHandler{
		drawService: drawService,
		userService: userService,
		logger:      logger.With(slog.String("component", "draw_handler")),
	}, nil
}

// GetTodayStatus handles GET /draws/today.
func (h *DrawHandler) GetTodayStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	status, err := h.drawService.TodayStatus(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTodayStatusResponse(status))
}

// PerformDailyDraw handles POST /draws/daily. A repeat attempt on the same
// day gets 409; a spent quota gets 403 with an upgrade code.
func (h *DrawHandler) PerformDailyDraw(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req DailyDrawRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Mood and question are required")
		return
	}

	draw, err := h.drawService.PerformDailyDraw(
		r.Context(), userID, domain.Mood(req.Mood), req.Question,
	)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyDrawnToday) {
			h.logger.Debug("repeat draw attempt",
				slog.String("user_id", userID.String()))
		}
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, DailyDrawResponse{
		Success: true,
		Card:    newDrawnCardResponse(draw),
	})
}

// GetHistory handles GET /draws/history?limit=N.
func (h *DrawHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	draws, err := h.drawService.History(r.Context(), userID, limit)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newHistoryResponse(draws))
}

// GetCardMeaning handles GET /cards/{cardID}/meaning.
func (h *DrawHandler) GetCardMeaning(w http.ResponseWriter, r *http.Request) {
	cardID, err := strconv.Atoi(chi.URLParam(r, "cardID"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card ID")
		return
	}

	card, err := h.drawService.CardMeaning(cardID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CardMeaningResponse{Card: card})
}

// EnhanceInterpretation handles POST /interpretations/enhanced. The account
// tier is read from the store rather than the token, so a lapsed
// subscription takes effect before the token expires.
func (h *DrawHandler) EnhanceInterpretation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req EnhanceInterpretationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	interpretation, err := h.drawService.EnhanceInterpretation(r.Context(), user, req.DrawDate)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, InterpretationResponse{
		Interpretation: interpretation,
	})
}
