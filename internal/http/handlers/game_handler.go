package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/rewardwallet/internal/domain"
)

// GameHandler serves number guess and the spin wheel
type GameHandler struct {
	gameUseCase domain.GameUseCase
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameUseCase domain.GameUseCase) *GameHandler {
	return &GameHandler{gameUseCase: gameUseCase}
}

// PlayGuessRequest represents one number guess
type PlayGuessRequest struct {
	Mode  string `json:"mode" binding:"required" example:"easy"`
	Guess *int   `json:"guess" binding:"required" example:"7"`
}

// PlayGuessResponse is the outcome of one number guess
type PlayGuessResponse struct {
	Success    bool                `json:"success" example:"true"`
	GameResult domain.GuessOutcome `json:"gameResult"`
	NewBalance int64               `json:"newBalance" example:"90"`
	Message    string              `json:"message" example:"Better luck next time! The number was 4."`
}

// GameHistoryResponse is one page of number-guess plays
type GameHistoryResponse struct {
	Success    bool                  `json:"success" example:"true"`
	Games      []*domain.GameHistory `json:"games"`
	Pagination domain.Pagination     `json:"pagination"`
}

// GameStatsResponse aggregates plays per mode
type GameStatsResponse struct {
	Success bool                    `json:"success" example:"true"`
	Stats   []*domain.GameModeStats `json:"stats"`
}

// SpinResponse is the outcome of one spin. HasMultiplier is set when this spin drew 2X.
type SpinResponse struct {
	Success          bool   `json:"success" example:"true"`
	RewardResult     string `json:"rewardResult" example:"₹10"`
	SegmentIndex     int    `json:"segmentIndex" example:"1"`
	AmountWon        int64  `json:"amountWon" example:"10"`
	WasFreeSpin      bool   `json:"wasFreeSpin" example:"true"`
	SpinCost         int64  `json:"spinCost" example:"0"`
	NewBalance       int64  `json:"newBalance" example:"30"`
	HasMultiplier    bool   `json:"hasMultiplier" example:"false"`
	MultiplierActive bool   `json:"multiplierActive" example:"false"`
	MultiplierValue  int64  `json:"multiplierValue" example:"1"`
}

// SpinHistoryResponse lists the latest spins
type SpinHistoryResponse struct {
	Success bool                  `json:"success" example:"true"`
	History []*domain.SpinHistory `json:"spinHistory"`
}

// PlayNumberGuess handles one number guess
// @Summary Play number guess
// @Description Stake the mode cost and guess a number in the mode range
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PlayGuessRequest true "Mode and guess"
// @Success 200 {object} PlayGuessResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /number-guess/play [post]
func (h *GameHandler) PlayNumberGuess(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req PlayGuessRequest
	if !bindJSON(c, &req, "Mode and guess are required") {
		return
	}

	outcome, err := h.gameUseCase.PlayNumberGuess(c.Request.Context(), userID, domain.GameMode(req.Mode), *req.Guess)
	if err != nil {
		_ = c.Error(err)
		return
	}
	message := fmt.Sprintf("Better luck next time! The number was %d.", outcome.CorrectNumber)
	if outcome.IsWinner {
		message = fmt.Sprintf("Congratulations! You won ₹%d!", outcome.AmountWon)
	}
	c.JSON(http.StatusOK, PlayGuessResponse{
		Success:    true,
		GameResult: *outcome,
		NewBalance: outcome.NewBalance,
		Message:    message,
	})
}

// GameHistory handles the paginated number-guess history
// @Summary Number guess history
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} GameHistoryResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /number-guess/history [get]
func (h *GameHandler) GameHistory(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	games, pagination, err := h.gameUseCase.GameHistory(c.Request.Context(), userID, pageRequest(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if games == nil {
		games = []*domain.GameHistory{}
	}
	c.JSON(http.StatusOK, GameHistoryResponse{Success: true, Games: games, Pagination: pagination})
}

// GameStats handles the per-mode statistics
// @Summary Number guess statistics
// @Tags games
// @Produce json
// @Security BearerAuth
// @Success 200 {object} GameStatsResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /number-guess/stats [get]
func (h *GameHandler) GameStats(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	stats, err := h.gameUseCase.GameStats(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if stats == nil {
		stats = []*domain.GameModeStats{}
	}
	c.JSON(http.StatusOK, GameStatsResponse{Success: true, Stats: stats})
}

// Spin handles one spin of the wheel
// @Summary Spin the wheel
// @Description Uses the free spin when available, otherwise stakes 50
// @Tags games
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SpinResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /spin [post]
func (h *GameHandler) Spin(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	outcome, err := h.gameUseCase.Spin(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SpinResponse{
		Success:          true,
		RewardResult:     string(outcome.Reward),
		SegmentIndex:     outcome.SegmentIndex,
		AmountWon:        outcome.AmountWon,
		WasFreeSpin:      outcome.WasFreeSpin,
		SpinCost:         outcome.SpinCost,
		NewBalance:       outcome.NewBalance,
		HasMultiplier:    outcome.MultiplierWon,
		MultiplierActive: outcome.MultiplierActive,
		MultiplierValue:  outcome.MultiplierValue,
	})
}

// SpinHistory handles the latest spins
// @Summary Spin history
// @Tags games
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SpinHistoryResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /spin/history [get]
func (h *GameHandler) SpinHistory(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	history, err := h.gameUseCase.SpinHistory(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if history == nil {
		history = []*domain.SpinHistory{}
	}
	c.JSON(http.StatusOK, SpinHistoryResponse{Success: true, History: history})
}
