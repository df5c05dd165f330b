package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/rewardwallet/internal/domain"
)

// UserHandler serves the profile and bonus endpoints
type UserHandler struct {
	walletUseCase domain.WalletUseCase
}

// NewUserHandler creates a new user handler
func NewUserHandler(walletUseCase domain.WalletUseCase) *UserHandler {
	return &UserHandler{walletUseCase: walletUseCase}
}

// ProfileResponse is the current user with their latest games
type ProfileResponse struct {
	Success     bool                  `json:"success" example:"true"`
	User        UserInfo              `json:"user"`
	RecentGames []*domain.GameHistory `json:"recentGames"`
}

// BonusResponse is returned by the bonus endpoints
type BonusResponse struct {
	Success     bool   `json:"success" example:"true"`
	Message     string `json:"message" example:"Daily bonus claimed successfully"`
	BonusAmount int64  `json:"bonusAmount" example:"25"`
	NewBalance  int64  `json:"newBalance" example:"145"`
}

// GetProfile handles getting the current user's profile
// @Summary Get profile
// @Description Balances, multiplier state and the last 10 games of the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /user/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	profile, err := h.walletUseCase.Profile(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	games := profile.RecentGames
	if games == nil {
		games = []*domain.GameHistory{}
	}
	c.JSON(http.StatusOK, ProfileResponse{
		Success:     true,
		User:        newUserInfo(profile.User),
		RecentGames: games,
	})
}

// ClaimBonus handles the one-time bonus
// @Summary Claim one-time bonus
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BonusResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /user/claim-bonus [post]
func (h *UserHandler) ClaimBonus(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	result, err := h.walletUseCase.ClaimBonus(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, BonusResponse{
		Success:     true,
		Message:     "Bonus claimed successfully",
		BonusAmount: result.Amount,
		NewBalance:  result.NewBalance,
	})
}

// ClaimDailyBonus handles the once-per-day bonus
// @Summary Claim daily bonus
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BonusResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /user/daily-bonus [post]
func (h *UserHandler) ClaimDailyBonus(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	result, err := h.walletUseCase.ClaimDailyBonus(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, BonusResponse{
		Success:     true,
		Message:     "Daily bonus claimed successfully",
		BonusAmount: result.Amount,
		NewBalance:  result.NewBalance,
	})
}
