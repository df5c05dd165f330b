package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/rewardwallet/internal/domain"
)

// LeaderboardHandler serves the public rankings
type LeaderboardHandler struct {
	leaderboardUseCase domain.LeaderboardUseCase
}

func NewLeaderboardHandler(leaderboardUseCase domain.LeaderboardUseCase) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardUseCase: leaderboardUseCase}
}

// LeaderboardResponse lists the top earners
type LeaderboardResponse struct {
	Success     bool                       `json:"success" example:"true"`
	Leaderboard []*domain.LeaderboardEntry `json:"leaderboard"`
}

// RecentWinnersResponse lists recent big spin wins
type RecentWinnersResponse struct {
	Success bool                   `json:"success" example:"true"`
	Winners []*domain.RecentWinner `json:"winners"`
}

// TopEarners
// @Summary Top earners
// @Tags leaderboard
// @Produce json
// @Success 200 {object} LeaderboardResponse
// @Router /leaderboard [get]
func (h *LeaderboardHandler) TopEarners(c *gin.Context) {
	entries, err := h.leaderboardUseCase.TopEarners(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, LeaderboardResponse{Success: true, Leaderboard: entries})
}

// RecentWinners
// @Summary Recent big spin wins
// @Tags leaderboard
// @Produce json
// @Success 200 {object} RecentWinnersResponse
// @Router /recent-winners [get]
func (h *LeaderboardHandler) RecentWinners(c *gin.Context) {
	winners, err := h.leaderboardUseCase.RecentWinners(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, RecentWinnersResponse{Success: true, Winners: winners})
}
