package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/http/middleware"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
	maxPage          = 10000
)

// UserInfo is the public view of a user
type UserInfo struct {
	ID              int64      `json:"id" example:"42"`
	Name            string     `json:"name" example:"Asha"`
	Email           string     `json:"email" example:"asha@example.com"`
	TotalEarnings   int64      `json:"totalEarnings" example:"120"`
	BonusBalance    int64      `json:"bonusBalance" example:"20"`
	DepositBalance  int64      `json:"depositBalance" example:"100"`
	WinningBalance  int64      `json:"winningBalance" example:"0"`
	HasFreeSpin     bool       `json:"hasFreeSpin" example:"true"`
	HasMultiplier   bool       `json:"hasMultiplier" example:"false"`
	MultiplierValue int64      `json:"multiplierValue" example:"1"`
	LastDailyBonus  *time.Time `json:"lastDailyBonus,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func newUserInfo(u *domain.User) UserInfo {
	return UserInfo{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		TotalEarnings:   u.TotalEarnings,
		BonusBalance:    u.BonusBalance,
		DepositBalance:  u.DepositBalance,
		WinningBalance:  u.WinningBalance,
		HasFreeSpin:     u.HasFreeSpin,
		HasMultiplier:   u.HasMultiplier,
		MultiplierValue: u.MultiplierValue,
		LastDailyBonus:  u.LastDailyBonus,
		CreatedAt:       u.CreatedAt,
	}
}

// getAuthenticatedUserID extracts the authenticated user ID from the context
func getAuthenticatedUserID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		_ = c.Error(domain.NewUnauthorizedError("User not authenticated"))
		return 0, false
	}
	return userID, true
}

// bindJSON binds the body into req and pushes an INVALID_FORMAT error with message on failure
func bindJSON(c *gin.Context, req interface{}, message string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(domain.NewAppError(domain.ErrCodeInvalidFormat, message, 400, err))
		return false
	}
	return true
}

// pageRequest reads ?page and ?limit, falling back to page 1 and the default limit.
// Both are clamped so the row offset stays small and positive.
func pageRequest(c *gin.Context) domain.PageRequest {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return domain.PageRequest{Page: page, Limit: limit}
}
