package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// AuthHandler handles the OTP signup and login endpoints
type AuthHandler struct {
	authUseCase domain.AuthUseCase
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUseCase domain.AuthUseCase, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// SignupRequest represents the signup request body
type SignupRequest struct {
	Name  string `json:"name" binding:"required" example:"Asha"`
	Email string `json:"email" binding:"required,email" example:"asha@example.com"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email string `json:"email" binding:"required,email" example:"asha@example.com"`
}

// VerifyOTPRequest represents the OTP verification body
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email" example:"asha@example.com"`
	OTP   string `json:"otp" binding:"required" example:"123456"`
}

// OTPSentResponse is returned after an OTP was issued
type OTPSentResponse struct {
	Success   bool      `json:"success" example:"true"`
	Message   string    `json:"message" example:"OTP sent to your email"`
	Email     string    `json:"email" example:"asha@example.com"`
	ExpiresAt time.Time `json:"expiresAt"`
	OTP       string    `json:"otp,omitempty" example:"123456"`
}

// AuthResponse is returned after a successful verification
type AuthResponse struct {
	Success    bool     `json:"success" example:"true"`
	Message    string   `json:"message" example:"Login successful"`
	Token      string   `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User       UserInfo `json:"user"`
	BonusAdded int64    `json:"bonusAdded" example:"20"`
}

func otpSent(d *domain.OTPDispatch) OTPSentResponse {
	return OTPSentResponse{
		Success:   true,
		Message:   "OTP sent to your email",
		Email:     d.Email,
		ExpiresAt: d.ExpiresAt,
		OTP:       d.OTP,
	}
}

// Signup sends a signup OTP
// @Summary Request signup OTP
// @Description Create an unverified account (or refresh a pending one) and send a 6 digit OTP
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Name and email"
// @Success 200 {object} OTPSentResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 429 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if !bindJSON(c, &req, "Please provide a name and a valid email") {
		return
	}

	dispatch, err := h.authUseCase.SendSignupOTP(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, otpSent(dispatch))
}

// VerifySignup completes a signup
// @Summary Verify signup OTP
// @Description Verify the account, grant the signup bonus and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyOTPRequest true "Email and OTP"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /auth/verify-signup [post]
func (h *AuthHandler) VerifySignup(c *gin.Context) {
	var req VerifyOTPRequest
	if !bindJSON(c, &req, "Email and OTP are required") {
		return
	}

	result, err := h.authUseCase.VerifySignupOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.logger.WithContext(c.Request.Context()).Info("Signup verified",
		zap.Int64("user_id", result.User.ID),
		zap.Int64("bonus_added", result.BonusAdded))

	c.JSON(http.StatusOK, AuthResponse{
		Success:    true,
		Message:    "Signup successful",
		Token:      result.Token,
		User:       newUserInfo(result.User),
		BonusAdded: result.BonusAdded,
	})
}

// Login sends a login OTP
// @Summary Request login OTP
// @Description Send a 6 digit OTP to a registered email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Email"
// @Success 200 {object} OTPSentResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 429 {object} domain.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req, "Please provide a valid email") {
		return
	}

	dispatch, err := h.authUseCase.SendLoginOTP(c.Request.Context(), req.Email)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, otpSent(dispatch))
}

// VerifyLogin completes a login
// @Summary Verify login OTP
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyOTPRequest true "Email and OTP"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /auth/verify-login [post]
func (h *AuthHandler) VerifyLogin(c *gin.Context) {
	var req VerifyOTPRequest
	if !bindJSON(c, &req, "Email and OTP are required") {
		return
	}

	result, err := h.authUseCase.VerifyLoginOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   result.Token,
		User:    newUserInfo(result.User),
	})
}
