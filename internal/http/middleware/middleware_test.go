package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/domain/mocks"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(mw ...gin.HandlerFunc) (*gin.Engine, *ErrorHandler) {
	gin.SetMode(gin.TestMode)
	h := NewErrorHandler(logger.NewNop())
	r := gin.New()
	r.Use(h.RequestIDMiddleware(), h.ErrorHandlerMiddleware())
	r.Use(mw...)
	return r, h
}

func serve(r *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, domain.ErrorResponse) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var body domain.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestRequestID(t *testing.T) {
	r, _ := newTestRouter()
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, logger.RequestIDFromContext(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "trace-1")
	w, _ := serve(r, req)
	assert.Equal(t, "trace-1", w.Body.String())
	assert.Equal(t, "trace-1", w.Header().Get(RequestIDHeader))

	w, _ = serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestErrorHandler_PanicAndUnknownErrors(t *testing.T) {
	r, _ := newTestRouter()
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	r.GET("/raw", func(c *gin.Context) { _ = c.Error(errors.New("dial tcp: refused")) })
	r.GET("/missing", func(c *gin.Context) {
		_ = c.Error(domain.NewNotFoundError(domain.ErrCodeUserNotFound, "User"))
	})

	w, body := serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, domain.ErrCodeInternal, body.Code)
	assert.NotEmpty(t, body.RequestID)

	w, body = serve(r, httptest.NewRequest(http.MethodGet, "/raw", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, body.Error, "dial tcp")

	w, body = serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", body.Error)
	assert.False(t, body.Success)
}

func TestTimeoutMiddleware(t *testing.T) {
	r, h := newTestRouter()
	r.Use(h.TimeoutMiddleware(20 * time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})
	r.GET("/fast", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w, body := serve(r, httptest.NewRequest(http.MethodGet, "/slow", nil))
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Equal(t, domain.ErrCodeTimeout, body.Code)

	w, _ = serve(r, httptest.NewRequest(http.MethodGet, "/fast", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAdminMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	userRepo := mocks.NewMockUserRepository(ctrl)

	setUser := func(id int64) gin.HandlerFunc {
		return func(c *gin.Context) {
			if id > 0 {
				c.Set(userIDKey, id)
			}
		}
	}

	tests := []struct {
		name   string
		userID int64
		setup  func()
		status int
	}{
		{"anonymous", 0, func() {}, http.StatusUnauthorized},
		{"player", 5, func() {
			userRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.User{ID: 5}, nil)
		}, http.StatusForbidden},
		{"deleted", 6, func() {
			userRepo.EXPECT().GetByID(gomock.Any(), int64(6)).Return(nil, nil)
		}, http.StatusForbidden},
		{"admin", 1, func() {
			userRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1, IsAdmin: true}, nil)
		}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			r, _ := newTestRouter(setUser(tt.userID), AdminMiddleware(userRepo))
			r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
			w, _ := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
			require.Equal(t, tt.status, w.Code)
		})
	}
}
