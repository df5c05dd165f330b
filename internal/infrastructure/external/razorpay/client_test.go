package razorpay

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/saradorri/rewardwallet/internal/config"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return NewClient(config.RazorpayConfig{
		BaseURL:   url,
		KeyID:     "rzp_test_key",
		KeySecret: "rzp_test_secret",
		Timeout:   time.Second,
		RetryMax:  2,
	}, logger.NewNop())
}

func TestClient_CreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "rzp_test_secret", pass)

		var req orderRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(50000), req.Amount)
		assert.Equal(t, "INR", req.Currency)
		assert.Equal(t, "wallet_recharge", req.Notes["purpose"])

		_ = json.NewEncoder(w).Encode(orderResponse{
			ID: "order_abc", Entity: "order", Amount: req.Amount, Currency: req.Currency, Receipt: req.Receipt, Status: "created",
		})
	}))
	defer srv.Close()

	order, err := newTestClient(srv.URL).CreateOrder(context.Background(), 50000, "INR", "rcpt_1", map[string]string{"purpose": "wallet_recharge"})
	require.NoError(t, err)
	assert.Equal(t, "order_abc", order.ID)
	assert.Equal(t, int64(50000), order.Amount)
	assert.Equal(t, "rcpt_1", order.Receipt)
}

func TestClient_CreateOrder_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"The amount must be atleast INR 1.00"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreateOrder(context.Background(), 0, "INR", "rcpt_1", nil)

	var gwErr *domain.PaymentGatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.True(t, gwErr.Is4xxError())
	assert.Equal(t, "BAD_REQUEST_ERROR", gwErr.Code)
	assert.Equal(t, "The amount must be atleast INR 1.00", gwErr.Description)
}

func TestClient_CreateOrder_ServerErrorIsFinal(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreateOrder(context.Background(), 10000, "INR", "rcpt_2", nil)

	var gwErr *domain.PaymentGatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, http.StatusBadGateway, gwErr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_CreateOrder_RetriesRefusedConnection(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = newTestClient("http://"+addr).CreateOrder(context.Background(), 10000, "INR", "rcpt_3", nil)
	assert.ErrorContains(t, err, "giving up after 3 attempt(s)")
}

func TestRetryUnsent(t *testing.T) {
	ctx := context.Background()
	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	tests := []struct {
		name  string
		ctx   context.Context
		err   error
		retry bool
	}{
		{"answered", ctx, nil, false},
		{"dial_refused", ctx, &url.Error{Op: "Post", Err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}}, true},
		{"dns", ctx, &url.Error{Op: "Post", Err: &net.OpError{Op: "dial", Err: &net.DNSError{Name: "api.razorpay.com"}}}, true},
		{"read_timeout", ctx, &url.Error{Op: "Post", Err: &net.OpError{Op: "read", Net: "tcp", Err: errors.New("i/o timeout")}}, false},
		{"client_timeout", ctx, &url.Error{Op: "Post", Err: context.DeadlineExceeded}, false},
		{"cancelled", cancelled, &url.Error{Op: "Post", Err: &net.OpError{Op: "dial", Err: errors.New("refused")}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retry, _ := retryUnsent(tt.ctx, nil, tt.err)
			assert.Equal(t, tt.retry, retry)
		})
	}
}

func TestVerifySignature(t *testing.T) {
	sig := Sign("rzp_test_secret", "order_abc", "pay_xyz")

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{name: "valid", orderID: "order_abc", paymentID: "pay_xyz", signature: sig, want: true},
		{name: "tampered_payment", orderID: "order_abc", paymentID: "pay_other", signature: sig, want: false},
		{name: "wrong_secret", orderID: "order_abc", paymentID: "pay_xyz", signature: Sign("other", "order_abc", "pay_xyz"), want: false},
		{name: "empty", orderID: "order_abc", paymentID: "pay_xyz", signature: "", want: false},
	}

	c := newTestClient("http://unused")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.VerifySignature(tt.orderID, tt.paymentID, tt.signature))
		})
	}
	assert.Equal(t, "rzp_test_key", c.KeyID())
}
