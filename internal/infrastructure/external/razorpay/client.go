package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/saradorri/rewardwallet/internal/config"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"go.uber.org/zap"
)

type orderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Entity   string `json:"entity"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// Client implements domain.PaymentGateway against the Razorpay REST API
type Client struct {
	baseURL   string
	keyID     string
	keySecret string
	client    *retryablehttp.Client
	logger    *logger.Logger
}

func NewClient(cfg config.RazorpayConfig, log *logger.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.Logger = nil
	rc.CheckRetry = retryUnsent
	if cfg.Timeout > 0 {
		rc.HTTPClient.Timeout = cfg.Timeout
	}

	return &Client{
		baseURL:   cfg.BaseURL,
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		client:    rc,
		logger:    log,
	}
}

// retryUnsent retries only when the request never reached the gateway.
// 5xx answers and timeouts after the connection was made are final.
func retryUnsent(ctx context.Context, _ *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err == nil {
		return false, nil
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true, nil
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true, nil
	}
	return false, nil
}

// KeyID is the public key the checkout widget needs
func (c *Client) KeyID() string {
	return c.keyID
}

// CreateOrder creates an order of amountMinor (paise) at the gateway
func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (*domain.GatewayOrder, error) {
	url := fmt.Sprintf("%s/v1/orders", c.baseURL)
	req := orderRequest{Amount: amountMinor, Currency: currency, Receipt: receipt, Notes: notes}

	var resp orderResponse
	if err := c.sendRequest(ctx, http.MethodPost, url, req, http.StatusOK, &resp); err != nil {
		c.logger.WithContext(ctx).Error("Razorpay order creation failed",
			zap.String("receipt", receipt),
			zap.Int64("amount", amountMinor),
			zap.Error(err))
		return nil, err
	}

	c.logger.WithContext(ctx).Info("Razorpay order created",
		zap.String("order_id", resp.ID),
		zap.String("receipt", resp.Receipt))

	return &domain.GatewayOrder{
		ID:       resp.ID,
		Amount:   resp.Amount,
		Currency: resp.Currency,
		Receipt:  resp.Receipt,
		Status:   resp.Status,
	}, nil
}

// VerifySignature checks the checkout signature of orderID|paymentID
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(c.keySecret, orderID, paymentID, signature)
}

func (c *Client) sendRequest(ctx context.Context, method, url string, bodyData any, expectedStatus int, out any) error {
	var body io.Reader

	if bodyData != nil {
		jsonBytes, err := json.Marshal(bodyData)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(jsonBytes)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		gwErr := &domain.PaymentGatewayError{StatusCode: resp.StatusCode}
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Description != "" {
			gwErr.Code = errResp.Error.Code
			gwErr.Description = errResp.Error.Description
		} else {
			gwErr.Description = string(respBody)
		}
		return gwErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
