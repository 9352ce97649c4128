package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/drivehub/rental-service/pkg/circuitbreaker"
	"github.com/drivehub/rental-service/rental/config"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Client talks to the payment gateway's REST API. Amounts are in minor
// units (paise) per the gateway convention.
type Client interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type client struct {
	log    *zap.Logger
	http   *http.Client
	cb     circuitbreaker.CircuitBreaker
	cfg    config.Gateway
	secret []byte
}

func NewClient(cfg config.Gateway, log *zap.Logger) *client {
	return &client{
		log:    log.Named("gateway"),
		http:   &http.Client{Timeout: time.Minute},
		cb:     circuitbreaker.New(10, 5*time.Second, 0.5, 3),
		cfg:    cfg,
		secret: []byte(cfg.KeySecret),
	}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

func (c *client) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (Order, error) {
	var order Order
	err := c.cb.Call(func() error {
		body, err := json.Marshal(createOrderRequest{
			Amount:   amount,
			Currency: currency,
			Receipt:  receipt,
		})
		if err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(
			ctx,
			http.MethodPost,
			fmt.Sprintf("%s/orders", c.cfg.BaseURL),
			bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.SetBasicAuth(c.cfg.KeyID, c.cfg.KeySecret)

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			c.log.Error("create order", zap.Int("status", resp.StatusCode))
			return errors.Errorf("gateway order create: status %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&order)
	})
	if err != nil {
		return Order{}, err
	}
	return order, nil
}

// VerifySignature recomputes HMAC-SHA256 over "orderID|paymentID" with the
// shared secret and compares in constant time.
func (c *client) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(orderID + "|" + paymentID)) //nolint:errcheck
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
