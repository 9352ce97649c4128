package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drivehub/rental-service/rental/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	t.Parallel()
	c := NewClient(config.Gateway{KeySecret: "topsecret"}, zap.NewExample())

	valid := sign("topsecret", "order_1", "pay_1")
	require.True(t, c.VerifySignature("order_1", "pay_1", valid))

	// tampered signature
	require.False(t, c.VerifySignature("order_1", "pay_1", valid[:len(valid)-1]+"0"))
	// signature for different ids
	require.False(t, c.VerifySignature("order_2", "pay_1", valid))
	// signed with the wrong secret
	require.False(t, c.VerifySignature("order_1", "pay_1", sign("other", "order_1", "pay_1")))
	require.False(t, c.VerifySignature("order_1", "pay_1", ""))
}

func TestCreateOrder(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "key_id", user)
		require.Equal(t, "key_secret", pass)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"order_xyz","amount":24000,"currency":"INR","receipt":"rcpt-1","status":"created"}`))
	}))
	defer srv.Close()

	c := NewClient(config.Gateway{
		BaseURL:   srv.URL,
		KeyID:     "key_id",
		KeySecret: "key_secret",
		Currency:  "INR",
	}, zap.NewExample())

	order, err := c.CreateOrder(context.Background(), 24000, "INR", "rcpt-1")
	require.NoError(t, err)
	require.Equal(t, "order_xyz", order.ID)
	require.EqualValues(t, 24000, order.Amount)
	require.Equal(t, "INR", order.Currency)
}
