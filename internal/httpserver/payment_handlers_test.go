package httpserver

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babyzion/market/internal/transport"
)

func paymentRequest(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	env := newTestEnv(t, testEnvOpts{})
	return env.doJSONRequest(method, path, body)
}

func TestPaystackInitializeUnconfigured(t *testing.T) {
	t.Parallel()

	h := newPaymentHTTP("http://unused", "", "", "")
	rec, c := paymentRequest(t, http.MethodPost, "/api/paystack/initialize", nil)
	require.NoError(t, h.PaystackInitialize(c))

	// missing credentials are a soft failure, not a server error
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[transport.Envelope](t, rec)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Hint, "PAYSTACK_PUBLIC_KEY")
}

func TestPaystackInitializeConfigured(t *testing.T) {
	t.Parallel()

	h := newPaymentHTTP("http://unused", "", "", "pk_test_123")
	rec, c := paymentRequest(t, http.MethodPost, "/api/paystack/initialize", nil)
	require.NoError(t, h.PaystackInitialize(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "pk_test_123", resp["public_key"])
}

func TestPayPalCreateOrderUnconfigured(t *testing.T) {
	t.Parallel()

	h := newPaymentHTTP("http://unused", "", "", "")
	rec, c := paymentRequest(t, http.MethodPost, "/api/paypal/create-order", map[string]any{"amount": 46.99})
	require.NoError(t, h.PayPalCreateOrder(c))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[transport.Envelope](t, rec)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Hint, "PAYPAL_CLIENT_ID")
}

func fakePayPal(t *testing.T, captureStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "cid", user)
		require.Equal(t, "secret", pass)
		fmt.Fprint(w, `{"access_token":"paypal-token"}`)
	})
	mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer paypal-token", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"id":"PAYPAL-ORDER-1"}`)
	})
	mux.HandleFunc("/v2/checkout/orders/PAYPAL-ORDER-1/capture", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(captureStatus)
		fmt.Fprint(w, `{"id":"PAYPAL-ORDER-1","status":"COMPLETED"}`)
	})
	return httptest.NewServer(mux)
}

func TestPayPalCreateAndCaptureOrder(t *testing.T) {
	t.Parallel()

	srv := fakePayPal(t, http.StatusCreated)
	defer srv.Close()

	h := newPaymentHTTP(srv.URL, "cid", "secret", "")

	rec, c := paymentRequest(t, http.MethodPost, "/api/paypal/create-order", map[string]any{"amount": 46.99})
	require.NoError(t, h.PayPalCreateOrder(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "PAYPAL-ORDER-1", resp["order_id"])

	rec2, c2 := paymentRequest(t, http.MethodPost, "/api/paypal/capture-order/PAYPAL-ORDER-1", nil)
	c2.SetParamNames("order_id")
	c2.SetParamValues("PAYPAL-ORDER-1")
	require.NoError(t, h.PayPalCaptureOrder(c2))
	require.Equal(t, http.StatusOK, rec2.Code)

	capture := decodeJSON[map[string]any](t, rec2)
	assert.Equal(t, true, capture["success"])
	data, ok := capture["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "COMPLETED", data["status"])
}

func TestPayPalCaptureOrderUpstreamFailure(t *testing.T) {
	t.Parallel()

	srv := fakePayPal(t, http.StatusUnprocessableEntity)
	defer srv.Close()

	h := newPaymentHTTP(srv.URL, "cid", "secret", "")

	rec, c := paymentRequest(t, http.MethodPost, "/api/paypal/capture-order/PAYPAL-ORDER-1", nil)
	c.SetParamNames("order_id")
	c.SetParamValues("PAYPAL-ORDER-1")
	require.NoError(t, h.PayPalCaptureOrder(c))

	// upstream failures are generic to the client
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeJSON[transport.Envelope](t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "payment action failed", resp.Message)
}

func TestPayPalCreateOrderInvalidAmount(t *testing.T) {
	t.Parallel()

	h := newPaymentHTTP("http://unused", "cid", "secret", "")
	rec, c := paymentRequest(t, http.MethodPost, "/api/paypal/create-order", map[string]any{"amount": "abc"})
	require.NoError(t, h.PayPalCreateOrder(c))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeJSON[transport.Envelope](t, rec)
	assert.Equal(t, "invalid numeric value", resp.Message)
}
