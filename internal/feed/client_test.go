package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	batch := []rawProduct{
		{PID: "p1", NameEn: "Wooden Rattle Toy", Description: "nice", SellPrice: json.RawMessage(`12.5`), ProductImage: "img1"},
		{PID: "p2", NameEn: "Newborn Swaddle", SellPrice: json.RawMessage(`"8.99"`)},
		{PID: "p3", NameEn: "Mystery Item"},
		{PID: "", NameEn: "malformed, no pid"},
		{PID: "p5", SellPrice: json.RawMessage(`"not-a-number"`)},
	}

	out := Normalize(batch)
	require.Len(t, out, 4)

	assert.Equal(t, "CJ_p1", out[0].ID)
	assert.Equal(t, "Wooden Toys", out[0].Category)
	assert.True(t, out[0].Price.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, out[0].InStock)

	assert.Equal(t, "CJ_p2", out[1].ID)
	assert.True(t, out[1].Price.Equal(decimal.RequireFromString("8.99")))
	assert.True(t, out[1].InStock)

	// missing price defaults to zero and marks the product out of stock
	assert.True(t, out[2].Price.IsZero())
	assert.False(t, out[2].InStock)

	// unparseable price also defaults to zero
	assert.True(t, out[3].Price.IsZero())
	assert.False(t, out[3].InStock)
	assert.Equal(t, "Baby Product", out[3].Name)
}

func TestNormalizeTruncatesDescription(t *testing.T) {
	t.Parallel()

	long := make([]byte, 0, 300)
	for i := 0; i < 300; i++ {
		long = append(long, 'd')
	}
	out := Normalize([]rawProduct{{PID: "p1", NameEn: "x", Description: string(long)}})
	require.Len(t, out, 1)
	assert.Len(t, []rune(out[0].Description), 200)
}

type fakeCJ struct {
	t         *testing.T
	authCalls atomic.Int32
	products  []map[string]any
}

func (f *fakeCJ) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/authentication/getAccessToken", func(w http.ResponseWriter, r *http.Request) {
		f.authCalls.Add(1)
		fmt.Fprint(w, `{"result":true,"data":{"accessToken":"tok-1","refreshToken":"ref-1"}}`)
	})
	mux.HandleFunc("/product/list", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("CJ-Access-Token") != "tok-1" {
			fmt.Fprint(w, `{"result":false,"message":"bad token"}`)
			return
		}
		resp := map[string]any{"result": true, "data": map[string]any{"list": f.products}}
		require.NoError(f.t, json.NewEncoder(w).Encode(resp))
	})
	return mux
}

func TestSearchProducts(t *testing.T) {
	t.Parallel()

	fake := &fakeCJ{t: t, products: []map[string]any{
		{"pid": "a1", "productNameEn": "Wooden Duck", "sellPrice": 22.0, "productImage": "img"},
		{"pid": "a2", "productNameEn": "Swaddle", "sellPrice": "14.50"},
	}}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := NewClient(srv.URL, "me@example.com", "key")

	got, err := c.SearchProducts(context.Background(), "baby", "", 1, 20)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "CJ_a1", got[0].ID)
	assert.Equal(t, int32(1), fake.authCalls.Load())

	// token is cached: a second search does not re-authenticate
	_, err = c.SearchProducts(context.Background(), "baby", "", 2, 20)
	require.NoError(t, err)
	assert.Equal(t, int32(1), fake.authCalls.Load())
}

func TestSearchProductsConcurrentAuth(t *testing.T) {
	t.Parallel()

	fake := &fakeCJ{t: t, products: []map[string]any{{"pid": "a1", "sellPrice": 1.0}}}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := NewClient(srv.URL, "me@example.com", "key")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.SearchProducts(context.Background(), "baby", "", 1, 20)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// the session lock collapses racing callers into one authentication
	assert.Equal(t, int32(1), fake.authCalls.Load())
}

func TestEnsureAuthReauthenticatesAfterExpiry(t *testing.T) {
	t.Parallel()

	fake := &fakeCJ{t: t, products: []map[string]any{{"pid": "a1", "sellPrice": 1.0}}}
	mux := fake.handler().(*http.ServeMux)
	var refreshCalls atomic.Int32
	mux.HandleFunc("/authentication/refreshAccessToken", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		fmt.Fprint(w, `{"result":true,"data":{"accessToken":"tok-1","refreshToken":"ref-2"}}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL, "me@example.com", "key")
	current := time.Now()
	c.now = func() time.Time { return current }

	_, err := c.SearchProducts(context.Background(), "baby", "", 1, 20)
	require.NoError(t, err)
	require.Equal(t, int32(1), fake.authCalls.Load())

	// move past the 14-day token lifetime; the refresh token is used first
	current = current.Add(tokenLifetime + time.Hour)
	_, err = c.SearchProducts(context.Background(), "baby", "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Equal(t, int32(1), fake.authCalls.Load())
}

func TestSearchProductsNotConfigured(t *testing.T) {
	t.Parallel()

	c := NewClient("http://unused", "", "")
	assert.False(t, c.Configured())

	_, err := c.SearchProducts(context.Background(), "baby", "", 1, 20)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSearchProductsUpstreamRejection(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":false,"message":"nope"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "me@example.com", "key")
	_, err := c.SearchProducts(context.Background(), "baby", "", 1, 20)
	assert.ErrorIs(t, err, ErrUpstream)
}
