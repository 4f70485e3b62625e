// Package feed talks to the CJ Dropshipping catalog API and normalizes its
// listings into the local product shape.
package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/babyzion/market/internal/models"
)

const (
	tokenLifetime  = 14 * 24 * time.Hour
	requestTimeout = 30 * time.Second
)

var (
	ErrNotConfigured = errors.New("feed credentials not configured")
	ErrTimeout       = errors.New("feed request timed out")
	ErrUpstream      = errors.New("feed request failed")
)

type Client struct {
	baseURL    string
	email      string
	apiKey     string
	httpClient *http.Client

	// session state, guarded so concurrent callers never race the
	// expired-token check into duplicate authentication calls
	mu           sync.Mutex
	accessToken  string
	refreshToken string
	tokenExpiry  time.Time

	now func() time.Time
}

func NewClient(baseURL, email, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		email:   email,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		now: time.Now,
	}
}

func (c *Client) Configured() bool {
	return c.email != "" && c.apiKey != ""
}

type apiResponse struct {
	Result  bool            `json:"result"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type authData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (c *Client) postJSON(ctx context.Context, url string, payload any, token string) (*apiResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("CJ-Access-Token", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	return &out, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// ensureAuth lazily authenticates or re-authenticates when the token is
// missing or past its 14-day lifetime. Callers hold no lock; the session is
// guarded here.
func (c *Client) ensureAuth(ctx context.Context) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && c.now().Before(c.tokenExpiry) {
		return nil
	}
	if c.refreshToken != "" {
		if err := c.refreshLocked(ctx); err == nil {
			return nil
		}
	}
	return c.authenticateLocked(ctx)
}

func (c *Client) authenticateLocked(ctx context.Context) error {
	resp, err := c.postJSON(ctx, c.baseURL+"/authentication/getAccessToken", map[string]string{
		"email":  c.email,
		"apiKey": c.apiKey,
	}, "")
	if err != nil {
		return err
	}
	if !resp.Result {
		return fmt.Errorf("%w: auth rejected: %s", ErrUpstream, resp.Message)
	}
	return c.storeTokensLocked(resp.Data)
}

func (c *Client) refreshLocked(ctx context.Context) error {
	resp, err := c.postJSON(ctx, c.baseURL+"/authentication/refreshAccessToken", map[string]string{
		"refreshToken": c.refreshToken,
	}, "")
	if err != nil {
		return err
	}
	if !resp.Result {
		return fmt.Errorf("%w: refresh rejected: %s", ErrUpstream, resp.Message)
	}
	return c.storeTokensLocked(resp.Data)
}

func (c *Client) storeTokensLocked(data json.RawMessage) error {
	var auth authData
	if err := json.Unmarshal(data, &auth); err != nil {
		return fmt.Errorf("%w: decode auth data: %v", ErrUpstream, err)
	}
	c.accessToken = auth.AccessToken
	c.refreshToken = auth.RefreshToken
	c.tokenExpiry = c.now().Add(tokenLifetime)
	return nil
}

func (c *Client) token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken
}

type rawProduct struct {
	PID          string          `json:"pid"`
	NameEn       string          `json:"productNameEn"`
	Description  string          `json:"description"`
	SellPrice    json.RawMessage `json:"sellPrice"`
	ProductImage string          `json:"productImage"`
}

type productList struct {
	List []rawProduct `json:"list"`
}

// SearchProducts posts a keyword search and returns the normalized hits.
// Records that fail normalization are skipped, not fatal to the batch.
func (c *Client) SearchProducts(ctx context.Context, keyword, categoryID string, page, pageSize int) ([]models.Product, error) {
	if err := c.ensureAuth(ctx); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"productNameEn": keyword,
		"pageNum":       page,
		"pageSize":      pageSize,
	}
	if categoryID != "" {
		payload["categoryId"] = categoryID
	}

	resp, err := c.postJSON(ctx, c.baseURL+"/product/list", payload, c.token())
	if err != nil {
		return nil, err
	}
	if !resp.Result || len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: search rejected: %s", ErrUpstream, resp.Message)
	}

	var data productList
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: decode product list: %v", ErrUpstream, err)
	}
	return Normalize(data.List), nil
}

// GetProductDetail fetches and normalizes a single listing by pid.
func (c *Client) GetProductDetail(ctx context.Context, pid string) (*models.Product, error) {
	if err := c.ensureAuth(ctx); err != nil {
		return nil, err
	}

	resp, err := c.postJSON(ctx, c.baseURL+"/product/query", map[string]string{"pid": pid}, c.token())
	if err != nil {
		return nil, err
	}
	if !resp.Result || len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: detail rejected: %s", ErrUpstream, resp.Message)
	}

	var raw rawProduct
	if err := json.Unmarshal(resp.Data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode product: %v", ErrUpstream, err)
	}
	products := Normalize([]rawProduct{raw})
	if len(products) == 0 {
		return nil, fmt.Errorf("%w: product %s could not be normalized", ErrUpstream, pid)
	}
	return &products[0], nil
}

// Normalize maps raw feed records into the catalog shape. A record without
// a pid is malformed and skipped.
func Normalize(raw []rawProduct) []models.Product {
	out := make([]models.Product, 0, len(raw))
	for _, p := range raw {
		if p.PID == "" {
			continue
		}

		name := p.NameEn
		if name == "" {
			name = "Baby Product"
		}

		desc := p.Description
		if r := []rune(desc); len(r) > 200 {
			desc = string(r[:200])
		}

		price := coercePrice(p.SellPrice)

		out = append(out, models.Product{
			ID:          "CJ_" + p.PID,
			Name:        name,
			Description: desc,
			Price:       price,
			Category:    Categorize(p.NameEn),
			Image:       p.ProductImage,
			InStock:     price.IsPositive(),
		})
	}
	return out
}

// coercePrice accepts a JSON number or numeric string; anything else
// defaults to zero, which also marks the product out of stock.
func coercePrice(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}

	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err == nil {
		return d
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if d, err := decimal.NewFromString(s); err == nil {
			return d
		}
	}
	return decimal.Zero
}
