package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/babyzion/market/internal/events"
	"github.com/babyzion/market/internal/models"
	"github.com/babyzion/market/internal/payment"
	"github.com/babyzion/market/internal/repo"
	"github.com/babyzion/market/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB

	Catalog *CatalogHTTP
	Order   *OrderHTTP
	Upload  *UploadHTTP
}

type testEnvOpts struct {
	feed service.FeedClient
}

func newTestEnv(t *testing.T, opts testEnvOpts) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Product{}, &models.Order{}, &models.OrderItem{}, &models.Upload{},
	))

	r := &repo.GormRepo{DB: db}
	feed := opts.feed
	if feed == nil {
		feed = unconfiguredFeed{}
	}

	env := &testEnv{
		T:       t,
		E:       echo.New(),
		DB:      db,
		Catalog: &CatalogHTTP{Svc: &service.CatalogService{Repo: r, Feed: feed, Events: events.NopPublisher{}}},
		Order:   &OrderHTTP{Svc: &service.OrderService{Repo: r, Events: events.NopPublisher{}, IDPrefix: "BZ"}},
		Upload:  &UploadHTTP{Svc: &service.UploadService{Repo: r, Events: events.NopPublisher{}}},
	}
	return env
}

type unconfiguredFeed struct{}

func (unconfiguredFeed) Configured() bool { return false }
func (unconfiguredFeed) SearchProducts(_ context.Context, _, _ string, _, _ int) ([]models.Product, error) {
	return nil, nil
}

func newPaymentHTTP(paypalBase, clientID, secret, paystackKey string) *PaymentHTTP {
	return &PaymentHTTP{
		PayPal:   payment.NewPayPalClient(paypalBase, clientID, secret),
		Paystack: payment.NewPaystackClient(paystackKey),
	}
}

func (env *testEnv) doJSONRequest(method, path string, body any) (*httptest.ResponseRecorder, echo.Context) {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
