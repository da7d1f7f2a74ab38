package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"networth-tracker/internal/database"
	"networth-tracker/internal/models"
	"networth-tracker/internal/repositories"
	"networth-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// handlerHarness wires every handler against real services over an in-memory
// database so tests exercise the full request path below the middleware.
type handlerHarness struct {
	db   *database.DB
	echo *echo.Echo
	user *models.User

	assets        *AssetHandler
	allocations   *AllocationHandler
	budgets       *BudgetHandler
	cashflow      *CashflowHandler
	subcategories *SubcategoryHandler
	netWorth      *NetWorthHandler
	users         *UserHandler
	health        *HealthHandler
}

func newHandlerHarness(t *testing.T) *handlerHarness {
	t.Helper()

	db := database.SetupTestDB(t)
	metrics := services.NoopMetrics{}

	userRepo := repositories.NewUserRepository(db.DB)
	assetRepo := repositories.NewAssetRepository(db.DB)
	inputRepo := repositories.NewAssetInputRepository(db.DB)
	incomingRepo := repositories.NewIncomingRepository(db.DB)
	expenseRepo := repositories.NewExpenseRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)
	targetRepo := repositories.NewAllocationTargetRepository(db.DB)
	subcategoryRepo := repositories.NewSubcategoryRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)

	assetService := services.NewAssetService(assetRepo)
	inputService := services.NewAssetInputService(inputRepo, assetRepo)

	e := echo.New()
	e.Validator = NewValidator()

	h := &handlerHarness{
		db:   db,
		echo: e,
		user: database.CreateTestUser(t, db),

		assets:      NewAssetHandler(assetService, inputService, metrics),
		allocations: NewAllocationHandler(services.NewAllocationService(inputRepo, targetRepo), metrics),
		budgets:     NewBudgetHandler(services.NewBudgetService(budgetRepo, expenseRepo, categoryRepo), metrics),
		cashflow: NewCashflowHandler(
			services.NewCashflowService(incomingRepo, expenseRepo, subcategoryRepo), metrics),
		subcategories: NewSubcategoryHandler(services.NewSubcategoryService(subcategoryRepo), metrics),
		netWorth:      NewNetWorthHandler(services.NewNetWorthService(inputRepo)),
		users: NewUserHandler(services.NewUserService(userRepo), services.NewExportService(
			userRepo, assetRepo, inputRepo, incomingRepo,
			expenseRepo, budgetRepo, targetRepo, subcategoryRepo,
		)),
		health: NewHealthHandler(services.NewHealthService(db)),
	}
	return h
}

// newContext builds an authenticated request context the way the auth
// middleware would leave it.
func (h *handlerHarness) newContext(t *testing.T, method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		req = httptest.NewRequest(method, target, bytes.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	c := h.echo.NewContext(req, rec)
	c.Set("user_id", h.user.ID)
	return c, rec
}

// anonContext builds a request context without an authenticated user
func (h *handlerHarness) anonContext(t *testing.T, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return h.echo.NewContext(req, rec), rec
}

// testEnvelope mirrors the wire shape with raw data for per-test decoding
type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string   `json:"code"`
		Message string   `json:"message"`
		Details []string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) *testEnvelope {
	t.Helper()
	var envelope testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not an envelope: %v\nbody: %s", err, rec.Body.String())
	}
	return &envelope
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	envelope := decodeEnvelope(t, rec)
	if !envelope.Success {
		t.Fatalf("expected success envelope, got error: %+v", envelope.Error)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("failed to decode envelope data: %v", err)
	}
}

func otherUser(t *testing.T, db *database.DB) *models.User {
	t.Helper()
	return database.CreateTestUser(t, db)
}

func decimalFromString(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", value, err)
	}
	return d
}
