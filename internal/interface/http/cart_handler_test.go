package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	domadmin "example.com/iskina-storefront/internal/domain/admin"
	domcatalog "example.com/iskina-storefront/internal/domain/catalog"
	dompayment "example.com/iskina-storefront/internal/domain/payment"
	domsettings "example.com/iskina-storefront/internal/domain/settings"
	"example.com/iskina-storefront/internal/infra/security"
	authuc "example.com/iskina-storefront/internal/usecase/auth"
	availabilityuc "example.com/iskina-storefront/internal/usecase/availability"
	cartuc "example.com/iskina-storefront/internal/usecase/cart"
	cataloguc "example.com/iskina-storefront/internal/usecase/catalog"
	checkoutuc "example.com/iskina-storefront/internal/usecase/checkout"
	paymentuc "example.com/iskina-storefront/internal/usecase/payment"
	sessionuc "example.com/iskina-storefront/internal/usecase/session"
	settingsuc "example.com/iskina-storefront/internal/usecase/settings"
)

// --- Mock Repositories for Handler Tests ---

type mockCatalogRepo struct {
	items      map[string]*domcatalog.MenuItem
	categories []*domcatalog.Category
}

func newMockCatalogRepo() *mockCatalogRepo {
	return &mockCatalogRepo{
		items: map[string]*domcatalog.MenuItem{
			"siomai": {
				ID:         "siomai",
				Name:       "Siomai",
				BasePrice:  30,
				CategoryID: "snacks",
				Available:  true,
				Variations: []domcatalog.Variation{
					{ID: "regular", Name: "Regular", PriceDelta: 0},
					{ID: "large", Name: "Large", PriceDelta: 10},
				},
				AddOns: []domcatalog.AddOn{
					{ID: "sauce", Name: "Extra Sauce", PriceDelta: 5},
				},
			},
			"lumpia": {
				ID:         "lumpia",
				Name:       "Lumpia",
				BasePrice:  25,
				CategoryID: "snacks",
				Available:  false,
			},
		},
		categories: []*domcatalog.Category{
			{ID: "snacks", Name: "Snacks", SortOrder: 1},
		},
	}
}

func (m *mockCatalogRepo) ListItems(ctx context.Context, filter domcatalog.ListFilter) ([]*domcatalog.MenuItem, error) {
	var out []*domcatalog.MenuItem
	for _, item := range m.items {
		if filter.CategoryID == "" || item.CategoryID == filter.CategoryID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockCatalogRepo) GetItem(ctx context.Context, id string) (*domcatalog.MenuItem, error) {
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, domcatalog.ErrItemNotFound
}

func (m *mockCatalogRepo) CreateItem(ctx context.Context, item *domcatalog.MenuItem) (*domcatalog.MenuItem, error) {
	m.items[item.ID] = item
	return item, nil
}

func (m *mockCatalogRepo) UpdateItem(ctx context.Context, item *domcatalog.MenuItem) (*domcatalog.MenuItem, error) {
	if _, ok := m.items[item.ID]; !ok {
		return nil, domcatalog.ErrItemNotFound
	}
	m.items[item.ID] = item
	return item, nil
}

func (m *mockCatalogRepo) DeleteItem(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return domcatalog.ErrItemNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockCatalogRepo) ListCategories(ctx context.Context) ([]*domcatalog.Category, error) {
	return m.categories, nil
}

func (m *mockCatalogRepo) CreateCategory(ctx context.Context, c *domcatalog.Category) (*domcatalog.Category, error) {
	m.categories = append(m.categories, c)
	return c, nil
}

func (m *mockCatalogRepo) UpdateCategory(ctx context.Context, c *domcatalog.Category) (*domcatalog.Category, error) {
	for i, existed := range m.categories {
		if existed.ID == c.ID {
			m.categories[i] = c
			return c, nil
		}
	}
	return nil, domcatalog.ErrCategoryNotFound
}

func (m *mockCatalogRepo) DeleteCategory(ctx context.Context, id string) error {
	for i, existed := range m.categories {
		if existed.ID == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return domcatalog.ErrCategoryNotFound
}

type mockSettingsRepo struct {
	settings *domsettings.SiteSettings
}

func newMockSettingsRepo() *mockSettingsRepo {
	return &mockSettingsRepo{
		settings: &domsettings.SiteSettings{
			SiteName:    "Iskina Puso",
			OpeningTime: "09:00",
			ClosingTime: "22:00",
		},
	}
}

func (m *mockSettingsRepo) Get(ctx context.Context) (*domsettings.SiteSettings, error) {
	if m.settings == nil {
		return nil, domsettings.ErrSettingsNotFound
	}
	return m.settings, nil
}

func (m *mockSettingsRepo) Update(ctx context.Context, s *domsettings.SiteSettings) (*domsettings.SiteSettings, error) {
	m.settings = s
	return s, nil
}

type mockPaymentRepo struct {
	methods []*dompayment.Method
}

func newMockPaymentRepo() *mockPaymentRepo {
	return &mockPaymentRepo{
		methods: []*dompayment.Method{
			{ID: "gcash", Name: "GCash", AccountNumber: "09170000001", AccountName: "Iskina Puso"},
			{ID: "maya", Name: "Maya", AccountNumber: "09170000002", AccountName: "Iskina Puso"},
		},
	}
}

func (m *mockPaymentRepo) List(ctx context.Context) ([]*dompayment.Method, error) {
	return m.methods, nil
}

func (m *mockPaymentRepo) GetByID(ctx context.Context, id string) (*dompayment.Method, error) {
	for _, method := range m.methods {
		if method.ID == id {
			return method, nil
		}
	}
	return nil, dompayment.ErrMethodNotFound
}

func (m *mockPaymentRepo) Create(ctx context.Context, method *dompayment.Method) (*dompayment.Method, error) {
	m.methods = append(m.methods, method)
	return method, nil
}

func (m *mockPaymentRepo) Update(ctx context.Context, method *dompayment.Method) (*dompayment.Method, error) {
	for i, existed := range m.methods {
		if existed.ID == method.ID {
			m.methods[i] = method
			return method, nil
		}
	}
	return nil, dompayment.ErrMethodNotFound
}

func (m *mockPaymentRepo) Delete(ctx context.Context, id string) error {
	for i, existed := range m.methods {
		if existed.ID == id {
			m.methods = append(m.methods[:i], m.methods[i+1:]...)
			return nil
		}
	}
	return dompayment.ErrMethodNotFound
}

type mockAdminRepo struct {
	users map[string]*domadmin.User
}

func (m *mockAdminRepo) GetByEmail(ctx context.Context, email string) (*domadmin.User, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, domadmin.ErrUserNotFound
}

func (m *mockAdminRepo) GetByID(ctx context.Context, id int64) (*domadmin.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domadmin.ErrUserNotFound
}

type testFixture struct {
	router       chi.Router
	settingsRepo *mockSettingsRepo
	paymentRepo  *mockPaymentRepo
	catalogRepo  *mockCatalogRepo
}

// setupTestAPI wires the full router over in-memory repositories with the
// wall clock pinned to noon, inside the configured operating window.
func setupTestAPI(t *testing.T) *testFixture {
	t.Helper()

	settingsRepo := newMockSettingsRepo()
	paymentRepo := newMockPaymentRepo()
	catalogRepo := newMockCatalogRepo()

	noon := func() time.Time {
		return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	}

	availSvc := availabilityuc.NewService(settingsRepo, noon)
	sessionStore := sessionuc.NewStore()
	sessionSvc := sessionuc.NewService(sessionStore, availSvc)

	catalogSvc := cataloguc.NewService(catalogRepo)
	settingsSvc := settingsuc.NewService(settingsRepo)
	paymentSvc := paymentuc.NewService(paymentRepo)
	cartSvc := cartuc.NewService(sessionStore, catalogSvc)
	checkoutSvc := checkoutuc.NewService(sessionStore, availSvc, paymentSvc, settingsSvc, "IskinaPuso")

	tokenSvc := security.NewJWTService("test-secret", time.Hour)
	authSvc := authuc.NewService(&mockAdminRepo{users: map[string]*domadmin.User{}}, security.NewBcryptService(0), tokenSvc)

	api := NewAPI(Dependencies{
		SessionService:      sessionSvc,
		CartService:         cartSvc,
		CheckoutService:     checkoutSvc,
		CatalogService:      catalogSvc,
		SettingsService:     settingsSvc,
		PaymentService:      paymentSvc,
		AvailabilityService: availSvc,
		AuthService:         authSvc,
		TokenService:        tokenSvc,
	})
	return &testFixture{
		router:       api.Router(),
		settingsRepo: settingsRepo,
		paymentRepo:  paymentRepo,
		catalogRepo:  catalogRepo,
	}
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func beginTestSession(t *testing.T, f *testFixture) string {
	t.Helper()
	req := jsonRequest(t, http.MethodPost, "/api/v1/sessions", map[string]string{"room_number": "305"})
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	id, _ := body["session_id"].(string)
	require.NotEmpty(t, id)
	return id
}

func addSiomai(t *testing.T, f *testFixture, sessionID string, qty int64) *httptest.ResponseRecorder {
	t.Helper()
	req := jsonRequest(t, http.MethodPost, "/api/v1/me/cart/items", map[string]any{
		"item_id":      "siomai",
		"variation_id": "large",
		"add_ons":      []map[string]any{{"id": "sauce", "quantity": 2}},
		"quantity":     qty,
	})
	req.Header.Set("X-Session-ID", sessionID)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// --- Tests ---

func TestBeginSession_WhileClosed_Returns422(t *testing.T) {
	f := setupTestAPI(t)
	f.settingsRepo.settings.IsTemporarilyClosed = true

	req := jsonRequest(t, http.MethodPost, "/api/v1/sessions", map[string]string{"room_number": "305"})
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAddCartItem_PricesComeFromCatalog(t *testing.T) {
	f := setupTestAPI(t)
	sessionID := beginTestSession(t, f)

	rec := addSiomai(t, f, sessionID, 2)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	// 30 base + 10 large + 5 sauce x2 = 50 per unit.
	require.EqualValues(t, 2, body["total_items"])
	require.EqualValues(t, 100, body["total_price"])

	lines := body["lines"].([]any)
	require.Len(t, lines, 1)
	line := lines[0].(map[string]any)
	require.Equal(t, "Siomai", line["name"])
	require.EqualValues(t, 50, line["unit_total"])
}

func TestAddCartItem_SameSelectionMergesLine(t *testing.T) {
	f := setupTestAPI(t)
	sessionID := beginTestSession(t, f)

	require.Equal(t, http.StatusOK, addSiomai(t, f, sessionID, 1).Code)
	rec := addSiomai(t, f, sessionID, 2)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	lines := body["lines"].([]any)
	require.Len(t, lines, 1)
	require.EqualValues(t, 3, lines[0].(map[string]any)["quantity"])
}

func TestAddCartItem_UnavailableItem_Returns422(t *testing.T) {
	f := setupTestAPI(t)
	sessionID := beginTestSession(t, f)

	req := jsonRequest(t, http.MethodPost, "/api/v1/me/cart/items", map[string]any{"item_id": "lumpia"})
	req.Header.Set("X-Session-ID", sessionID)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAddCartItem_UnknownItem_Returns404(t *testing.T) {
	f := setupTestAPI(t)
	sessionID := beginTestSession(t, f)

	req := jsonRequest(t, http.MethodPost, "/api/v1/me/cart/items", map[string]any{"item_id": "no-such-item"})
	req.Header.Set("X-Session-ID", sessionID)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCart_WithoutSessionHeader_Returns400(t *testing.T) {
	f := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me/cart", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCart_UnknownSession_Returns404(t *testing.T) {
	f := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me/cart", nil)
	req.Header.Set("X-Session-ID", "missing")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCartItem_ZeroQuantityRemovesLine(t *testing.T) {
	f := setupTestAPI(t)
	sessionID := beginTestSession(t, f)

	rec := addSiomai(t, f, sessionID, 1)
	require.Equal(t, http.StatusOK, rec.Code)
	lines := decodeBody(t, rec)["lines"].([]any)
	key := lines[0].(map[string]any)["key"].(string)

	req := jsonRequest(t, http.MethodPatch, "/api/v1/me/cart/items/"+url.PathEscape(key), map[string]any{"quantity": 0})
	req.Header.Set("X-Session-ID", sessionID)
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Empty(t, body["lines"])
	require.EqualValues(t, 0, body["total_items"])
}

func TestClearCart_Returns204AndEmptiesCart(t *testing.T) {
	f := setupTestAPI(t)
	sessionID := beginTestSession(t, f)
	require.Equal(t, http.StatusOK, addSiomai(t, f, sessionID, 2).Code)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/me/cart", nil)
	req.Header.Set("X-Session-ID", sessionID)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/me/cart", nil)
	req.Header.Set("X-Session-ID", sessionID)
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 0, decodeBody(t, rec)["total_price"])
}

func TestListMenu_FiltersByCategory(t *testing.T) {
	f := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu?category=snacks", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeBody(t, rec)["items"].([]any)
	require.Len(t, items, 2)
}

func TestGetAvailability_ReportsOpenWithBounds(t *testing.T) {
	f := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, true, body["open"])
	require.Equal(t, "9:00 AM", body["opens_at"])
	require.Equal(t, "10:00 PM", body["closes_at"])
}

func TestAdminRoutes_WithoutToken_Returns401(t *testing.T) {
	f := setupTestAPI(t)

	req := jsonRequest(t, http.MethodPost, "/api/v1/admin/payment-methods", map[string]any{"name": "Bank"})
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
