package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) visitorCookie(t *testing.T) (*http.Cookie, string) {
	t.Helper()
	id := uuid.NewString()
	signed, err := e.tokens.Issue(id)
	require.NoError(t, err)
	return &http.Cookie{Name: testCookieName, Value: signed}, id
}

func (e *testEnv) do(method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeSummary(t *testing.T, rec *httptest.ResponseRecorder) service.CartSummary {
	t.Helper()
	var summary service.CartSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	return summary
}

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCart_NewVisitorGetsCookie(t *testing.T) {
	env := newTestEnv()

	rec := env.do(http.MethodGet, "/api/cart", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	id, err := env.tokens.Parse(cookies[0].Value)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	summary := decodeSummary(t, rec)
	assert.Equal(t, 0, summary.ItemCount)
	assert.Empty(t, summary.Lines)
}

func TestCart_TamperedCookieIsReplaced(t *testing.T) {
	env := newTestEnv()

	rec := env.do(http.MethodGet, "/api/cart", nil, &http.Cookie{Name: testCookieName, Value: "not-a-token"})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, rec.Result().Cookies(), 1)
}

func TestCart_ValidCookieKeepsVisitor(t *testing.T) {
	env := newTestEnv()
	cookie, _ := env.visitorCookie(t)

	rec := env.do(http.MethodPost, "/api/cart/items", map[string]any{"name": "Alfajor", "unitPrice": "4.75"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Result().Cookies())

	rec = env.do(http.MethodGet, "/api/cart", nil, cookie)
	summary := decodeSummary(t, rec)
	assert.Equal(t, 1, summary.ItemCount)
	assert.Equal(t, 1, env.visitors.Len())
}

func TestCart_MutationFlow(t *testing.T) {
	env := newTestEnv()
	cookie, _ := env.visitorCookie(t)

	rec := env.do(http.MethodPost, "/api/cart/items", map[string]any{"name": "Torta de chocolate", "unitPrice": "35.00", "imageRef": "torta.jpg"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(http.MethodPost, "/api/cart/items", map[string]any{"name": "Torta de chocolate", "unitPrice": "35.00"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(http.MethodPost, "/api/cart/items", `{"name":"Alfajor","unitPrice":4.75}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	summary := decodeSummary(t, rec)
	require.Len(t, summary.Lines, 2)
	assert.Equal(t, 3, summary.ItemCount)
	assert.True(t, summary.Subtotal.Equal(decimal.RequireFromString("74.75")), summary.Subtotal.String())
	assert.True(t, summary.Shipping.Equal(decimal.NewFromInt(10)))
	assert.True(t, summary.Total.Equal(decimal.RequireFromString("84.75")))
	assert.False(t, summary.FreeShipping)

	rec = env.do(http.MethodPatch, "/api/cart/items/1", map[string]any{"delta": 5}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	summary = decodeSummary(t, rec)
	assert.Equal(t, 8, summary.ItemCount)
	assert.True(t, summary.Subtotal.Equal(decimal.RequireFromString("98.50")))

	rec = env.do(http.MethodPatch, "/api/cart/items/1", map[string]any{"delta": 1}, cookie)
	summary = decodeSummary(t, rec)
	assert.True(t, summary.Subtotal.Equal(decimal.RequireFromString("103.25")))
	assert.True(t, summary.Shipping.IsZero())
	assert.True(t, summary.FreeShipping)

	rec = env.do(http.MethodPatch, "/api/cart/items/0", map[string]any{"delta": -2}, cookie)
	summary = decodeSummary(t, rec)
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, "Alfajor", summary.Lines[0].Name)

	rec = env.do(http.MethodDelete, "/api/cart/items/0", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeSummary(t, rec).Lines)
}

func TestCart_Clear(t *testing.T) {
	env := newTestEnv()
	cookie, _ := env.visitorCookie(t)
	env.do(http.MethodPost, "/api/cart/items", map[string]any{"name": "Alfajor", "unitPrice": "4.75"}, cookie)

	rec := env.do(http.MethodDelete, "/api/cart", nil, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	summary := decodeSummary(t, rec)
	assert.Equal(t, 0, summary.ItemCount)
	assert.True(t, summary.Total.IsZero())
}

func TestCart_InvalidRequests(t *testing.T) {
	env := newTestEnv()
	cookie, _ := env.visitorCookie(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"missing price", http.MethodPost, "/api/cart/items", map[string]any{"name": "Alfajor"}},
		{"negative price", http.MethodPost, "/api/cart/items", map[string]any{"name": "Alfajor", "unitPrice": "-1"}},
		{"empty name", http.MethodPost, "/api/cart/items", map[string]any{"name": " ", "unitPrice": "1"}},
		{"malformed body", http.MethodPost, "/api/cart/items", "{"},
		{"non numeric index", http.MethodDelete, "/api/cart/items/abc", nil},
		{"index out of range", http.MethodDelete, "/api/cart/items/3", nil},
		{"change out of range", http.MethodPatch, "/api/cart/items/0", map[string]any{"delta": 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(tt.method, tt.path, tt.body, cookie)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "invalid_argument", decodeErr(t, rec).Kind)
		})
	}
}

func TestCheckout_Success(t *testing.T) {
	env := newTestEnv()
	cookie, _ := env.visitorCookie(t)
	customer := entity.CustomerDetails{Name: "Ana Torres", Email: "ana@example.com", Phone: "999"}
	confirmation := &entity.OrderConfirmation{OrderID: 41, Total: decimal.RequireFromString("54.50")}

	env.checkout.On("PlaceOrder", mock.Anything, mock.AnythingOfType("*service.CartManager"), customer).
		Return(confirmation, nil).Once()

	rec := env.do(http.MethodPost, "/api/checkout", customer, cookie)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got entity.OrderConfirmation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(41), got.OrderID)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.CheckoutsTotal.WithLabelValues("ok")))
	env.checkout.AssertExpectations(t)
}

func TestCheckout_FailureKinds(t *testing.T) {
	env := newTestEnv()
	cookie, _ := env.visitorCookie(t)

	env.checkout.On("PlaceOrder", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, entity.CollaboratorFailure("checkout.find_product", entity.ErrProductNotFound)).Once()

	rec := env.do(http.MethodPost, "/api/checkout", entity.CustomerDetails{Name: "Ana", Email: "ana@example.com"}, cookie)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "collaborator_failure", decodeErr(t, rec).Kind)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.CheckoutsTotal.WithLabelValues("collaborator_failure")))
}

func TestWriteError_HidesBackendMessages(t *testing.T) {
	env := newTestEnv()
	cookie, _ := env.visitorCookie(t)

	backend := errors.New(`(42P01) relation "pedidos" does not exist`)
	env.checkout.On("PlaceOrder", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, entity.CollaboratorFailure("checkout.create_order", backend)).Once()

	rec := env.do(http.MethodPost, "/api/checkout", entity.CustomerDetails{Name: "Ana", Email: "ana@example.com"}, cookie)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	got := decodeErr(t, rec)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), got.Error)
	assert.Equal(t, "collaborator_failure", got.Kind)
	assert.NotContains(t, rec.Body.String(), "pedidos")
}

func TestAuth_Login(t *testing.T) {
	env := newTestEnv()
	cookie, _ := env.visitorCookie(t)
	result := &service.LoginResult{Landing: "admin"}

	env.auth.On("Login", mock.Anything, mock.AnythingOfType("*service.SessionManager"), "ana@example.com", "Secreto1!", entity.PortalEmployee).
		Return(result, nil).Once()

	rec := env.do(http.MethodPost, "/api/auth/login", loginRequest{Email: "ana@example.com", Password: "Secreto1!", Portal: "empleado"}, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"landing":"admin"`)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.LoginsTotal.WithLabelValues("empleado", "ok")))
	env.auth.AssertExpectations(t)
}

func TestAuth_LoginDenied(t *testing.T) {
	env := newTestEnv()
	cookie, _ := env.visitorCookie(t)

	env.auth.On("Login", mock.Anything, mock.Anything, "ana@example.com", "Secreto1!", entity.PortalAdmin).
		Return(nil, entity.NewError(entity.KindForbidden, "auth.login", entity.ErrPortalDenied)).Once()

	rec := env.do(http.MethodPost, "/api/auth/login", loginRequest{Email: "ana@example.com", Password: "Secreto1!", Portal: "admin"}, cookie)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.LoginsTotal.WithLabelValues("admin", "forbidden")))
}

func TestAuth_LoginUnknownPortal(t *testing.T) {
	env := newTestEnv()
	cookie, _ := env.visitorCookie(t)

	rec := env.do(http.MethodPost, "/api/auth/login", loginRequest{Email: "ana@example.com", Password: "x", Portal: "proveedor"}, cookie)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuth_SessionAndLogout(t *testing.T) {
	env := newTestEnv()
	cookie, id := env.visitorCookie(t)

	rec := env.do(http.MethodGet, "/api/auth/session", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"authenticated":false,"canAccessAdminPanel":false}`, rec.Body.String())

	visitor := env.visitors.Get(context.Background(), id)
	_, err := visitor.Session.Login(context.Background(), entity.Identity{UserID: "u-1", Email: "admin@example.com", Role: entity.RoleAdministrator})
	require.NoError(t, err)

	rec = env.do(http.MethodGet, "/api/auth/session", nil, cookie)
	var resp sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Authenticated)
	assert.True(t, resp.CanAccessAdminPanel)
	require.NotNil(t, resp.Session)
	assert.Equal(t, entity.RoleAdministrator, resp.Session.Role)

	env.auth.On("Logout", mock.Anything, visitor.Session).Return().Once()
	rec = env.do(http.MethodPost, "/api/auth/logout", nil, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	env.auth.AssertExpectations(t)
}

func TestAuth_Register(t *testing.T) {
	env := newTestEnv()
	in := entity.RegisterInput{Email: "ana@example.com", Password: "Secreto1!", ConfirmPassword: "Secreto1!", FirstName: "Ana", LastName: "Torres"}

	env.auth.On("Register", mock.Anything, in).
		Return(&entity.User{ID: "u-9", Email: in.Email, FirstName: "Ana", LastName: "Torres", Role: entity.RoleCustomer, PasswordHash: "hash"}, nil).Once()

	rec := env.do(http.MethodPost, "/api/auth/register", in, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"u-9","email":"ana@example.com","firstName":"Ana","lastName":"Torres","role":"cliente"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestAuth_RegisterConflict(t *testing.T) {
	env := newTestEnv()

	env.auth.On("Register", mock.Anything, mock.Anything).
		Return(nil, entity.NewError(entity.KindConflict, "auth.register", entity.ErrEmailTaken)).Once()

	rec := env.do(http.MethodPost, "/api/auth/register", entity.RegisterInput{Email: "ana@example.com"}, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, entity.ErrEmailTaken.Error(), decodeErr(t, rec).Error)
}

func TestAuth_PasswordStrength(t *testing.T) {
	env := newTestEnv()

	rec := env.do(http.MethodPost, "/api/auth/password-strength", strengthRequest{Password: "Secreto1!"}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"strength":"strong","score":5}`, rec.Body.String())
}

func TestCatalog_ListByCategory(t *testing.T) {
	env := newTestEnv()
	products := []entity.Product{{ID: 1, Name: "Torta de chocolate", Price: decimal.RequireFromString("35.00")}}

	env.catalog.On("ListProducts", mock.Anything, mock.MatchedBy(func(id *int64) bool {
		return id != nil && *id == 3
	})).Return(products, nil).Once()

	rec := env.do(http.MethodGet, "/api/products?category=3", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []entity.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Torta de chocolate", got[0].Name)
	assert.Empty(t, rec.Result().Cookies())
}

func TestCatalog_BadCategory(t *testing.T) {
	env := newTestEnv()

	rec := env.do(http.MethodGet, "/api/products?category=zero", nil, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalog_SearchFeaturedCategories(t *testing.T) {
	env := newTestEnv()

	env.catalog.On("Search", mock.Anything, "torta").Return([]entity.Product{{ID: 2}}, nil).Once()
	env.catalog.On("Featured", mock.Anything).Return([]entity.Product{{ID: 3}}, nil).Once()
	env.catalog.On("Categories", mock.Anything).Return([]entity.Category{{ID: 1, Name: "Tortas"}}, nil).Once()

	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/products/search?q=torta", nil, nil).Code)
	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/products/featured", nil, nil).Code)
	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/categories", nil, nil).Code)
	env.catalog.AssertExpectations(t)
}

func TestCatalog_GetProductNotFound(t *testing.T) {
	env := newTestEnv()

	env.catalog.On("GetProduct", mock.Anything, int64(7)).
		Return(nil, entity.NewError(entity.KindNotFound, "catalog.get_product", entity.ErrProductNotFound)).Once()

	rec := env.do(http.MethodGet, "/api/products/7", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeErr(t, rec).Kind)
}

func TestAdmin_Unauthenticated(t *testing.T) {
	env := newTestEnv()
	cookie, _ := env.visitorCookie(t)

	env.admin.On("Dashboard", mock.Anything, mock.Anything).
		Return(nil, entity.NewError(entity.KindUnauthenticated, "admin.dashboard", entity.ErrNotAuthenticated)).Once()

	rec := env.do(http.MethodGet, "/api/admin/dashboard", nil, cookie)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdmin_ProductCRUD(t *testing.T) {
	env := newTestEnv()
	cookie, _ := env.visitorCookie(t)
	input := entity.ProductInput{Name: "Pie de limon", Price: decimal.RequireFromString("28.00"), Stock: 4, Available: true}

	env.admin.On("CreateProduct", mock.Anything, mock.Anything, mock.MatchedBy(func(in entity.ProductInput) bool {
		return in.Name == "Pie de limon" && in.Price.Equal(decimal.NewFromInt(28))
	})).Return(&entity.Product{ID: 12, Name: "Pie de limon"}, nil).Once()
	env.admin.On("UpdateProduct", mock.Anything, mock.Anything, int64(12), mock.Anything).
		Return(&entity.Product{ID: 12, Name: "Pie de limon"}, nil).Once()
	env.admin.On("DeleteProduct", mock.Anything, mock.Anything, int64(12)).Return(nil).Once()
	env.admin.On("GetOrder", mock.Anything, mock.Anything, int64(41)).
		Return(&entity.Order{Header: entity.OrderHeader{ID: 41}}, nil).Once()

	assert.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/api/admin/products", input, cookie).Code)
	assert.Equal(t, http.StatusOK, env.do(http.MethodPut, "/api/admin/products/12", input, cookie).Code)
	assert.Equal(t, http.StatusNoContent, env.do(http.MethodDelete, "/api/admin/products/12", nil, cookie).Code)
	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/admin/orders/41", nil, cookie).Code)
	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodDelete, "/api/admin/products/-1", nil, cookie).Code)
	env.admin.AssertExpectations(t)
}

func multipartImage(t *testing.T, field, name string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestAdmin_UploadImage(t *testing.T) {
	env := newTestEnv()
	cookie, _ := env.visitorCookie(t)
	data := []byte("\x89PNG\r\n\x1a\nfake")

	env.admin.On("UploadProductImage", mock.Anything, mock.Anything, "torta.png", data).
		Return("http://s3.local/product-images/products/abc.png", nil).Once()

	body, contentType := multipartImage(t, imageFormField, "torta.png", data)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/products/images", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"url":"http://s3.local/product-images/products/abc.png"}`, rec.Body.String())
}

func TestAdmin_UploadImageRejected(t *testing.T) {
	env := newTestEnv()
	cookie, _ := env.visitorCookie(t)

	t.Run("wrong field", func(t *testing.T) {
		body, contentType := multipartImage(t, "file", "torta.png", []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/api/admin/products/images", body)
		req.Header.Set("Content-Type", contentType)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("too large", func(t *testing.T) {
		body, contentType := multipartImage(t, imageFormField, "big.png", bytes.Repeat([]byte("a"), 4<<10))
		req := httptest.NewRequest(http.MethodPost, "/api/admin/products/images", body)
		req.Header.Set("Content-Type", contentType)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	env.admin.AssertNotCalled(t, "UploadProductImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHealthAndMetrics(t *testing.T) {
	env := newTestEnv()

	rec := env.do(http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	env.do(http.MethodGet, "/api/cart", nil, nil)
	rec = env.do(http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_http_request_duration_seconds")
	assert.Contains(t, rec.Body.String(), `route="/api/cart"`)
}

func TestHealth_Failing(t *testing.T) {
	env := newTestEnv()
	deps := RouterDeps{
		Catalog:  env.catalog,
		Visitors: env.visitors,
		Tokens:   env.tokens,
		Health:   func(ctx context.Context) error { return errors.New("supabase down") },
		Log:      testLogger(),
	}
	router := NewRouter(deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{entity.InvalidArgument("op", errors.New("x")), http.StatusBadRequest},
		{entity.StorageUnavailable("op", errors.New("x")), http.StatusServiceUnavailable},
		{entity.CollaboratorFailure("op", errors.New("x")), http.StatusBadGateway},
		{entity.NewError(entity.KindNotFound, "op", errors.New("x")), http.StatusNotFound},
		{entity.NewError(entity.KindUnauthenticated, "op", errors.New("x")), http.StatusUnauthorized},
		{entity.NewError(entity.KindForbidden, "op", errors.New("x")), http.StatusForbidden},
		{entity.NewError(entity.KindConflict, "op", errors.New("x")), http.StatusConflict},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusForError(tt.err), tt.err.Error())
	}
}
