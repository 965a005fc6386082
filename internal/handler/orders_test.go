package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pawtag/order-service/internal/entities"
	"github.com/pawtag/order-service/internal/handler"
	mocks "github.com/pawtag/order-service/internal/handler/mocks"
	"github.com/pawtag/order-service/internal/middleware"
	"github.com/pawtag/order-service/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testAuth trusts X-User and X-Role headers in place of a bearer token.
func testAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-User")
		if id == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		ctx := middleware.WithUser(r.Context(), middleware.User{ID: id, Role: r.Header.Get("X-Role")})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type request struct {
	method string
	path   string
	body   string
	header map[string]string
}

func serve(t *testing.T, router http.Handler, req request) (*http.Response, string) {
	t.Helper()
	var body io.Reader
	if req.body != "" {
		body = strings.NewReader(req.body)
	}
	r := httptest.NewRequest(req.method, req.path, body)
	for k, v := range req.header {
		r.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, r)

	res := rr.Result()
	t.Cleanup(func() { res.Body.Close() })
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(raw)
}

func buyer() map[string]string { return map[string]string{"X-User": "user-1"} }

func sampleOrder() entities.Order {
	at := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	return entities.Order{
		ID:          "order-1",
		OrderNo:     "PT260314ABCDEF123456",
		UserID:      "user-1",
		Status:      status.Pending,
		Currency:    "BDT",
		Subtotal:    2200,
		ShippingFee: 100,
		Total:       2300,
		WeightGrams: 1400,
		Destination: entities.Destination{Address: "House 4, Road 2, Dhaka 1209", PostalCode: "1209"},
		Items: []entities.OrderItem{
			{ProductID: "prod-a", Name: "Collar", UnitPrice: 500, Quantity: 2, WeightGrams: 400, LineTotal: 1000},
			{ProductID: "prod-b", Name: "Tag", UnitPrice: 1200, Quantity: 1, WeightGrams: 1000, LineTotal: 1200},
		},
		ExpiresAt: at.Add(5 * time.Minute),
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func newOrderRouter(svc *mocks.MockOrderService) http.Handler {
	r := chi.NewRouter()
	handler.NewOrderHandler(discardLogger(), testAuth, svc).Init(r)
	return r
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	validBody := `{"items":[{"product_id":"prod-a","quantity":2},{"sku":"TAG-1","quantity":1}],"shipping":{"address":"House 4, Road 2, Dhaka 1209"},"contact":{"name":"Rafi"}}`

	testCases := []struct {
		name         string
		body         string
		header       map[string]string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created",
			body: validBody,
			header: map[string]string{
				"X-User":          "user-1",
				"Idempotency-Key": "checkout-42",
			},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, entities.CreateOrderInput{
						UserID: "user-1",
						Items: []entities.LineRequest{
							{Ref: entities.ProductRef{ProductID: "prod-a"}, Quantity: 2},
							{Ref: entities.ProductRef{SKU: "TAG-1"}, Quantity: 1},
						},
						Destination:    entities.Destination{Address: "House 4, Road 2, Dhaka 1209"},
						Contact:        entities.Contact{Name: "Rafi"},
						IdempotencyKey: "checkout-42",
					}).
					Return(sampleOrder(), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"order_no":"PT260314ABCDEF123456"`,
		},
		{
			name:       "unauthenticated",
			body:       validBody,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed json",
			body:       `{"items":`,
			header:     buyer(),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid_request"`,
		},
		{
			name:       "unknown field",
			body:       `{"items":[],"shipping":{"address":"x"},"total":1}`,
			header:     buyer(),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing address",
			body:       `{"items":[{"product_id":"prod-a","quantity":1}],"shipping":{}}`,
			header:     buyer(),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Address":"required"`,
		},
		{
			name:       "line without product",
			body:       `{"items":[{"quantity":1}],"shipping":{"address":"x"}}`,
			header:     buyer(),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"ProductID":"required_without"`,
		},
		{
			name:       "quantity too large",
			body:       `{"items":[{"product_id":"prod-a","quantity":5000000000}],"shipping":{"address":"x"}}`,
			header:     buyer(),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Quantity":"max"`,
		},
		{
			name:       "zero quantity",
			body:       `{"items":[{"product_id":"prod-a","quantity":0}],"shipping":{"address":"x"}}`,
			header:     buyer(),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Quantity":"min"`,
		},
		{
			name:   "no items",
			body:   `{"items":[],"shipping":{"address":"Dhaka"}}`,
			header: buyer(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.Order{}, entities.ErrNoItems).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"kind":"no_items"`,
		},
		{
			name:   "product unavailable",
			body:   validBody,
			header: buyer(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrProductUnavailable.With(map[string]any{"products": []string{"TAG-1"}})).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"details":{"products":["TAG-1"]}`,
		},
		{
			name:   "key in progress",
			body:   validBody,
			header: buyer(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.Order{}, entities.ErrDuplicateRequest).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"kind":"duplicate_request"`,
		},
		{
			name:   "no zones",
			body:   validBody,
			header: buyer(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.Order{}, entities.ErrNoZonesConfigured).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"kind":"configuration"`,
		},
		{
			name:   "internal error",
			body:   validBody,
			header: buyer(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			res, body := serve(t, newOrderRouter(svc), request{method: http.MethodPost, path: "/api/v1/orders", body: tc.body, header: tc.header})

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
			assert.NotContains(t, body, "db error")
		})
	}
}

func TestOrderHandler_CreateOrder_Response(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(sampleOrder(), nil).Once()

	res, body := serve(t, newOrderRouter(svc), request{
		method: http.MethodPost,
		path:   "/api/v1/orders",
		body:   `{"items":[{"product_id":"prod-a","quantity":2}],"shipping":{"address":"Dhaka 1209"}}`,
		header: buyer(),
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var got handler.Order
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "PENDING", got.Status)
	assert.EqualValues(t, 2200, got.Subtotal)
	assert.EqualValues(t, 100, got.ShippingFee)
	assert.EqualValues(t, 2300, got.Total)
	assert.Len(t, got.Items, 2)
	assert.Nil(t, got.Contact)
	assert.Equal(t, "1209", got.Shipping.PostalCode)
}

func TestOrderHandler_GetOrder(t *testing.T) {
	testCases := []struct {
		name         string
		orderNo      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "found",
			orderNo: "PT260314ABCDEF123456",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByNo(mock.Anything, "user-1", "PT260314ABCDEF123456").Return(sampleOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":2300`,
		},
		{
			name:    "not found",
			orderNo: "PT-missing",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByNo(mock.Anything, "user-1", "PT-missing").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order_not_found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			res, body := serve(t, newOrderRouter(svc), request{method: http.MethodGet, path: "/api/v1/orders/" + tc.orderNo, header: buyer()})

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "defaults",
			query: "",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListOrdersForUser(mock.Anything, "user-1", 0, 0).Return([]entities.Order{sampleOrder()}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"orders":[{"order_no":"PT260314ABCDEF123456"`,
		},
		{
			name:  "paged and empty",
			query: "?limit=5&offset=10",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListOrdersForUser(mock.Anything, "user-1", 5, 10).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"orders":[]}`,
		},
		{
			name:       "bad limit",
			query:      "?limit=ten",
			wantStatus: http.StatusBadRequest,
			wantBody:   "limit must be a non-negative integer",
		},
		{
			name:       "negative offset",
			query:      "?offset=-1",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			res, body := serve(t, newOrderRouter(svc), request{method: http.MethodGet, path: "/api/v1/orders" + tc.query, header: buyer()})

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrderHandler_SetTrackingStatus(t *testing.T) {
	admin := map[string]string{"X-User": "admin-1", "X-Role": middleware.RoleAdmin}

	testCases := []struct {
		name         string
		body         string
		header       map[string]string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "shipped",
			body:   `{"status":"shipped","note":"handed to courier"}`,
			header: admin,
			mockBehavior: func(svc *mocks.MockOrderService) {
				o := sampleOrder()
				o.Status = status.Shipped
				svc.EXPECT().SetTrackingStatus(mock.Anything, "PT1", status.Shipped, "handed to courier").Return(o, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"SHIPPED"`,
		},
		{
			name:       "buyer forbidden",
			body:       `{"status":"SHIPPED"}`,
			header:     buyer(),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unknown status",
			body:       `{"status":"LOST"}`,
			header:     admin,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"status":"LOST"`,
		},
		{
			name:   "invalid transition",
			body:   `{"status":"DELIVERED"}`,
			header: admin,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().SetTrackingStatus(mock.Anything, "PT1", status.Delivered, "").
					Return(entities.Order{}, status.Assert(status.Pending, status.Delivered)).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"allowed":["PAYMENT_UNDER_REVIEW","PAYMENT_VERIFIED","FAILED","EXPIRED","CANCELLED"]`,
		},
		{
			name:   "lost race",
			body:   `{"status":"PROCESSING"}`,
			header: admin,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().SetTrackingStatus(mock.Anything, "PT1", status.Processing, "").
					Return(entities.Order{}, entities.ErrStatusConflict).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"status_conflict"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			res, body := serve(t, newOrderRouter(svc), request{
				method: http.MethodPatch, path: "/api/v1/admin/orders/PT1/status", body: tc.body, header: tc.header,
			})

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}
