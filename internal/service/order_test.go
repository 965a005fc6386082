package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pawtag/order-service/internal/entities"
	"github.com/pawtag/order-service/internal/service"
	mocks "github.com/pawtag/order-service/internal/service/mocks"
	"github.com/pawtag/order-service/internal/shipping"
	"github.com/pawtag/order-service/internal/status"
	txMocks "github.com/pawtag/order-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderEngine interface {
	CreateOrder(ctx context.Context, in entities.CreateOrderInput) (entities.Order, error)
	GetOrderByNo(ctx context.Context, userID, key string) (entities.Order, error)
	ListOrdersForUser(ctx context.Context, userID string, limit, offset int) ([]entities.Order, error)
	SetTrackingStatus(ctx context.Context, orderNo string, to status.Status, note string) (entities.Order, error)
}

var (
	productA = entities.Product{ID: "prod-a", SKU: "TAG-STEEL", Name: "Steel tag", Price: 500, WeightGrams: 200}
	productB = entities.Product{ID: "prod-b", SKU: "COLLAR-M", Name: "Collar", Price: 1200, WeightGrams: 1000}

	zoneZ = entities.ShippingZone{ID: "zone-z", Name: "Dhaka city", BaseFee: 60, PerKgFee: 20, HomeDelivery: true, PostalPrefixes: []string{"12"}}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type orderFixture struct {
	store   *memStore
	clock   *clock
	catalog *mocks.MockCatalog
	idem    *mocks.MockIdempotencyStore
	events  *mocks.MockEventPublisher
	svc     orderEngine
}

func newOrderFixture(t *testing.T) *orderFixture {
	return newOrderFixtureWithZones(t, shipping.StaticZones{zoneZ})
}

func newOrderFixtureWithZones(t *testing.T, zones shipping.StaticZones) *orderFixture {
	t.Helper()

	f := &orderFixture{
		store:   newMemStore(),
		clock:   newClock(),
		catalog: mocks.NewMockCatalog(t),
		idem:    mocks.NewMockIdempotencyStore(t),
		events:  mocks.NewMockEventPublisher(t),
	}

	products := map[string]entities.Product{productA.ID: productA, productB.ID: productB}
	f.catalog.EXPECT().
		Resolve(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, ref entities.ProductRef) (entities.ProductResolution, error) {
			if p, ok := products[ref.ProductID]; ok {
				return entities.Found(p), nil
			}
			for _, p := range products {
				if ref.ProductID == "" && p.SKU == ref.SKU {
					return entities.Found(p), nil
				}
			}
			return entities.NotFound(), nil
		}).Maybe()
	f.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	calc := shipping.NewCalculator(zones)
	f.svc = service.NewOrderService(discardLogger(), f.store, f.store, f.catalog, calc, f.idem, f.events,
		service.Options{Now: f.clock.Now})
	return f
}

func sampleInput() entities.CreateOrderInput {
	return entities.CreateOrderInput{
		UserID: "user-1",
		Items: []entities.LineRequest{
			{Ref: entities.ProductRef{ProductID: "prod-a"}, Quantity: 2},
			{Ref: entities.ProductRef{ProductID: "prod-b"}, Quantity: 1},
		},
		Destination: entities.Destination{Address: "House 4, Road 2, Dhanmondi, Dhaka 1209", District: "Dhaka"},
		Contact:     entities.Contact{Name: "Nadia", Phone: "01700000000"},
	}
}

func TestOrderService_CreateOrder_Totals(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.CreateOrder(context.Background(), sampleInput())
	require.NoError(t, err)

	assert.Equal(t, int64(2200), order.Subtotal)
	assert.Equal(t, int64(100), order.ShippingFee)
	assert.Equal(t, int64(2300), order.Total)
	assert.Equal(t, order.Subtotal+order.ShippingFee, order.Total)
	assert.Equal(t, int64(1400), order.WeightGrams)
	assert.Equal(t, "zone-z", order.ZoneID)
	assert.True(t, order.HomeDelivery)
	assert.Equal(t, "1209", order.Destination.PostalCode)
	assert.Equal(t, status.Pending, order.Status)
	assert.Equal(t, "BDT", order.Currency)
	assert.Equal(t, f.clock.Now().Add(5*time.Minute), order.ExpiresAt)
	assert.Regexp(t, `^PT260314[0-9A-F]{12}$`, order.OrderNo)

	require.Len(t, order.Items, 2)
	assert.Equal(t, entities.OrderItem{
		ID: order.Items[0].ID, OrderID: order.ID, ProductID: "prod-a", Name: "Steel tag", SKU: "TAG-STEEL",
		UnitPrice: 500, Quantity: 2, WeightGrams: 400, LineTotal: 1000,
	}, order.Items[0])
	assert.Equal(t, int64(1200), order.Items[1].LineTotal)

	stored, err := f.store.OrderByNo(context.Background(), "user-1", order.OrderNo)
	require.NoError(t, err)
	assert.Equal(t, order.Total, stored.Total)
	assert.Len(t, stored.Items, 2)
}

func TestOrderService_CreateOrder_Dedup(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	first, err := f.svc.CreateOrder(ctx, sampleInput())
	require.NoError(t, err)

	f.clock.advance(time.Minute)

	reordered := sampleInput()
	reordered.Items[0], reordered.Items[1] = reordered.Items[1], reordered.Items[0]
	second, err := f.svc.CreateOrder(ctx, reordered)
	require.NoError(t, err)
	assert.Equal(t, first.OrderNo, second.OrderNo)
	assert.Equal(t, 1, f.store.orderCount())

	changed := sampleInput()
	changed.Items[0].Quantity = 3
	third, err := f.svc.CreateOrder(ctx, changed)
	require.NoError(t, err)
	assert.NotEqual(t, first.OrderNo, third.OrderNo)

	f.clock.advance(5 * time.Minute)
	late, err := f.svc.CreateOrder(ctx, sampleInput())
	require.NoError(t, err)
	assert.NotEqual(t, first.OrderNo, late.OrderNo)
	assert.Equal(t, 3, f.store.orderCount())
}

func TestOrderService_CreateOrder_DedupIgnoresNonPending(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	first, err := f.svc.CreateOrder(ctx, sampleInput())
	require.NoError(t, err)
	f.store.setStatus(first.ID, status.PaymentUnderReview)

	second, err := f.svc.CreateOrder(ctx, sampleInput())
	require.NoError(t, err)
	assert.NotEqual(t, first.OrderNo, second.OrderNo)
}

func TestOrderService_CreateOrder_DedupIgnoresExpired(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	svc := service.NewOrderService(discardLogger(), f.store, f.store, f.catalog,
		shipping.NewCalculator(shipping.StaticZones{zoneZ}), f.idem, f.events,
		service.Options{Now: f.clock.Now, OrderTTL: 2 * time.Minute, DedupWindow: 5 * time.Minute})

	first, err := svc.CreateOrder(ctx, sampleInput())
	require.NoError(t, err)

	f.clock.advance(3 * time.Minute)
	second, err := svc.CreateOrder(ctx, sampleInput())
	require.NoError(t, err)
	assert.NotEqual(t, first.OrderNo, second.OrderNo)
	assert.True(t, f.clock.Now().Before(second.ExpiresAt))
	assert.Equal(t, 2, f.store.orderCount())
}

func TestOrderService_CreateOrder_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		noZones bool
		input   func() entities.CreateOrderInput
		wantErr error
		details map[string]any
	}{
		{
			name:    "no items",
			input:   func() entities.CreateOrderInput { in := sampleInput(); in.Items = nil; return in },
			wantErr: entities.ErrNoItems,
		},
		{
			name: "zero quantity",
			input: func() entities.CreateOrderInput {
				in := sampleInput()
				in.Items[1].Quantity = 0
				return in
			},
			wantErr: entities.ErrInvalidRequest,
		},
		{
			name: "unknown products are listed",
			input: func() entities.CreateOrderInput {
				in := sampleInput()
				in.Items = append(in.Items,
					entities.LineRequest{Ref: entities.ProductRef{SKU: "GONE"}, Quantity: 1},
					entities.LineRequest{Ref: entities.ProductRef{ProductID: "prod-x"}, Quantity: 1},
				)
				return in
			},
			wantErr: entities.ErrProductUnavailable,
			details: map[string]any{"products": []string{"GONE", "prod-x"}},
		},
		{
			name:    "no zones configured",
			noZones: true,
			input:   sampleInput,
			wantErr: entities.ErrNoZonesConfigured,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			zones := shipping.StaticZones{zoneZ}
			if tc.noZones {
				zones = nil
			}
			f := newOrderFixtureWithZones(t, zones)

			_, err := f.svc.CreateOrder(context.Background(), tc.input())
			require.ErrorIs(t, err, tc.wantErr)
			if tc.details != nil {
				var de *entities.Error
				require.ErrorAs(t, err, &de)
				assert.Equal(t, tc.details, de.Details)
			}
			assert.Equal(t, 0, f.store.orderCount())
		})
	}
}

func TestOrderService_CreateOrder_CatalogFailure(t *testing.T) {
	store := newMemStore()
	catalog := mocks.NewMockCatalog(t)
	catalogErr := errors.New("catalog down")
	catalog.EXPECT().Resolve(mock.Anything, mock.Anything).Return(entities.ProductResolution{}, catalogErr)

	svc := service.NewOrderService(discardLogger(), store, store, catalog,
		shipping.NewCalculator(shipping.StaticZones{zoneZ}), nil, nil, service.Options{})

	_, err := svc.CreateOrder(context.Background(), sampleInput())
	assert.ErrorIs(t, err, catalogErr)
	assert.Equal(t, 0, store.orderCount())
}

func TestOrderService_CreateOrder_IdempotencyKey(t *testing.T) {
	type MockBehavior func(idem *mocks.MockIdempotencyStore, existing string)

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantExisting bool
		wantErr      error
	}{
		{
			name: "first use completes the key",
			mockBehavior: func(idem *mocks.MockIdempotencyStore, _ string) {
				idem.EXPECT().Reserve(mock.Anything, "user-1", "key-1").Return("", true, nil).Once()
				idem.EXPECT().Complete(mock.Anything, "user-1", "key-1", mock.AnythingOfType("string")).Return(nil).Once()
			},
		},
		{
			name: "replay returns the recorded order",
			mockBehavior: func(idem *mocks.MockIdempotencyStore, existing string) {
				idem.EXPECT().Reserve(mock.Anything, "user-1", "key-1").Return(existing, false, nil).Once()
			},
			wantExisting: true,
		},
		{
			name: "in progress",
			mockBehavior: func(idem *mocks.MockIdempotencyStore, _ string) {
				idem.EXPECT().Reserve(mock.Anything, "user-1", "key-1").Return("", false, nil).Once()
			},
			wantErr: entities.ErrDuplicateRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newOrderFixture(t)
			existing := entities.Order{ID: "order-0", OrderNo: "PT260314AAAAAAAAAAAA", UserID: "user-1", Status: status.Pending}
			f.store.put(existing)
			tc.mockBehavior(f.idem, existing.OrderNo)

			in := sampleInput()
			in.IdempotencyKey = "key-1"
			order, err := f.svc.CreateOrder(context.Background(), in)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			if tc.wantExisting {
				assert.Equal(t, existing.OrderNo, order.OrderNo)
				assert.Equal(t, 1, f.store.orderCount())
				return
			}
			assert.NotEqual(t, existing.OrderNo, order.OrderNo)
		})
	}
}

func TestOrderService_CreateOrder_ReleasesKeyOnFailure(t *testing.T) {
	f := newOrderFixture(t)
	f.idem.EXPECT().Reserve(mock.Anything, "user-1", "key-2").Return("", true, nil).Once()
	f.idem.EXPECT().Release(mock.Anything, "user-1", "key-2").Return(nil).Once()

	in := sampleInput()
	in.IdempotencyKey = "key-2"
	in.Items[0].Ref = entities.ProductRef{ProductID: "prod-missing"}

	_, err := f.svc.CreateOrder(context.Background(), in)
	assert.ErrorIs(t, err, entities.ErrProductUnavailable)
}

func TestOrderService_CreateOrder_SettlesKeyAfterCancel(t *testing.T) {
	tests := []struct {
		name    string
		product string
		wantErr error
	}{
		{name: "release after failure", product: "prod-missing", wantErr: entities.ErrProductUnavailable},
		{name: "complete after success", product: "prod-a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			f.idem.EXPECT().Reserve(mock.Anything, "user-1", "key-3").
				RunAndReturn(func(context.Context, string, string) (string, bool, error) {
					cancel()
					return "", true, nil
				}).Once()
			settled := func(ctx context.Context) {
				assert.NoError(t, ctx.Err())
				_, ok := ctx.Deadline()
				assert.True(t, ok)
			}
			if tt.wantErr != nil {
				f.idem.EXPECT().Release(mock.Anything, "user-1", "key-3").
					Run(func(ctx context.Context, _, _ string) { settled(ctx) }).
					Return(nil).Once()
			} else {
				f.idem.EXPECT().Complete(mock.Anything, "user-1", "key-3", mock.Anything).
					Run(func(ctx context.Context, _, _, _ string) { settled(ctx) }).
					Return(nil).Once()
			}

			in := sampleInput()
			in.IdempotencyKey = "key-3"
			in.Items = in.Items[:1]
			in.Items[0].Ref = entities.ProductRef{ProductID: tt.product}

			_, err := f.svc.CreateOrder(ctx, in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_CreateOrder_QuantityLimit(t *testing.T) {
	f := newOrderFixture(t)

	in := sampleInput()
	in.Items[0].Quantity = 1_000_000
	_, err := f.svc.CreateOrder(context.Background(), in)
	assert.ErrorIs(t, err, entities.ErrInvalidRequest)
	assert.Zero(t, f.store.orderCount())

	in.Items[0].Quantity = 1000
	_, err = f.svc.CreateOrder(context.Background(), in)
	assert.NoError(t, err)
}

func TestOrderService_ListOrdersForUser(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	base := f.clock.Now()
	for i, id := range []string{"o1", "o2", "o3"} {
		f.store.put(entities.Order{ID: id, OrderNo: "PT" + id, UserID: "user-1", Status: status.Pending, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
	}
	f.store.put(entities.Order{ID: "other", OrderNo: "PTother", UserID: "user-2", CreatedAt: base})

	orders, err := f.svc.ListOrdersForUser(ctx, "user-1", 2, 0)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o3", orders[0].ID)
	assert.Equal(t, "o2", orders[1].ID)

	orders, err = f.svc.ListOrdersForUser(ctx, "user-1", 0, 2)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)
}

func TestOrderService_GetOrderByNo(t *testing.T) {
	f := newOrderFixture(t)
	f.store.put(entities.Order{ID: "id-1", OrderNo: "PT1", UserID: "user-1"})

	byNo, err := f.svc.GetOrderByNo(context.Background(), "user-1", "PT1")
	require.NoError(t, err)
	assert.Equal(t, "id-1", byNo.ID)

	byID, err := f.svc.GetOrderByNo(context.Background(), "user-1", "id-1")
	require.NoError(t, err)
	assert.Equal(t, "PT1", byID.OrderNo)

	_, err = f.svc.GetOrderByNo(context.Background(), "user-2", "PT1")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestOrderService_SetTrackingStatus(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo)

	verified := entities.Order{ID: "id-1", OrderNo: "PT1", Status: status.PaymentVerified}
	pending := entities.Order{ID: "id-2", OrderNo: "PT2", Status: status.Pending}
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		orderNo      string
		to           status.Status
		mockBehavior MockBehavior
		wantStatus   status.Status
		wantErr      error
		wantAllowed  []status.Status
	}{
		{
			name:    "OK",
			orderNo: "PT1",
			to:      status.Processing,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().OrderByNo(mock.Anything, "", "PT1").Return(verified, nil).Once()
				orderRepo.EXPECT().
					UpdateStatus(mock.Anything, "id-1", status.PaymentVerified, status.Processing, "packed", mock.Anything).
					Return(true, nil).Once()
			},
			wantStatus: status.Processing,
		},
		{
			name:    "same status is a no-op",
			orderNo: "PT1",
			to:      status.PaymentVerified,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().OrderByNo(mock.Anything, "", "PT1").Return(verified, nil).Once()
			},
			wantStatus: status.PaymentVerified,
		},
		{
			name:    "invalid transition lists allowed states",
			orderNo: "PT2",
			to:      status.Shipped,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().OrderByNo(mock.Anything, "", "PT2").Return(pending, nil).Once()
			},
			wantErr:     status.ErrInvalidTransition,
			wantAllowed: status.Next(status.Pending),
		},
		{
			name:    "lost race",
			orderNo: "PT1",
			to:      status.Processing,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().OrderByNo(mock.Anything, "", "PT1").Return(verified, nil).Once()
				orderRepo.EXPECT().
					UpdateStatus(mock.Anything, "id-1", status.PaymentVerified, status.Processing, mock.Anything, mock.Anything).
					Return(false, nil).Once()
			},
			wantErr: entities.ErrStatusConflict,
		},
		{
			name:    "repo failure",
			orderNo: "PT1",
			to:      status.Processing,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().OrderByNo(mock.Anything, "", "PT1").Return(verified, nil).Once()
				orderRepo.EXPECT().
					UpdateStatus(mock.Anything, "id-1", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(false, dbError).Once()
			},
			wantErr: dbError,
		},
		{
			name:    "not found",
			orderNo: "PT9",
			to:      status.Processing,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().OrderByNo(mock.Anything, "", "PT9").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			events := mocks.NewMockEventPublisher(t)
			tx := txMocks.NewMockManager(t)

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					})
			events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

			tc.mockBehavior(orderRepo)

			svc := service.NewOrderService(discardLogger(), tx, orderRepo, nil, nil, nil, events, service.Options{})

			order, err := svc.SetTrackingStatus(context.Background(), tc.orderNo, tc.to, "packed")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				if tc.wantAllowed != nil {
					var te *status.TransitionError
					require.ErrorAs(t, err, &te)
					assert.Equal(t, tc.wantAllowed, te.Allowed)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, order.Status)
		})
	}
}

func TestOrderService_SetTrackingStatus_UnknownStatus(t *testing.T) {
	svc := service.NewOrderService(discardLogger(), txMocks.NewMockManager(t), mocks.NewMockOrderRepo(t), nil, nil, nil, nil, service.Options{})

	_, err := svc.SetTrackingStatus(context.Background(), "PT1", status.Status("LOST"), "")
	assert.ErrorIs(t, err, entities.ErrInvalidRequest)
}
