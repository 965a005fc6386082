package service

import (
	"context"
	"time"

	"github.com/pawtag/order-service/internal/entities"
	"github.com/pawtag/order-service/internal/shipping"
	"github.com/pawtag/order-service/internal/status"
)

type OrderRepo interface {
	// SaveOrder writes the order and its items. A colliding order number
	// yields entities.ErrOrderNoTaken.
	SaveOrder(ctx context.Context, o entities.Order) error

	// OrderByNo looks the order up by order number, then by internal id.
	// An empty userID matches any buyer.
	OrderByNo(ctx context.Context, userID, key string) (entities.Order, error)
	// LockOrder reads the order row, without items, and holds it for the
	// surrounding transaction.
	LockOrder(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, userID string, limit, offset int) ([]entities.Order, error)
	RecentPendingOrders(ctx context.Context, userID string, since time.Time) ([]entities.Order, error)

	// UpdateStatus moves the order from one status to another and appends a
	// history row. It reports false when the order is no longer in from.
	UpdateStatus(ctx context.Context, orderID string, from, to status.Status, note string, at time.Time) (bool, error)
}

type PaymentRepo interface {
	// UpsertIntent is keyed by (tran_id, provider).
	UpsertIntent(ctx context.Context, intent entities.PaymentIntent) error
	FailIntents(ctx context.Context, orderID, provider string, at time.Time) error
	IntentsByOrder(ctx context.Context, orderID string) ([]entities.PaymentIntent, error)
	// SaveManualPayment yields entities.ErrDuplicateTransactionRef when the
	// (method, trx_id) pair was already submitted.
	SaveManualPayment(ctx context.Context, p entities.ManualPayment) error
}

type Catalog interface {
	Resolve(ctx context.Context, ref entities.ProductRef) (entities.ProductResolution, error)
}

type Accounts interface {
	Buyer(ctx context.Context, userID string) (entities.Buyer, error)
}

type ShippingQuoter interface {
	Quote(ctx context.Context, req shipping.Request) (shipping.Quote, error)
}

type Gateway interface {
	CreateSession(ctx context.Context, req entities.GatewaySessionRequest) (entities.GatewaySession, error)
	Validate(ctx context.Context, valID string) (entities.GatewayValidation, error)
}

type IdempotencyStore interface {
	// Reserve claims key for userID. When the key is already claimed it
	// returns the order number recorded for it, empty while in progress.
	Reserve(ctx context.Context, userID, key string) (orderNo string, reserved bool, err error)
	Complete(ctx context.Context, userID, key, orderNo string) error
	Release(ctx context.Context, userID, key string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, events []entities.OrderEvent) error
}
