package entities

import "errors"

type Kind string

const (
	KindInvalidRequest          Kind = "invalid_request"
	KindNoItems                 Kind = "no_items"
	KindNoItemsToShip           Kind = "no_items_to_ship"
	KindProductUnavailable      Kind = "product_unavailable"
	KindOrderNotFound           Kind = "order_not_found"
	KindOrderNotPayable         Kind = "order_not_payable"
	KindOrderExpired            Kind = "order_expired"
	KindAmountMismatch          Kind = "amount_mismatch"
	KindPaymentNotConfirmed     Kind = "payment_not_confirmed"
	KindTransactionMismatch     Kind = "transaction_mismatch"
	KindDuplicateRequest        Kind = "duplicate_request"
	KindDuplicateTransactionRef Kind = "duplicate_transaction_ref"
	KindStatusConflict          Kind = "status_conflict"
	KindUpstream                Kind = "upstream_failure"
	KindConfiguration           Kind = "configuration"
)

// Error is a domain condition with a stable kind. Two errors match under
// errors.Is when their kinds match, so sentinels survive With and Wrap.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]any

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func (e *Error) With(details map[string]any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

func (e *Error) Wrap(cause error) *Error {
	cp := *e
	cp.cause = cause
	return &cp
}

var (
	ErrInvalidRequest          = &Error{Kind: KindInvalidRequest, Message: "invalid request"}
	ErrNoItems                 = &Error{Kind: KindNoItems, Message: "order must contain at least one item"}
	ErrNoItemsToShip           = &Error{Kind: KindNoItemsToShip, Message: "no items to ship"}
	ErrProductUnavailable      = &Error{Kind: KindProductUnavailable, Message: "one or more products are unavailable"}
	ErrOrderNotFound           = &Error{Kind: KindOrderNotFound, Message: "order not found"}
	ErrOrderNotPayable         = &Error{Kind: KindOrderNotPayable, Message: "order cannot accept payment in its current status"}
	ErrOrderExpired            = &Error{Kind: KindOrderExpired, Message: "order has expired"}
	ErrAmountMismatch          = &Error{Kind: KindAmountMismatch, Message: "paid amount does not match order total"}
	ErrPaymentNotConfirmed     = &Error{Kind: KindPaymentNotConfirmed, Message: "gateway did not confirm the payment"}
	ErrTransactionMismatch     = &Error{Kind: KindTransactionMismatch, Message: "validated transaction does not match callback"}
	ErrDuplicateRequest        = &Error{Kind: KindDuplicateRequest, Message: "request with this idempotency key is still in progress"}
	ErrDuplicateTransactionRef = &Error{Kind: KindDuplicateTransactionRef, Message: "transaction reference was already submitted"}
	ErrStatusConflict          = &Error{Kind: KindStatusConflict, Message: "order status changed concurrently"}
	ErrUpstream                = &Error{Kind: KindUpstream, Message: "payment gateway failure"}
	ErrNoZonesConfigured       = &Error{Kind: KindConfiguration, Message: "no shipping zones configured"}
)

// ErrOrderNoTaken is returned by storage when a generated order number collides.
var ErrOrderNoTaken = errors.New("order number already taken")
