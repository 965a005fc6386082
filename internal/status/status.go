// Package status holds the order lifecycle graph. Every status write in the
// service goes through this table; callers never compare statuses ad hoc.
package status

import (
	"errors"
	"fmt"
	"strings"
)

type Status string

const (
	Pending            Status = "PENDING"
	PaymentUnderReview Status = "PAYMENT_UNDER_REVIEW"
	PaymentVerified    Status = "PAYMENT_VERIFIED"
	Processing         Status = "PROCESSING"
	Shipped            Status = "SHIPPED"
	Delivered          Status = "DELIVERED"
	Failed             Status = "FAILED"
	Expired            Status = "EXPIRED"
	Cancelled          Status = "CANCELLED"
)

// All lists states in lifecycle order.
var All = []Status{
	Pending,
	PaymentUnderReview,
	PaymentVerified,
	Processing,
	Shipped,
	Delivered,
	Failed,
	Expired,
	Cancelled,
}

var transitions = map[Status][]Status{
	Pending:            {PaymentUnderReview, PaymentVerified, Failed, Expired, Cancelled},
	PaymentUnderReview: {PaymentVerified, Failed, Cancelled},
	PaymentVerified:    {Processing, Cancelled},
	Processing:         {Shipped, Cancelled},
	Shipped:            {Delivered},
	Failed:             {Pending, Cancelled},
	Delivered:          {},
	Expired:            {},
	Cancelled:          {},
}

var ErrInvalidTransition = errors.New("invalid status transition")

// TransitionError reports an unreachable target together with what is reachable.
type TransitionError struct {
	From    Status
	To      Status
	Allowed []Status
}

func (e *TransitionError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		allowed[i] = string(s)
	}
	return fmt.Sprintf("cannot move order from %s to %s (allowed: [%s])", e.From, e.To, strings.Join(allowed, ", "))
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) Terminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

// Parse accepts status names case-insensitively.
func Parse(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown order status %q", raw)
	}
	return s, nil
}

// Next returns a copy of the states reachable from s in one step.
func Next(s Status) []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// IsValidTransition reports whether from -> to is allowed. Moving to the same
// state is always a valid no-op for known states.
func IsValidTransition(from, to Status) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func Assert(from, to Status) error {
	if IsValidTransition(from, to) {
		return nil
	}
	return &TransitionError{From: from, To: to, Allowed: Next(from)}
}

// Route returns the steps that move an order from -> to. A FAILED order that
// has no direct edge to the target goes back through PENDING first.
// An empty route means from == to.
func Route(from, to Status) ([]Status, error) {
	if from == to && from.Valid() {
		return nil, nil
	}
	if IsValidTransition(from, to) {
		return []Status{to}, nil
	}
	if from == Failed && IsValidTransition(Failed, Pending) && IsValidTransition(Pending, to) {
		return []Status{Pending, to}, nil
	}
	return nil, Assert(from, to)
}

func CanAcceptPayment(s Status) bool {
	return s == Pending || s == Failed
}

func CanExpire(s Status) bool {
	return s == Pending
}

// Expirable lists every state the sweeper may expire.
func Expirable() []Status {
	var out []Status
	for _, s := range All {
		if CanExpire(s) {
			out = append(out, s)
		}
	}
	return out
}
