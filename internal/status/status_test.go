package status_test

import (
	"errors"
	"testing"

	"github.com/pawtag/order-service/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adjacency is maintained by hand on purpose: it must not be derived from the
// table it is checking.
var adjacency = map[status.Status]map[status.Status]bool{
	status.Pending: {
		status.PaymentUnderReview: true,
		status.PaymentVerified:    true,
		status.Failed:             true,
		status.Expired:            true,
		status.Cancelled:          true,
	},
	status.PaymentUnderReview: {
		status.PaymentVerified: true,
		status.Failed:          true,
		status.Cancelled:       true,
	},
	status.PaymentVerified: {
		status.Processing: true,
		status.Cancelled:  true,
	},
	status.Processing: {
		status.Shipped:   true,
		status.Cancelled: true,
	},
	status.Shipped: {
		status.Delivered: true,
	},
	status.Failed: {
		status.Pending:   true,
		status.Cancelled: true,
	},
	status.Delivered: {},
	status.Expired:   {},
	status.Cancelled: {},
}

func TestIsValidTransition_MatchesAdjacency(t *testing.T) {
	for _, from := range status.All {
		for _, to := range status.All {
			want := from == to || adjacency[from][to]
			assert.Equal(t, want, status.IsValidTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTerminalStates(t *testing.T) {
	for _, s := range []status.Status{status.Delivered, status.Expired, status.Cancelled} {
		assert.Empty(t, status.Next(s), s)
		assert.True(t, s.Terminal(), s)
	}
	assert.False(t, status.Failed.Terminal())
	assert.ElementsMatch(t, []status.Status{status.Pending, status.Cancelled}, status.Next(status.Failed))
}

func TestAssert(t *testing.T) {
	require.NoError(t, status.Assert(status.Pending, status.PaymentVerified))
	require.NoError(t, status.Assert(status.Shipped, status.Shipped))

	err := status.Assert(status.Shipped, status.Pending)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrInvalidTransition))

	var te *status.TransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, status.Shipped, te.From)
	assert.Equal(t, status.Pending, te.To)
	assert.Equal(t, []status.Status{status.Delivered}, te.Allowed)
}

func TestUnknownStatus(t *testing.T) {
	assert.False(t, status.IsValidTransition("BOGUS", "BOGUS"))
	assert.False(t, status.IsValidTransition(status.Pending, "BOGUS"))

	_, err := status.Parse("bogus")
	assert.Error(t, err)

	s, err := status.Parse(" shipped ")
	require.NoError(t, err)
	assert.Equal(t, status.Shipped, s)
}

func TestNextReturnsCopy(t *testing.T) {
	next := status.Next(status.Pending)
	next[0] = status.Delivered
	assert.Equal(t, status.PaymentUnderReview, status.Next(status.Pending)[0])
}

func TestPredicates(t *testing.T) {
	for _, s := range status.All {
		assert.Equal(t, s == status.Pending || s == status.Failed, status.CanAcceptPayment(s), s)
		assert.Equal(t, s == status.Pending, status.CanExpire(s), s)
	}
	assert.Equal(t, []status.Status{status.Pending}, status.Expirable())
}

func TestRoute(t *testing.T) {
	testCases := []struct {
		name    string
		from    status.Status
		to      status.Status
		want    []status.Status
		wantErr bool
	}{
		{name: "direct", from: status.Pending, to: status.PaymentVerified, want: []status.Status{status.PaymentVerified}},
		{name: "same state", from: status.PaymentVerified, to: status.PaymentVerified, want: nil},
		{name: "failed retries through pending", from: status.Failed, to: status.PaymentUnderReview, want: []status.Status{status.Pending, status.PaymentUnderReview}},
		{name: "failed to verified", from: status.Failed, to: status.PaymentVerified, want: []status.Status{status.Pending, status.PaymentVerified}},
		{name: "under review to under review is a no-op route", from: status.PaymentUnderReview, to: status.PaymentUnderReview, want: nil},
		{name: "expired is terminal", from: status.Expired, to: status.PaymentVerified, wantErr: true},
		{name: "verified cannot fail", from: status.PaymentVerified, to: status.Failed, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := status.Route(tc.from, tc.to)
			if tc.wantErr {
				assert.ErrorIs(t, err, status.ErrInvalidTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
