package service_test

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/pawtag/order-service/internal/entities"
	"github.com/pawtag/order-service/internal/service"
	"github.com/pawtag/order-service/internal/status"
	"github.com/pawtag/order-service/pkg/trm"
)

var (
	_ service.OrderRepo   = (*memStore)(nil)
	_ service.PaymentRepo = (*memStore)(nil)
	_ trm.Manager         = (*memStore)(nil)
)

// memStore keeps orders and payments in memory. Do restores the previous
// state when the callback fails, like a rolled back transaction.
type memStore struct {
	mu      sync.Mutex
	orders  map[string]entities.Order
	intents map[string]entities.PaymentIntent
	manual  []entities.ManualPayment
	history []entities.OrderStatusEvent

	// beforeUpdate runs once ahead of the next guarded status write. It plays
	// a concurrent writer, so its effect survives a rollback.
	beforeUpdate func(s *memStore, orderID string)
	external     func()
}

func newMemStore() *memStore {
	return &memStore{
		orders:  make(map[string]entities.Order),
		intents: make(map[string]entities.PaymentIntent),
	}
}

type snapshot struct {
	orders  map[string]entities.Order
	intents map[string]entities.PaymentIntent
	manual  []entities.ManualPayment
	history []entities.OrderStatusEvent
}

func (s *memStore) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	s.mu.Lock()
	snap := snapshot{
		orders:  maps.Clone(s.orders),
		intents: maps.Clone(s.intents),
		manual:  slices.Clone(s.manual),
		history: slices.Clone(s.history),
	}
	s.mu.Unlock()

	err := callback(ctx)
	if err != nil {
		s.mu.Lock()
		s.orders, s.intents, s.manual, s.history = snap.orders, snap.intents, snap.manual, snap.history
		s.mu.Unlock()
		if s.external != nil {
			s.external()
		}
	}
	s.external = nil
	return err
}

func (s *memStore) SaveOrder(_ context.Context, o entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.orders {
		if existing.OrderNo == o.OrderNo {
			return entities.ErrOrderNoTaken
		}
	}
	o.Items = slices.Clone(o.Items)
	s.orders[o.ID] = o
	s.history = append(s.history, entities.OrderStatusEvent{OrderID: o.ID, To: o.Status, CreatedAt: o.CreatedAt})
	return nil
}

func (s *memStore) OrderByNo(_ context.Context, userID, key string) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.OrderNo != key && o.ID != key {
			continue
		}
		if userID != "" && o.UserID != userID {
			continue
		}
		o.Items = slices.Clone(o.Items)
		return o, nil
	}
	return entities.Order{}, entities.ErrOrderNotFound
}

func (s *memStore) LockOrder(_ context.Context, orderID string) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	o.Items = nil
	return o, nil
}

func (s *memStore) ListOrders(_ context.Context, userID string, limit, offset int) ([]entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entities.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	slices.SortFunc(out, func(a, b entities.Order) int { return b.CreatedAt.Compare(a.CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memStore) RecentPendingOrders(_ context.Context, userID string, since time.Time) ([]entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entities.Order
	for _, o := range s.orders {
		if o.UserID == userID && o.Status == status.Pending && !o.CreatedAt.Before(since) {
			o.Items = slices.Clone(o.Items)
			out = append(out, o)
		}
	}
	slices.SortFunc(out, func(a, b entities.Order) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

func (s *memStore) UpdateStatus(_ context.Context, orderID string, from, to status.Status, note string, at time.Time) (bool, error) {
	if s.beforeUpdate != nil {
		hook := s.beforeUpdate
		s.beforeUpdate = nil
		hook(s, orderID)
		s.external = func() { hook(s, orderID) }
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	o.UpdatedAt = at
	s.orders[orderID] = o
	s.history = append(s.history, entities.OrderStatusEvent{OrderID: orderID, From: from, To: to, Note: note, CreatedAt: at})
	return true, nil
}

func (s *memStore) UpsertIntent(_ context.Context, intent entities.PaymentIntent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := intent.TranID + "|" + intent.Provider
	if existing, ok := s.intents[key]; ok {
		if existing.Status == entities.IntentSuccess {
			return nil
		}
		intent.ID = existing.ID
		intent.CreatedAt = existing.CreatedAt
		if intent.SessionKey == "" {
			intent.SessionKey = existing.SessionKey
		}
		if intent.RedirectURL == "" {
			intent.RedirectURL = existing.RedirectURL
		}
	}
	s.intents[key] = intent
	return nil
}

func (s *memStore) FailIntents(_ context.Context, orderID, provider string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, in := range s.intents {
		if in.OrderID == orderID && in.Provider == provider && in.Status != entities.IntentSuccess {
			in.Status = entities.IntentFailed
			in.UpdatedAt = at
			s.intents[k] = in
		}
	}
	return nil
}

func (s *memStore) IntentsByOrder(_ context.Context, orderID string) ([]entities.PaymentIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entities.PaymentIntent
	for _, in := range s.intents {
		if in.OrderID == orderID {
			out = append(out, in)
		}
	}
	return out, nil
}

func (s *memStore) SaveManualPayment(_ context.Context, p entities.ManualPayment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.manual {
		if m.Method == p.Method && m.TrxID == p.TrxID {
			return entities.ErrDuplicateTransactionRef
		}
	}
	s.manual = append(s.manual, p)
	return nil
}

func (s *memStore) put(o entities.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
}

func (s *memStore) get(id string) entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id]
}

func (s *memStore) setStatus(id string, st status.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.orders[id]
	o.Status = st
	s.orders[id] = o
}

func (s *memStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func (s *memStore) historyFor(id string) []entities.OrderStatusEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entities.OrderStatusEvent
	for _, h := range s.history {
		if h.OrderID == id {
			out = append(out, h)
		}
	}
	return out
}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock() *clock {
	return &clock{t: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
