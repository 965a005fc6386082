package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pawtag/order-service/internal/entities"
	"github.com/pawtag/order-service/internal/shipping"
	"github.com/pawtag/order-service/internal/status"
	"github.com/pawtag/order-service/pkg/trm"
	"github.com/pawtag/order-service/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const (
	defaultOrderTTL    = 5 * time.Minute
	defaultDedupWindow = 5 * time.Minute
	defaultCurrency    = "BDT"
	defaultProvider    = "sslcommerz"

	defaultListLimit = 20
	maxListLimit     = 100
	maxLineQuantity  = 1000

	idemCleanupTimeout = 2 * time.Second

	// volumetricDivisor turns cubic centimetres into grams (L*W*H/5000 kg).
	volumetricDivisor = 5
	resolveLimit      = 8
)

var readRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  3,
	Multiplier:   2,
}

type Options struct {
	Currency    string
	Provider    string
	OrderTTL    time.Duration
	DedupWindow time.Duration
	Now         func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Currency == "" {
		o.Currency = defaultCurrency
	}
	if o.Provider == "" {
		o.Provider = defaultProvider
	}
	if o.OrderTTL <= 0 {
		o.OrderTTL = defaultOrderTTL
	}
	if o.DedupWindow <= 0 {
		o.DedupWindow = defaultDedupWindow
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	catalog   Catalog
	quoter    ShippingQuoter
	idem      IdempotencyStore
	events    EventPublisher
	opts      Options
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	catalog Catalog,
	quoter ShippingQuoter,
	idem IdempotencyStore,
	events EventPublisher,
	opts Options,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		catalog:   catalog,
		quoter:    quoter,
		idem:      idem,
		events:    events,
		opts:      opts.withDefaults(),
	}
}

func (s *orderService) CreateOrder(ctx context.Context, in entities.CreateOrderInput) (entities.Order, error) {
	if len(in.Items) == 0 {
		return entities.Order{}, entities.ErrNoItems
	}
	for i, line := range in.Items {
		if line.Quantity < 1 || line.Ref.String() == "" {
			return entities.Order{}, entities.ErrInvalidRequest.With(map[string]any{
				"item": i, "reason": "item needs a product and a positive quantity",
			})
		}
		if line.Quantity > maxLineQuantity {
			return entities.Order{}, entities.ErrInvalidRequest.With(map[string]any{
				"item": i, "reason": fmt.Sprintf("quantity must not exceed %d", maxLineQuantity),
			})
		}
	}

	if in.IdempotencyKey == "" || s.idem == nil {
		return s.createOrder(ctx, in)
	}

	orderNo, reserved, err := s.idem.Reserve(ctx, in.UserID, in.IdempotencyKey)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to reserve idempotency key: %w", err)
	}
	if !reserved {
		if orderNo == "" {
			return entities.Order{}, entities.ErrDuplicateRequest
		}
		orderDedupHits.WithLabelValues("idempotency_key").Inc()
		return s.repo.OrderByNo(ctx, in.UserID, orderNo)
	}

	order, err := s.createOrder(ctx, in)

	// The key must settle even when the caller has gone away.
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), idemCleanupTimeout)
	defer cancel()

	if err != nil {
		if rerr := s.idem.Release(cleanupCtx, in.UserID, in.IdempotencyKey); rerr != nil {
			s.logger.WarnContext(ctx, "failed to release idempotency key", slog.Any("error", rerr))
		}
		return entities.Order{}, err
	}
	if err := s.idem.Complete(cleanupCtx, in.UserID, in.IdempotencyKey, order.OrderNo); err != nil {
		s.logger.WarnContext(ctx, "failed to complete idempotency key", slog.Any("error", err), slog.String("order_no", order.OrderNo))
	}
	return order, nil
}

func (s *orderService) createOrder(ctx context.Context, in entities.CreateOrderInput) (entities.Order, error) {
	products, err := s.resolve(ctx, in.Items)
	if err != nil {
		return entities.Order{}, err
	}

	dest := in.Destination
	if dest.PostalCode == "" {
		dest.PostalCode = shipping.ExtractPostalCode(dest.Address)
	}

	items := make([]entities.OrderItem, 0, len(in.Items))
	lines := make([]shipping.Line, 0, len(in.Items))
	var subtotal int64
	for i, req := range in.Items {
		p := products[i]
		line := shippingLine(p, req.Quantity)
		qty := int64(req.Quantity)

		items = append(items, entities.OrderItem{
			ProductID:     p.ID,
			Name:          p.Name,
			SKU:           p.SKU,
			UnitPrice:     p.Price,
			Quantity:      req.Quantity,
			WeightGrams:   max(line.WeightGrams, line.VolumetricWeightGrams) * qty,
			CategoryExtra: line.CategoryExtra * qty,
			LineTotal:     p.Price * qty,
		})
		lines = append(lines, line)
		subtotal += p.Price * qty
	}

	quote, err := s.quoter.Quote(ctx, shipping.Request{
		Lines:       lines,
		Destination: shipping.Destination{PostalCode: dest.PostalCode, District: dest.District},
		Subtotal:    subtotal,
	})
	if err != nil {
		return entities.Order{}, err
	}

	now := s.opts.Now()
	if existing, ok, err := s.findDuplicate(ctx, in.UserID, dest, items, now); err != nil {
		return entities.Order{}, err
	} else if ok {
		orderDedupHits.WithLabelValues("recent_pending").Inc()
		s.logger.InfoContext(ctx, "returning recent duplicate order", slog.String("order_no", existing.OrderNo))
		return existing, nil
	}

	order := entities.Order{
		ID:           uuid.NewString(),
		UserID:       in.UserID,
		Status:       status.Pending,
		Currency:     s.opts.Currency,
		Subtotal:     subtotal,
		ShippingFee:  quote.TotalShipping,
		Total:        subtotal + quote.TotalShipping,
		WeightGrams:  quote.WeightGrams,
		ZoneID:       quote.Zone.ID,
		Destination:  dest,
		HomeDelivery: quote.Zone.HomeDelivery,
		Contact:      in.Contact,
		Link:         in.Link,
		ExpiresAt:    now.Add(s.opts.OrderTTL),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].OrderID = order.ID
	}
	order.Items = items

	// One regeneration is enough; a second collision means something else is wrong.
	for attempt := 0; attempt < 2; attempt++ {
		order.OrderNo = newOrderNo(now)
		err = s.txManager.Do(ctx, func(ctx context.Context) error {
			return s.repo.SaveOrder(ctx, order)
		})
		if !errors.Is(err, entities.ErrOrderNoTaken) {
			break
		}
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	ordersCreated.Inc()
	s.logger.InfoContext(ctx, "order created",
		slog.String("order_no", order.OrderNo),
		slog.Int64("total", order.Total),
		slog.String("zone", order.ZoneID),
	)
	publish(ctx, s.logger, s.events, orderEvent(entities.EventOrderCreated, order, now))
	return order, nil
}

// resolve looks up every line concurrently. Products come back in line order.
func (s *orderService) resolve(ctx context.Context, lines []entities.LineRequest) ([]entities.Product, error) {
	products := make([]entities.Product, len(lines))

	var (
		mu      sync.Mutex
		missing []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveLimit)
	for i, line := range lines {
		g.Go(func() error {
			res, err := s.catalog.Resolve(gctx, line.Ref)
			if err != nil {
				return fmt.Errorf("failed to resolve product %s: %w", line.Ref, err)
			}
			if !res.Found {
				mu.Lock()
				missing = append(missing, line.Ref.String())
				mu.Unlock()
				return nil
			}
			products[i] = res.Product
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, entities.ErrProductUnavailable.With(map[string]any{"products": missing})
	}
	return products, nil
}

func (s *orderService) findDuplicate(ctx context.Context, userID string, dest entities.Destination, items []entities.OrderItem, now time.Time) (entities.Order, bool, error) {
	recent, err := s.repo.RecentPendingOrders(ctx, userID, now.Add(-s.opts.DedupWindow))
	if err != nil {
		return entities.Order{}, false, fmt.Errorf("failed to load recent orders: %w", err)
	}

	want := itemsSignature(items)
	for _, o := range recent {
		if o.Status != status.Pending || !now.Before(o.ExpiresAt) {
			continue
		}
		if o.Destination != dest {
			continue
		}
		if itemsSignature(o.Items) == want {
			return o, true, nil
		}
	}
	return entities.Order{}, false, nil
}

func (s *orderService) GetOrderByNo(ctx context.Context, userID, key string) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.OrderByNo(ctx, userID, key)
		return err
	}
	if err := utils.Retry(ctx, readRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *orderService) ListOrdersForUser(ctx context.Context, userID string, limit, offset int) ([]entities.Order, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)
	offset = max(offset, 0)

	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.repo.ListOrders(ctx, userID, limit, offset)
		return err
	}
	if err := utils.Retry(ctx, readRetry, fn); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// SetTrackingStatus is the administrative status change used for fulfilment.
func (s *orderService) SetTrackingStatus(ctx context.Context, orderNo string, to status.Status, note string) (entities.Order, error) {
	if !to.Valid() {
		return entities.Order{}, entities.ErrInvalidRequest.With(map[string]any{"status": string(to)})
	}

	now := s.opts.Now()
	var (
		order   entities.Order
		changed bool
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repo.OrderByNo(ctx, "", orderNo)
		if err != nil {
			return err
		}
		if err := status.Assert(order.Status, to); err != nil {
			return err
		}
		if order.Status == to {
			return nil
		}

		ok, err := s.repo.UpdateStatus(ctx, order.ID, order.Status, to, note, now)
		if err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}
		if !ok {
			return entities.ErrStatusConflict.With(map[string]any{"order_no": orderNo, "expected": string(order.Status)})
		}
		order.Status = to
		order.UpdatedAt = now
		changed = true
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	if changed {
		statusChanges.WithLabelValues(string(to)).Inc()
		publish(ctx, s.logger, s.events, orderEvent(entities.EventOrderStatusChange, order, now))
	}
	return order, nil
}

// shippingLine prefers the product's shipping profile and falls back to the
// product's own weight and dimensions.
func shippingLine(p entities.Product, qty int) shipping.Line {
	if pr := p.Profile; pr != nil {
		return shipping.Line{
			WeightGrams:           pr.WeightGrams,
			VolumetricWeightGrams: pr.VolumetricWeightGrams,
			Quantity:              qty,
			CategoryExtra:         pr.CategoryExtra,
			LongestSideCm:         pr.LongestSideCm,
		}
	}
	return shipping.Line{
		WeightGrams:           p.WeightGrams,
		VolumetricWeightGrams: p.LengthCm * p.WidthCm * p.HeightCm / volumetricDivisor,
		Quantity:              qty,
		LongestSideCm:         max(p.LengthCm, p.WidthCm, p.HeightCm),
	}
}

func itemsSignature(items []entities.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, it.ProductID+"x"+strconv.Itoa(it.Quantity))
	}
	slices.Sort(parts)
	return strings.Join(parts, ",")
}

// newOrderNo builds a gateway-safe order number: PT, the date, and 12 hex digits.
func newOrderNo(now time.Time) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "PT" + now.Format("060102") + strings.ToUpper(id[:12])
}

func orderEvent(t entities.EventType, o entities.Order, at time.Time) entities.OrderEvent {
	return entities.OrderEvent{
		Type:       t,
		OrderNo:    o.OrderNo,
		UserID:     o.UserID,
		Status:     o.Status,
		Total:      o.Total,
		Currency:   o.Currency,
		OccurredAt: at,
	}
}

// publish never fails the caller; notifications are best effort.
func publish(ctx context.Context, logger *slog.Logger, events EventPublisher, evs ...entities.OrderEvent) {
	if events == nil || len(evs) == 0 {
		return
	}
	if err := events.Publish(ctx, evs); err != nil {
		logger.WarnContext(ctx, "failed to publish events", slog.Any("error", err), slog.Int("count", len(evs)))
	}
}
