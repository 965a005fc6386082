package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pawtag/order-service/internal/entities"
	"github.com/pawtag/order-service/internal/status"
	"github.com/pawtag/order-service/pkg/trm"
	"github.com/shopspring/decimal"
)

var errLostRace = errors.New("order status changed during write")

type paymentService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	payments  PaymentRepo
	accounts  Accounts
	gateway   Gateway
	events    EventPublisher
	urls      entities.ReturnURLs
	opts      Options
}

func NewPaymentService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	payments PaymentRepo,
	accounts Accounts,
	gateway Gateway,
	events EventPublisher,
	urls entities.ReturnURLs,
	opts Options,
) *paymentService {
	return &paymentService{
		logger:    logger.With(slog.String("service", "payment")),
		txManager: txManager,
		orders:    orders,
		payments:  payments,
		accounts:  accounts,
		gateway:   gateway,
		events:    events,
		urls:      urls,
		opts:      opts.withDefaults(),
	}
}

// CreateGatewaySession starts a hosted checkout for the order's own total.
// Nothing is written unless the gateway accepts the session.
func (s *paymentService) CreateGatewaySession(ctx context.Context, userID, orderNo string, urls entities.ReturnURLs) (entities.GatewaySession, error) {
	order, err := s.orders.OrderByNo(ctx, userID, orderNo)
	if err != nil {
		return entities.GatewaySession{}, err
	}
	now := s.opts.Now()
	if err := checkPayable(order, now); err != nil {
		return entities.GatewaySession{}, err
	}

	buyer, err := s.accounts.Buyer(ctx, order.UserID)
	if err != nil {
		return entities.GatewaySession{}, fmt.Errorf("failed to load buyer: %w", err)
	}

	session, err := s.gateway.CreateSession(ctx, s.sessionRequest(order, buyer, urls))
	if err != nil {
		gatewaySessions.WithLabelValues("upstream_failure").Inc()
		s.logger.WarnContext(ctx, "gateway session failed", slog.String("order_no", order.OrderNo), slog.Any("error", err))
		if errors.Is(err, entities.ErrUpstream) {
			return entities.GatewaySession{}, err
		}
		return entities.GatewaySession{}, entities.ErrUpstream.Wrap(err)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// A callback may have settled the order while the gateway was called.
		current, err := s.orders.LockOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		now = s.opts.Now()
		if err := checkPayable(current, now); err != nil {
			return err
		}
		if current.Status == status.Failed {
			if err := s.advance(ctx, current, []status.Status{status.Pending}, "payment retried", now); err != nil {
				return err
			}
		}
		return s.payments.UpsertIntent(ctx, entities.PaymentIntent{
			ID:          uuid.NewString(),
			OrderID:     current.ID,
			Provider:    s.opts.Provider,
			Status:      entities.IntentRedirected,
			Amount:      current.Total,
			Currency:    current.Currency,
			SessionKey:  session.SessionKey,
			TranID:      current.OrderNo,
			RedirectURL: session.RedirectURL,
			RawResponse: session.Raw,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	})
	var domainErr *entities.Error
	switch {
	case errors.Is(err, errLostRace):
		return entities.GatewaySession{}, entities.ErrStatusConflict.With(map[string]any{"order_no": order.OrderNo})
	case errors.As(err, &domainErr):
		gatewaySessions.WithLabelValues("discarded").Inc()
		s.logger.WarnContext(ctx, "gateway session discarded, order changed meanwhile",
			slog.String("order_no", order.OrderNo), slog.Any("error", err))
		return entities.GatewaySession{}, err
	case err != nil:
		return entities.GatewaySession{}, fmt.Errorf("failed to record payment intent: %w", err)
	}

	gatewaySessions.WithLabelValues("redirected").Inc()
	s.logger.InfoContext(ctx, "gateway session created", slog.String("order_no", order.OrderNo), slog.Int64("amount", order.Total))
	return session, nil
}

func (s *paymentService) sessionRequest(o entities.Order, buyer entities.Buyer, urls entities.ReturnURLs) entities.GatewaySessionRequest {
	if urls.Success == "" {
		urls.Success = s.urls.Success
	}
	if urls.Fail == "" {
		urls.Fail = s.urls.Fail
	}
	if urls.Cancel == "" {
		urls.Cancel = s.urls.Cancel
	}

	count := 0
	names := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		count += it.Quantity
		names = append(names, it.Name)
	}

	shipName := o.Contact.Name
	if shipName == "" {
		shipName = buyer.Name
	}

	return entities.GatewaySessionRequest{
		TranID:      o.OrderNo,
		Amount:      o.Total,
		Currency:    o.Currency,
		URLs:        urls,
		Buyer:       buyer,
		Destination: o.Destination,
		ShipName:    shipName,
		ItemCount:   count,
		ProductName: strings.Join(names, ", "),
	}
}

// HandleSuccessCallback trusts only the gateway's validation endpoint, never
// the callback body.
func (s *paymentService) HandleSuccessCallback(ctx context.Context, cb entities.SuccessCallback) (entities.Order, error) {
	if cb.ValID == "" {
		return entities.Order{}, entities.ErrInvalidRequest.With(map[string]any{"val_id": "required"})
	}

	v, err := s.gateway.Validate(ctx, cb.ValID)
	if err != nil {
		gatewayCallbacks.WithLabelValues("success", "upstream_failure").Inc()
		if errors.Is(err, entities.ErrUpstream) {
			return entities.Order{}, err
		}
		return entities.Order{}, entities.ErrUpstream.Wrap(err)
	}
	if v.TranID == "" {
		gatewayCallbacks.WithLabelValues("success", "not_confirmed").Inc()
		return entities.Order{}, entities.ErrPaymentNotConfirmed.With(map[string]any{"gateway_status": v.Status})
	}
	if cb.TranID != "" && v.TranID != cb.TranID {
		gatewayCallbacks.WithLabelValues("success", "transaction_mismatch").Inc()
		return entities.Order{}, entities.ErrTransactionMismatch.With(map[string]any{
			"callback_tran_id": cb.TranID, "validated_tran_id": v.TranID,
		})
	}

	order, err := s.orders.OrderByNo(ctx, "", v.TranID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.Status == status.PaymentVerified {
		gatewayCallbacks.WithLabelValues("success", "duplicate").Inc()
		return order, nil
	}

	if err := matchAmount(order, v); err != nil {
		gatewayCallbacks.WithLabelValues("success", "amount_mismatch").Inc()
		s.logger.WarnContext(ctx, "validated amount does not match order",
			slog.String("order_no", order.OrderNo),
			slog.Int64("expected", order.Total),
			slog.String("got", v.Amount),
			slog.String("currency", v.Currency),
		)
		return entities.Order{}, err
	}
	if !confirmed(v.Status) {
		gatewayCallbacks.WithLabelValues("success", "not_confirmed").Inc()
		return entities.Order{}, entities.ErrPaymentNotConfirmed.With(map[string]any{"gateway_status": v.Status})
	}

	route, err := status.Route(order.Status, status.PaymentVerified)
	if err != nil {
		return entities.Order{}, err
	}

	now := s.opts.Now()
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.advance(ctx, order, route, "gateway payment validated", now); err != nil {
			return err
		}
		return s.payments.UpsertIntent(ctx, entities.PaymentIntent{
			ID:           uuid.NewString(),
			OrderID:      order.ID,
			Provider:     s.opts.Provider,
			Status:       entities.IntentSuccess,
			Amount:       order.Total,
			Currency:     order.Currency,
			TranID:       order.OrderNo,
			RawResponse:  v.Raw,
			ValidationID: v.ValID,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	})
	if errors.Is(err, errLostRace) {
		return s.settledElsewhere(ctx, order)
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to record verified payment: %w", err)
	}

	order.Status = status.PaymentVerified
	order.UpdatedAt = now
	gatewayCallbacks.WithLabelValues("success", "verified").Inc()
	s.logger.InfoContext(ctx, "payment verified", slog.String("order_no", order.OrderNo), slog.String("val_id", v.ValID))
	publish(ctx, s.logger, s.events, orderEvent(entities.EventPaymentVerified, order, now))
	return order, nil
}

// settledElsewhere resolves a lost guarded write: a concurrent callback that
// already verified the order makes this one a duplicate.
func (s *paymentService) settledElsewhere(ctx context.Context, order entities.Order) (entities.Order, error) {
	current, err := s.orders.OrderByNo(ctx, "", order.OrderNo)
	if err != nil {
		return entities.Order{}, err
	}
	if current.Status == status.PaymentVerified {
		gatewayCallbacks.WithLabelValues("success", "duplicate").Inc()
		return current, nil
	}
	return entities.Order{}, entities.ErrStatusConflict.With(map[string]any{
		"order_no": order.OrderNo, "status": string(current.Status),
	})
}

// HandleFailureCallback serves both the fail and the cancel redirect.
func (s *paymentService) HandleFailureCallback(ctx context.Context, cb entities.FailureCallback) (entities.Order, error) {
	if cb.TranID == "" {
		return entities.Order{}, entities.ErrInvalidRequest.With(map[string]any{"tran_id": "required"})
	}

	now := s.opts.Now()
	var (
		order   entities.Order
		changed bool
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orders.OrderByNo(ctx, "", cb.TranID)
		if err != nil {
			return err
		}
		if order.Status != status.Failed {
			if err := status.Assert(order.Status, status.Failed); err != nil {
				return err
			}
			if err := s.advance(ctx, order, []status.Status{status.Failed}, "gateway reported failure", now); err != nil {
				return err
			}
			order.Status = status.Failed
			order.UpdatedAt = now
			changed = true
		}
		if err := s.payments.FailIntents(ctx, order.ID, s.opts.Provider, now); err != nil {
			return fmt.Errorf("failed to fail intents: %w", err)
		}
		return nil
	})
	if errors.Is(err, errLostRace) {
		return entities.Order{}, entities.ErrStatusConflict.With(map[string]any{"order_no": cb.TranID})
	}
	if err != nil {
		return entities.Order{}, err
	}

	gatewayCallbacks.WithLabelValues("failure", "failed").Inc()
	if changed {
		s.logger.InfoContext(ctx, "payment failed", slog.String("order_no", order.OrderNo))
		publish(ctx, s.logger, s.events, orderEvent(entities.EventPaymentFailed, order, now))
	}
	return order, nil
}

// CreateManualPayment records a mobile-banking or bank transfer claim for
// review. The claimed amount is kept as submitted.
func (s *paymentService) CreateManualPayment(ctx context.Context, userID string, in entities.ManualPaymentInput) (entities.ManualPayment, error) {
	if err := validateManual(in); err != nil {
		return entities.ManualPayment{}, err
	}

	order, err := s.orders.OrderByNo(ctx, userID, in.OrderNo)
	if err != nil {
		return entities.ManualPayment{}, err
	}
	now := s.opts.Now()
	if err := checkPayable(order, now); err != nil {
		return entities.ManualPayment{}, err
	}
	route, err := status.Route(order.Status, status.PaymentUnderReview)
	if err != nil {
		return entities.ManualPayment{}, err
	}

	payment := entities.ManualPayment{
		ID:           uuid.NewString(),
		OrderID:      order.ID,
		Method:       in.Method,
		Amount:       in.Amount,
		TrxID:        strings.TrimSpace(in.TrxID),
		PayerAccount: in.PayerAccount,
		PayerContact: in.PayerContact,
		Note:         in.Note,
		Status:       entities.ReviewPending,
		CreatedAt:    now,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.payments.SaveManualPayment(ctx, payment); err != nil {
			return err
		}
		return s.advance(ctx, order, route, "manual payment submitted", now)
	})
	if errors.Is(err, errLostRace) {
		return entities.ManualPayment{}, entities.ErrStatusConflict.With(map[string]any{"order_no": order.OrderNo})
	}
	if err != nil {
		return entities.ManualPayment{}, err
	}

	manualPayments.WithLabelValues(string(in.Method)).Inc()
	order.Status = status.PaymentUnderReview
	s.logger.InfoContext(ctx, "manual payment submitted",
		slog.String("order_no", order.OrderNo),
		slog.String("method", string(in.Method)),
		slog.Int64("amount", in.Amount),
	)
	publish(ctx, s.logger, s.events, orderEvent(entities.EventPaymentSubmitted, order, now))
	return payment, nil
}

// advance walks the order through route with writes guarded on the previous
// status. Any lost step returns errLostRace so the transaction rolls back.
func (s *paymentService) advance(ctx context.Context, order entities.Order, route []status.Status, note string, at time.Time) error {
	from := order.Status
	for _, to := range route {
		ok, err := s.orders.UpdateStatus(ctx, order.ID, from, to, note, at)
		if err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}
		if !ok {
			return errLostRace
		}
		from = to
	}
	return nil
}

func checkPayable(o entities.Order, now time.Time) error {
	details := map[string]any{"order_no": o.OrderNo, "status": string(o.Status)}
	if o.Status == status.Expired {
		return entities.ErrOrderExpired.With(details)
	}
	if !status.CanAcceptPayment(o.Status) {
		return entities.ErrOrderNotPayable.With(details)
	}
	if !now.Before(o.ExpiresAt) {
		return entities.ErrOrderExpired.With(details)
	}
	return nil
}

func matchAmount(o entities.Order, v entities.GatewayValidation) error {
	details := map[string]any{
		"expected_amount":   o.Total,
		"expected_currency": o.Currency,
		"got_amount":        v.Amount,
		"got_currency":      v.Currency,
	}
	got, err := decimal.NewFromString(strings.TrimSpace(v.Amount))
	if err != nil {
		return entities.ErrAmountMismatch.With(details).Wrap(err)
	}
	if !got.Equal(decimal.NewFromInt(o.Total)) || !strings.EqualFold(v.Currency, o.Currency) {
		return entities.ErrAmountMismatch.With(details)
	}
	return nil
}

func confirmed(gatewayStatus string) bool {
	switch strings.ToUpper(gatewayStatus) {
	case "VALID", "VALIDATED":
		return true
	}
	return false
}

func validateManual(in entities.ManualPaymentInput) error {
	switch in.Method {
	case entities.ManualBkash, entities.ManualNagad, entities.ManualRocket, entities.ManualBankTransfer:
	default:
		return entities.ErrInvalidRequest.With(map[string]any{"method": string(in.Method)})
	}
	if in.Amount <= 0 {
		return entities.ErrInvalidRequest.With(map[string]any{"amount": "must be positive"})
	}
	if strings.TrimSpace(in.TrxID) == "" {
		return entities.ErrInvalidRequest.With(map[string]any{"trx_id": "required"})
	}
	return nil
}
