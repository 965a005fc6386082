package repo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pawtag/order-service/internal/entities"
)

const manualTrxConstraint = "manual_payments_method_trx_id_key"

type paymentsRepo struct {
	base
}

func NewPaymentsRepo(db *sqlx.DB) *paymentsRepo {
	return &paymentsRepo{base: newBase(db)}
}

// UpsertIntent keeps the session key, redirect URL and raw response of an
// earlier attempt when the new write leaves them empty. A SUCCESS intent is
// never overwritten.
func (r *paymentsRepo) UpsertIntent(ctx context.Context, p entities.PaymentIntent) error {
	query, args := r.qb.Insert("payment_intents").
		Columns("id", "order_id", "provider", "status", "amount", "currency", "session_key",
			"tran_id", "redirect_url", "raw_response", "validation_id", "created_at", "updated_at").
		Values(p.ID, p.OrderID, p.Provider, string(p.Status), p.Amount, p.Currency, nullString(p.SessionKey),
			p.TranID, nullString(p.RedirectURL), jsonbValue(p.RawResponse), nullString(p.ValidationID),
			p.CreatedAt, p.UpdatedAt).
		Suffix(`ON CONFLICT (tran_id, provider) DO UPDATE SET
			status = EXCLUDED.status,
			amount = EXCLUDED.amount,
			currency = EXCLUDED.currency,
			session_key = COALESCE(EXCLUDED.session_key, payment_intents.session_key),
			redirect_url = COALESCE(EXCLUDED.redirect_url, payment_intents.redirect_url),
			raw_response = COALESCE(EXCLUDED.raw_response, payment_intents.raw_response),
			validation_id = COALESCE(EXCLUDED.validation_id, payment_intents.validation_id),
			updated_at = EXCLUDED.updated_at
		WHERE payment_intents.status <> 'SUCCESS'`).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert payment intent: %w", err)
	}
	return nil
}

func (r *paymentsRepo) FailIntents(ctx context.Context, orderID, provider string, at time.Time) error {
	query, args := r.qb.Update("payment_intents").
		Set("status", string(entities.IntentFailed)).
		Set("updated_at", at).
		Where(sq.Eq{"order_id": orderID, "provider": provider}).
		Where(sq.NotEq{"status": string(entities.IntentSuccess)}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to fail payment intents: %w", err)
	}
	return nil
}

func (r *paymentsRepo) IntentsByOrder(ctx context.Context, orderID string) ([]entities.PaymentIntent, error) {
	query, args := r.qb.Select("id", "order_id", "provider", "status", "amount", "currency", "session_key",
		"tran_id", "redirect_url", "raw_response", "validation_id", "created_at", "updated_at").
		From("payment_intents").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at").
		MustSql()

	var rows []PaymentIntent
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select payment intents: %w", err)
	}

	out := make([]entities.PaymentIntent, 0, len(rows))
	for _, row := range rows {
		out = append(out, IntentToEntity(row))
	}
	return out, nil
}

func (r *paymentsRepo) SaveManualPayment(ctx context.Context, p entities.ManualPayment) error {
	query, args := r.qb.Insert("manual_payments").
		Columns("id", "order_id", "method", "amount", "trx_id", "payer_account", "payer_contact", "note", "status", "created_at").
		Values(p.ID, p.OrderID, string(p.Method), p.Amount, p.TrxID, nullString(p.PayerAccount),
			nullString(p.PayerContact), nullString(p.Note), string(p.Status), p.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		if c, ok := uniqueConstraint(err); ok && c == manualTrxConstraint {
			return entities.ErrDuplicateTransactionRef.With(map[string]any{"method": string(p.Method), "trx_id": p.TrxID})
		}
		return fmt.Errorf("failed to save manual payment: %w", err)
	}
	return nil
}
