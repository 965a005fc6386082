package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pawtag/order-service/internal/entities"
	"github.com/pawtag/order-service/internal/status"
)

const orderNoConstraint = "orders_order_no_key"

type ordersRepo struct {
	base
}

func NewOrdersRepo(db *sqlx.DB) *ordersRepo {
	return &ordersRepo{base: newBase(db)}
}

func (r *ordersRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	var linkID, linkQR sql.NullString
	if o.Link != nil {
		linkID, linkQR = nullString(o.Link.ItemID), nullString(o.Link.QRCode)
	}

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.OrderNo, o.UserID, string(o.Status), o.Currency, o.Subtotal, o.ShippingFee, o.Total,
			o.WeightGrams, nullString(o.ZoneID), o.Destination.Address, nullString(o.Destination.District),
			nullString(o.Destination.PostalCode), o.HomeDelivery,
			nullString(o.Contact.Name), nullString(o.Contact.Phone), linkID, linkQR,
			o.ExpiresAt, o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		if c, ok := uniqueConstraint(err); ok && c == orderNoConstraint {
			return entities.ErrOrderNoTaken
		}
		return fmt.Errorf("failed to save order: %w", err)
	}

	if err := r.saveItems(ctx, o.Items); err != nil {
		return err
	}
	return r.appendHistory(ctx, o.ID, "", o.Status, "order placed", o.CreatedAt)
}

func (r *ordersRepo) saveItems(ctx context.Context, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(itemColumns...)
	for _, it := range items {
		q = q.Values(
			it.ID, it.OrderID, it.ProductID, it.Name, it.SKU, it.UnitPrice, it.Quantity,
			it.WeightGrams, it.CategoryExtra, it.LineTotal,
		)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *ordersRepo) appendHistory(ctx context.Context, orderID string, from, to status.Status, note string, at time.Time) error {
	query, args := r.qb.Insert("order_status_history").
		Columns("order_id", "from_status", "to_status", "note", "created_at").
		Values(orderID, nullString(string(from)), string(to), nullString(note), at).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append status history: %w", err)
	}
	return nil
}

func (r *ordersRepo) OrderByNo(ctx context.Context, userID, key string) (entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Or{sq.Eq{"order_no": key}, sq.Eq{"id": key}}).
		OrderByClause("order_no = ? DESC", key).
		Limit(1)
	if userID != "" {
		q = q.Where(sq.Eq{"user_id": userID})
	}
	query, args := q.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.itemsFor(ctx, []string{order.ID})
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(order, items[order.ID]), nil
}

// LockOrder reads the order row with FOR UPDATE so concurrent status writes
// wait for the surrounding transaction. Items are not loaded.
func (r *ordersRepo) LockOrder(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		Suffix("FOR UPDATE").
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to lock order: %w", err)
	}
	return OrderToEntity(order, nil), nil
}

func (r *ordersRepo) ListOrders(ctx context.Context, userID string, limit, offset int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		MustSql()

	return r.selectOrders(ctx, query, args...)
}

func (r *ordersRepo) RecentPendingOrders(ctx context.Context, userID string, since time.Time) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID, "status": string(status.Pending)}).
		Where(sq.GtOrEq{"created_at": since}).
		OrderBy("created_at DESC").
		MustSql()

	return r.selectOrders(ctx, query, args...)
}

func (r *ordersRepo) selectOrders(ctx context.Context, query string, args ...any) ([]entities.Order, error) {
	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, items[o.ID]))
	}
	return result, nil
}

func (r *ordersRepo) itemsFor(ctx context.Context, orderIDs []string) (map[string][]OrderItem, error) {
	query, args := r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}

	byOrder := make(map[string][]OrderItem, len(orderIDs))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	return byOrder, nil
}

func (r *ordersRepo) UpdateStatus(ctx context.Context, orderID string, from, to status.Status, note string, at time.Time) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(to)).
		Set("updated_at", at).
		Where(sq.Eq{"id": orderID, "status": string(from)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return false, nil
	}
	return true, r.appendHistory(ctx, orderID, from, to, note, at)
}

// expireQuery flips every overdue order in one statement and records the
// history rows alongside. The self join exposes the status before the update.
const expireQuery = `
WITH expired AS (
	UPDATE orders o
	SET status = $1, updated_at = $2
	FROM orders prev
	WHERE prev.id = o.id AND o.status = ANY($3) AND o.expires_at < $2
	RETURNING o.id, o.order_no, o.user_id, o.total, o.currency, prev.status AS from_status
), history AS (
	INSERT INTO order_status_history (order_id, from_status, to_status, note, created_at)
	SELECT id, from_status, $1, 'payment window elapsed', $2 FROM expired
)
SELECT id, order_no, user_id, total, currency FROM expired`

type expiredRow struct {
	ID       string `db:"id"`
	OrderNo  string `db:"order_no"`
	UserID   string `db:"user_id"`
	Total    int64  `db:"total"`
	Currency string `db:"currency"`
}

func (r *ordersRepo) ExpireOverdue(ctx context.Context, now time.Time, from []status.Status) ([]entities.Order, error) {
	states := make([]string, len(from))
	for i, s := range from {
		states[i] = string(s)
	}

	var rows []expiredRow
	if err := r.selectContext(ctx, &rows, expireQuery, string(status.Expired), now, pq.Array(states)); err != nil {
		return nil, fmt.Errorf("failed to expire orders: %w", err)
	}

	out := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.Order{
			ID:        row.ID,
			OrderNo:   row.OrderNo,
			UserID:    row.UserID,
			Status:    status.Expired,
			Total:     row.Total,
			Currency:  row.Currency,
			UpdatedAt: now,
		})
	}
	return out, nil
}

// PurgeExpired removes expired orders last touched before cutoff. Items,
// history, intents and manual payments go with them.
func (r *ordersRepo) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"status": string(status.Expired)}).
		Where(sq.Lt{"updated_at": cutoff}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired orders: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}
