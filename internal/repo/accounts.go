package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pawtag/order-service/internal/entities"
)

var ErrUserNotFound = errors.New("user not found")

// accountsRepo reads buyer details from the shared users table.
type accountsRepo struct {
	base
}

func NewAccountsRepo(db *sqlx.DB) *accountsRepo {
	return &accountsRepo{base: newBase(db)}
}

func (r *accountsRepo) Buyer(ctx context.Context, userID string) (entities.Buyer, error) {
	query, args := r.qb.Select("id", "name", "email", "phone").
		From("users").
		Where(sq.Eq{"id": userID}).
		MustSql()

	var u User
	err := r.getContext(ctx, &u, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Buyer{}, ErrUserNotFound
	}
	if err != nil {
		return entities.Buyer{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToBuyer(u), nil
}
