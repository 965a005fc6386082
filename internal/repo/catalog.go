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

// catalogRepo reads the product tables shared with the catalog service.
type catalogRepo struct {
	base
}

func NewCatalogRepo(db *sqlx.DB) *catalogRepo {
	return &catalogRepo{base: newBase(db)}
}

func (r *catalogRepo) Resolve(ctx context.Context, ref entities.ProductRef) (entities.ProductResolution, error) {
	q := r.qb.Select(
		"p.id", "p.sku", "p.name", "p.price", "p.weight_grams", "p.length_cm", "p.width_cm", "p.height_cm",
		"p.category_id",
		"sp.weight_grams AS profile_weight_grams", "sp.volumetric_weight_grams",
		"sp.longest_side_cm", "sp.category_extra",
	).
		From("products p").
		LeftJoin("product_shipping_profiles sp ON sp.product_id = p.id").
		Where(sq.Eq{"p.active": true}).
		Limit(1)

	if ref.ProductID != "" {
		q = q.Where(sq.Eq{"p.id": ref.ProductID})
	} else {
		q = q.Where(sq.Eq{"p.sku": ref.SKU})
	}
	query, args := q.MustSql()

	var p Product
	err := r.getContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.NotFound(), nil
	}
	if err != nil {
		return entities.ProductResolution{}, fmt.Errorf("failed to get product: %w", err)
	}
	return entities.Found(ProductToEntity(p)), nil
}
