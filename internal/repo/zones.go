package repo

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pawtag/order-service/internal/entities"
)

type zonesRepo struct {
	base
}

func NewZonesRepo(db *sqlx.DB) *zonesRepo {
	return &zonesRepo{base: newBase(db)}
}

func (r *zonesRepo) Zones(ctx context.Context) ([]entities.ShippingZone, error) {
	query, args := r.qb.Select(
		"z.id", "z.name", "z.base_fee", "z.per_kg_fee", "z.free_threshold", "z.home_delivery",
		"COALESCE((SELECT array_agg(pp.prefix ORDER BY pp.prefix) FROM zone_postal_prefixes pp WHERE pp.zone_id = z.id), '{}') AS postal_prefixes",
		"COALESCE((SELECT array_agg(zd.district ORDER BY zd.district) FROM zone_districts zd WHERE zd.zone_id = z.id), '{}') AS districts",
	).
		From("shipping_zones z").
		OrderBy("z.id").
		MustSql()

	var rows []Zone
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select shipping zones: %w", err)
	}

	zones := make([]entities.ShippingZone, 0, len(rows))
	for _, z := range rows {
		zones = append(zones, ZoneToEntity(z))
	}
	return zones, nil
}
