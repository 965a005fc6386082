package repo

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/pawtag/order-service/internal/entities"
	"github.com/pawtag/order-service/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderToEntity(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	row := Order{
		ID: "id-1", OrderNo: "PT1", UserID: "user-1", Status: "PENDING", Currency: "BDT",
		Subtotal: 2200, ShippingFee: 100, Total: 2300, WeightGrams: 1400,
		ZoneID:       sql.NullString{String: "zone-z", Valid: true},
		Address:      "House 4, Dhaka 1209",
		PostalCode:   sql.NullString{String: "1209", Valid: true},
		LinkedItemID: sql.NullString{String: "tag-9", Valid: true},
		ExpiresAt:    now.Add(5 * time.Minute), CreatedAt: now, UpdatedAt: now,
	}
	items := []OrderItem{{ID: "item-1", OrderID: "id-1", ProductID: "prod-a", Quantity: 2, UnitPrice: 500, LineTotal: 1000}}

	order := OrderToEntity(row, items)

	assert.Equal(t, status.Pending, order.Status)
	assert.Equal(t, "zone-z", order.ZoneID)
	assert.Equal(t, entities.Destination{Address: "House 4, Dhaka 1209", PostalCode: "1209"}, order.Destination)
	require.NotNil(t, order.Link)
	assert.Equal(t, "tag-9", order.Link.ItemID)
	assert.Empty(t, order.Link.QRCode)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(1000), order.Items[0].LineTotal)

	row.LinkedItemID = sql.NullString{}
	assert.Nil(t, OrderToEntity(row, nil).Link)
}

func TestProductToEntity(t *testing.T) {
	row := Product{ID: "prod-a", SKU: "TAG", Name: "Tag", Price: 500, WeightGrams: 200, LengthCm: 5, WidthCm: 3, HeightCm: 1}

	assert.Nil(t, ProductToEntity(row).Profile)

	row.ProfileWeightGrams = sql.NullInt64{Int64: 250, Valid: true}
	row.CategoryExtra = sql.NullInt64{Int64: 30, Valid: true}
	p := ProductToEntity(row)
	require.NotNil(t, p.Profile)
	assert.Equal(t, entities.ShippingProfile{WeightGrams: 250, CategoryExtra: 30}, *p.Profile)
}

func TestZoneToEntity(t *testing.T) {
	zone := ZoneToEntity(Zone{
		ID: "z1", BaseFee: 60, PerKgFee: 20,
		FreeThreshold:  sql.NullInt64{Int64: 3000, Valid: true},
		PostalPrefixes: pq.StringArray{"12", "1209"},
	})

	require.NotNil(t, zone.FreeThreshold)
	assert.Equal(t, int64(3000), *zone.FreeThreshold)
	assert.Equal(t, []string{"12", "1209"}, zone.PostalPrefixes)
	assert.Nil(t, ZoneToEntity(Zone{ID: "z2"}).FreeThreshold)
}

func TestJSONBValue(t *testing.T) {
	testCases := []struct {
		name string
		raw  []byte
		want any
	}{
		{name: "empty", raw: nil, want: nil},
		{name: "json object", raw: []byte(`{"status":"VALID"}`), want: `{"status":"VALID"}`},
		{name: "plain text", raw: []byte("gateway down"), want: `"gateway down"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, jsonbValue(tc.raw))
		})
	}
}

func TestUniqueConstraint(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pq.Error{Code: "23505", Constraint: orderNoConstraint})
	c, ok := uniqueConstraint(err)
	assert.True(t, ok)
	assert.Equal(t, orderNoConstraint, c)

	_, ok = uniqueConstraint(&pq.Error{Code: "23503"})
	assert.False(t, ok)

	_, ok = uniqueConstraint(errors.New("boom"))
	assert.False(t, ok)
}
