package shipping

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/pawtag/order-service/internal/entities"
)

type Line struct {
	WeightGrams           int64
	VolumetricWeightGrams int64
	Quantity              int
	CategoryExtra         int64
	LongestSideCm         int64
}

type Destination struct {
	PostalCode string
	District   string
}

type Request struct {
	Lines       []Line
	Destination Destination
	// Subtotal decides whether the zone's free-shipping threshold applies.
	Subtotal int64
}

type Quote struct {
	Zone          entities.ShippingZone
	WeightGrams   int64
	WeightKg      float64
	BilledKg      int64
	ShippingFee   int64
	CategoryExtra int64
	TotalShipping int64
	LongestSideCm int64
}

type ZoneSource interface {
	Zones(ctx context.Context) ([]entities.ShippingZone, error)
}

type Calculator struct {
	zones ZoneSource
}

func NewCalculator(zones ZoneSource) *Calculator {
	return &Calculator{zones: zones}
}

func (c *Calculator) Quote(ctx context.Context, req Request) (Quote, error) {
	if len(req.Lines) == 0 {
		return Quote{}, entities.ErrNoItemsToShip
	}

	zones, err := c.zones.Zones(ctx)
	if err != nil {
		return Quote{}, fmt.Errorf("failed to load shipping zones: %w", err)
	}

	zone, ok := ResolveZone(zones, req.Destination)
	if !ok {
		return Quote{}, entities.ErrNoZonesConfigured
	}

	var q Quote
	q.Zone = zone
	for _, l := range req.Lines {
		billable := max(l.WeightGrams, l.VolumetricWeightGrams)
		q.WeightGrams += billable * int64(l.Quantity)
		q.CategoryExtra += l.CategoryExtra * int64(l.Quantity)
		q.LongestSideCm = max(q.LongestSideCm, l.LongestSideCm)
	}
	q.WeightKg = float64(q.WeightGrams) / 1000
	q.BilledKg = BilledKg(q.WeightGrams)

	waived := zone.FreeThreshold != nil && req.Subtotal >= *zone.FreeThreshold
	if !waived {
		q.ShippingFee = zone.BaseFee + zone.PerKgFee*q.BilledKg
	}
	q.TotalShipping = q.ShippingFee + q.CategoryExtra
	return q, nil
}

// BilledKg rounds grams up to whole kilograms, never below one.
func BilledKg(grams int64) int64 {
	kg := (grams + 999) / 1000
	return max(kg, 1)
}

// ResolveZone picks the zone with the longest matching postal prefix, then a
// case-insensitive district match, then the cheapest zone.
func ResolveZone(zones []entities.ShippingZone, dest Destination) (entities.ShippingZone, bool) {
	if len(zones) == 0 {
		return entities.ShippingZone{}, false
	}

	if postal := strings.TrimSpace(dest.PostalCode); postal != "" {
		best, bestLen := -1, 0
		for i, z := range zones {
			for _, p := range z.PostalPrefixes {
				if len(p) > bestLen && strings.HasPrefix(postal, p) {
					best, bestLen = i, len(p)
				}
			}
		}
		if best >= 0 {
			return zones[best], true
		}
	}

	if district := strings.TrimSpace(dest.District); district != "" {
		for _, z := range zones {
			for _, d := range z.Districts {
				if strings.EqualFold(strings.TrimSpace(d), district) {
					return z, true
				}
			}
		}
	}

	return cheapest(zones), true
}

func cheapest(zones []entities.ShippingZone) entities.ShippingZone {
	best := zones[0]
	for _, z := range zones[1:] {
		switch {
		case z.BaseFee < best.BaseFee:
			best = z
		case z.BaseFee == best.BaseFee && z.PerKgFee < best.PerKgFee:
			best = z
		case z.BaseFee == best.BaseFee && z.PerKgFee == best.PerKgFee && z.ID < best.ID:
			best = z
		}
	}
	return best
}

var trailingPostal = regexp.MustCompile(`(?:^|\D)(\d{4})\D*$`)

// ExtractPostalCode returns the last standalone 4-digit group of a free-text
// address, or "" when there is none.
func ExtractPostalCode(address string) string {
	m := trailingPostal.FindStringSubmatch(address)
	if m == nil {
		return ""
	}
	return m[1]
}
