package repo

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/pawtag/order-service/internal/entities"
	"github.com/pawtag/order-service/internal/status"
)

type Order struct {
	ID           string         `db:"id"`
	OrderNo      string         `db:"order_no"`
	UserID       string         `db:"user_id"`
	Status       string         `db:"status"`
	Currency     string         `db:"currency"`
	Subtotal     int64          `db:"subtotal"`
	ShippingFee  int64          `db:"shipping_fee"`
	Total        int64          `db:"total"`
	WeightGrams  int64          `db:"weight_grams"`
	ZoneID       sql.NullString `db:"zone_id"`
	Address      string         `db:"address"`
	District     sql.NullString `db:"district"`
	PostalCode   sql.NullString `db:"postal_code"`
	HomeDelivery bool           `db:"home_delivery"`
	ContactName  sql.NullString `db:"contact_name"`
	ContactPhone sql.NullString `db:"contact_phone"`
	LinkedItemID sql.NullString `db:"linked_item_id"`
	LinkedQRCode sql.NullString `db:"linked_qr_code"`
	ExpiresAt    time.Time      `db:"expires_at"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

var orderColumns = []string{
	"id", "order_no", "user_id", "status", "currency", "subtotal", "shipping_fee", "total",
	"weight_grams", "zone_id", "address", "district", "postal_code", "home_delivery",
	"contact_name", "contact_phone", "linked_item_id", "linked_qr_code",
	"expires_at", "created_at", "updated_at",
}

type OrderItem struct {
	ID            string `db:"id"`
	OrderID       string `db:"order_id"`
	ProductID     string `db:"product_id"`
	Name          string `db:"name"`
	SKU           string `db:"sku"`
	UnitPrice     int64  `db:"unit_price"`
	Quantity      int    `db:"quantity"`
	WeightGrams   int64  `db:"weight_grams"`
	CategoryExtra int64  `db:"category_extra"`
	LineTotal     int64  `db:"line_total"`
}

var itemColumns = []string{
	"id", "order_id", "product_id", "name", "sku", "unit_price", "quantity",
	"weight_grams", "category_extra", "line_total",
}

type PaymentIntent struct {
	ID           string         `db:"id"`
	OrderID      string         `db:"order_id"`
	Provider     string         `db:"provider"`
	Status       string         `db:"status"`
	Amount       int64          `db:"amount"`
	Currency     string         `db:"currency"`
	SessionKey   sql.NullString `db:"session_key"`
	TranID       string         `db:"tran_id"`
	RedirectURL  sql.NullString `db:"redirect_url"`
	RawResponse  []byte         `db:"raw_response"`
	ValidationID sql.NullString `db:"validation_id"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type Product struct {
	ID                    string         `db:"id"`
	SKU                   string         `db:"sku"`
	Name                  string         `db:"name"`
	Price                 int64          `db:"price"`
	WeightGrams           int64          `db:"weight_grams"`
	LengthCm              int64          `db:"length_cm"`
	WidthCm               int64          `db:"width_cm"`
	HeightCm              int64          `db:"height_cm"`
	CategoryID            sql.NullString `db:"category_id"`
	ProfileWeightGrams    sql.NullInt64  `db:"profile_weight_grams"`
	VolumetricWeightGrams sql.NullInt64  `db:"volumetric_weight_grams"`
	LongestSideCm         sql.NullInt64  `db:"longest_side_cm"`
	CategoryExtra         sql.NullInt64  `db:"category_extra"`
}

type Zone struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	BaseFee        int64          `db:"base_fee"`
	PerKgFee       int64          `db:"per_kg_fee"`
	FreeThreshold  sql.NullInt64  `db:"free_threshold"`
	HomeDelivery   bool           `db:"home_delivery"`
	PostalPrefixes pq.StringArray `db:"postal_prefixes"`
	Districts      pq.StringArray `db:"districts"`
}

type User struct {
	ID    string         `db:"id"`
	Name  string         `db:"name"`
	Email sql.NullString `db:"email"`
	Phone sql.NullString `db:"phone"`
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:          o.ID,
		OrderNo:     o.OrderNo,
		UserID:      o.UserID,
		Status:      status.Status(o.Status),
		Currency:    o.Currency,
		Subtotal:    o.Subtotal,
		ShippingFee: o.ShippingFee,
		Total:       o.Total,
		WeightGrams: o.WeightGrams,
		ZoneID:      nullStringToString(o.ZoneID),
		Destination: entities.Destination{
			Address:    o.Address,
			District:   nullStringToString(o.District),
			PostalCode: nullStringToString(o.PostalCode),
		},
		HomeDelivery: o.HomeDelivery,
		Contact: entities.Contact{
			Name:  nullStringToString(o.ContactName),
			Phone: nullStringToString(o.ContactPhone),
		},
		ExpiresAt: o.ExpiresAt,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	if o.LinkedItemID.Valid {
		order.Link = &entities.ItemLink{ItemID: o.LinkedItemID.String, QRCode: nullStringToString(o.LinkedQRCode)}
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}
	return order
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:            i.ID,
		OrderID:       i.OrderID,
		ProductID:     i.ProductID,
		Name:          i.Name,
		SKU:           i.SKU,
		UnitPrice:     i.UnitPrice,
		Quantity:      i.Quantity,
		WeightGrams:   i.WeightGrams,
		CategoryExtra: i.CategoryExtra,
		LineTotal:     i.LineTotal,
	}
}

func IntentToEntity(p PaymentIntent) entities.PaymentIntent {
	return entities.PaymentIntent{
		ID:           p.ID,
		OrderID:      p.OrderID,
		Provider:     p.Provider,
		Status:       entities.IntentStatus(p.Status),
		Amount:       p.Amount,
		Currency:     p.Currency,
		SessionKey:   nullStringToString(p.SessionKey),
		TranID:       p.TranID,
		RedirectURL:  nullStringToString(p.RedirectURL),
		RawResponse:  p.RawResponse,
		ValidationID: nullStringToString(p.ValidationID),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func ProductToEntity(p Product) entities.Product {
	product := entities.Product{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Price:       p.Price,
		WeightGrams: p.WeightGrams,
		LengthCm:    p.LengthCm,
		WidthCm:     p.WidthCm,
		HeightCm:    p.HeightCm,
		CategoryID:  nullStringToString(p.CategoryID),
	}
	// The profile row is optional; a LEFT JOIN without a match leaves every column null.
	if p.ProfileWeightGrams.Valid {
		product.Profile = &entities.ShippingProfile{
			WeightGrams:           p.ProfileWeightGrams.Int64,
			VolumetricWeightGrams: p.VolumetricWeightGrams.Int64,
			LongestSideCm:         p.LongestSideCm.Int64,
			CategoryExtra:         p.CategoryExtra.Int64,
		}
	}
	return product
}

func ZoneToEntity(z Zone) entities.ShippingZone {
	return entities.ShippingZone{
		ID:             z.ID,
		Name:           z.Name,
		BaseFee:        z.BaseFee,
		PerKgFee:       z.PerKgFee,
		FreeThreshold:  nullInt64ToPtr(z.FreeThreshold),
		HomeDelivery:   z.HomeDelivery,
		PostalPrefixes: []string(z.PostalPrefixes),
		Districts:      []string(z.Districts),
	}
}

func UserToBuyer(u User) entities.Buyer {
	return entities.Buyer{
		ID:    u.ID,
		Name:  u.Name,
		Email: nullStringToString(u.Email),
		Phone: nullStringToString(u.Phone),
	}
}
