package entities

import (
	"time"

	"github.com/pawtag/order-service/internal/status"
)

type Destination struct {
	Address    string
	District   string
	PostalCode string
}

type Contact struct {
	Name  string
	Phone string
}

// ItemLink ties an order to a physical item (a pet tag) and its QR artifact.
type ItemLink struct {
	ItemID string
	QRCode string
}

// Order amounts are whole BDT.
type Order struct {
	ID           string
	OrderNo      string
	UserID       string
	Status       status.Status
	Currency     string
	Subtotal     int64
	ShippingFee  int64
	Total        int64
	WeightGrams  int64
	ZoneID       string
	Destination  Destination
	HomeDelivery bool
	Contact      Contact
	Link         *ItemLink
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []OrderItem
}

// OrderItem is a snapshot of the catalog at order time and never changes.
type OrderItem struct {
	ID            string
	OrderID       string
	ProductID     string
	Name          string
	SKU           string
	UnitPrice     int64
	Quantity      int
	WeightGrams   int64
	CategoryExtra int64
	LineTotal     int64
}

type OrderStatusEvent struct {
	OrderID   string
	From      status.Status
	To        status.Status
	Note      string
	CreatedAt time.Time
}

// ProductRef addresses a catalog product by id or, when id is empty, by SKU.
type ProductRef struct {
	ProductID string
	SKU       string
}

func (r ProductRef) String() string {
	if r.ProductID != "" {
		return r.ProductID
	}
	return r.SKU
}

type LineRequest struct {
	Ref      ProductRef
	Quantity int
}

type CreateOrderInput struct {
	UserID         string
	Items          []LineRequest
	Destination    Destination
	Contact        Contact
	Link           *ItemLink
	IdempotencyKey string
}
