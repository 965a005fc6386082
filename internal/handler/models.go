package handler

import (
	"time"

	"github.com/pawtag/order-service/internal/entities"
)

// CreateOrderRequest is the buyer's checkout submission. Prices, weights and
// fees are never taken from the client.
type CreateOrderRequest struct {
	Items    []OrderLine     `json:"items" validate:"dive"`
	Shipping ShippingAddress `json:"shipping" validate:"required"`
	Contact  *Contact        `json:"contact,omitempty"`
	Link     *ItemLink       `json:"link,omitempty"`
}

type OrderLine struct {
	ProductID string `json:"product_id,omitempty" validate:"required_without=SKU"`
	SKU       string `json:"sku,omitempty" validate:"required_without=ProductID"`
	Quantity  int    `json:"quantity" validate:"min=1,max=1000"`
}

type ShippingAddress struct {
	Address    string `json:"address" validate:"required,max=500"`
	District   string `json:"district,omitempty" validate:"max=100"`
	PostalCode string `json:"postal_code,omitempty" validate:"omitempty,numeric,len=4"`
}

type Contact struct {
	Name  string `json:"name,omitempty" validate:"max=200"`
	Phone string `json:"phone,omitempty" validate:"max=32"`
}

type ItemLink struct {
	ItemID string `json:"item_id" validate:"required"`
	QRCode string `json:"qr_code,omitempty"`
}

// Order is the buyer-facing view of an order.
type Order struct {
	OrderNo      string          `json:"order_no"`
	Status       string          `json:"status"`
	Currency     string          `json:"currency"`
	Subtotal     int64           `json:"subtotal"`
	ShippingFee  int64           `json:"shipping_fee"`
	Total        int64           `json:"total"`
	WeightGrams  int64           `json:"weight_grams"`
	ZoneID       string          `json:"zone_id,omitempty"`
	Shipping     ShippingAddress `json:"shipping"`
	HomeDelivery bool            `json:"home_delivery"`
	Contact      *Contact        `json:"contact,omitempty"`
	Link         *ItemLink       `json:"link,omitempty"`
	Items        []OrderItem     `json:"items"`
	ExpiresAt    time.Time       `json:"expires_at"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	SKU           string `json:"sku,omitempty"`
	UnitPrice     int64  `json:"unit_price"`
	Quantity      int    `json:"quantity"`
	WeightGrams   int64  `json:"weight_grams"`
	CategoryExtra int64  `json:"category_extra,omitempty"`
	LineTotal     int64  `json:"line_total"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
}

type StatusChangeRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note,omitempty" validate:"max=500"`
}

// GatewaySessionRequest optionally overrides the configured return URLs.
type GatewaySessionRequest struct {
	SuccessURL string `json:"success_url,omitempty" validate:"omitempty,url"`
	FailURL    string `json:"fail_url,omitempty" validate:"omitempty,url"`
	CancelURL  string `json:"cancel_url,omitempty" validate:"omitempty,url"`
}

type GatewaySessionResponse struct {
	OrderNo     string `json:"order_no"`
	RedirectURL string `json:"redirect_url"`
	SessionKey  string `json:"session_key,omitempty"`
}

type ManualPaymentRequest struct {
	Method       string `json:"method" validate:"required"`
	Amount       int64  `json:"amount"`
	TrxID        string `json:"trx_id" validate:"required,max=64"`
	PayerAccount string `json:"payer_account,omitempty" validate:"max=64"`
	PayerContact string `json:"payer_contact,omitempty" validate:"max=64"`
	Note         string `json:"note,omitempty" validate:"max=500"`
}

type ManualPayment struct {
	ID        string    `json:"id"`
	OrderNo   string    `json:"order_no"`
	Method    string    `json:"method"`
	Amount    int64     `json:"amount"`
	TrxID     string    `json:"trx_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CallbackResult answers a gateway callback when no storefront redirect is configured.
type CallbackResult struct {
	OrderNo string `json:"order_no"`
	Status  string `json:"status,omitempty"`
	Result  string `json:"result"`
}

func (req CreateOrderRequest) ToEntity(userID, idempotencyKey string) entities.CreateOrderInput {
	lines := make([]entities.LineRequest, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, entities.LineRequest{
			Ref:      entities.ProductRef{ProductID: it.ProductID, SKU: it.SKU},
			Quantity: it.Quantity,
		})
	}

	in := entities.CreateOrderInput{
		UserID: userID,
		Items:  lines,
		Destination: entities.Destination{
			Address:    req.Shipping.Address,
			District:   req.Shipping.District,
			PostalCode: req.Shipping.PostalCode,
		},
		IdempotencyKey: idempotencyKey,
	}
	if req.Contact != nil {
		in.Contact = entities.Contact{Name: req.Contact.Name, Phone: req.Contact.Phone}
	}
	if req.Link != nil {
		in.Link = &entities.ItemLink{ItemID: req.Link.ItemID, QRCode: req.Link.QRCode}
	}
	return in
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID:     it.ProductID,
			Name:          it.Name,
			SKU:           it.SKU,
			UnitPrice:     it.UnitPrice,
			Quantity:      it.Quantity,
			WeightGrams:   it.WeightGrams,
			CategoryExtra: it.CategoryExtra,
			LineTotal:     it.LineTotal,
		})
	}

	out := Order{
		OrderNo:     o.OrderNo,
		Status:      string(o.Status),
		Currency:    o.Currency,
		Subtotal:    o.Subtotal,
		ShippingFee: o.ShippingFee,
		Total:       o.Total,
		WeightGrams: o.WeightGrams,
		ZoneID:      o.ZoneID,
		Shipping: ShippingAddress{
			Address:    o.Destination.Address,
			District:   o.Destination.District,
			PostalCode: o.Destination.PostalCode,
		},
		HomeDelivery: o.HomeDelivery,
		Items:        items,
		ExpiresAt:    o.ExpiresAt,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
	if o.Contact != (entities.Contact{}) {
		out.Contact = &Contact{Name: o.Contact.Name, Phone: o.Contact.Phone}
	}
	if o.Link != nil {
		out.Link = &ItemLink{ItemID: o.Link.ItemID, QRCode: o.Link.QRCode}
	}
	return out
}

func ManualPaymentEntityToJSON(orderNo string, p entities.ManualPayment) ManualPayment {
	return ManualPayment{
		ID:        p.ID,
		OrderNo:   orderNo,
		Method:    string(p.Method),
		Amount:    p.Amount,
		TrxID:     p.TrxID,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
	}
}
