package entities

import "time"

type IntentStatus string

const (
	IntentRedirected IntentStatus = "REDIRECTED"
	IntentSuccess    IntentStatus = "SUCCESS"
	IntentFailed     IntentStatus = "FAILED"
)

// PaymentIntent is one gateway attempt. (TranID, Provider) identifies it.
type PaymentIntent struct {
	ID           string
	OrderID      string
	Provider     string
	Status       IntentStatus
	Amount       int64
	Currency     string
	SessionKey   string
	TranID       string
	RedirectURL  string
	RawResponse  []byte
	ValidationID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ManualMethod string

const (
	ManualBkash        ManualMethod = "bkash"
	ManualNagad        ManualMethod = "nagad"
	ManualRocket       ManualMethod = "rocket"
	ManualBankTransfer ManualMethod = "bank_transfer"
)

type ReviewStatus string

const ReviewPending ReviewStatus = "PENDING"

type ManualPayment struct {
	ID           string
	OrderID      string
	Method       ManualMethod
	Amount       int64
	TrxID        string
	PayerAccount string
	PayerContact string
	Note         string
	Status       ReviewStatus
	CreatedAt    time.Time
}

type ManualPaymentInput struct {
	OrderNo      string
	Method       ManualMethod
	Amount       int64
	TrxID        string
	PayerAccount string
	PayerContact string
	Note         string
}

type ReturnURLs struct {
	Success string
	Fail    string
	Cancel  string
}

// GatewaySessionRequest carries the canonical order amount, never a client one.
type GatewaySessionRequest struct {
	TranID      string
	Amount      int64
	Currency    string
	URLs        ReturnURLs
	Buyer       Buyer
	Destination Destination
	ShipName    string
	ItemCount   int
	ProductName string
}

type GatewaySession struct {
	SessionKey  string
	RedirectURL string
	Raw         []byte
}

// GatewayValidation is what the gateway's own validation endpoint reports.
// Amount stays a decimal string as returned.
type GatewayValidation struct {
	Status   string
	TranID   string
	ValID    string
	Amount   string
	Currency string
	Raw      []byte
}

type SuccessCallback struct {
	ValID  string
	TranID string
}

type FailureCallback struct {
	TranID string
}
