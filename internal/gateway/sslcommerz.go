package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pawtag/order-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	sessionPath    = "/gwprocess/v4/api.php"
	validationPath = "/validator/api/validationserverAPI.php"

	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

type Config struct {
	BaseURL   string
	StoreID   string
	StorePass string
	Timeout   time.Duration
}

// SSLCommerz talks to the hosted checkout over its form API. Every call goes
// through one circuit breaker.
type SSLCommerz struct {
	logger  *slog.Logger
	cfg     Config
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func NewSSLCommerz(logger *slog.Logger, cfg Config, client *http.Client) *SSLCommerz {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if client == nil {
		client = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &SSLCommerz{
		logger:  logger.With(slog.String("gateway", "sslcommerz")),
		cfg:     cfg,
		client:  client,
		breaker: newBreaker("sslcommerz"),
	}
}

func newBreaker(name string) *gobreaker.CircuitBreaker[[]byte] {
	var st gobreaker.Settings
	st.Name = name
	st.Timeout = 30 * time.Second
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}
	return gobreaker.NewCircuitBreaker[[]byte](st)
}

type sessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

func (g *SSLCommerz) CreateSession(ctx context.Context, req entities.GatewaySessionRequest) (entities.GatewaySession, error) {
	if err := g.checkCredentials(); err != nil {
		return entities.GatewaySession{}, err
	}

	form := url.Values{}
	form.Set("store_id", g.cfg.StoreID)
	form.Set("store_passwd", g.cfg.StorePass)
	form.Set("total_amount", decimal.NewFromInt(req.Amount).StringFixed(2))
	form.Set("currency", req.Currency)
	form.Set("tran_id", req.TranID)
	form.Set("success_url", req.URLs.Success)
	form.Set("fail_url", req.URLs.Fail)
	form.Set("cancel_url", req.URLs.Cancel)

	form.Set("cus_name", req.Buyer.Name)
	form.Set("cus_email", req.Buyer.Email)
	form.Set("cus_phone", req.Buyer.Phone)
	form.Set("cus_add1", req.Destination.Address)
	form.Set("cus_city", cityOf(req.Destination))
	form.Set("cus_postcode", req.Destination.PostalCode)
	form.Set("cus_country", "Bangladesh")

	form.Set("shipping_method", "Courier")
	form.Set("ship_name", req.ShipName)
	form.Set("ship_add1", req.Destination.Address)
	form.Set("ship_city", cityOf(req.Destination))
	form.Set("ship_postcode", req.Destination.PostalCode)
	form.Set("ship_country", "Bangladesh")

	form.Set("num_of_item", strconv.Itoa(req.ItemCount))
	form.Set("product_name", req.ProductName)
	form.Set("product_category", "pet-accessories")
	form.Set("product_profile", "physical-goods")

	body, err := g.call(ctx, func(ctx context.Context) (*http.Request, error) {
		r, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+sessionPath, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return r, nil
	})
	if err != nil {
		return entities.GatewaySession{}, err
	}

	var res sessionResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return entities.GatewaySession{}, entities.ErrUpstream.Wrap(fmt.Errorf("failed to decode session response: %w", err))
	}
	if !strings.EqualFold(res.Status, "SUCCESS") || res.GatewayPageURL == "" {
		return entities.GatewaySession{}, entities.ErrUpstream.With(map[string]any{
			"gateway_status": res.Status, "reason": res.FailedReason,
		})
	}

	return entities.GatewaySession{
		SessionKey:  res.SessionKey,
		RedirectURL: res.GatewayPageURL,
		Raw:         body,
	}, nil
}

type validationResponse struct {
	Status         string `json:"status"`
	TranID         string `json:"tran_id"`
	ValID          string `json:"val_id"`
	Amount         string `json:"amount"`
	Currency       string `json:"currency"`
	CurrencyType   string `json:"currency_type"`
	CurrencyAmount string `json:"currency_amount"`
}

// Validate asks the gateway what it knows about val_id. The amount reported
// is in the currency the session was opened in.
func (g *SSLCommerz) Validate(ctx context.Context, valID string) (entities.GatewayValidation, error) {
	if err := g.checkCredentials(); err != nil {
		return entities.GatewayValidation{}, err
	}

	q := url.Values{}
	q.Set("val_id", valID)
	q.Set("store_id", g.cfg.StoreID)
	q.Set("store_passwd", g.cfg.StorePass)
	q.Set("format", "json")

	body, err := g.call(ctx, func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.BaseURL+validationPath+"?"+q.Encode(), nil)
	})
	if err != nil {
		return entities.GatewayValidation{}, err
	}

	var res validationResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return entities.GatewayValidation{}, entities.ErrUpstream.Wrap(fmt.Errorf("failed to decode validation response: %w", err))
	}

	amount, currency := res.Amount, res.Currency
	if res.CurrencyType != "" && res.CurrencyAmount != "" {
		amount, currency = res.CurrencyAmount, res.CurrencyType
	}

	return entities.GatewayValidation{
		Status:   res.Status,
		TranID:   res.TranID,
		ValID:    res.ValID,
		Amount:   amount,
		Currency: currency,
		Raw:      body,
	}, nil
}

func (g *SSLCommerz) checkCredentials() error {
	if g.cfg.BaseURL == "" || g.cfg.StoreID == "" || g.cfg.StorePass == "" {
		return entities.ErrUpstream.With(map[string]any{"reason": "gateway credentials are not configured"})
	}
	return nil
}

// call sends one request through the breaker. Timeouts, transport errors and
// non-2xx answers count as failures and come back as ErrUpstream.
func (g *SSLCommerz) call(ctx context.Context, build func(ctx context.Context) (*http.Request, error)) ([]byte, error) {
	start := time.Now()
	body, err := g.breaker.Execute(func() ([]byte, error) {
		req, err := build(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}

		resp, err := g.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return body, nil
	})

	result := "ok"
	if err != nil {
		result = "error"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			result = "rejected"
		}
		g.logger.WarnContext(ctx, "gateway call failed", slog.Any("error", err), slog.String("duration", time.Since(start).String()))
	}
	gatewayRequests.WithLabelValues(result).Inc()
	gatewayDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, entities.ErrUpstream.Wrap(err)
	}
	return body, nil
}

func cityOf(d entities.Destination) string {
	if d.District != "" {
		return d.District
	}
	return "Dhaka"
}
