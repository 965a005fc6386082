package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/pawtag/order-service/internal/entities"
	"github.com/pawtag/order-service/pkg/utils"
)

const (
	resultSuccess   = "success"
	resultFailed    = "failed"
	resultCancelled = "cancelled"
	resultError     = "error"
)

type PaymentService interface {
	CreateGatewaySession(ctx context.Context, userID, orderNo string, urls entities.ReturnURLs) (entities.GatewaySession, error)
	CreateManualPayment(ctx context.Context, userID string, in entities.ManualPaymentInput) (entities.ManualPayment, error)
	HandleSuccessCallback(ctx context.Context, cb entities.SuccessCallback) (entities.Order, error)
	HandleFailureCallback(ctx context.Context, cb entities.FailureCallback) (entities.Order, error)
}

type PaymentHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	auth     func(http.Handler) http.Handler
	svc      PaymentService
	frontend *url.URL
}

// NewPaymentHandler builds the payment routes. With a non-nil frontend URL
// the gateway callbacks redirect the browser there instead of answering JSON.
func NewPaymentHandler(logger *slog.Logger, auth func(http.Handler) http.Handler, svc PaymentService, frontend *url.URL) *PaymentHandler {
	return &PaymentHandler{
		logger:   logger.With(slog.String("handler", "payments")),
		validate: validator.New(),
		auth:     auth,
		svc:      svc,
		frontend: frontend,
	}
}

func (h *PaymentHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/v1/orders/{order_no}/payments/gateway", h.CreateGatewaySession)
		r.Post("/api/v1/orders/{order_no}/payments/manual", h.CreateManualPayment)
	})

	r.Post("/api/v1/payments/gateway/success", h.GatewaySuccess)
	r.Post("/api/v1/payments/gateway/fail", h.GatewayFail)
	r.Post("/api/v1/payments/gateway/cancel", h.GatewayCancel)
}

// CreateGatewaySession opens a hosted checkout session for an order.
// @Summary      Start gateway payment
// @Description  The amount always comes from the stored order total. A FAILED order is reopened for another attempt.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        order_no  path      string                 true   "Order number"
// @Param        request   body      GatewaySessionRequest  false  "Return URL overrides"
// @Success      201  {object}  GatewaySessionResponse
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      409  {object}  utils.ErrorResponse "Order not payable or expired"
// @Failure      502  {object}  utils.ErrorResponse "Gateway failure"
// @Router       /api/v1/orders/{order_no}/payments/gateway [post]
func (h *PaymentHandler) CreateGatewaySession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	orderNo := chi.URLParam(r, "order_no")

	var req GatewaySessionRequest
	if r.ContentLength != 0 {
		if err := utils.DecodeBody(r, &req); err != nil {
			utils.WriteValidationError(w, err)
			return
		}
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	urls := entities.ReturnURLs{Success: req.SuccessURL, Fail: req.FailURL, Cancel: req.CancelURL}
	session, err := h.svc.CreateGatewaySession(ctx, user.ID, orderNo, urls)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to create gateway session", slog.String("order_no", orderNo))
		return
	}

	utils.WriteJSON(w, GatewaySessionResponse{
		OrderNo:     orderNo,
		RedirectURL: session.RedirectURL,
		SessionKey:  session.SessionKey,
	}, http.StatusCreated)
}

// CreateManualPayment records a mobile-wallet or bank transfer for review.
// @Summary      Submit manual payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        order_no  path      string                true  "Order number"
// @Param        request   body      ManualPaymentRequest  true  "Transfer details"
// @Success      201  {object}  ManualPayment
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      409  {object}  utils.ErrorResponse "Order not payable or reference already used"
// @Router       /api/v1/orders/{order_no}/payments/manual [post]
func (h *PaymentHandler) CreateManualPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	orderNo := chi.URLParam(r, "order_no")

	var req ManualPaymentRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	payment, err := h.svc.CreateManualPayment(ctx, user.ID, entities.ManualPaymentInput{
		OrderNo:      orderNo,
		Method:       entities.ManualMethod(req.Method),
		Amount:       req.Amount,
		TrxID:        req.TrxID,
		PayerAccount: req.PayerAccount,
		PayerContact: req.PayerContact,
		Note:         req.Note,
	})
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to create manual payment", slog.String("order_no", orderNo))
		return
	}

	utils.WriteJSON(w, ManualPaymentEntityToJSON(orderNo, payment), http.StatusCreated)
}

// GatewaySuccess is where the gateway sends the buyer after payment. The
// posted fields are only hints; the payment is confirmed server-side.
// @Summary      Gateway success callback
// @Tags         callbacks
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        val_id   formData  string  true   "Gateway validation id"
// @Param        tran_id  formData  string  false  "Transaction id (order number)"
// @Success      200  {object}  CallbackResult
// @Success      303  "Redirect to the storefront"
// @Failure      422  {object}  utils.ErrorResponse "Amount mismatch or payment not confirmed"
// @Failure      502  {object}  utils.ErrorResponse "Gateway failure"
// @Router       /api/v1/payments/gateway/success [post]
func (h *PaymentHandler) GatewaySuccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	cb := entities.SuccessCallback{ValID: r.PostForm.Get("val_id"), TranID: r.PostForm.Get("tran_id")}

	order, err := h.svc.HandleSuccessCallback(ctx, cb)
	if err != nil {
		if h.frontend != nil {
			h.logger.WarnContext(ctx, "success callback rejected", slog.Any("error", err), slog.String("tran_id", cb.TranID))
			_, body := classify(err)
			h.redirect(w, r, cb.TranID, resultError, body.Kind)
			return
		}
		writeError(ctx, h.logger, w, err, "failed to handle success callback", slog.String("tran_id", cb.TranID))
		return
	}

	h.respond(w, r, order, resultSuccess)
}

// GatewayFail marks the order FAILED.
// @Summary      Gateway failure callback
// @Tags         callbacks
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        tran_id  formData  string  true  "Transaction id (order number)"
// @Success      200  {object}  CallbackResult
// @Success      303  "Redirect to the storefront"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Router       /api/v1/payments/gateway/fail [post]
func (h *PaymentHandler) GatewayFail(w http.ResponseWriter, r *http.Request) {
	h.failure(w, r, resultFailed)
}

// GatewayCancel is handled exactly like a failure.
// @Summary      Gateway cancel callback
// @Tags         callbacks
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        tran_id  formData  string  true  "Transaction id (order number)"
// @Success      200  {object}  CallbackResult
// @Success      303  "Redirect to the storefront"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Router       /api/v1/payments/gateway/cancel [post]
func (h *PaymentHandler) GatewayCancel(w http.ResponseWriter, r *http.Request) {
	h.failure(w, r, resultCancelled)
}

func (h *PaymentHandler) failure(w http.ResponseWriter, r *http.Request, result string) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	tranID := r.PostForm.Get("tran_id")

	order, err := h.svc.HandleFailureCallback(ctx, entities.FailureCallback{TranID: tranID})
	if err != nil {
		if h.frontend != nil {
			h.logger.WarnContext(ctx, "failure callback rejected", slog.Any("error", err), slog.String("tran_id", tranID))
			_, body := classify(err)
			h.redirect(w, r, tranID, resultError, body.Kind)
			return
		}
		writeError(ctx, h.logger, w, err, "failed to handle failure callback", slog.String("tran_id", tranID))
		return
	}

	h.respond(w, r, order, result)
}

func (h *PaymentHandler) respond(w http.ResponseWriter, r *http.Request, order entities.Order, result string) {
	if h.frontend != nil {
		h.redirect(w, r, order.OrderNo, result, "")
		return
	}
	utils.WriteJSON(w, CallbackResult{OrderNo: order.OrderNo, Status: string(order.Status), Result: result}, http.StatusOK)
}

func (h *PaymentHandler) redirect(w http.ResponseWriter, r *http.Request, orderNo, result, reason string) {
	u := *h.frontend
	q := u.Query()
	q.Set("order_no", orderNo)
	q.Set("result", result)
	if reason != "" {
		q.Set("reason", reason)
	}
	u.RawQuery = q.Encode()

	callbackRedirects.WithLabelValues(result).Inc()
	http.Redirect(w, r, u.String(), http.StatusSeeOther)
}
