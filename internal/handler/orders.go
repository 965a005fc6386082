package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/pawtag/order-service/internal/entities"
	"github.com/pawtag/order-service/internal/middleware"
	"github.com/pawtag/order-service/internal/status"
	"github.com/pawtag/order-service/pkg/utils"
)

const idempotencyHeader = "Idempotency-Key"

type OrderService interface {
	CreateOrder(ctx context.Context, in entities.CreateOrderInput) (entities.Order, error)
	GetOrderByNo(ctx context.Context, userID, key string) (entities.Order, error)
	ListOrdersForUser(ctx context.Context, userID string, limit, offset int) ([]entities.Order, error)
	SetTrackingStatus(ctx context.Context, orderNo string, to status.Status, note string) (entities.Order, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	auth     func(http.Handler) http.Handler
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, auth func(http.Handler) http.Handler, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: validator.New(),
		auth:     auth,
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/v1/orders", h.CreateOrder)
		r.Get("/api/v1/orders", h.ListOrders)
		r.Get("/api/v1/orders/{order_no}", h.GetOrder)

		r.With(middleware.RequireRole(middleware.RoleAdmin)).
			Patch("/api/v1/admin/orders/{order_no}/status", h.SetTrackingStatus)
	})
}

// CreateOrder places an order for the authenticated buyer.
// @Summary      Create order
// @Description  Prices the cart from the catalog, quotes shipping and opens a payment window. A repeated submission returns the existing order.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string              false  "Client key that makes retries safe"
// @Param        request          body      CreateOrderRequest  true   "Cart and delivery details"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Same idempotency key still in progress"
// @Failure      422  {object}  utils.ErrorResponse "Product unavailable"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/v1/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	key := r.Header.Get(idempotencyHeader)
	if err := h.validate.Var(key, "max=128"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, req.ToEntity(user.ID, key))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to create order", slog.String("user_id", user.ID))
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ListOrders returns the buyer's orders, newest first.
// @Summary      List my orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int  false  "Page size (default 20, max 100)"
// @Param        offset  query     int  false  "Rows to skip"
// @Success      200  {object}  OrderList
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/v1/orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	orders, err := h.svc.ListOrdersForUser(ctx, user.ID, limit, offset)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to list orders", slog.String("user_id", user.ID))
		return
	}

	res := OrderList{Orders: make([]Order, 0, len(orders))}
	for _, o := range orders {
		res.Orders = append(res.Orders, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetOrder returns one of the buyer's orders.
// @Summary      Get order
// @Description  Looks the order up by order number, falling back to the internal id.
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        order_no  path      string  true  "Order number"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/v1/orders/{order_no} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	orderNo := chi.URLParam(r, "order_no")

	order, err := h.svc.GetOrderByNo(ctx, user.ID, orderNo)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to get order", slog.String("order_no", orderNo))
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// SetTrackingStatus moves an order along the fulfilment path.
// @Summary      Change order status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        order_no  path      string               true  "Order number"
// @Param        request   body      StatusChangeRequest  true  "Target status"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      409  {object}  utils.ErrorResponse "Transition not allowed or status changed concurrently"
// @Router       /api/v1/admin/orders/{order_no}/status [patch]
func (h *OrderHandler) SetTrackingStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNo := chi.URLParam(r, "order_no")

	var req StatusChangeRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	to, err := status.Parse(req.Status)
	if err != nil {
		utils.WriteKindError(w, string(entities.KindInvalidRequest), err.Error(), map[string]any{"status": req.Status}, http.StatusBadRequest)
		return
	}

	order, err := h.svc.SetTrackingStatus(ctx, orderNo, to, req.Note)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to set order status", slog.String("order_no", orderNo))
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, &queryError{key: key}
	}
	return v, nil
}

type queryError struct {
	key string
}

func (e *queryError) Error() string {
	return e.key + " must be a non-negative integer"
}
