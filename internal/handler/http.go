package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pawtag/order-service/internal/entities"
	"github.com/pawtag/order-service/internal/middleware"
	"github.com/pawtag/order-service/internal/status"
	"github.com/pawtag/order-service/pkg/utils"
)

const kindInvalidTransition = "invalid_transition"

var kindStatus = map[entities.Kind]int{
	entities.KindInvalidRequest:          http.StatusBadRequest,
	entities.KindNoItems:                 http.StatusBadRequest,
	entities.KindNoItemsToShip:           http.StatusBadRequest,
	entities.KindProductUnavailable:      http.StatusUnprocessableEntity,
	entities.KindOrderNotFound:           http.StatusNotFound,
	entities.KindOrderNotPayable:         http.StatusConflict,
	entities.KindOrderExpired:            http.StatusConflict,
	entities.KindAmountMismatch:          http.StatusUnprocessableEntity,
	entities.KindPaymentNotConfirmed:     http.StatusUnprocessableEntity,
	entities.KindTransactionMismatch:     http.StatusUnprocessableEntity,
	entities.KindDuplicateRequest:        http.StatusConflict,
	entities.KindDuplicateTransactionRef: http.StatusConflict,
	entities.KindStatusConflict:          http.StatusConflict,
	entities.KindUpstream:                http.StatusBadGateway,
	entities.KindConfiguration:           http.StatusServiceUnavailable,
}

// classify maps an error onto the response the client sees. Anything that is
// not a domain error is a 500 and is reported without detail.
func classify(err error) (code int, body utils.ErrorResponse) {
	var te *status.TransitionError
	if errors.As(err, &te) {
		allowed := make([]string, len(te.Allowed))
		for i, s := range te.Allowed {
			allowed[i] = string(s)
		}
		return http.StatusConflict, utils.ErrorResponse{
			Kind:    kindInvalidTransition,
			Message: "status transition is not allowed",
			Details: map[string]any{"from": string(te.From), "to": string(te.To), "allowed": allowed},
		}
	}

	var de *entities.Error
	if errors.As(err, &de) {
		code, ok := kindStatus[de.Kind]
		if !ok {
			code = http.StatusInternalServerError
		}
		return code, utils.ErrorResponse{Kind: string(de.Kind), Message: de.Message, Details: de.Details}
	}

	return http.StatusInternalServerError, utils.ErrorResponse{Kind: "internal", Message: "internal server error"}
}

func writeError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, msg string, attrs ...any) {
	code, body := classify(err)
	errorResponses.WithLabelValues(body.Kind).Inc()

	if code >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, append(attrs, slog.Any("error", err))...)
	} else {
		logger.DebugContext(ctx, msg, append(attrs, slog.Any("error", err))...)
	}
	utils.WriteKindError(w, body.Kind, body.Message, body.Details, code)
}

func currentUser(w http.ResponseWriter, r *http.Request) (middleware.User, bool) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteKindError(w, "unauthorized", "authentication required", nil, http.StatusUnauthorized)
	}
	return u, ok
}
