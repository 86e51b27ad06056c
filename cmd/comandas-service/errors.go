package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/comandas/internal/httpx"
	"github.com/MikeMC777/comandas/internal/menu"
	"github.com/MikeMC777/comandas/internal/order"
	"github.com/MikeMC777/comandas/internal/pricing"
	"github.com/MikeMC777/comandas/internal/storage"
	"github.com/MikeMC777/comandas/internal/ticket"
)

// statusOf maps a domain error to an HTTP status code.
func statusOf(err error) int {
	var menuInvalid menu.ValidationError
	var orderInvalid order.ValidationError
	switch {
	case errors.As(err, &menuInvalid), errors.As(err, &orderInvalid),
		errors.Is(err, pricing.ErrInvalidQuantity),
		errors.Is(err, pricing.ErrInvalidDiscount),
		errors.Is(err, pricing.ErrNegativePrice),
		errors.Is(err, order.ErrIndexOutOfRange),
		errors.Is(err, order.ErrUnknownOption),
		errors.Is(err, order.ErrUnknownExtra):
		return http.StatusBadRequest
	case errors.Is(err, menu.ErrNotFound), errors.Is(err, order.ErrNotFound),
		errors.Is(err, order.ErrDraftNotFound):
		return http.StatusNotFound
	case errors.Is(err, menu.ErrAlreadyExists), errors.Is(err, order.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ticket.ErrPrintFailed):
		return http.StatusBadGateway
	case errors.Is(err, order.ErrNoPrinter):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError aborts the request with the status for err. Storage and other
// internal failures are recorded on the context but not described to the
// client.
func writeError(c *gin.Context, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		if errors.Is(err, storage.ErrStorage) {
			msg = "storage unavailable"
		} else {
			msg = "internal error"
		}
		_ = c.Error(err)
	}
	httpx.Abort(c, status, msg)
}
