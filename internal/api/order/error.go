package order

import (
	"net/http"

	"BluewudSupport/pkg/response"
)

var (
	ErrMissingOrderID = response.NewError(http.StatusBadRequest, "missing order_id")
	ErrOrderNotFound  = response.NewError(http.StatusNotFound, "order not found")
)
