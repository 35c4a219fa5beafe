package chat

import (
	"net/http"

	"BluewudSupport/pkg/response"
)

var (
	ErrMissingMessage = response.NewError(http.StatusBadRequest, "missing message")
)
