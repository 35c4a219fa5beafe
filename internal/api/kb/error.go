package kb

import (
	"net/http"

	"BluewudSupport/pkg/response"
)

var (
	ErrReloadFailed = response.NewError(http.StatusBadGateway, "knowledge base reload failed")
)
