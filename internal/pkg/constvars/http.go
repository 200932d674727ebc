package constvars

import "net/http"

const (
	StatusOK                  = http.StatusOK
	StatusCreated             = http.StatusCreated
	StatusBadRequest          = http.StatusBadRequest
	StatusNotFound            = http.StatusNotFound
	StatusUnauthorized        = http.StatusUnauthorized
	StatusInternalServerError = http.StatusInternalServerError
	StatusGatewayTimeout      = http.StatusGatewayTimeout
)

const (
	MethodGet  = http.MethodGet
	MethodPost = http.MethodPost

	HeaderContentType = "Content-Type"

	ResponseUnknown = "unknown"
)
