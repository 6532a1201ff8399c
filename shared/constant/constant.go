package constant

import (
	"time"
)

const (
	RequestParamID = "id"
)

const (
	DateFormat = time.RFC3339Nano
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelMiddlewareScopeName = "http"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorRequestLimitExceeded = "Request limit exceeded"
	ResponseErrorTodoNotFound         = "Todo not found"
	ResponseMessageTodoDeleted        = "Todo deleted"
)

const (
	HealthStatusHealthy = "healthy"
)

const (
	ServerEnvDevelopment = "development"
)
