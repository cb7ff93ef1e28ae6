package providers

import (
	"errors"
	"fmt"
	"net/http"
)

// Category buckets upstream failures into the classes the UI layer renders.
type Category string

const (
	CategoryAuthFailed       Category = "auth_failed"
	CategoryPermissionDenied Category = "permission_denied"
	CategoryRateLimited      Category = "rate_limited"
	CategoryUnavailable      Category = "upstream_unavailable"
	CategoryUpstreamError    Category = "upstream_error"
	CategoryNetworkError     Category = "network_error"
)

// UpstreamError carries the HTTP status and category of a failed provider
// exchange alongside the message extracted from the response body (or
// derived from the status when the body had none).
type UpstreamError struct {
	Provider   string
	StatusCode int
	Category   Category
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s (status %d)", e.Provider, e.Message, e.StatusCode)
}

// CategorizeStatus maps an upstream HTTP status to its error category.
func CategorizeStatus(status int) Category {
	switch {
	case status == http.StatusUnauthorized:
		return CategoryAuthFailed
	case status == http.StatusForbidden:
		return CategoryPermissionDenied
	case status == http.StatusTooManyRequests:
		return CategoryRateLimited
	case status >= 500:
		return CategoryUnavailable
	default:
		return CategoryUpstreamError
	}
}

// StatusMessage is the fallback human-readable message when the provider's
// error path yields nothing.
func StatusMessage(status int) string {
	switch CategorizeStatus(status) {
	case CategoryAuthFailed:
		return "authentication failed, check your API key"
	case CategoryPermissionDenied:
		return "permission denied for this model or endpoint"
	case CategoryRateLimited:
		return "rate limit exceeded, slow down and retry later"
	case CategoryUnavailable:
		return "provider is currently unavailable"
	default:
		return fmt.Sprintf("provider returned status %d", status)
	}
}

// CategoryOf extracts the category from err, defaulting to network_error for
// anything that never produced an upstream status.
func CategoryOf(err error) Category {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Category
	}
	return CategoryNetworkError
}
