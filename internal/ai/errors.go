package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Fixed error taxonomy for vendor calls. Every provider maps its transport
// and HTTP outcomes onto these sentinels so callers can branch uniformly
// regardless of which vendor answered.
var (
	// ErrNotConfigured indicates no credential is present for the vendor.
	ErrNotConfigured = errors.New("provider not configured")
	// ErrInvalidCredential indicates the vendor rejected authentication.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrRateLimited indicates vendor throttling; recoverable by waiting.
	ErrRateLimited = errors.New("rate limited")
	// ErrNetwork indicates a transport failure other than timeout.
	ErrNetwork = errors.New("network error")
	// ErrTimeout indicates the request exceeded the configured deadline.
	ErrTimeout = errors.New("request timed out")
	// ErrInvalidResponse indicates a response arrived but carried no usable
	// text content.
	ErrInvalidResponse = errors.New("invalid response")
	// ErrParsing indicates JSON extraction or structural decode failed.
	ErrParsing = errors.New("failed to parse response")
	// ErrServer indicates a vendor-side failure.
	ErrServer = errors.New("provider server error")
	// ErrUnknown covers anything the taxonomy does not name.
	ErrUnknown = errors.New("unknown provider error")
)

// classifyStatus maps a non-2xx HTTP status to the taxonomy, preserving the
// original status code and vendor message for diagnostics.
func classifyStatus(vendor string, status int, message string) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %s returned status %d: %s", ErrInvalidCredential, vendor, status, message)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s returned status %d: %s", ErrRateLimited, vendor, status, message)
	default:
		return fmt.Errorf("%w: %s returned status %d: %s", ErrServer, vendor, status, message)
	}
}

// classifyTransport maps a transport-level failure to timeout or network
// error, carrying the underlying cause.
func classifyTransport(vendor string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %v", ErrTimeout, vendor, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %s: %v", ErrTimeout, vendor, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrNetwork, vendor, err)
}

// ErrorKind returns the stable taxonomy name for err, for persistence and
// client display.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotConfigured):
		return "not_configured"
	case errors.Is(err, ErrInvalidCredential):
		return "invalid_credential"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrNetwork):
		return "network_error"
	case errors.Is(err, ErrInvalidResponse):
		return "invalid_response"
	case errors.Is(err, ErrParsing):
		return "parsing_error"
	case errors.Is(err, ErrServer):
		return "server_error"
	default:
		return "unknown"
	}
}
