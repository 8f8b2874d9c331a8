package category

import (
	"context"
	"errors"
	"strings"
)

// Suggestion failure reasons.
const (
	FailureServiceUnavailable = "AI_SERVICE_UNAVAILABLE"
	FailureRateLimited        = "AI_RATE_LIMITED"
	FailureAuthError          = "AI_AUTH_ERROR"
	FailureTimeout            = "AI_TIMEOUT"
	FailureParseError         = "AI_PARSE_ERROR"
	FailureUnknown            = "AI_UNKNOWN_ERROR"
	FailureNotConfigured      = "AI_NOT_CONFIGURED"
)

// failureMessages contains the user-facing message for each failure reason.
var failureMessages = map[string]string{
	FailureServiceUnavailable: "The suggestion service is temporarily unavailable. Please try again later.",
	FailureRateLimited:        "Too many suggestion requests. Please wait a few minutes and try again.",
	FailureAuthError:          "The suggestion service is misconfigured. Please contact support.",
	FailureTimeout:            "The suggestion took longer than expected. Please try again.",
	FailureParseError:         "The suggestion could not be understood. Please try again.",
	FailureUnknown:            "An unexpected error occurred while suggesting a category.",
	FailureNotConfigured:      "Category suggestions are not enabled.",
}

// SuggestionFailure describes why a suggestion fell back to the default category.
type SuggestionFailure struct {
	Reason    string
	Message   string
	Retryable bool
}

func newFailure(reason string, retryable bool) SuggestionFailure {
	return SuggestionFailure{
		Reason:    reason,
		Message:   failureMessages[reason],
		Retryable: retryable,
	}
}

// classifyError maps a suggester error to a failure reason and whether retrying may help.
func classifyError(err error) SuggestionFailure {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return newFailure(FailureTimeout, true)
	}

	msg := strings.ToLower(err.Error())

	switch {
	case containsAny(msg, "rate limit", "quota", "429", "resource exhausted"):
		return newFailure(FailureRateLimited, true)
	case containsAny(msg, "401", "403", "invalid api key", "unauthorized", "authentication"):
		return newFailure(FailureAuthError, false)
	case containsAny(msg, "connection", "network", "dial", "timeout", "unavailable", "503"):
		return newFailure(FailureServiceUnavailable, true)
	case containsAny(msg, "parse", "json", "unmarshal", "decode"):
		return newFailure(FailureParseError, true)
	default:
		return newFailure(FailureUnknown, true)
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
