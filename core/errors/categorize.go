package errors

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"strings"
)

// Category buckets an arbitrary failure into one of five presentation
// categories. Clients use the category to pick a retry affordance; only
// network, server and unknown failures are worth retrying.
type Category string

const (
	CategoryNetwork  Category = "network"
	CategoryAuth     Category = "auth"
	CategoryNotFound Category = "not-found"
	CategoryServer   Category = "server"
	CategoryUnknown  Category = "unknown"
)

// CategoryInfo is the fixed presentation tuple for one category.
type CategoryInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CanRetry    bool   `json:"can_retry"`
}

var categoryInfo = map[Category]CategoryInfo{
	CategoryNetwork: {
		Title:       "Connection problem",
		Description: "Could not reach the server. Check your network and try again.",
		CanRetry:    true,
	},
	CategoryAuth: {
		Title:       "Sign-in required",
		Description: "Your session is invalid or expired. Please sign in again.",
		CanRetry:    false,
	},
	CategoryNotFound: {
		Title:       "Not found",
		Description: "The requested resource does not exist or was removed.",
		CanRetry:    false,
	},
	CategoryServer: {
		Title:       "Server error",
		Description: "Something went wrong on our side. Try again in a moment.",
		CanRetry:    true,
	},
	CategoryUnknown: {
		Title:       "Unexpected error",
		Description: "An unexpected error occurred. Try again in a moment.",
		CanRetry:    true,
	},
}

// Info returns the presentation tuple for a category.
func Info(c Category) CategoryInfo {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	return categoryInfo[CategoryUnknown]
}

// StatusError carries an HTTP status from an upstream call.
type StatusError struct {
	Status int
	Msg    string
}

func (e *StatusError) Error() string {
	return e.Msg
}

// Categorize pattern-matches an error against HTTP statuses, known error
// codes and message substrings. nil maps to unknown.
func Categorize(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.Status == 401 || statusErr.Status == 403:
			return CategoryAuth
		case statusErr.Status == 404:
			return CategoryNotFound
		case statusErr.Status >= 500:
			return CategoryServer
		}
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case ErrUnauthorized, ErrForbidden, ErrTokenExpired,
			ErrInvalidTokenFormat, ErrMissingAuthorizationHeader:
			return CategoryAuth
		case ErrNotFound:
			return CategoryNotFound
		case ErrInternalServer:
			return CategoryServer
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return CategoryNetwork
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryNetwork
	}
	if errors.Is(err, sql.ErrNoRows) {
		return CategoryNotFound
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "failed to fetch"),
		strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "network"),
		strings.Contains(msg, "timeout"):
		return CategoryNetwork
	case strings.Contains(msg, "jwt"),
		strings.Contains(msg, "unauthorized"),
		strings.Contains(msg, "token"):
		return CategoryAuth
	case strings.Contains(msg, "not found"):
		return CategoryNotFound
	case strings.Contains(msg, "internal server"):
		return CategoryServer
	}

	return CategoryUnknown
}
