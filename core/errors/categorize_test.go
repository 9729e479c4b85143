package errors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
)

func TestCategorizeStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   Category
	}{
		{"unauthorized", 401, CategoryAuth},
		{"forbidden", 403, CategoryAuth},
		{"not found", 404, CategoryNotFound},
		{"internal", 500, CategoryServer},
		{"bad gateway", 502, CategoryServer},
		{"unmatched status", 418, CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categorize(&StatusError{Status: tt.status, Msg: "upstream call failed"})
			if got != tt.want {
				t.Errorf("Categorize(status %d) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestCategorizeMessageSubstrings(t *testing.T) {
	tests := []struct {
		msg  string
		want Category
	}{
		{"Failed to fetch", CategoryNetwork},
		{"dial tcp: connection refused", CategoryNetwork},
		{"request timeout exceeded", CategoryNetwork},
		{"jwt signature invalid", CategoryAuth},
		{"row not found", CategoryNotFound},
		{"internal server error", CategoryServer},
		{"something exploded", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			got := Categorize(errors.New(tt.msg))
			if got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.msg, got, tt.want)
			}
		})
	}
}

func TestCategorizeAppErrors(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want Category
	}{
		{ErrUnauthorized, CategoryAuth},
		{ErrTokenExpired, CategoryAuth},
		{ErrNotFound, CategoryNotFound},
		{ErrInternalServer, CategoryServer},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			got := Categorize(NewAppError(tt.code, "boom", nil))
			if got != tt.want {
				t.Errorf("Categorize(%s) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestCategorizeWrappedSentinels(t *testing.T) {
	if got := Categorize(fmt.Errorf("query: %w", sql.ErrNoRows)); got != CategoryNotFound {
		t.Errorf("wrapped sql.ErrNoRows = %q, want %q", got, CategoryNotFound)
	}
	if got := Categorize(fmt.Errorf("read: %w", context.DeadlineExceeded)); got != CategoryNetwork {
		t.Errorf("wrapped deadline = %q, want %q", got, CategoryNetwork)
	}
	if got := Categorize(nil); got != CategoryUnknown {
		t.Errorf("nil = %q, want %q", got, CategoryUnknown)
	}
}

func TestCategoryRetryability(t *testing.T) {
	retryable := map[Category]bool{
		CategoryNetwork:  true,
		CategoryServer:   true,
		CategoryUnknown:  true,
		CategoryAuth:     false,
		CategoryNotFound: false,
	}
	for category, want := range retryable {
		if got := Info(category).CanRetry; got != want {
			t.Errorf("Info(%q).CanRetry = %v, want %v", category, got, want)
		}
	}
}
