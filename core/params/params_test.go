package params

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crewhub/core/constants"

	"github.com/labstack/echo/v4"
)

func contextFor(t *testing.T, query string) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestNewQueryParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{"defaults", "", 1, constants.DefaultPageSize},
		{"explicit", "page=3&limit=25", 3, 25},
		{"garbage falls back", "page=x&limit=y", 1, constants.DefaultPageSize},
		{"negative page", "page=-2", 1, constants.DefaultPageSize},
		{"oversized limit caps", "limit=9999", 1, constants.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewQueryParams(contextFor(t, tt.query))
			if p.PageNumber != tt.wantPage || p.PageSize != tt.wantSize {
				t.Errorf("got page %d size %d, want page %d size %d",
					p.PageNumber, p.PageSize, tt.wantPage, tt.wantSize)
			}
		})
	}
}

func TestNewDateRange(t *testing.T) {
	t.Run("explicit dates", func(t *testing.T) {
		r := NewDateRange(contextFor(t, "from=2024-03-01&to=2024-03-31"))
		if r.From != time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) {
			t.Errorf("from = %v", r.From)
		}
		if r.To != time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC) {
			t.Errorf("to = %v", r.To)
		}
	})

	t.Run("rfc3339", func(t *testing.T) {
		r := NewDateRange(contextFor(t, "from=2024-03-01T19:00:00Z"))
		if r.From.Hour() != 19 {
			t.Errorf("from = %v, want the full timestamp", r.From)
		}
	})

	t.Run("missing defaults to trailing month", func(t *testing.T) {
		r := NewDateRange(contextFor(t, ""))
		window := r.To.Sub(r.From)
		if window < 29*24*time.Hour || window > 31*24*time.Hour {
			t.Errorf("default window = %v, want about 30 days", window)
		}
	})

	t.Run("unparseable value keeps the default", func(t *testing.T) {
		r := NewDateRange(contextFor(t, "from=yesterday"))
		if time.Until(r.To) > time.Minute {
			t.Errorf("to = %v, want now", r.To)
		}
	})
}

func TestWindowDays(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 30},
		{"window=7", 7},
		{"window=30", 30},
		{"window=90", 90},
		{"window=13", 30},
		{"window=abc", 30},
	}

	for _, tt := range tests {
		if got := WindowDays(contextFor(t, tt.query)); got != tt.want {
			t.Errorf("WindowDays(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}
