package params

import (
	"strconv"
	"time"

	"crewhub/core/constants"

	"github.com/labstack/echo/v4"
)

// QueryParams holds the common list-endpoint query parameters.
type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string
}

func NewQueryParams(c echo.Context) *QueryParams {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	size, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || size < 1 {
		size = constants.DefaultPageSize
	}
	if size > constants.MaxPageSize {
		size = constants.MaxPageSize
	}

	return &QueryParams{
		PageNumber: page,
		PageSize:   size,
		Search:     c.QueryParam("search"),
	}
}

// DateRange holds an optional from/to window parsed from query parameters.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange parses from/to query params (RFC3339 or YYYY-MM-DD). Missing
// values default to a trailing 30-day window ending now.
func NewDateRange(c echo.Context) *DateRange {
	now := time.Now()
	r := &DateRange{From: now.AddDate(0, 0, -30), To: now}

	if v := c.QueryParam("from"); v != "" {
		if t, err := parseDate(v); err == nil {
			r.From = t
		}
	}
	if v := c.QueryParam("to"); v != "" {
		if t, err := parseDate(v); err == nil {
			r.To = t
		}
	}
	return r
}

// WindowDays parses the lookback window parameter, constrained to the
// supported analytics windows. Unknown values fall back to 30.
func WindowDays(c echo.Context) int {
	days, err := strconv.Atoi(c.QueryParam("window"))
	if err != nil {
		return 30
	}
	for _, w := range constants.AnalyticsWindows {
		if days == w {
			return days
		}
	}
	return 30
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
