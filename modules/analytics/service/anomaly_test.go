package service

import (
	"testing"

	"crewhub/modules/analytics/repository"
)

func TestSeverityFor(t *testing.T) {
	dev := func(v float64) *float64 { return &v }

	tests := []struct {
		name      string
		deviation *float64
		want      Severity
	}{
		{"no baseline", nil, SeverityNormal},
		{"small move", dev(29.9), SeverityNormal},
		{"warning boundary", dev(30), SeverityWarning},
		{"negative warning", dev(-35), SeverityWarning},
		{"critical boundary", dev(50), SeverityCritical},
		{"collapse", dev(-100), SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := severityFor(tt.deviation); got != tt.want {
				t.Errorf("severityFor(%v) = %q, want %q", tt.deviation, got, tt.want)
			}
		})
	}
}

func TestDetectAnomaliesStablePeriods(t *testing.T) {
	counts := &repository.PeriodCounts{
		Schedules: 4, Marked: 20, Present: 18,
		Posts: 5, Comments: 10,
		Expense: 30000,
	}

	report := DetectAnomalies(counts, counts, 8, 8)

	if report.HealthScore != 100 {
		t.Fatalf("health = %d, want 100 for identical periods", report.HealthScore)
	}
	for _, a := range report.Anomalies {
		if a.Severity != SeverityNormal {
			t.Errorf("%s severity = %q, want normal", a.Metric, a.Severity)
		}
	}
}

func TestDetectAnomaliesPenalties(t *testing.T) {
	previous := &repository.PeriodCounts{
		Schedules: 4, Marked: 20, Present: 18,
		Posts: 10, Comments: 10,
		Expense: 10000,
	}
	// Attendance collapses, posting drops by 40%, spend triples. Active
	// membership holds steady.
	current := &repository.PeriodCounts{
		Schedules: 4, Marked: 20, Present: 8,
		Posts: 6, Comments: 6,
		Expense: 30000,
	}

	report := DetectAnomalies(current, previous, 8, 8)

	bySeverity := map[string]Severity{}
	for _, a := range report.Anomalies {
		bySeverity[a.Metric] = a.Severity
	}

	// 40% vs 90% attendance is a 55.6% drop.
	if bySeverity["attendance_rate"] != SeverityCritical {
		t.Errorf("attendance_rate = %q, want critical", bySeverity["attendance_rate"])
	}
	if bySeverity["post_count"] != SeverityWarning {
		t.Errorf("post_count = %q, want warning", bySeverity["post_count"])
	}
	if bySeverity["active_members"] != SeverityNormal {
		t.Errorf("active_members = %q, want normal", bySeverity["active_members"])
	}
	if bySeverity["expense"] != SeverityCritical {
		t.Errorf("expense = %q, want critical", bySeverity["expense"])
	}

	// 100 - 30 - 15 - 30.
	if report.HealthScore != 25 {
		t.Errorf("health = %d, want 25", report.HealthScore)
	}
}

func TestDetectAnomaliesHealthFloor(t *testing.T) {
	previous := &repository.PeriodCounts{
		Marked: 10, Present: 10,
		Posts:   20,
		Expense: 10000,
	}
	current := &repository.PeriodCounts{
		Marked: 10, Present: 1,
		Expense: 50000,
	}

	report := DetectAnomalies(current, previous, 0, 10)

	if report.HealthScore != 0 {
		t.Errorf("health = %d, want floor at 0 with four critical findings", report.HealthScore)
	}
}

func TestDetectAnomaliesQuietBaseline(t *testing.T) {
	// A group with no prior activity has nothing to deviate from.
	report := DetectAnomalies(
		&repository.PeriodCounts{Marked: 10, Present: 9, Posts: 3, Expense: 5000},
		&repository.PeriodCounts{},
		5, 0,
	)

	for _, a := range report.Anomalies {
		if a.Deviation != nil {
			t.Errorf("%s deviation = %v, want nil without a baseline", a.Metric, *a.Deviation)
		}
		if a.Severity != SeverityNormal {
			t.Errorf("%s severity = %q, want normal", a.Metric, a.Severity)
		}
	}
	if report.HealthScore != 100 {
		t.Errorf("health = %d, want 100", report.HealthScore)
	}
}

func TestBuildActivityReport(t *testing.T) {
	previous := &repository.PeriodCounts{
		Schedules: 8, Marked: 40, Present: 36,
		Posts: 10, Comments: 20, NewMembers: 2,
		Income: 100000, Expense: 40000,
	}
	current := &repository.PeriodCounts{
		Schedules: 4, Marked: 20, Present: 9,
		Posts: 10, Comments: 5, NewMembers: 0,
		Income: 50000, Expense: 60000,
	}

	report := BuildActivityReport(30, current, previous)

	if report.WindowDays != 30 {
		t.Fatalf("window = %d, want 30", report.WindowDays)
	}
	if report.Schedules.DropPercent == nil || *report.Schedules.DropPercent != 50 {
		t.Errorf("schedules drop = %v, want 50", report.Schedules.DropPercent)
	}
	if report.AttendanceRate.DropPercent == nil || *report.AttendanceRate.DropPercent != 50 {
		t.Errorf("attendance drop = %v, want 50 (45%% vs 90%%)", report.AttendanceRate.DropPercent)
	}
	if report.Posts.DropPercent == nil || *report.Posts.DropPercent != 0 {
		t.Errorf("posts drop = %v, want 0", report.Posts.DropPercent)
	}
	// Spend went up, so the drop reads negative.
	if report.Expense.DropPercent == nil || *report.Expense.DropPercent != -50 {
		t.Errorf("expense drop = %v, want -50", report.Expense.DropPercent)
	}
}

func TestBuildActivityReportEmptyBaseline(t *testing.T) {
	report := BuildActivityReport(30,
		&repository.PeriodCounts{Schedules: 3, Posts: 2},
		&repository.PeriodCounts{},
	)

	if report.Schedules.DropPercent != nil {
		t.Errorf("schedules drop = %v, want nil with an empty baseline", *report.Schedules.DropPercent)
	}
	if report.Income.DropPercent != nil {
		t.Errorf("income drop = %v, want nil", *report.Income.DropPercent)
	}
}
