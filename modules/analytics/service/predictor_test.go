package service

import (
	"testing"
	"time"

	"crewhub/modules/analytics/repository"

	"github.com/google/uuid"
)

func TestPredictAttendance(t *testing.T) {
	tests := []struct {
		name  string
		rates SliceRates
		want  int
	}{
		{
			name: "all slices agree",
			rates: SliceRates{
				Overall: 80, OverallOK: true,
				SameDay: 80, SameDayOK: true,
				SameSlot: 80, SameSlotOK: true,
			},
			want: 80,
		},
		{
			name: "weighted blend",
			rates: SliceRates{
				Overall: 100, OverallOK: true,
				SameDay: 0, SameDayOK: true,
				SameSlot: 60, SameSlotOK: true,
			},
			want: 55, // 100*0.4 + 0*0.35 + 60*0.25
		},
		{
			name: "missing slices fall back to overall",
			rates: SliceRates{
				Overall: 70, OverallOK: true,
			},
			want: 70,
		},
		{
			name: "only a slot rate still anchors on the default overall",
			rates: SliceRates{
				SameSlot: 100, SameSlotOK: true,
			},
			want: 63, // 50*0.4 + 50*0.35 + 100*0.25
		},
		{
			name:  "no history at all",
			rates: SliceRates{},
			want:  50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictAttendance(tt.rates)
			if got != tt.want {
				t.Errorf("PredictAttendance() = %d, want %d", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("probability %d outside [0, 100]", got)
			}
		})
	}
}

func TestBuildPredictions(t *testing.T) {
	// Target is a Friday 19:00 practice.
	targetStart := time.Date(2024, 5, 17, 19, 0, 0, 0, time.UTC)
	target := repository.ScheduleRow{ID: uuid.New(), StartsAt: targetStart}

	reliable := uuid.New()
	newcomer := uuid.New()
	members := []repository.MemberRow{
		{UserID: reliable, Name: "reliable"},
		{UserID: newcomer, Name: "newcomer"},
	}

	// Four prior Fridays at the same hour, all attended by the regular.
	history := make([]repository.ScheduleRow, 4)
	var attendance []repository.AttendanceRow
	for i := range history {
		starts := targetStart.AddDate(0, 0, -7*(i+1))
		history[i] = repository.ScheduleRow{ID: uuid.New(), StartsAt: starts}
		attendance = append(attendance, repository.AttendanceRow{
			ScheduleID: history[i].ID, UserID: reliable, Status: "present", StartsAt: starts,
		})
	}

	report := BuildPredictions(target, members, history, attendance)

	if report.ScheduleID != target.ID {
		t.Fatalf("schedule id = %s, want target", report.ScheduleID)
	}
	if len(report.Predictions) != 2 {
		t.Fatalf("got %d predictions, want 2", len(report.Predictions))
	}

	byUser := map[uuid.UUID]Prediction{}
	for _, p := range report.Predictions {
		byUser[p.UserID] = p
	}

	if p := byUser[reliable]; p.Probability != 100 || p.Samples != 4 {
		t.Errorf("reliable = %d%% over %d samples, want 100%% over 4", p.Probability, p.Samples)
	}
	if p := byUser[newcomer]; p.Probability != 50 || p.Samples != 0 {
		t.Errorf("newcomer = %d%% over %d samples, want the neutral 50%%", p.Probability, p.Samples)
	}

	// Only the regular clears the expected-attendance bar; the newcomer sits
	// exactly at 50 and counts too.
	if report.ExpectedCount != 2 {
		t.Errorf("expected count = %d, want 2", report.ExpectedCount)
	}
}

func TestBuildPredictionsIgnoresFutureAndTarget(t *testing.T) {
	targetStart := time.Date(2024, 5, 17, 19, 0, 0, 0, time.UTC)
	target := repository.ScheduleRow{ID: uuid.New(), StartsAt: targetStart}
	user := uuid.New()
	members := []repository.MemberRow{{UserID: user, Name: "m"}}

	past := repository.ScheduleRow{ID: uuid.New(), StartsAt: targetStart.AddDate(0, 0, -7)}
	future := repository.ScheduleRow{ID: uuid.New(), StartsAt: targetStart.AddDate(0, 0, 7)}
	history := []repository.ScheduleRow{past, future, target}

	attendance := []repository.AttendanceRow{
		{ScheduleID: past.ID, UserID: user, Status: "absent", StartsAt: past.StartsAt},
		// Marks against the target itself or later schedules carry no weight.
		{ScheduleID: future.ID, UserID: user, Status: "present", StartsAt: future.StartsAt},
		{ScheduleID: target.ID, UserID: user, Status: "present", StartsAt: target.StartsAt},
	}

	report := BuildPredictions(target, members, history, attendance)

	p := report.Predictions[0]
	if p.Samples != 1 {
		t.Fatalf("samples = %d, want only the past schedule", p.Samples)
	}
	if p.Probability != 0 {
		t.Errorf("probability = %d, want 0 from a single absence", p.Probability)
	}
	if report.ExpectedCount != 0 {
		t.Errorf("expected count = %d, want 0", report.ExpectedCount)
	}
}

func TestPredictorWindow(t *testing.T) {
	target := time.Date(2024, 5, 17, 19, 0, 0, 0, time.UTC)
	from, to := PredictorWindow(target)
	if !to.Equal(target) {
		t.Errorf("window end = %v, want the target time", to)
	}
	if !from.Equal(target.AddDate(0, -3, 0)) {
		t.Errorf("window start = %v, want three months back", from)
	}
}
