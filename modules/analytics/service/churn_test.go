package service

import (
	"reflect"
	"testing"
	"time"

	"crewhub/modules/analytics/repository"

	"github.com/google/uuid"
)

func TestCalcChurn(t *testing.T) {
	tests := []struct {
		name        string
		signals     ChurnSignals
		wantScore   int
		wantLevel   ChurnLevel
		wantFactors []string
	}{
		{
			name: "active member is safe",
			signals: ChurnSignals{
				AttendanceRate: 90, HasAttendanceSig: true,
				RsvpRate: 80, HasRsvpSig: true,
				InactiveDays:  2,
				BoardActivity: 5,
			},
			wantScore:   0,
			wantLevel:   ChurnSafe,
			wantFactors: []string{},
		},
		{
			name: "quiet on the board only",
			signals: ChurnSignals{
				AttendanceRate: 90, HasAttendanceSig: true,
				RsvpRate: 80, HasRsvpSig: true,
				InactiveDays: 3,
			},
			wantScore:   15,
			wantLevel:   ChurnSafe,
			wantFactors: []string{FactorNoBoardActivity},
		},
		{
			name: "low attendance alone is caution",
			signals: ChurnSignals{
				AttendanceRate: 40, HasAttendanceSig: true,
				RsvpRate: 60, HasRsvpSig: true,
				BoardActivity: 1,
			},
			wantScore:   35,
			wantLevel:   ChurnCaution,
			wantFactors: []string{FactorLowAttendance},
		},
		{
			name: "low attendance plus long silence is risk",
			signals: ChurnSignals{
				AttendanceRate: 30, HasAttendanceSig: true,
				RsvpRate: 60, HasRsvpSig: true,
				InactiveDays:  20,
				BoardActivity: 1,
			},
			wantScore:   65,
			wantLevel:   ChurnRisk,
			wantFactors: []string{FactorLowAttendance, FactorInactiveDays},
		},
		{
			name: "all four factors cap at the clamp",
			signals: ChurnSignals{
				AttendanceRate: 10, HasAttendanceSig: true,
				RsvpRate: 10, HasRsvpSig: true,
				InactiveDays: 30,
			},
			wantScore: 100,
			wantLevel: ChurnCritical,
			wantFactors: []string{
				FactorLowAttendance, FactorInactiveDays,
				FactorNoBoardActivity, FactorLowRsvp,
			},
		},
		{
			name: "missing rate signals do not count against the member",
			signals: ChurnSignals{
				InactiveDays:  1,
				BoardActivity: 2,
			},
			wantScore:   0,
			wantLevel:   ChurnSafe,
			wantFactors: []string{},
		},
		{
			name: "thresholds are exclusive on rates inclusive on days",
			signals: ChurnSignals{
				AttendanceRate: 50, HasAttendanceSig: true,
				RsvpRate: 40, HasRsvpSig: true,
				InactiveDays:  14,
				BoardActivity: 1,
			},
			wantScore:   30,
			wantLevel:   ChurnCaution,
			wantFactors: []string{FactorInactiveDays},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, level, factors := CalcChurn(tt.signals)
			if score != tt.wantScore || level != tt.wantLevel {
				t.Errorf("CalcChurn() = (%d, %q), want (%d, %q)",
					score, level, tt.wantScore, tt.wantLevel)
			}
			if !reflect.DeepEqual(factors, tt.wantFactors) {
				t.Errorf("factors = %v, want %v", factors, tt.wantFactors)
			}
		})
	}
}

func TestBuildChurnSummaryNoSchedules(t *testing.T) {
	members := []repository.MemberRow{
		{UserID: uuid.New(), Name: "a"},
		{UserID: uuid.New(), Name: "b"},
	}

	summary := BuildChurnSummary(members, nil, nil, nil, nil, time.Now())

	if summary.Safe != 2 || summary.Caution != 0 || summary.Risk != 0 || summary.Critical != 0 {
		t.Fatalf("counts = %d/%d/%d/%d, want everyone safe",
			summary.Safe, summary.Caution, summary.Risk, summary.Critical)
	}
	for _, m := range summary.Members {
		if m.Score != 0 || m.Level != ChurnSafe || len(m.Factors) != 0 {
			t.Errorf("member %s = %+v, want zeroed safe result", m.Name, m)
		}
	}
}

func TestBuildChurnSummaryRanksAndCounts(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	regular := uuid.New()
	ghost := uuid.New()
	members := []repository.MemberRow{
		{UserID: regular, Name: "regular", JoinedAt: now.AddDate(0, -2, 0)},
		{UserID: ghost, Name: "ghost", JoinedAt: now.AddDate(0, -2, 0)},
	}

	schedules := make([]repository.ScheduleRow, 4)
	var attendance []repository.AttendanceRow
	var rsvps []repository.RsvpRow
	for i := range schedules {
		starts := now.AddDate(0, 0, -7*(len(schedules)-i))
		schedules[i] = repository.ScheduleRow{ID: uuid.New(), StartsAt: starts}
		attendance = append(attendance, repository.AttendanceRow{
			ScheduleID: schedules[i].ID, UserID: regular, Status: "present", StartsAt: starts,
		})
		rsvps = append(rsvps, repository.RsvpRow{ScheduleID: schedules[i].ID, UserID: regular, Response: "going"})
	}
	board := []repository.BoardActivityRow{
		{UserID: regular, Posts: 2, Comments: 3},
	}

	summary := BuildChurnSummary(members, schedules, attendance, rsvps, board, now)

	if len(summary.Members) != 2 {
		t.Fatalf("got %d members, want 2", len(summary.Members))
	}
	if summary.Members[0].UserID != ghost {
		t.Fatalf("highest churn score is %s, want ghost", summary.Members[0].Name)
	}

	// Ghost attended nothing, never RSVPed, never posted, and has been quiet
	// since joining two months ago. All four factors fire.
	g := summary.Members[0]
	if g.Score != 100 || g.Level != ChurnCritical || len(g.Factors) != 4 {
		t.Errorf("ghost = score %d level %q factors %v", g.Score, g.Level, g.Factors)
	}

	r := summary.Members[1]
	if r.Score != 0 || r.Level != ChurnSafe {
		t.Errorf("regular = score %d level %q, want safe", r.Score, r.Level)
	}

	if summary.Safe != 1 || summary.Critical != 1 {
		t.Errorf("counts = safe %d critical %d, want 1 and 1", summary.Safe, summary.Critical)
	}
}
