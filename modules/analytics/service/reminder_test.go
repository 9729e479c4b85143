package service

import (
	"testing"
	"time"

	"crewhub/modules/analytics/repository"

	"github.com/google/uuid"
)

func TestCalcReminderRisk(t *testing.T) {
	tests := []struct {
		name      string
		stats     ReminderStats
		wantScore int
		wantLevel RiskLevel
	}{
		{
			name: "two no-shows one silence and a long absence run",
			stats: ReminderStats{
				NoShowCount:         2,
				NoResponseCount:     1,
				TotalSchedules:      5,
				ConsecutiveAbsences: 3,
			},
			wantScore: 52,
			wantLevel: RiskHigh,
		},
		{
			name:      "no schedules means no signal",
			stats:     ReminderStats{},
			wantScore: 0,
			wantLevel: RiskLow,
		},
		{
			name: "everything fires stays clamped",
			stats: ReminderStats{
				NoShowCount:         10,
				NoResponseCount:     10,
				TotalSchedules:      10,
				ConsecutiveAbsences: 10,
			},
			wantScore: 100,
			wantLevel: RiskHigh,
		},
		{
			name: "mild signals stay low",
			stats: ReminderStats{
				NoShowCount:     1,
				NoResponseCount: 1,
				TotalSchedules:  10,
			},
			wantScore: 7,
			wantLevel: RiskLow,
		},
		{
			name: "just under the medium cut",
			stats: ReminderStats{
				NoShowCount:     4,
				NoResponseCount: 2,
				TotalSchedules:  8,
			},
			wantScore: 28, // 0.5*40 + 0.25*30 = 27.5 rounded up
			wantLevel: RiskLow,
		},
		{
			name: "medium band",
			stats: ReminderStats{
				NoShowCount:    4,
				TotalSchedules: 5,
			},
			wantScore: 32,
			wantLevel: RiskMedium,
		},
		{
			name: "consecutive bonus needs the floor",
			stats: ReminderStats{
				NoShowCount:         2,
				TotalSchedules:      10,
				ConsecutiveAbsences: 2,
			},
			wantScore: 8,
			wantLevel: RiskLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, level := CalcReminderRisk(tt.stats)
			if score != tt.wantScore || level != tt.wantLevel {
				t.Errorf("CalcReminderRisk() = (%d, %q), want (%d, %q)",
					score, level, tt.wantScore, tt.wantLevel)
			}
			if score < 0 || score > 100 {
				t.Errorf("score %d outside [0, 100]", score)
			}
		})
	}
}

func TestBuildReminderTargets(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	members := []repository.MemberRow{
		{UserID: alice, Name: "alice"},
		{UserID: bob, Name: "bob"},
	}

	base := time.Date(2024, 3, 1, 19, 0, 0, 0, time.UTC)
	schedules := make([]repository.ScheduleRow, 4)
	for i := range schedules {
		schedules[i] = repository.ScheduleRow{ID: uuid.New(), StartsAt: base.AddDate(0, 0, 7*i)}
	}

	// Alice attends everything; Bob is absent at the last three and never
	// responds to anything.
	var attendance []repository.AttendanceRow
	var rsvps []repository.RsvpRow
	for i, s := range schedules {
		attendance = append(attendance, repository.AttendanceRow{
			ScheduleID: s.ID, UserID: alice, Status: "present", StartsAt: s.StartsAt,
		})
		rsvps = append(rsvps, repository.RsvpRow{ScheduleID: s.ID, UserID: alice, Response: "going"})
		if i > 0 {
			attendance = append(attendance, repository.AttendanceRow{
				ScheduleID: s.ID, UserID: bob, Status: "absent", StartsAt: s.StartsAt,
			})
		}
	}

	targets := BuildReminderTargets(members, schedules, attendance, rsvps)
	if len(targets) != 2 {
		t.Fatalf("got %d targets, want 2", len(targets))
	}

	// Ranked by score, Bob first.
	if targets[0].UserID != bob {
		t.Fatalf("highest risk is %s, want bob", targets[0].Name)
	}
	bobStats := targets[0]
	if bobStats.NoShowCount != 3 || bobStats.ConsecutiveAbsences != 3 {
		t.Errorf("bob stats = %+v, want 3 no-shows and a 3-run", bobStats.ReminderStats)
	}
	// Bob never RSVPed and has no mark for the first schedule.
	if bobStats.NoResponseCount != 1 {
		t.Errorf("bob no-response count = %d, want 1", bobStats.NoResponseCount)
	}
	if bobStats.Level != RiskHigh {
		t.Errorf("bob level = %q, want high", bobStats.Level)
	}

	aliceStats := targets[1]
	if aliceStats.Score != 0 || aliceStats.Level != RiskLow {
		t.Errorf("alice = (%d, %q), want (0, low)", aliceStats.Score, aliceStats.Level)
	}
}

func TestBuildReminderTargetsNoSchedules(t *testing.T) {
	members := []repository.MemberRow{{UserID: uuid.New(), Name: "solo"}}

	targets := BuildReminderTargets(members, nil, nil, nil)
	if len(targets) != 1 {
		t.Fatalf("got %d targets, want 1", len(targets))
	}
	if targets[0].Score != 0 || targets[0].Level != RiskLow {
		t.Errorf("member with no schedules = (%d, %q), want (0, low)", targets[0].Score, targets[0].Level)
	}
}
