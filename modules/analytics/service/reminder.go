package service

import (
	"sort"

	"crewhub/modules/analytics/repository"

	"github.com/google/uuid"
)

const (
	reminderWeightNoShow     = 40.0
	reminderWeightNoResponse = 30.0
	reminderBonusConsecutive = 30
	consecutiveAbsenceFloor  = 3
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ReminderStats are one member's raw signals over the lookback window.
type ReminderStats struct {
	UserID              uuid.UUID `json:"user_id"`
	Name                string    `json:"name"`
	NoShowCount         int       `json:"no_show_count"`
	NoResponseCount     int       `json:"no_response_count"`
	TotalSchedules      int       `json:"total_schedules"`
	ConsecutiveAbsences int       `json:"consecutive_absences"`
}

type ReminderTarget struct {
	ReminderStats
	Score int       `json:"score"`
	Level RiskLevel `json:"level"`
}

// CalcReminderRisk scores one member's need for a nudge. Signals are
// independent; the score is their weighted sum clamped to [0,100]. A member
// with no schedules in the window has no signal and scores zero.
func CalcReminderRisk(stats ReminderStats) (int, RiskLevel) {
	if stats.TotalSchedules == 0 {
		return 0, RiskLow
	}

	noShowRate := float64(stats.NoShowCount) / float64(stats.TotalSchedules)
	noResponseRate := float64(stats.NoResponseCount) / float64(stats.TotalSchedules)

	raw := noShowRate*reminderWeightNoShow + noResponseRate*reminderWeightNoResponse
	score := roundScore(raw)
	if stats.ConsecutiveAbsences >= consecutiveAbsenceFloor {
		score += reminderBonusConsecutive
	}
	score = clampScore(score)

	return score, reminderLevel(score)
}

func reminderLevel(score int) RiskLevel {
	switch {
	case score >= 50:
		return RiskHigh
	case score >= 30:
		return RiskMedium
	default:
		return RiskLow
	}
}

// BuildReminderTargets derives per-member signals from raw rows and ranks
// members by descending score.
func BuildReminderTargets(
	members []repository.MemberRow,
	schedules []repository.ScheduleRow,
	attendance []repository.AttendanceRow,
	rsvps []repository.RsvpRow,
) []ReminderTarget {
	type key struct {
		schedule uuid.UUID
		user     uuid.UUID
	}

	attendanceByKey := make(map[key]string, len(attendance))
	for _, a := range attendance {
		attendanceByKey[key{a.ScheduleID, a.UserID}] = a.Status
	}
	rsvpByKey := make(map[key]struct{}, len(rsvps))
	for _, r := range rsvps {
		rsvpByKey[key{r.ScheduleID, r.UserID}] = struct{}{}
	}

	ordered := make([]repository.ScheduleRow, len(schedules))
	copy(ordered, schedules)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].StartsAt.Before(ordered[j].StartsAt) })

	targets := make([]ReminderTarget, 0, len(members))
	for _, m := range members {
		stats := ReminderStats{
			UserID:         m.UserID,
			Name:           m.Name,
			TotalSchedules: len(ordered),
		}

		run := 0
		for _, s := range ordered {
			status, marked := attendanceByKey[key{s.ID, m.UserID}]
			if status == "absent" {
				stats.NoShowCount++
				run++
			} else {
				run = 0
			}
			if _, responded := rsvpByKey[key{s.ID, m.UserID}]; !responded && !marked {
				stats.NoResponseCount++
			}
		}
		stats.ConsecutiveAbsences = run

		score, level := CalcReminderRisk(stats)
		targets = append(targets, ReminderTarget{ReminderStats: stats, Score: score, Level: level})
	}

	sort.SliceStable(targets, func(i, j int) bool { return targets[i].Score > targets[j].Score })
	return targets
}
