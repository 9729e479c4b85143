package service

import (
	"sort"
	"time"

	"crewhub/modules/analytics/repository"

	"github.com/google/uuid"
)

const (
	churnPointsLowAttendance = 35
	churnPointsInactiveDays  = 30
	churnPointsNoBoard       = 15
	churnPointsLowRsvp       = 20
	churnLowAttendanceBelow  = 50.0
	churnLowRsvpBelow        = 40.0
	churnInactiveDaysAtLeast = 14
)

type ChurnLevel string

const (
	ChurnSafe     ChurnLevel = "safe"
	ChurnCaution  ChurnLevel = "caution"
	ChurnRisk     ChurnLevel = "risk"
	ChurnCritical ChurnLevel = "critical"
)

// Churn factor names surfaced as reasons.
const (
	FactorLowAttendance   = "low_attendance"
	FactorInactiveDays    = "inactive_days"
	FactorNoBoardActivity = "no_board_activity"
	FactorLowRsvp         = "low_rsvp"
)

// ChurnSignals are one member's raw inputs; rates carry an ok flag so a zero
// denominator reads as no signal instead of zero percent.
type ChurnSignals struct {
	AttendanceRate   float64
	HasAttendanceSig bool
	RsvpRate         float64
	HasRsvpSig       bool
	InactiveDays     int
	BoardActivity    int
}

type ChurnResult struct {
	UserID  uuid.UUID  `json:"user_id"`
	Name    string     `json:"name"`
	Score   int        `json:"score"`
	Level   ChurnLevel `json:"level"`
	Factors []string   `json:"factors"`
}

// ChurnSummary groups member counts per level.
type ChurnSummary struct {
	Members  []ChurnResult `json:"members"`
	Safe     int           `json:"safe"`
	Caution  int           `json:"caution"`
	Risk     int           `json:"risk"`
	Critical int           `json:"critical"`
}

// CalcChurn scores one member from independent weighted signals, clamped to
// [0,100].
func CalcChurn(signals ChurnSignals) (int, ChurnLevel, []string) {
	score := 0
	factors := []string{}

	if signals.HasAttendanceSig && signals.AttendanceRate < churnLowAttendanceBelow {
		score += churnPointsLowAttendance
		factors = append(factors, FactorLowAttendance)
	}
	if signals.InactiveDays >= churnInactiveDaysAtLeast {
		score += churnPointsInactiveDays
		factors = append(factors, FactorInactiveDays)
	}
	if signals.BoardActivity == 0 {
		score += churnPointsNoBoard
		factors = append(factors, FactorNoBoardActivity)
	}
	if signals.HasRsvpSig && signals.RsvpRate < churnLowRsvpBelow {
		score += churnPointsLowRsvp
		factors = append(factors, FactorLowRsvp)
	}

	score = clampScore(score)
	return score, churnLevel(score), factors
}

func churnLevel(score int) ChurnLevel {
	switch {
	case score >= 75:
		return ChurnCritical
	case score >= 50:
		return ChurnRisk
	case score >= 25:
		return ChurnCaution
	default:
		return ChurnSafe
	}
}

// BuildChurnSummary derives per-member signals from raw rows. With no
// historical schedules in the window every member defaults to safe.
func BuildChurnSummary(
	members []repository.MemberRow,
	schedules []repository.ScheduleRow,
	attendance []repository.AttendanceRow,
	rsvps []repository.RsvpRow,
	board []repository.BoardActivityRow,
	now time.Time,
) *ChurnSummary {
	summary := &ChurnSummary{Members: make([]ChurnResult, 0, len(members))}

	if len(schedules) == 0 {
		for _, m := range members {
			summary.Members = append(summary.Members, ChurnResult{
				UserID: m.UserID, Name: m.Name, Level: ChurnSafe, Factors: []string{},
			})
		}
		summary.Safe = len(members)
		return summary
	}

	type perMember struct {
		attended   int
		marked     int
		responded  int
		lastActive time.Time
		board      int
	}
	stats := make(map[uuid.UUID]*perMember, len(members))
	for _, m := range members {
		stats[m.UserID] = &perMember{lastActive: m.JoinedAt}
	}

	for _, a := range attendance {
		s, ok := stats[a.UserID]
		if !ok {
			continue
		}
		s.marked++
		if a.Status != "absent" {
			s.attended++
			if a.StartsAt.After(s.lastActive) {
				s.lastActive = a.StartsAt
			}
		}
	}
	for _, r := range rsvps {
		if s, ok := stats[r.UserID]; ok {
			s.responded++
		}
	}
	for _, b := range board {
		s, ok := stats[b.UserID]
		if !ok {
			continue
		}
		s.board = b.Posts + b.Comments
		if b.LastActive != nil && b.LastActive.After(s.lastActive) {
			s.lastActive = *b.LastActive
		}
	}

	total := len(schedules)
	for _, m := range members {
		s := stats[m.UserID]

		signals := ChurnSignals{
			InactiveDays:  int(now.Sub(s.lastActive).Hours() / 24),
			BoardActivity: s.board,
		}
		if rate, ok := Rate(s.attended, total); ok {
			signals.AttendanceRate = rate
			signals.HasAttendanceSig = true
		}
		if rate, ok := Rate(s.responded, total); ok {
			signals.RsvpRate = rate
			signals.HasRsvpSig = true
		}

		score, level, factors := CalcChurn(signals)
		summary.Members = append(summary.Members, ChurnResult{
			UserID: m.UserID, Name: m.Name, Score: score, Level: level, Factors: factors,
		})

		switch level {
		case ChurnSafe:
			summary.Safe++
		case ChurnCaution:
			summary.Caution++
		case ChurnRisk:
			summary.Risk++
		case ChurnCritical:
			summary.Critical++
		}
	}

	sort.SliceStable(summary.Members, func(i, j int) bool {
		return summary.Members[i].Score > summary.Members[j].Score
	})
	return summary
}
