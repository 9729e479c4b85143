package service

import (
	"time"

	"crewhub/modules/analytics/repository"

	"github.com/google/uuid"
)

const (
	weightOverall  = 0.4
	weightSameDay  = 0.35
	weightSameSlot = 0.25

	predictorDefault = 50.0
)

// SliceRates are the three historical attendance rates feeding the blend.
// A slice with no samples carries ok=false and falls back to the overall
// rate, or to the neutral default when nothing has samples at all.
type SliceRates struct {
	Overall    float64
	OverallOK  bool
	SameDay    float64
	SameDayOK  bool
	SameSlot   float64
	SameSlotOK bool
}

type Prediction struct {
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Probability int       `json:"probability"`
	Samples     int       `json:"samples"`
}

// PredictAttendance blends the three rates with fixed weights summing to 1
// and rounds to the nearest integer.
func PredictAttendance(rates SliceRates) int {
	overall := predictorDefault
	if rates.OverallOK {
		overall = rates.Overall
	}

	sameDay := overall
	if rates.SameDayOK {
		sameDay = rates.SameDay
	}
	sameSlot := overall
	if rates.SameSlotOK {
		sameSlot = rates.SameSlot
	}

	blended := overall*weightOverall + sameDay*weightSameDay + sameSlot*weightSameSlot
	return clampScore(roundScore(blended))
}

// PredictionReport carries per-member probabilities for one upcoming
// schedule plus the count of members expected to attend.
type PredictionReport struct {
	ScheduleID    uuid.UUID    `json:"schedule_id"`
	Predictions   []Prediction `json:"predictions"`
	ExpectedCount int          `json:"expected_count"`
}

// BuildPredictions estimates each member's attendance probability for the
// target schedule from the trailing history. Same-day means same weekday;
// same-slot means same starting hour.
func BuildPredictions(
	target repository.ScheduleRow,
	members []repository.MemberRow,
	history []repository.ScheduleRow,
	attendance []repository.AttendanceRow,
) *PredictionReport {
	type key struct {
		schedule uuid.UUID
		user     uuid.UUID
	}
	attended := make(map[key]bool, len(attendance))
	for _, a := range attendance {
		attended[key{a.ScheduleID, a.UserID}] = a.Status != "absent"
	}

	targetDay := target.StartsAt.Weekday()
	targetHour := target.StartsAt.Hour()

	report := &PredictionReport{
		ScheduleID:  target.ID,
		Predictions: make([]Prediction, 0, len(members)),
	}

	for _, m := range members {
		var overall, overallHit, sameDay, sameDayHit, sameSlot, sameSlotHit int
		for _, s := range history {
			if s.ID == target.ID || !s.StartsAt.Before(target.StartsAt) {
				continue
			}
			present, marked := attended[key{s.ID, m.UserID}]
			if !marked {
				continue
			}
			overall++
			if present {
				overallHit++
			}
			if s.StartsAt.Weekday() == targetDay {
				sameDay++
				if present {
					sameDayHit++
				}
			}
			if s.StartsAt.Hour() == targetHour {
				sameSlot++
				if present {
					sameSlotHit++
				}
			}
		}

		rates := SliceRates{}
		rates.Overall, rates.OverallOK = Rate(overallHit, overall)
		rates.SameDay, rates.SameDayOK = Rate(sameDayHit, sameDay)
		rates.SameSlot, rates.SameSlotOK = Rate(sameSlotHit, sameSlot)

		probability := PredictAttendance(rates)
		report.Predictions = append(report.Predictions, Prediction{
			UserID:      m.UserID,
			Name:        m.Name,
			Probability: probability,
			Samples:     overall,
		})
		if probability >= 50 {
			report.ExpectedCount++
		}
	}
	return report
}

// PredictorWindow is the trailing history length feeding predictions.
func PredictorWindow(target time.Time) (time.Time, time.Time) {
	return target.AddDate(0, -3, 0), target
}
