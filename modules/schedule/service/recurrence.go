package service

import (
	"crewhub/modules/schedule/entity"

	"github.com/google/uuid"
)

const maxOccurrences = 52

// ExpandWeekly materializes a weekly recurrence into count occurrences
// starting at the base schedule's time. Count is capped at one year of
// weekly rows.
func ExpandWeekly(base entity.Schedule, count int) []entity.Schedule {
	if count < 1 {
		count = 1
	}
	if count > maxOccurrences {
		count = maxOccurrences
	}

	if count == 1 {
		return []entity.Schedule{base}
	}

	recurrenceID := uuid.New()
	base.RecurrenceID = &recurrenceID

	out := make([]entity.Schedule, count)
	for i := 0; i < count; i++ {
		occ := base
		occ.StartsAt = base.StartsAt.AddDate(0, 0, 7*i)
		occ.EndsAt = base.EndsAt.AddDate(0, 0, 7*i)
		out[i] = occ
	}
	return out
}

// ResolveScopeTargets selects which rows of a recurrence series an action
// targets. The series must contain the pivot schedule; rows outside the
// series are never returned.
func ResolveScopeTargets(series []entity.Schedule, pivot entity.Schedule, scope entity.RecurrenceScope) []uuid.UUID {
	switch scope {
	case entity.ScopeAll:
		ids := make([]uuid.UUID, len(series))
		for i, s := range series {
			ids[i] = s.ID
		}
		return ids
	case entity.ScopeThisAndFuture:
		var ids []uuid.UUID
		for _, s := range series {
			if !s.StartsAt.Before(pivot.StartsAt) {
				ids = append(ids, s.ID)
			}
		}
		return ids
	default:
		return []uuid.UUID{pivot.ID}
	}
}
