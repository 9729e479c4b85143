package service

import (
	"testing"
	"time"

	"crewhub/modules/schedule/entity"

	"github.com/google/uuid"
)

func baseSchedule(starts time.Time) entity.Schedule {
	s := entity.Schedule{
		GroupID:          uuid.New(),
		Title:            "practice",
		AttendanceMethod: entity.AttendanceMethodAdmin,
		StartsAt:         starts,
		EndsAt:           starts.Add(2 * time.Hour),
	}
	s.ID = uuid.New()
	return s
}

func TestExpandWeekly(t *testing.T) {
	starts := time.Date(2024, 3, 1, 19, 0, 0, 0, time.UTC)

	t.Run("single occurrence carries no recurrence id", func(t *testing.T) {
		out := ExpandWeekly(baseSchedule(starts), 1)
		if len(out) != 1 {
			t.Fatalf("got %d occurrences, want 1", len(out))
		}
		if out[0].RecurrenceID != nil {
			t.Errorf("recurrence id = %v, want nil", out[0].RecurrenceID)
		}
	})

	t.Run("series shares one recurrence id a week apart", func(t *testing.T) {
		out := ExpandWeekly(baseSchedule(starts), 4)
		if len(out) != 4 {
			t.Fatalf("got %d occurrences, want 4", len(out))
		}
		if out[0].RecurrenceID == nil {
			t.Fatal("first occurrence has no recurrence id")
		}
		rid := *out[0].RecurrenceID
		for i, occ := range out {
			if occ.RecurrenceID == nil || *occ.RecurrenceID != rid {
				t.Errorf("occurrence %d recurrence id differs", i)
			}
			wantStart := starts.AddDate(0, 0, 7*i)
			if !occ.StartsAt.Equal(wantStart) {
				t.Errorf("occurrence %d starts %v, want %v", i, occ.StartsAt, wantStart)
			}
			if got := occ.EndsAt.Sub(occ.StartsAt); got != 2*time.Hour {
				t.Errorf("occurrence %d duration = %v, want 2h", i, got)
			}
		}
	})

	t.Run("count clamps to a year of weeks", func(t *testing.T) {
		out := ExpandWeekly(baseSchedule(starts), 500)
		if len(out) != 52 {
			t.Errorf("got %d occurrences, want 52", len(out))
		}
	})

	t.Run("zero and negative counts behave like one", func(t *testing.T) {
		for _, count := range []int{0, -3} {
			out := ExpandWeekly(baseSchedule(starts), count)
			if len(out) != 1 || out[0].RecurrenceID != nil {
				t.Errorf("count %d: got %d occurrences, want a single plain one", count, len(out))
			}
		}
	})
}

func TestResolveScopeTargets(t *testing.T) {
	starts := time.Date(2024, 3, 1, 19, 0, 0, 0, time.UTC)
	series := ExpandWeekly(baseSchedule(starts), 4)
	for i := range series {
		series[i].ID = uuid.New()
	}
	pivot := series[1]

	t.Run("this targets only the pivot", func(t *testing.T) {
		ids := ResolveScopeTargets(series, pivot, entity.ScopeThis)
		if len(ids) != 1 || ids[0] != pivot.ID {
			t.Errorf("got %v, want just the pivot", ids)
		}
	})

	t.Run("this and future keeps the pivot onward", func(t *testing.T) {
		ids := ResolveScopeTargets(series, pivot, entity.ScopeThisAndFuture)
		if len(ids) != 3 {
			t.Fatalf("got %d ids, want 3", len(ids))
		}
		want := map[uuid.UUID]bool{series[1].ID: true, series[2].ID: true, series[3].ID: true}
		for _, id := range ids {
			if !want[id] {
				t.Errorf("unexpected id %s in targets", id)
			}
		}
	})

	t.Run("all targets the whole series", func(t *testing.T) {
		ids := ResolveScopeTargets(series, pivot, entity.ScopeAll)
		if len(ids) != len(series) {
			t.Errorf("got %d ids, want %d", len(ids), len(series))
		}
	})

	t.Run("unknown scope falls back to the pivot", func(t *testing.T) {
		ids := ResolveScopeTargets(series, pivot, entity.ParseScope("weird"))
		if len(ids) != 1 || ids[0] != pivot.ID {
			t.Errorf("got %v, want just the pivot", ids)
		}
	})
}
