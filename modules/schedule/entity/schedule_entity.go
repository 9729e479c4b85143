package entity

import (
	"time"

	"crewhub/core/entity"

	"github.com/google/uuid"
)

// AttendanceMethod controls how attendance is recorded for a schedule.
type AttendanceMethod string

const (
	AttendanceMethodAdmin    AttendanceMethod = "admin"
	AttendanceMethodLocation AttendanceMethod = "location"
	AttendanceMethodNone     AttendanceMethod = "none"
)

// Schedule is one occurrence requiring attendance tracking. Rows created by
// a recurrence rule share a recurrence_id.
type Schedule struct {
	GroupID          uuid.UUID        `db:"group_id" json:"group_id"`
	Title            string           `db:"title" json:"title"`
	Description      *string          `db:"description" json:"description,omitempty"`
	Location         *string          `db:"location" json:"location,omitempty"`
	AttendanceMethod AttendanceMethod `db:"attendance_method" json:"attendance_method"`
	StartsAt         time.Time        `db:"starts_at" json:"starts_at"`
	EndsAt           time.Time        `db:"ends_at" json:"ends_at"`
	RecurrenceID     *uuid.UUID       `db:"recurrence_id" json:"recurrence_id,omitempty"`
	CreatedBy        *uuid.UUID       `db:"created_by" json:"created_by,omitempty"`

	entity.BaseEntity
}

// RecurrenceScope selects which rows of a recurring schedule an update or
// delete targets.
type RecurrenceScope string

const (
	ScopeThis          RecurrenceScope = "this"
	ScopeThisAndFuture RecurrenceScope = "this_and_future"
	ScopeAll           RecurrenceScope = "all"
)

// ParseScope normalizes a scope string; anything unrecognized falls back to
// targeting only the single occurrence.
func ParseScope(s string) RecurrenceScope {
	switch RecurrenceScope(s) {
	case ScopeThisAndFuture:
		return ScopeThisAndFuture
	case ScopeAll:
		return ScopeAll
	default:
		return ScopeThis
	}
}
