package entity

import (
	"time"

	"crewhub/core/entity"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	StatusPresent    AttendanceStatus = "present"
	StatusLate       AttendanceStatus = "late"
	StatusAbsent     AttendanceStatus = "absent"
	StatusEarlyLeave AttendanceStatus = "early_leave"
)

// ValidStatus reports whether s is one of the recognized attendance marks.
func ValidStatus(s AttendanceStatus) bool {
	switch s {
	case StatusPresent, StatusLate, StatusAbsent, StatusEarlyLeave:
		return true
	}
	return false
}

// Attendance is one member's recorded mark for a schedule. The table keeps
// a single row per (schedule, user); re-marking overwrites the old status.
type Attendance struct {
	ScheduleID uuid.UUID        `db:"schedule_id" json:"schedule_id"`
	UserID     uuid.UUID        `db:"user_id" json:"user_id"`
	Status     AttendanceStatus `db:"status" json:"status"`
	CheckedAt  time.Time        `db:"checked_at" json:"checked_at"`

	entity.BaseEntity
}

type RsvpResponse string

const (
	RsvpGoing    RsvpResponse = "going"
	RsvpNotGoing RsvpResponse = "not_going"
	RsvpMaybe    RsvpResponse = "maybe"
)

func ValidRsvp(r RsvpResponse) bool {
	switch r {
	case RsvpGoing, RsvpNotGoing, RsvpMaybe:
		return true
	}
	return false
}

// Rsvp is a member's stated intent ahead of a schedule, one row per
// (schedule, user).
type Rsvp struct {
	ScheduleID uuid.UUID    `db:"schedule_id" json:"schedule_id"`
	UserID     uuid.UUID    `db:"user_id" json:"user_id"`
	Response   RsvpResponse `db:"response" json:"response"`

	entity.BaseEntity
}
