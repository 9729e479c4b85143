package dto

import (
	"time"

	"crewhub/modules/attendance/entity"

	"github.com/google/uuid"
)

type MarkAttendanceRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Status string    `json:"status"`
}

type BulkMarkRequest struct {
	Marks []MarkAttendanceRequest `json:"marks"`
}

type AttendanceResponse struct {
	ID         uuid.UUID `json:"id"`
	ScheduleID uuid.UUID `json:"schedule_id"`
	UserID     uuid.UUID `json:"user_id"`
	Status     string    `json:"status"`
	CheckedAt  time.Time `json:"checked_at"`
}

func ToAttendanceResponse(a *entity.Attendance) *AttendanceResponse {
	return &AttendanceResponse{
		ID:         a.ID,
		ScheduleID: a.ScheduleID,
		UserID:     a.UserID,
		Status:     string(a.Status),
		CheckedAt:  a.CheckedAt,
	}
}

type RsvpRequest struct {
	Response string `json:"response"`
}

type RsvpResponse struct {
	ID         uuid.UUID `json:"id"`
	ScheduleID uuid.UUID `json:"schedule_id"`
	UserID     uuid.UUID `json:"user_id"`
	Response   string    `json:"response"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToRsvpResponse(r *entity.Rsvp) *RsvpResponse {
	return &RsvpResponse{
		ID:         r.ID,
		ScheduleID: r.ScheduleID,
		UserID:     r.UserID,
		Response:   string(r.Response),
		UpdatedAt:  r.UpdatedAt,
	}
}

// RsvpSummary counts responses for one schedule. NoResponse is derived by
// the service from the group's member count.
type RsvpSummary struct {
	Going      int `json:"going" db:"going"`
	NotGoing   int `json:"not_going" db:"not_going"`
	Maybe      int `json:"maybe" db:"maybe"`
	NoResponse int `json:"no_response" db:"-"`
}
