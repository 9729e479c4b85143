package dto

import (
	"time"

	"crewhub/modules/schedule/entity"

	"github.com/google/uuid"
)

// RecurrenceRule describes a weekly repetition. Count is the total number
// of occurrences including the first.
type RecurrenceRule struct {
	Frequency string `json:"frequency"` // only "weekly" is supported
	Count     int    `json:"count"`
}

type CreateScheduleRequest struct {
	GroupID          uuid.UUID       `json:"group_id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Location         string          `json:"location"`
	AttendanceMethod string          `json:"attendance_method"`
	StartsAt         time.Time       `json:"starts_at"`
	EndsAt           time.Time       `json:"ends_at"`
	Recurrence       *RecurrenceRule `json:"recurrence,omitempty"`
}

type UpdateScheduleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Scope       string `json:"scope"` // this | this_and_future | all
}

type ScheduleResponse struct {
	ID               uuid.UUID  `json:"id"`
	GroupID          uuid.UUID  `json:"group_id"`
	Title            string     `json:"title"`
	Description      *string    `json:"description,omitempty"`
	Location         *string    `json:"location,omitempty"`
	AttendanceMethod string     `json:"attendance_method"`
	StartsAt         time.Time  `json:"starts_at"`
	EndsAt           time.Time  `json:"ends_at"`
	RecurrenceID     *uuid.UUID `json:"recurrence_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func ToScheduleResponse(s *entity.Schedule) *ScheduleResponse {
	return &ScheduleResponse{
		ID:               s.ID,
		GroupID:          s.GroupID,
		Title:            s.Title,
		Description:      s.Description,
		Location:         s.Location,
		AttendanceMethod: string(s.AttendanceMethod),
		StartsAt:         s.StartsAt,
		EndsAt:           s.EndsAt,
		RecurrenceID:     s.RecurrenceID,
		CreatedAt:        s.CreatedAt,
	}
}
