package service

import (
	"context"

	"crewhub/core/constants"
	"crewhub/core/errors"
	"crewhub/modules/attendance/dto"
	"crewhub/modules/attendance/entity"
	"crewhub/modules/attendance/repository"

	memberservice "crewhub/modules/member/service"
	scheduleservice "crewhub/modules/schedule/service"

	"github.com/google/uuid"
)

type AttendanceService struct {
	repo        repository.AttendanceRepositoryInterface
	scheduleSvc scheduleservice.ScheduleServiceInterface
	groupSvc    memberservice.GroupServiceInterface
}

type AttendanceServiceInterface interface {
	Mark(ctx context.Context, actorID uuid.UUID, scheduleID uuid.UUID, req *dto.MarkAttendanceRequest) (*dto.AttendanceResponse, *errors.AppError)
	BulkMark(ctx context.Context, actorID uuid.UUID, scheduleID uuid.UUID, req *dto.BulkMarkRequest) *errors.AppError
	ListBySchedule(ctx context.Context, actorID uuid.UUID, scheduleID uuid.UUID) ([]dto.AttendanceResponse, *errors.AppError)
	SubmitRsvp(ctx context.Context, userID uuid.UUID, scheduleID uuid.UUID, req *dto.RsvpRequest) (*dto.RsvpResponse, *errors.AppError)
	ListRsvps(ctx context.Context, actorID uuid.UUID, scheduleID uuid.UUID) ([]dto.RsvpResponse, *errors.AppError)
	GetRsvpSummary(ctx context.Context, actorID uuid.UUID, scheduleID uuid.UUID) (*dto.RsvpSummary, *errors.AppError)
	RespondedUserIDs(ctx context.Context, scheduleID uuid.UUID) (map[uuid.UUID]bool, *errors.AppError)
}

func NewAttendanceService(
	repo repository.AttendanceRepositoryInterface,
	scheduleSvc scheduleservice.ScheduleServiceInterface,
	groupSvc memberservice.GroupServiceInterface,
) AttendanceServiceInterface {
	return &AttendanceService{repo: repo, scheduleSvc: scheduleSvc, groupSvc: groupSvc}
}

func (s *AttendanceService) Mark(ctx context.Context, actorID uuid.UUID, scheduleID uuid.UUID, req *dto.MarkAttendanceRequest) (*dto.AttendanceResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	status := entity.AttendanceStatus(req.Status)
	if !entity.ValidStatus(status) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown attendance status", nil)
	}

	schedule, appErr := s.scheduleSvc.GetByID(ctx, scheduleID)
	if appErr != nil {
		return nil, appErr
	}

	// Members may check themselves in; marking someone else takes the
	// leader role.
	if req.UserID != actorID {
		if appErr := s.groupSvc.RequireLeader(ctx, schedule.GroupID, actorID); appErr != nil {
			return nil, appErr
		}
	} else if appErr := s.groupSvc.RequireMember(ctx, schedule.GroupID, actorID); appErr != nil {
		return nil, appErr
	}

	record := &entity.Attendance{
		ScheduleID: scheduleID,
		UserID:     req.UserID,
		Status:     status,
	}
	if err := s.repo.UpsertAttendance(ctx, record); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "mark attendance failed", err)
	}
	return dto.ToAttendanceResponse(record), nil
}

func (s *AttendanceService) BulkMark(ctx context.Context, actorID uuid.UUID, scheduleID uuid.UUID, req *dto.BulkMarkRequest) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if len(req.Marks) == 0 {
		return errors.NewAppError(errors.ErrInvalidInput, "marks must not be empty", nil)
	}

	schedule, appErr := s.scheduleSvc.GetByID(ctx, scheduleID)
	if appErr != nil {
		return appErr
	}
	if appErr := s.groupSvc.RequireLeader(ctx, schedule.GroupID, actorID); appErr != nil {
		return appErr
	}

	records := make([]entity.Attendance, 0, len(req.Marks))
	for _, m := range req.Marks {
		status := entity.AttendanceStatus(m.Status)
		if !entity.ValidStatus(status) {
			return errors.NewAppError(errors.ErrInvalidInput, "unknown attendance status", nil)
		}
		records = append(records, entity.Attendance{
			ScheduleID: scheduleID,
			UserID:     m.UserID,
			Status:     status,
		})
	}

	if err := s.repo.BulkUpsertAttendance(ctx, records); err != nil {
		return errors.NewAppError(errors.ErrCreateFailed, "bulk mark attendance failed", err)
	}
	return nil
}

func (s *AttendanceService) ListBySchedule(ctx context.Context, actorID uuid.UUID, scheduleID uuid.UUID) ([]dto.AttendanceResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	schedule, appErr := s.scheduleSvc.GetByID(ctx, scheduleID)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := s.groupSvc.RequireMember(ctx, schedule.GroupID, actorID); appErr != nil {
		return nil, appErr
	}

	records, err := s.repo.ListBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list attendance failed", err)
	}

	responses := make([]dto.AttendanceResponse, len(records))
	for i, rec := range records {
		responses[i] = *dto.ToAttendanceResponse(&rec)
	}
	return responses, nil
}

func (s *AttendanceService) SubmitRsvp(ctx context.Context, userID uuid.UUID, scheduleID uuid.UUID, req *dto.RsvpRequest) (*dto.RsvpResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	response := entity.RsvpResponse(req.Response)
	if !entity.ValidRsvp(response) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown rsvp response", nil)
	}

	schedule, appErr := s.scheduleSvc.GetByID(ctx, scheduleID)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := s.groupSvc.RequireMember(ctx, schedule.GroupID, userID); appErr != nil {
		return nil, appErr
	}

	rsvp := &entity.Rsvp{
		ScheduleID: scheduleID,
		UserID:     userID,
		Response:   response,
	}
	if err := s.repo.UpsertRsvp(ctx, rsvp); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "submit rsvp failed", err)
	}
	return dto.ToRsvpResponse(rsvp), nil
}

func (s *AttendanceService) ListRsvps(ctx context.Context, actorID uuid.UUID, scheduleID uuid.UUID) ([]dto.RsvpResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	schedule, appErr := s.scheduleSvc.GetByID(ctx, scheduleID)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := s.groupSvc.RequireMember(ctx, schedule.GroupID, actorID); appErr != nil {
		return nil, appErr
	}

	rsvps, err := s.repo.ListRsvpsBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list rsvps failed", err)
	}

	responses := make([]dto.RsvpResponse, len(rsvps))
	for i, r := range rsvps {
		responses[i] = *dto.ToRsvpResponse(&r)
	}
	return responses, nil
}

// RespondedUserIDs reports which users have answered a schedule's rsvp.
// It backs server-side fan-out such as reminder delivery and performs no
// membership check, so it must not be exposed on a route.
func (s *AttendanceService) RespondedUserIDs(ctx context.Context, scheduleID uuid.UUID) (map[uuid.UUID]bool, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	rsvps, err := s.repo.ListRsvpsBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list rsvps failed", err)
	}

	responded := make(map[uuid.UUID]bool, len(rsvps))
	for _, r := range rsvps {
		responded[r.UserID] = true
	}
	return responded, nil
}

func (s *AttendanceService) GetRsvpSummary(ctx context.Context, actorID uuid.UUID, scheduleID uuid.UUID) (*dto.RsvpSummary, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	schedule, appErr := s.scheduleSvc.GetByID(ctx, scheduleID)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := s.groupSvc.RequireMember(ctx, schedule.GroupID, actorID); appErr != nil {
		return nil, appErr
	}

	summary, err := s.repo.RsvpSummary(ctx, scheduleID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "rsvp summary failed", err)
	}

	members, appErr := s.groupSvc.GetMembers(ctx, schedule.GroupID)
	if appErr != nil {
		return nil, appErr
	}

	responded := summary.Going + summary.NotGoing + summary.Maybe
	if n := len(members.Members) - responded; n > 0 {
		summary.NoResponse = n
	}
	return summary, nil
}
