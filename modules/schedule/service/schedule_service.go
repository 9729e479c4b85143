package service

import (
	"context"
	"time"

	"crewhub/core/constants"
	"crewhub/core/errors"
	"crewhub/core/logger"
	"crewhub/core/queue"
	"crewhub/modules/schedule/dto"
	"crewhub/modules/schedule/entity"
	"crewhub/modules/schedule/repository"

	memberservice "crewhub/modules/member/service"

	"github.com/google/uuid"
)

type ScheduleService struct {
	repo     repository.ScheduleRepositoryInterface
	groupSvc memberservice.GroupServiceInterface
	queue    queue.ClientInterface
}

type ScheduleServiceInterface interface {
	Create(ctx context.Context, creatorID uuid.UUID, req *dto.CreateScheduleRequest) ([]dto.ScheduleResponse, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ScheduleResponse, *errors.AppError)
	ListByGroup(ctx context.Context, groupID uuid.UUID, from time.Time, to time.Time) ([]dto.ScheduleResponse, *errors.AppError)
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.UpdateScheduleRequest) *errors.AppError
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID, scope entity.RecurrenceScope) *errors.AppError
}

func NewScheduleService(repo repository.ScheduleRepositoryInterface, groupSvc memberservice.GroupServiceInterface, q queue.ClientInterface) ScheduleServiceInterface {
	return &ScheduleService{repo: repo, groupSvc: groupSvc, queue: q}
}

func (s *ScheduleService) Create(ctx context.Context, creatorID uuid.UUID, req *dto.CreateScheduleRequest) ([]dto.ScheduleResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if !req.EndsAt.After(req.StartsAt) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "ends_at must be after starts_at", nil)
	}

	if appErr := s.groupSvc.RequireLeader(ctx, req.GroupID, creatorID); appErr != nil {
		return nil, appErr
	}

	base := entity.Schedule{
		GroupID:          req.GroupID,
		Title:            req.Title,
		AttendanceMethod: parseAttendanceMethod(req.AttendanceMethod),
		StartsAt:         req.StartsAt,
		EndsAt:           req.EndsAt,
		CreatedBy:        &creatorID,
	}
	if req.Description != "" {
		base.Description = &req.Description
	}
	if req.Location != "" {
		base.Location = &req.Location
	}

	schedules := []entity.Schedule{base}
	if req.Recurrence != nil && req.Recurrence.Frequency == "weekly" {
		schedules = ExpandWeekly(base, req.Recurrence.Count)
	}

	created, err := s.repo.CreateBatch(ctx, schedules)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create schedule failed", err)
	}

	// Best effort; reminders are re-derived by the worker from the 24h
	// window so a lost task only delays a notification.
	if err := s.queue.EnqueueReminder(queue.ScheduleReminderPayload{GroupID: req.GroupID}); err != nil {
		logger.Warn("ScheduleService:Create - enqueue reminder failed", "group_id", req.GroupID)
	}

	responses := make([]dto.ScheduleResponse, len(created))
	for i, c := range created {
		responses[i] = *dto.ToScheduleResponse(&c)
	}
	return responses, nil
}

func (s *ScheduleService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ScheduleResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	schedule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get schedule failed", err)
	}
	if schedule == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "schedule not found", nil)
	}
	return dto.ToScheduleResponse(schedule), nil
}

func (s *ScheduleService) ListByGroup(ctx context.Context, groupID uuid.UUID, from time.Time, to time.Time) ([]dto.ScheduleResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	schedules, err := s.repo.ListByGroup(ctx, groupID, from, to)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list schedules failed", err)
	}

	responses := make([]dto.ScheduleResponse, len(schedules))
	for i, sc := range schedules {
		responses[i] = *dto.ToScheduleResponse(&sc)
	}
	return responses, nil
}

func (s *ScheduleService) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.UpdateScheduleRequest) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	targets, appErr := s.resolveTargets(ctx, userID, id, entity.ParseScope(req.Scope))
	if appErr != nil {
		return appErr
	}

	var description, location *string
	if req.Description != "" {
		description = &req.Description
	}
	if req.Location != "" {
		location = &req.Location
	}

	if err := s.repo.UpdateByIDs(ctx, targets, req.Title, description, location); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "update schedule failed", err)
	}
	return nil
}

func (s *ScheduleService) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID, scope entity.RecurrenceScope) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	targets, appErr := s.resolveTargets(ctx, userID, id, scope)
	if appErr != nil {
		return appErr
	}

	// Attendance and RSVP rows for the removed occurrences go away in the
	// same transaction as the schedules themselves.
	if err := s.repo.DeleteWithDependents(ctx, targets); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete schedule failed", err)
	}
	return nil
}

// resolveTargets loads the pivot schedule, checks the caller leads the
// owning group, and for recurring rows expands the scope selection over the
// series. A non-recurring schedule always resolves to just itself.
func (s *ScheduleService) resolveTargets(ctx context.Context, userID uuid.UUID, id uuid.UUID, scope entity.RecurrenceScope) ([]uuid.UUID, *errors.AppError) {
	pivot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get schedule failed", err)
	}
	if pivot == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "schedule not found", nil)
	}

	if appErr := s.groupSvc.RequireLeader(ctx, pivot.GroupID, userID); appErr != nil {
		return nil, appErr
	}

	if pivot.RecurrenceID == nil || scope == entity.ScopeThis {
		return []uuid.UUID{pivot.ID}, nil
	}

	series, err := s.repo.ListByRecurrence(ctx, *pivot.RecurrenceID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list recurrence series failed", err)
	}

	return ResolveScopeTargets(series, *pivot, scope), nil
}

func parseAttendanceMethod(m string) entity.AttendanceMethod {
	switch entity.AttendanceMethod(m) {
	case entity.AttendanceMethodLocation:
		return entity.AttendanceMethodLocation
	case entity.AttendanceMethodNone:
		return entity.AttendanceMethodNone
	default:
		return entity.AttendanceMethodAdmin
	}
}
