package service

import (
	"context"
	"testing"

	"crewhub/core/errors"
	"crewhub/modules/attendance/dto"
	"crewhub/modules/attendance/entity"
	"crewhub/modules/attendance/repository"
	memberservice "crewhub/modules/member/service"
	scheduledto "crewhub/modules/schedule/dto"
	scheduleservice "crewhub/modules/schedule/service"

	"github.com/google/uuid"
)

type mockAttendanceRepo struct {
	repository.AttendanceRepositoryInterface

	upsertAttendanceFn func(ctx context.Context, a *entity.Attendance) error
	upsertRsvpFn       func(ctx context.Context, r *entity.Rsvp) error
	listByScheduleFn   func(ctx context.Context, scheduleID uuid.UUID) ([]entity.Attendance, error)
	listRsvpsFn        func(ctx context.Context, scheduleID uuid.UUID) ([]entity.Rsvp, error)
}

func (m *mockAttendanceRepo) UpsertAttendance(ctx context.Context, a *entity.Attendance) error {
	return m.upsertAttendanceFn(ctx, a)
}

func (m *mockAttendanceRepo) UpsertRsvp(ctx context.Context, r *entity.Rsvp) error {
	return m.upsertRsvpFn(ctx, r)
}

func (m *mockAttendanceRepo) ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]entity.Attendance, error) {
	return m.listByScheduleFn(ctx, scheduleID)
}

func (m *mockAttendanceRepo) ListRsvpsBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]entity.Rsvp, error) {
	return m.listRsvpsFn(ctx, scheduleID)
}

type mockGroupSvc struct {
	memberservice.GroupServiceInterface

	leaderErr *errors.AppError
	memberErr *errors.AppError
}

func (m *mockGroupSvc) RequireLeader(ctx context.Context, groupID, userID uuid.UUID) *errors.AppError {
	return m.leaderErr
}

func (m *mockGroupSvc) RequireMember(ctx context.Context, groupID, userID uuid.UUID) *errors.AppError {
	return m.memberErr
}

type mockScheduleSvc struct {
	scheduleservice.ScheduleServiceInterface

	getByIDFn func(ctx context.Context, id uuid.UUID) (*scheduledto.ScheduleResponse, *errors.AppError)
}

func (m *mockScheduleSvc) GetByID(ctx context.Context, id uuid.UUID) (*scheduledto.ScheduleResponse, *errors.AppError) {
	return m.getByIDFn(ctx, id)
}

func forbiddenGroupSvc() *mockGroupSvc {
	return &mockGroupSvc{
		leaderErr: errors.NewAppError(errors.ErrForbidden, "group leader required", nil),
		memberErr: errors.NewAppError(errors.ErrForbidden, "group membership required", nil),
	}
}

func scheduleSvcFor(scheduleID, groupID uuid.UUID) *mockScheduleSvc {
	return &mockScheduleSvc{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*scheduledto.ScheduleResponse, *errors.AppError) {
			if id != scheduleID {
				return nil, errors.NewAppError(errors.ErrNotFound, "schedule not found", nil)
			}
			return &scheduledto.ScheduleResponse{ID: scheduleID, GroupID: groupID}, nil
		},
	}
}

func TestMarkRequiresMembership(t *testing.T) {
	outsider := uuid.New()
	scheduleID := uuid.New()
	groupID := uuid.New()

	t.Run("non-member cannot check themselves in", func(t *testing.T) {
		repo := &mockAttendanceRepo{
			upsertAttendanceFn: func(ctx context.Context, a *entity.Attendance) error {
				t.Fatal("repo write should not happen")
				return nil
			},
		}
		svc := NewAttendanceService(repo, scheduleSvcFor(scheduleID, groupID), forbiddenGroupSvc())

		_, appErr := svc.Mark(context.Background(), outsider, scheduleID,
			&dto.MarkAttendanceRequest{UserID: outsider, Status: "present"})
		if appErr == nil || appErr.Code != errors.ErrForbidden {
			t.Fatalf("got %v, want forbidden", appErr)
		}
	})

	t.Run("member checks themselves in", func(t *testing.T) {
		member := uuid.New()
		var saved *entity.Attendance
		repo := &mockAttendanceRepo{
			upsertAttendanceFn: func(ctx context.Context, a *entity.Attendance) error {
				saved = a
				return nil
			},
		}
		svc := NewAttendanceService(repo, scheduleSvcFor(scheduleID, groupID), &mockGroupSvc{})

		resp, appErr := svc.Mark(context.Background(), member, scheduleID,
			&dto.MarkAttendanceRequest{UserID: member, Status: "present"})
		if appErr != nil {
			t.Fatalf("unexpected error: %v", appErr)
		}
		if resp.UserID != member || resp.Status != "present" {
			t.Errorf("response = %+v", resp)
		}
		if saved == nil || saved.UserID != member {
			t.Errorf("stored row = %+v", saved)
		}
	})

	t.Run("non-leader cannot mark someone else", func(t *testing.T) {
		repo := &mockAttendanceRepo{
			upsertAttendanceFn: func(ctx context.Context, a *entity.Attendance) error {
				t.Fatal("repo write should not happen")
				return nil
			},
		}
		svc := NewAttendanceService(repo, scheduleSvcFor(scheduleID, groupID), forbiddenGroupSvc())

		_, appErr := svc.Mark(context.Background(), outsider, scheduleID,
			&dto.MarkAttendanceRequest{UserID: uuid.New(), Status: "absent"})
		if appErr == nil || appErr.Code != errors.ErrForbidden {
			t.Fatalf("got %v, want forbidden", appErr)
		}
	})
}

func TestSubmitRsvpRequiresMembership(t *testing.T) {
	scheduleID := uuid.New()
	groupID := uuid.New()

	t.Run("non-member cannot rsvp", func(t *testing.T) {
		repo := &mockAttendanceRepo{
			upsertRsvpFn: func(ctx context.Context, r *entity.Rsvp) error {
				t.Fatal("repo write should not happen")
				return nil
			},
		}
		svc := NewAttendanceService(repo, scheduleSvcFor(scheduleID, groupID), forbiddenGroupSvc())

		_, appErr := svc.SubmitRsvp(context.Background(), uuid.New(), scheduleID,
			&dto.RsvpRequest{Response: "going"})
		if appErr == nil || appErr.Code != errors.ErrForbidden {
			t.Fatalf("got %v, want forbidden", appErr)
		}
	})

	t.Run("member rsvps", func(t *testing.T) {
		member := uuid.New()
		var saved *entity.Rsvp
		repo := &mockAttendanceRepo{
			upsertRsvpFn: func(ctx context.Context, r *entity.Rsvp) error {
				saved = r
				return nil
			},
		}
		svc := NewAttendanceService(repo, scheduleSvcFor(scheduleID, groupID), &mockGroupSvc{})

		resp, appErr := svc.SubmitRsvp(context.Background(), member, scheduleID,
			&dto.RsvpRequest{Response: "going"})
		if appErr != nil {
			t.Fatalf("unexpected error: %v", appErr)
		}
		if resp.Response != "going" {
			t.Errorf("response = %+v", resp)
		}
		if saved == nil || saved.UserID != member {
			t.Errorf("stored row = %+v", saved)
		}
	})
}

func TestReadsRequireMembership(t *testing.T) {
	outsider := uuid.New()
	scheduleID := uuid.New()
	groupID := uuid.New()

	repo := &mockAttendanceRepo{
		listByScheduleFn: func(ctx context.Context, id uuid.UUID) ([]entity.Attendance, error) {
			t.Fatal("repo read should not happen")
			return nil, nil
		},
		listRsvpsFn: func(ctx context.Context, id uuid.UUID) ([]entity.Rsvp, error) {
			t.Fatal("repo read should not happen")
			return nil, nil
		},
	}
	svc := NewAttendanceService(repo, scheduleSvcFor(scheduleID, groupID), forbiddenGroupSvc())

	if _, appErr := svc.ListBySchedule(context.Background(), outsider, scheduleID); appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("ListBySchedule: got %v, want forbidden", appErr)
	}
	if _, appErr := svc.ListRsvps(context.Background(), outsider, scheduleID); appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("ListRsvps: got %v, want forbidden", appErr)
	}
	if _, appErr := svc.GetRsvpSummary(context.Background(), outsider, scheduleID); appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("GetRsvpSummary: got %v, want forbidden", appErr)
	}
}

func TestRespondedUserIDs(t *testing.T) {
	scheduleID := uuid.New()
	alice := uuid.New()
	bob := uuid.New()

	repo := &mockAttendanceRepo{
		listRsvpsFn: func(ctx context.Context, id uuid.UUID) ([]entity.Rsvp, error) {
			return []entity.Rsvp{
				{ScheduleID: id, UserID: alice, Response: entity.RsvpGoing},
				{ScheduleID: id, UserID: bob, Response: entity.RsvpNotGoing},
			}, nil
		},
	}
	svc := NewAttendanceService(repo, scheduleSvcFor(scheduleID, uuid.New()), &mockGroupSvc{})

	responded, appErr := svc.RespondedUserIDs(context.Background(), scheduleID)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(responded) != 2 || !responded[alice] || !responded[bob] {
		t.Errorf("responded = %v", responded)
	}
}
