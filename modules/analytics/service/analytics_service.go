package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"crewhub/core/cache"
	"crewhub/core/constants"
	"crewhub/core/errors"
	"crewhub/core/logger"
	"crewhub/modules/analytics/repository"

	memberservice "crewhub/modules/member/service"
	scheduleservice "crewhub/modules/schedule/service"

	"github.com/google/uuid"
)

// StreakResponse is one member's attendance streak pair.
type StreakResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
}

type AnalyticsService struct {
	repo        repository.AnalyticsRepositoryInterface
	groupSvc    memberservice.GroupServiceInterface
	scheduleSvc scheduleservice.ScheduleServiceInterface
	cache       cache.CacheInterface
}

type AnalyticsServiceInterface interface {
	Reminders(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, windowDays int) ([]ReminderTarget, *errors.AppError)
	Churn(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, windowDays int) (*ChurnSummary, *errors.AppError)
	Predict(ctx context.Context, actorID uuid.UUID, scheduleID uuid.UUID) (*PredictionReport, *errors.AppError)
	Streaks(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, userID uuid.UUID) (*StreakResponse, *errors.AppError)
	Anomalies(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, windowDays int) (*AnomalyReport, *errors.AppError)
	Report(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, windowDays int) (*ActivityReport, *errors.AppError)
}

func NewAnalyticsService(
	repo repository.AnalyticsRepositoryInterface,
	groupSvc memberservice.GroupServiceInterface,
	scheduleSvc scheduleservice.ScheduleServiceInterface,
	c cache.CacheInterface,
) AnalyticsServiceInterface {
	return &AnalyticsService{repo: repo, groupSvc: groupSvc, scheduleSvc: scheduleSvc, cache: c}
}

func (s *AnalyticsService) Reminders(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, windowDays int) ([]ReminderTarget, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.groupSvc.RequireMember(ctx, groupID, actorID); appErr != nil {
		return nil, appErr
	}

	key := snapshotKey(groupID, "reminders", windowDays)
	var cached []ReminderTarget
	if s.readSnapshot(ctx, key, &cached) {
		return cached, nil
	}

	now := time.Now()
	from := now.AddDate(0, 0, -windowDays)

	members, err := s.repo.Members(ctx, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "load members failed", err)
	}
	schedules, err := s.repo.Schedules(ctx, groupID, from, now)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "load schedules failed", err)
	}
	attendance, err := s.repo.Attendance(ctx, groupID, from, now)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "load attendance failed", err)
	}
	rsvps, err := s.repo.Rsvps(ctx, groupID, from, now)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "load rsvps failed", err)
	}

	targets := BuildReminderTargets(members, schedules, attendance, rsvps)
	s.writeSnapshot(ctx, key, targets)
	return targets, nil
}

func (s *AnalyticsService) Churn(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, windowDays int) (*ChurnSummary, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.groupSvc.RequireMember(ctx, groupID, actorID); appErr != nil {
		return nil, appErr
	}

	key := snapshotKey(groupID, "churn", windowDays)
	var cached ChurnSummary
	if s.readSnapshot(ctx, key, &cached) {
		return &cached, nil
	}

	now := time.Now()
	from := now.AddDate(0, 0, -windowDays)

	members, err := s.repo.Members(ctx, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "load members failed", err)
	}
	schedules, err := s.repo.Schedules(ctx, groupID, from, now)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "load schedules failed", err)
	}
	attendance, err := s.repo.Attendance(ctx, groupID, from, now)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "load attendance failed", err)
	}
	rsvps, err := s.repo.Rsvps(ctx, groupID, from, now)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "load rsvps failed", err)
	}
	board, err := s.repo.BoardActivity(ctx, groupID, from, now)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "load board activity failed", err)
	}

	summary := BuildChurnSummary(members, schedules, attendance, rsvps, board, now)
	s.writeSnapshot(ctx, key, summary)
	return summary, nil
}

func (s *AnalyticsService) Predict(ctx context.Context, actorID uuid.UUID, scheduleID uuid.UUID) (*PredictionReport, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	schedule, appErr := s.scheduleSvc.GetByID(ctx, scheduleID)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := s.groupSvc.RequireMember(ctx, schedule.GroupID, actorID); appErr != nil {
		return nil, appErr
	}

	from, to := PredictorWindow(schedule.StartsAt)

	members, err := s.repo.Members(ctx, schedule.GroupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "load members failed", err)
	}
	history, err := s.repo.Schedules(ctx, schedule.GroupID, from, to)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "load schedule history failed", err)
	}
	attendance, err := s.repo.Attendance(ctx, schedule.GroupID, from, to)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "load attendance failed", err)
	}

	target := repository.ScheduleRow{ID: schedule.ID, StartsAt: schedule.StartsAt, EndsAt: schedule.EndsAt}
	return BuildPredictions(target, members, history, attendance), nil
}

func (s *AnalyticsService) Streaks(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, userID uuid.UUID) (*StreakResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.groupSvc.RequireMember(ctx, groupID, actorID); appErr != nil {
		return nil, appErr
	}

	now := time.Now()
	from := now.AddDate(-1, 0, 0)

	attendance, err := s.repo.Attendance(ctx, groupID, from, now)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "load attendance failed", err)
	}

	var dates []time.Time
	for _, a := range attendance {
		if a.UserID == userID && a.Status != "absent" {
			dates = append(dates, a.StartsAt)
		}
	}

	current, longest := CalcStreaks(dates, now)
	return &StreakResponse{UserID: userID, CurrentStreak: current, LongestStreak: longest}, nil
}

func (s *AnalyticsService) Anomalies(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, windowDays int) (*AnomalyReport, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.groupSvc.RequireMember(ctx, groupID, actorID); appErr != nil {
		return nil, appErr
	}

	key := snapshotKey(groupID, "anomalies", windowDays)
	var cached AnomalyReport
	if s.readSnapshot(ctx, key, &cached) {
		return &cached, nil
	}

	now := time.Now()
	mid := now.AddDate(0, 0, -windowDays)
	start := mid.AddDate(0, 0, -windowDays)

	current, err := s.repo.Counts(ctx, groupID, mid, now)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "load current period failed", err)
	}
	previous, err := s.repo.Counts(ctx, groupID, start, mid)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "load previous period failed", err)
	}

	activeNow, appErr := s.activeMembers(ctx, groupID, mid, now)
	if appErr != nil {
		return nil, appErr
	}
	activeBefore, appErr := s.activeMembers(ctx, groupID, start, mid)
	if appErr != nil {
		return nil, appErr
	}

	report := DetectAnomalies(current, previous, activeNow, activeBefore)
	s.writeSnapshot(ctx, key, report)
	return report, nil
}

func (s *AnalyticsService) Report(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, windowDays int) (*ActivityReport, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.groupSvc.RequireMember(ctx, groupID, actorID); appErr != nil {
		return nil, appErr
	}

	key := snapshotKey(groupID, "report", windowDays)
	var cached ActivityReport
	if s.readSnapshot(ctx, key, &cached) {
		return &cached, nil
	}

	now := time.Now()
	mid := now.AddDate(0, 0, -windowDays)
	start := mid.AddDate(0, 0, -windowDays)

	current, err := s.repo.Counts(ctx, groupID, mid, now)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "load current period failed", err)
	}
	previous, err := s.repo.Counts(ctx, groupID, start, mid)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "load previous period failed", err)
	}

	report := BuildActivityReport(windowDays, current, previous)
	s.writeSnapshot(ctx, key, report)
	return report, nil
}

// activeMembers counts distinct members with a non-absent attendance mark or
// any board activity in the period.
func (s *AnalyticsService) activeMembers(ctx context.Context, groupID uuid.UUID, from time.Time, to time.Time) (int, *errors.AppError) {
	attendance, err := s.repo.Attendance(ctx, groupID, from, to)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrGetFailed, "load attendance failed", err)
	}
	board, err := s.repo.BoardActivity(ctx, groupID, from, to)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrGetFailed, "load board activity failed", err)
	}

	active := make(map[uuid.UUID]struct{})
	for _, a := range attendance {
		if a.Status != "absent" {
			active[a.UserID] = struct{}{}
		}
	}
	for _, b := range board {
		active[b.UserID] = struct{}{}
	}
	return len(active), nil
}

func snapshotKey(groupID uuid.UUID, name string, windowDays int) string {
	return fmt.Sprintf("%s%s:%s:%d", constants.RedisKeyAnalytics, groupID, name, windowDays)
}

// readSnapshot is a best-effort cache read; a miss or broken payload just
// means recompute.
func (s *AnalyticsService) readSnapshot(ctx context.Context, key string, dest any) bool {
	raw, err := s.cache.Get(ctx, key)
	if err != nil || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logger.Warn("AnalyticsService:readSnapshot - stale payload", "key", key)
		return false
	}
	return true
}

func (s *AnalyticsService) writeSnapshot(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(data), constants.AnalyticsSnapshotTTL); err != nil {
		logger.Warn("AnalyticsService:writeSnapshot - set failed", "key", key)
	}
}
