package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"crewhub/core/constants"
	"crewhub/core/logger"
	"crewhub/core/queue"
	"crewhub/modules/notification/entity"
	"crewhub/modules/notification/repository"

	attendanceservice "crewhub/modules/attendance/service"
	memberservice "crewhub/modules/member/service"
	scheduleservice "crewhub/modules/schedule/service"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Worker consumes background notification tasks.
type Worker struct {
	repo          repository.NotificationRepositoryInterface
	scheduleSvc   scheduleservice.ScheduleServiceInterface
	attendanceSvc attendanceservice.AttendanceServiceInterface
	groupSvc      memberservice.GroupServiceInterface
}

func NewWorker(
	repo repository.NotificationRepositoryInterface,
	scheduleSvc scheduleservice.ScheduleServiceInterface,
	attendanceSvc attendanceservice.AttendanceServiceInterface,
	groupSvc memberservice.GroupServiceInterface,
) *Worker {
	return &Worker{repo: repo, scheduleSvc: scheduleSvc, attendanceSvc: attendanceSvc, groupSvc: groupSvc}
}

// Register attaches the worker's handlers to the asynq mux.
func (w *Worker) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(queue.TypeNotificationDispatch, w.HandleDispatch)
	mux.HandleFunc(queue.TypeScheduleReminder, w.HandleReminder)
}

// HandleDispatch persists a queued notification. Failures are logged and
// swallowed so one bad row never blocks the queue.
func (w *Worker) HandleDispatch(ctx context.Context, task *asynq.Task) error {
	var payload queue.NotificationDispatchPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("NotificationWorker:HandleDispatch - unmarshal", err)
		return nil
	}

	n := &entity.Notification{
		UserID:  payload.UserID,
		Title:   payload.Title,
		Message: payload.Message,
		Type:    entity.NotificationType(payload.Type),
	}
	if payload.Link != "" {
		n.Link = &payload.Link
	}
	if payload.Data != nil {
		if data, err := json.Marshal(payload.Data); err == nil {
			n.Data = data
		}
	}

	if err := w.repo.Create(ctx, n); err != nil {
		logger.Error("NotificationWorker:HandleDispatch - create", err)
	}
	return nil
}

// HandleReminder nudges members about schedules starting within the reminder
// lead time. Members who already responded to a schedule are skipped.
func (w *Worker) HandleReminder(ctx context.Context, task *asynq.Task) error {
	var payload queue.ScheduleReminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("NotificationWorker:HandleReminder - unmarshal", err)
		return nil
	}

	now := time.Now()
	schedules, appErr := w.scheduleSvc.ListByGroup(ctx, payload.GroupID, now, now.Add(constants.ReminderLeadTime))
	if appErr != nil {
		logger.Error("NotificationWorker:HandleReminder - list schedules", appErr)
		return appErr
	}
	if len(schedules) == 0 {
		return nil
	}

	members, appErr := w.groupSvc.GetMembers(ctx, payload.GroupID)
	if appErr != nil {
		logger.Error("NotificationWorker:HandleReminder - get members", appErr)
		return appErr
	}

	for _, schedule := range schedules {
		responded, appErr := w.attendanceSvc.RespondedUserIDs(ctx, schedule.ID)
		if appErr != nil {
			logger.Error("NotificationWorker:HandleReminder - rsvp respondents", appErr)
			responded = map[uuid.UUID]bool{}
		}

		link := fmt.Sprintf("/schedules/%s", schedule.ID)
		message := fmt.Sprintf("%s starts at %s", schedule.Title, schedule.StartsAt.Format("Jan 2 15:04"))
		for _, m := range members.Members {
			if responded[m.UserID] {
				continue
			}
			n := &entity.Notification{
				UserID:  m.UserID,
				Title:   "Upcoming schedule",
				Message: message,
				Type:    entity.TypeSchedule,
				Link:    &link,
			}
			if err := w.repo.Create(ctx, n); err != nil {
				logger.Error("NotificationWorker:HandleReminder - create", err)
			}
		}
	}
	return nil
}
