package queue

import (
	"encoding/json"

	"crewhub/core/config"
	"crewhub/core/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Task type names handled by the worker mux.
const (
	TypeNotificationDispatch = "notification:dispatch"
	TypeScheduleReminder     = "schedule:reminder"
)

// NotificationDispatchPayload is the payload of a notification:dispatch task.
type NotificationDispatchPayload struct {
	UserID  uuid.UUID      `json:"user_id"`
	Type    string         `json:"type"`
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Link    string         `json:"link,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// ScheduleReminderPayload is the payload of a schedule:reminder task.
type ScheduleReminderPayload struct {
	GroupID uuid.UUID `json:"group_id"`
}

// Client enqueues background tasks.
type Client struct {
	client *asynq.Client
}

type ClientInterface interface {
	EnqueueNotification(payload NotificationDispatchPayload) error
	EnqueueReminder(payload ScheduleReminderPayload) error
	Close() error
}

func NewClient(cfg config.RedisConfig) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (c *Client) EnqueueNotification(payload NotificationDispatchPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeNotificationDispatch, data)
	info, err := c.client.Enqueue(task, asynq.MaxRetry(3))
	if err != nil {
		logger.Error("Queue:EnqueueNotification", err)
		return err
	}
	logger.Debug("Queue:EnqueueNotification", "task_id", info.ID, "user_id", payload.UserID)
	return nil
}

func (c *Client) EnqueueReminder(payload ScheduleReminderPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = c.client.Enqueue(asynq.NewTask(TypeScheduleReminder, data), asynq.MaxRetry(1))
	if err != nil {
		logger.Error("Queue:EnqueueReminder", err)
	}
	return err
}

func (c *Client) Close() error {
	return c.client.Close()
}

// NewServer builds the asynq worker server; handlers are registered by the
// caller on the returned mux.
func NewServer(cfg config.RedisConfig, concurrency int) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{
			Concurrency: concurrency,
		},
	)
	return srv, asynq.NewServeMux()
}
