package repository

import (
	"context"
	"database/sql"
	"time"

	"crewhub/core/database"
	"crewhub/core/logger"
	"crewhub/modules/schedule/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ScheduleRepository struct {
	DB database.Database
}

type ScheduleRepositoryInterface interface {
	CreateBatch(ctx context.Context, schedules []entity.Schedule) ([]entity.Schedule, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID, from time.Time, to time.Time) ([]entity.Schedule, error)
	ListByRecurrence(ctx context.Context, recurrenceID uuid.UUID) ([]entity.Schedule, error)
	UpdateByIDs(ctx context.Context, ids []uuid.UUID, title string, description *string, location *string) error
	DeleteWithDependents(ctx context.Context, ids []uuid.UUID) error
}

func NewScheduleRepository(db database.Database) *ScheduleRepository {
	return &ScheduleRepository{DB: db}
}

func (r *ScheduleRepository) CreateBatch(ctx context.Context, schedules []entity.Schedule) ([]entity.Schedule, error) {
	if len(schedules) == 0 {
		return nil, nil
	}

	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("ScheduleRepository:CreateBatch - BeginTx", err)
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO schedules (group_id, title, description, location, attendance_method, starts_at, ends_at, recurrence_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, group_id, title, description, location, attendance_method, starts_at, ends_at, recurrence_id, created_by, created_at, updated_at
	`

	created := make([]entity.Schedule, 0, len(schedules))
	for _, s := range schedules {
		var row entity.Schedule
		err := tx.GetContext(ctx, &row, query,
			s.GroupID, s.Title, s.Description, s.Location, s.AttendanceMethod,
			s.StartsAt, s.EndsAt, s.RecurrenceID, s.CreatedBy)
		if err != nil {
			logger.Error("ScheduleRepository:CreateBatch - Insert", err)
			return nil, err
		}
		created = append(created, row)
	}

	if err := tx.Commit(); err != nil {
		logger.Error("ScheduleRepository:CreateBatch - Commit", err)
		return nil, err
	}

	return created, nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error) {
	var schedule entity.Schedule
	query := `
		SELECT id, group_id, title, description, location, attendance_method, starts_at, ends_at, recurrence_id, created_by, created_at, updated_at
		FROM schedules
		WHERE id = $1
	`
	err := r.DB.GetContext(ctx, &schedule, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ScheduleRepository:GetByID", err)
		return nil, err
	}
	return &schedule, nil
}

func (r *ScheduleRepository) ListByGroup(ctx context.Context, groupID uuid.UUID, from time.Time, to time.Time) ([]entity.Schedule, error) {
	query := `
		SELECT id, group_id, title, description, location, attendance_method, starts_at, ends_at, recurrence_id, created_by, created_at, updated_at
		FROM schedules
		WHERE group_id = $1 AND starts_at >= $2 AND starts_at < $3
		ORDER BY starts_at ASC
	`
	var schedules []entity.Schedule
	err := r.DB.SelectContext(ctx, &schedules, query, groupID, from, to)
	if err != nil {
		if err == sql.ErrNoRows {
			return []entity.Schedule{}, nil
		}
		logger.Error("ScheduleRepository:ListByGroup", err)
		return nil, err
	}
	return schedules, nil
}

func (r *ScheduleRepository) ListByRecurrence(ctx context.Context, recurrenceID uuid.UUID) ([]entity.Schedule, error) {
	query := `
		SELECT id, group_id, title, description, location, attendance_method, starts_at, ends_at, recurrence_id, created_by, created_at, updated_at
		FROM schedules
		WHERE recurrence_id = $1
		ORDER BY starts_at ASC
	`
	var schedules []entity.Schedule
	err := r.DB.SelectContext(ctx, &schedules, query, recurrenceID)
	if err != nil {
		if err == sql.ErrNoRows {
			return []entity.Schedule{}, nil
		}
		logger.Error("ScheduleRepository:ListByRecurrence", err)
		return nil, err
	}
	return schedules, nil
}

func (r *ScheduleRepository) UpdateByIDs(ctx context.Context, ids []uuid.UUID, title string, description *string, location *string) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		UPDATE schedules
		SET title = $1, description = $2, location = $3, updated_at = now()
		WHERE id = ANY($4)
	`
	err := r.DB.ExecContext(ctx, query, title, description, location, pq.Array(uuidArray(ids)))
	if err != nil {
		logger.Error("ScheduleRepository:UpdateByIDs", err)
		return err
	}
	return nil
}

// DeleteWithDependents removes attendance and RSVP rows before the schedule
// rows themselves, inside one transaction so a partial failure cannot leave
// rows pointing at deleted schedules.
func (r *ScheduleRepository) DeleteWithDependents(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("ScheduleRepository:DeleteWithDependents - BeginTx", err)
		return err
	}
	defer tx.Rollback()

	arr := pq.Array(uuidArray(ids))

	if _, err := tx.ExecContext(ctx, `DELETE FROM attendance WHERE schedule_id = ANY($1)`, arr); err != nil {
		logger.Error("ScheduleRepository:DeleteWithDependents - Attendance", err)
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_rsvps WHERE schedule_id = ANY($1)`, arr); err != nil {
		logger.Error("ScheduleRepository:DeleteWithDependents - Rsvps", err)
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM schedules WHERE id = ANY($1)`, arr); err != nil {
		logger.Error("ScheduleRepository:DeleteWithDependents - Schedules", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("ScheduleRepository:DeleteWithDependents - Commit", err)
		return err
	}
	return nil
}

func uuidArray(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
