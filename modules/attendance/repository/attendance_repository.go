package repository

import (
	"context"
	"database/sql"

	"crewhub/core/database"
	"crewhub/core/logger"
	"crewhub/modules/attendance/dto"
	"crewhub/modules/attendance/entity"

	"github.com/google/uuid"
)

type AttendanceRepository struct {
	DB database.Database
}

type AttendanceRepositoryInterface interface {
	UpsertAttendance(ctx context.Context, a *entity.Attendance) error
	BulkUpsertAttendance(ctx context.Context, marks []entity.Attendance) error
	ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]entity.Attendance, error)
	UpsertRsvp(ctx context.Context, r *entity.Rsvp) error
	ListRsvpsBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]entity.Rsvp, error)
	RsvpSummary(ctx context.Context, scheduleID uuid.UUID) (*dto.RsvpSummary, error)
}

func NewAttendanceRepository(db database.Database) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

const upsertAttendanceQuery = `
	INSERT INTO attendance (schedule_id, user_id, status, checked_at)
	VALUES (:schedule_id, :user_id, :status, now())
	ON CONFLICT (schedule_id, user_id)
	DO UPDATE SET status = EXCLUDED.status, checked_at = now(), updated_at = now()
	RETURNING id
`

func (r *AttendanceRepository) UpsertAttendance(ctx context.Context, a *entity.Attendance) error {
	rows, err := r.DB.NamedQueryContext(ctx, upsertAttendanceQuery, a)
	if err != nil {
		logger.Error("AttendanceRepository:UpsertAttendance", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&a.ID)
	}
	return nil
}

func (r *AttendanceRepository) BulkUpsertAttendance(ctx context.Context, marks []entity.Attendance) error {
	if len(marks) == 0 {
		return nil
	}

	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("AttendanceRepository:BulkUpsertAttendance - BeginTx", err)
		return err
	}
	defer tx.Rollback()

	for i := range marks {
		rows, err := tx.NamedQuery(upsertAttendanceQuery, &marks[i])
		if err != nil {
			logger.Error("AttendanceRepository:BulkUpsertAttendance", err)
			return err
		}
		if rows.Next() {
			if err := rows.Scan(&marks[i].ID); err != nil {
				rows.Close()
				return err
			}
		}
		rows.Close()
	}

	return tx.Commit()
}

func (r *AttendanceRepository) ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]entity.Attendance, error) {
	query := `
		SELECT id, schedule_id, user_id, status, checked_at, created_at, updated_at
		FROM attendance
		WHERE schedule_id = $1
		ORDER BY checked_at ASC
	`
	var records []entity.Attendance
	err := r.DB.SelectContext(ctx, &records, query, scheduleID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AttendanceRepository:ListBySchedule", err)
		return nil, err
	}
	return records, nil
}

func (r *AttendanceRepository) UpsertRsvp(ctx context.Context, rsvp *entity.Rsvp) error {
	query := `
		INSERT INTO schedule_rsvps (schedule_id, user_id, response)
		VALUES (:schedule_id, :user_id, :response)
		ON CONFLICT (schedule_id, user_id)
		DO UPDATE SET response = EXCLUDED.response, updated_at = now()
		RETURNING id
	`
	rows, err := r.DB.NamedQueryContext(ctx, query, rsvp)
	if err != nil {
		logger.Error("AttendanceRepository:UpsertRsvp", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&rsvp.ID)
	}
	return nil
}

func (r *AttendanceRepository) ListRsvpsBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]entity.Rsvp, error) {
	query := `
		SELECT id, schedule_id, user_id, response, created_at, updated_at
		FROM schedule_rsvps
		WHERE schedule_id = $1
		ORDER BY updated_at ASC
	`
	var rsvps []entity.Rsvp
	err := r.DB.SelectContext(ctx, &rsvps, query, scheduleID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AttendanceRepository:ListRsvpsBySchedule", err)
		return nil, err
	}
	return rsvps, nil
}

func (r *AttendanceRepository) RsvpSummary(ctx context.Context, scheduleID uuid.UUID) (*dto.RsvpSummary, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE response = 'going')     AS going,
			COUNT(*) FILTER (WHERE response = 'not_going') AS not_going,
			COUNT(*) FILTER (WHERE response = 'maybe')     AS maybe
		FROM schedule_rsvps
		WHERE schedule_id = $1
	`
	var summary dto.RsvpSummary
	err := r.DB.GetContext(ctx, &summary, query, scheduleID)
	if err != nil {
		logger.Error("AttendanceRepository:RsvpSummary", err)
		return nil, err
	}
	return &summary, nil
}
