package repository

import (
	"context"
	"database/sql"
	"time"

	"crewhub/core/database"
	"crewhub/core/logger"

	"github.com/google/uuid"
)

// Explicit result-row types per query. Rows are fetched raw and filtered by
// group and date range here; all scoring happens in the service layer.

type MemberRow struct {
	UserID   uuid.UUID `db:"user_id"`
	Name     string    `db:"name"`
	JoinedAt time.Time `db:"joined_at"`
}

type ScheduleRow struct {
	ID       uuid.UUID `db:"id"`
	StartsAt time.Time `db:"starts_at"`
	EndsAt   time.Time `db:"ends_at"`
}

type AttendanceRow struct {
	ScheduleID uuid.UUID `db:"schedule_id"`
	UserID     uuid.UUID `db:"user_id"`
	Status     string    `db:"status"`
	StartsAt   time.Time `db:"starts_at"`
}

type RsvpRow struct {
	ScheduleID uuid.UUID `db:"schedule_id"`
	UserID     uuid.UUID `db:"user_id"`
	Response   string    `db:"response"`
}

type BoardActivityRow struct {
	UserID     uuid.UUID  `db:"user_id"`
	Posts      int        `db:"posts"`
	Comments   int        `db:"comments"`
	LastActive *time.Time `db:"last_active"`
}

// PeriodCounts aggregates one period's raw activity for the report and
// anomaly comparisons.
type PeriodCounts struct {
	Schedules  int   `db:"schedules"`
	Marked     int   `db:"marked"`
	Present    int   `db:"present"`
	Posts      int   `db:"posts"`
	Comments   int   `db:"comments"`
	NewMembers int   `db:"new_members"`
	Income     int64 `db:"income"`
	Expense    int64 `db:"expense"`
}

type AnalyticsRepository struct {
	DB database.Database
}

type AnalyticsRepositoryInterface interface {
	Members(ctx context.Context, groupID uuid.UUID) ([]MemberRow, error)
	Schedules(ctx context.Context, groupID uuid.UUID, from time.Time, to time.Time) ([]ScheduleRow, error)
	Attendance(ctx context.Context, groupID uuid.UUID, from time.Time, to time.Time) ([]AttendanceRow, error)
	Rsvps(ctx context.Context, groupID uuid.UUID, from time.Time, to time.Time) ([]RsvpRow, error)
	BoardActivity(ctx context.Context, groupID uuid.UUID, from time.Time, to time.Time) ([]BoardActivityRow, error)
	Counts(ctx context.Context, groupID uuid.UUID, from time.Time, to time.Time) (*PeriodCounts, error)
}

func NewAnalyticsRepository(db database.Database) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

func (r *AnalyticsRepository) Members(ctx context.Context, groupID uuid.UUID) ([]MemberRow, error) {
	query := `
		SELECT gm.user_id, u.name, gm.joined_at
		FROM group_members gm
		JOIN users u ON u.id = gm.user_id
		WHERE gm.group_id = $1
		ORDER BY gm.joined_at ASC
	`
	var rows []MemberRow
	err := r.DB.SelectContext(ctx, &rows, query, groupID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AnalyticsRepository:Members", err)
		return nil, err
	}
	return rows, nil
}

func (r *AnalyticsRepository) Schedules(ctx context.Context, groupID uuid.UUID, from time.Time, to time.Time) ([]ScheduleRow, error) {
	query := `
		SELECT id, starts_at, ends_at
		FROM schedules
		WHERE group_id = $1 AND starts_at >= $2 AND starts_at < $3
		ORDER BY starts_at ASC
	`
	var rows []ScheduleRow
	err := r.DB.SelectContext(ctx, &rows, query, groupID, from, to)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AnalyticsRepository:Schedules", err)
		return nil, err
	}
	return rows, nil
}

func (r *AnalyticsRepository) Attendance(ctx context.Context, groupID uuid.UUID, from time.Time, to time.Time) ([]AttendanceRow, error) {
	query := `
		SELECT a.schedule_id, a.user_id, a.status, s.starts_at
		FROM attendance a
		JOIN schedules s ON s.id = a.schedule_id
		WHERE s.group_id = $1 AND s.starts_at >= $2 AND s.starts_at < $3
		ORDER BY s.starts_at ASC
	`
	var rows []AttendanceRow
	err := r.DB.SelectContext(ctx, &rows, query, groupID, from, to)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AnalyticsRepository:Attendance", err)
		return nil, err
	}
	return rows, nil
}

func (r *AnalyticsRepository) Rsvps(ctx context.Context, groupID uuid.UUID, from time.Time, to time.Time) ([]RsvpRow, error) {
	query := `
		SELECT rv.schedule_id, rv.user_id, rv.response
		FROM schedule_rsvps rv
		JOIN schedules s ON s.id = rv.schedule_id
		WHERE s.group_id = $1 AND s.starts_at >= $2 AND s.starts_at < $3
	`
	var rows []RsvpRow
	err := r.DB.SelectContext(ctx, &rows, query, groupID, from, to)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AnalyticsRepository:Rsvps", err)
		return nil, err
	}
	return rows, nil
}

func (r *AnalyticsRepository) BoardActivity(ctx context.Context, groupID uuid.UUID, from time.Time, to time.Time) ([]BoardActivityRow, error) {
	query := `
		SELECT
			activity.user_id,
			COALESCE(SUM(activity.posts), 0)    AS posts,
			COALESCE(SUM(activity.comments), 0) AS comments,
			MAX(activity.at)                    AS last_active
		FROM (
			SELECT p.author_id AS user_id, 1 AS posts, 0 AS comments, p.created_at AS at
			FROM board_posts p
			WHERE p.group_id = $1 AND p.created_at >= $2 AND p.created_at < $3
			UNION ALL
			SELECT c.author_id, 0, 1, c.created_at
			FROM board_comments c
			JOIN board_posts p ON p.id = c.post_id
			WHERE p.group_id = $1 AND c.created_at >= $2 AND c.created_at < $3
		) activity
		GROUP BY activity.user_id
	`
	var rows []BoardActivityRow
	err := r.DB.SelectContext(ctx, &rows, query, groupID, from, to)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AnalyticsRepository:BoardActivity", err)
		return nil, err
	}
	return rows, nil
}

func (r *AnalyticsRepository) Counts(ctx context.Context, groupID uuid.UUID, from time.Time, to time.Time) (*PeriodCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM schedules s
			 WHERE s.group_id = $1 AND s.starts_at >= $2 AND s.starts_at < $3) AS schedules,
			(SELECT COUNT(*) FROM attendance a JOIN schedules s ON s.id = a.schedule_id
			 WHERE s.group_id = $1 AND s.starts_at >= $2 AND s.starts_at < $3) AS marked,
			(SELECT COUNT(*) FROM attendance a JOIN schedules s ON s.id = a.schedule_id
			 WHERE s.group_id = $1 AND s.starts_at >= $2 AND s.starts_at < $3
			   AND a.status <> 'absent') AS present,
			(SELECT COUNT(*) FROM board_posts p
			 WHERE p.group_id = $1 AND p.created_at >= $2 AND p.created_at < $3) AS posts,
			(SELECT COUNT(*) FROM board_comments c JOIN board_posts p ON p.id = c.post_id
			 WHERE p.group_id = $1 AND c.created_at >= $2 AND c.created_at < $3) AS comments,
			(SELECT COUNT(*) FROM group_members gm
			 WHERE gm.group_id = $1 AND gm.joined_at >= $2 AND gm.joined_at < $3) AS new_members,
			(SELECT COALESCE(SUM(t.amount), 0) FROM transactions t
			 WHERE t.group_id = $1 AND t.type = 'income'
			   AND t.occurred_at >= $2 AND t.occurred_at < $3) AS income,
			(SELECT COALESCE(SUM(t.amount), 0) FROM transactions t
			 WHERE t.group_id = $1 AND t.type = 'expense'
			   AND t.occurred_at >= $2 AND t.occurred_at < $3) AS expense
	`
	var counts PeriodCounts
	err := r.DB.GetContext(ctx, &counts, query, groupID, from, to)
	if err != nil {
		logger.Error("AnalyticsRepository:Counts", err)
		return nil, err
	}
	return &counts, nil
}
