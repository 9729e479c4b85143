package repository

import (
	"context"
	"database/sql"
	"time"

	"crewhub/core/database"
	"crewhub/core/logger"
	"crewhub/modules/finance/dto"
	"crewhub/modules/finance/entity"

	"github.com/google/uuid"
)

type TransactionRepository struct {
	DB database.Database
}

type TransactionRepositoryInterface interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID, from time.Time, to time.Time) ([]entity.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Summary(ctx context.Context, groupID uuid.UUID, from time.Time, to time.Time) (*dto.FinanceSummary, error)
}

func NewTransactionRepository(db database.Database) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (group_id, type, amount, description, occurred_at, created_by)
		VALUES (:group_id, :type, :amount, :description, :occurred_at, :created_by)
		RETURNING id
	`
	rows, err := r.DB.NamedQueryContext(ctx, query, tx)
	if err != nil {
		logger.Error("TransactionRepository:Create", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&tx.ID)
	}
	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var tx entity.Transaction
	query := `
		SELECT id, group_id, type, amount, description, occurred_at, created_by, created_at, updated_at
		FROM transactions
		WHERE id = $1
	`
	err := r.DB.GetContext(ctx, &tx, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TransactionRepository:GetByID", err)
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionRepository) ListByGroup(ctx context.Context, groupID uuid.UUID, from time.Time, to time.Time) ([]entity.Transaction, error) {
	query := `
		SELECT id, group_id, type, amount, description, occurred_at, created_by, created_at, updated_at
		FROM transactions
		WHERE group_id = $1 AND occurred_at >= $2 AND occurred_at <= $3
		ORDER BY occurred_at DESC, created_at DESC
	`
	var txs []entity.Transaction
	err := r.DB.SelectContext(ctx, &txs, query, groupID, from, to)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TransactionRepository:ListByGroup", err)
		return nil, err
	}
	return txs, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.DB.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		logger.Error("TransactionRepository:Delete", err)
		return err
	}
	return nil
}

func (r *TransactionRepository) Summary(ctx context.Context, groupID uuid.UUID, from time.Time, to time.Time) (*dto.FinanceSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0)  AS income,
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0) AS expense
		FROM transactions
		WHERE group_id = $1 AND occurred_at >= $2 AND occurred_at <= $3
	`
	var summary dto.FinanceSummary
	err := r.DB.GetContext(ctx, &summary, query, groupID, from, to)
	if err != nil {
		logger.Error("TransactionRepository:Summary", err)
		return nil, err
	}
	summary.Balance = summary.Income - summary.Expense
	return &summary, nil
}
