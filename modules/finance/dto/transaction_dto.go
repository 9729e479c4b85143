package dto

import (
	"time"

	"crewhub/modules/finance/entity"

	"github.com/google/uuid"
)

type CreateTransactionRequest struct {
	GroupID     uuid.UUID `json:"group_id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	OccurredAt  string    `json:"occurred_at"` // YYYY-MM-DD
}

type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	GroupID     uuid.UUID `json:"group_id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	OccurredAt  string    `json:"occurred_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToTransactionResponse(t *entity.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		GroupID:     t.GroupID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Description: t.Description,
		OccurredAt:  t.OccurredAt.Format("2006-01-02"),
		CreatedAt:   t.CreatedAt,
	}
}

// FinanceSummary totals a group's ledger over a period. Balance is income
// minus expense and may be negative.
type FinanceSummary struct {
	Income  int64 `json:"income" db:"income"`
	Expense int64 `json:"expense" db:"expense"`
	Balance int64 `json:"balance" db:"-"`
}
