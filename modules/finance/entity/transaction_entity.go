package entity

import (
	"time"

	"crewhub/core/entity"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

func ValidTransactionType(t TransactionType) bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is one ledger entry. Amount is stored in the smallest
// currency unit and always positive; the type carries the sign.
type Transaction struct {
	GroupID     uuid.UUID       `db:"group_id" json:"group_id"`
	Type        TransactionType `db:"type" json:"type"`
	Amount      int64           `db:"amount" json:"amount"`
	Description string          `db:"description" json:"description"`
	OccurredAt  time.Time       `db:"occurred_at" json:"occurred_at"`
	CreatedBy   *uuid.UUID      `db:"created_by" json:"created_by,omitempty"`

	entity.BaseEntity
}
