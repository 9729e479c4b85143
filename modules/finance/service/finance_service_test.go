package service

import (
	"context"
	"testing"
	"time"

	"crewhub/core/errors"
	"crewhub/modules/finance/dto"
	"crewhub/modules/finance/entity"
	"crewhub/modules/finance/repository"
	memberservice "crewhub/modules/member/service"

	"github.com/google/uuid"
)

type mockTransactionRepo struct {
	repository.TransactionRepositoryInterface

	createFn  func(ctx context.Context, tx *entity.Transaction) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
	summaryFn func(ctx context.Context, groupID uuid.UUID, from, to time.Time) (*dto.FinanceSummary, error)
}

func (m *mockTransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	return m.createFn(ctx, tx)
}

func (m *mockTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockTransactionRepo) Summary(ctx context.Context, groupID uuid.UUID, from, to time.Time) (*dto.FinanceSummary, error) {
	return m.summaryFn(ctx, groupID, from, to)
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

func TestFinanceCreate(t *testing.T) {
	actor := uuid.New()
	groupID := uuid.New()

	validReq := func() *dto.CreateTransactionRequest {
		return &dto.CreateTransactionRequest{
			GroupID:     groupID,
			Type:        "expense",
			Amount:      15000,
			Description: "studio rent",
			OccurredAt:  "2024-03-01",
		}
	}

	t.Run("leader records an expense", func(t *testing.T) {
		var saved *entity.Transaction
		repo := &mockTransactionRepo{
			createFn: func(ctx context.Context, tx *entity.Transaction) error {
				tx.ID = uuid.New()
				saved = tx
				return nil
			},
		}
		svc := NewFinanceService(repo, &mockGroupSvc{})

		resp, appErr := svc.Create(context.Background(), actor, validReq())
		if appErr != nil {
			t.Fatalf("unexpected error: %v", appErr)
		}
		if resp.Amount != 15000 || resp.Type != "expense" || resp.OccurredAt != "2024-03-01" {
			t.Errorf("response = %+v", resp)
		}
		if saved == nil || saved.CreatedBy == nil || *saved.CreatedBy != actor {
			t.Errorf("stored row missing creator: %+v", saved)
		}
	})

	t.Run("non-leader is rejected before any write", func(t *testing.T) {
		repo := &mockTransactionRepo{
			createFn: func(ctx context.Context, tx *entity.Transaction) error {
				t.Fatal("repo write should not happen")
				return nil
			},
		}
		forbidden := errors.NewAppError(errors.ErrForbidden, "group leader required", nil)
		svc := NewFinanceService(repo, &mockGroupSvc{leaderErr: forbidden})

		_, appErr := svc.Create(context.Background(), actor, validReq())
		if appErr == nil || appErr.Code != errors.ErrForbidden {
			t.Fatalf("got %v, want forbidden", appErr)
		}
	})

	t.Run("input validation", func(t *testing.T) {
		svc := NewFinanceService(&mockTransactionRepo{}, &mockGroupSvc{})

		for _, mutate := range []func(*dto.CreateTransactionRequest){
			func(r *dto.CreateTransactionRequest) { r.Type = "loan" },
			func(r *dto.CreateTransactionRequest) { r.Amount = 0 },
			func(r *dto.CreateTransactionRequest) { r.Amount = -100 },
			func(r *dto.CreateTransactionRequest) { r.OccurredAt = "03/01/2024" },
		} {
			req := validReq()
			mutate(req)
			_, appErr := svc.Create(context.Background(), actor, req)
			if appErr == nil || appErr.Code != errors.ErrInvalidInput {
				t.Errorf("req %+v: got %v, want invalid input", req, appErr)
			}
		}
	})
}

func TestFinanceDelete(t *testing.T) {
	actor := uuid.New()
	groupID := uuid.New()
	txID := uuid.New()

	existing := &entity.Transaction{GroupID: groupID, Type: entity.TypeExpense, Amount: 100}
	existing.ID = txID

	t.Run("missing transaction", func(t *testing.T) {
		repo := &mockTransactionRepo{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
				return nil, nil
			},
		}
		svc := NewFinanceService(repo, &mockGroupSvc{})

		appErr := svc.Delete(context.Background(), actor, txID)
		if appErr == nil || appErr.Code != errors.ErrNotFound {
			t.Fatalf("got %v, want not found", appErr)
		}
	})

	t.Run("leader deletes", func(t *testing.T) {
		deleted := false
		repo := &mockTransactionRepo{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
				return existing, nil
			},
			deleteFn: func(ctx context.Context, id uuid.UUID) error {
				deleted = id == txID
				return nil
			},
		}
		svc := NewFinanceService(repo, &mockGroupSvc{})

		if appErr := svc.Delete(context.Background(), actor, txID); appErr != nil {
			t.Fatalf("unexpected error: %v", appErr)
		}
		if !deleted {
			t.Error("delete never reached the repository")
		}
	})
}

func TestFinanceSummary(t *testing.T) {
	actor := uuid.New()
	groupID := uuid.New()
	now := time.Now()

	t.Run("member reads the summary", func(t *testing.T) {
		repo := &mockTransactionRepo{
			summaryFn: func(ctx context.Context, gid uuid.UUID, from, to time.Time) (*dto.FinanceSummary, error) {
				return &dto.FinanceSummary{Income: 50000, Expense: 20000, Balance: 30000}, nil
			},
		}
		svc := NewFinanceService(repo, &mockGroupSvc{})

		summary, appErr := svc.Summary(context.Background(), actor, groupID, now.AddDate(0, -1, 0), now)
		if appErr != nil {
			t.Fatalf("unexpected error: %v", appErr)
		}
		if summary.Balance != 30000 {
			t.Errorf("balance = %d, want 30000", summary.Balance)
		}
	})

	t.Run("outsider is rejected", func(t *testing.T) {
		forbidden := errors.NewAppError(errors.ErrForbidden, "group membership required", nil)
		svc := NewFinanceService(&mockTransactionRepo{}, &mockGroupSvc{memberErr: forbidden})

		_, appErr := svc.Summary(context.Background(), actor, groupID, now.AddDate(0, -1, 0), now)
		if appErr == nil || appErr.Code != errors.ErrForbidden {
			t.Fatalf("got %v, want forbidden", appErr)
		}
	})
}
