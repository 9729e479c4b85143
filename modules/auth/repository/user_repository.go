package repository

import (
	"context"
	"database/sql"

	"crewhub/core/database"
	"crewhub/core/logger"
	"crewhub/modules/auth/entity"

	"github.com/google/uuid"
)

type UserRepository struct {
	DB database.Database
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByProvider(ctx context.Context, provider string, providerID string) (*entity.User, error)
}

func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (email, password_hash, name, avatar_url, provider, provider_id)
		VALUES (:email, :password_hash, :name, :avatar_url, :provider, :provider_id)
		RETURNING id
	`
	rows, err := r.DB.NamedQueryContext(ctx, query, user)
	if err != nil {
		logger.Error("UserRepository:Create", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&user.ID)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	query := `
		SELECT id, email, password_hash, name, avatar_url, provider, provider_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByID", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	query := `
		SELECT id, email, password_hash, name, avatar_url, provider, provider_id, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByEmail", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByProvider(ctx context.Context, provider string, providerID string) (*entity.User, error) {
	var user entity.User
	query := `
		SELECT id, email, password_hash, name, avatar_url, provider, provider_id, created_at, updated_at
		FROM users
		WHERE provider = $1 AND provider_id = $2
	`
	err := r.DB.GetContext(ctx, &user, query, provider, providerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByProvider", err)
		return nil, err
	}
	return &user, nil
}
