package entity

import (
	"crewhub/core/entity"
)

// User holds both local (password) and social (provider) accounts.
type User struct {
	Email        string  `db:"email" json:"email"`
	PasswordHash *string `db:"password_hash" json:"-"`
	Name         string  `db:"name" json:"name"`
	AvatarURL    *string `db:"avatar_url" json:"avatar_url,omitempty"`
	Provider     string  `db:"provider" json:"provider"`
	ProviderID   *string `db:"provider_id" json:"-"`

	entity.BaseEntity
}

const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)
