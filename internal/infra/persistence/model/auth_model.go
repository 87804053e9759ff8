package model

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetTokenModel mirrors the 'password_reset_tokens' table. Only the SHA-256 of the token is stored.
type PasswordResetTokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	TokenHash string     `gorm:"type:varchar(64);uniqueIndex;not null"`
	ExpiresAt time.Time  `gorm:"not null"`
	UsedAt    *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}

// TwoFactorSecretModel mirrors the 'user_2fa_secrets' table. The secret is nonce||ciphertext.
type TwoFactorSecretModel struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SecretEncrypted []byte    `gorm:"type:bytea;not null"`
	Enabled         bool      `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (TwoFactorSecretModel) TableName() string {
	return "user_2fa_secrets"
}
