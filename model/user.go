package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the only persisted entity. Password and every token column
// carry json:"-" so a marshalled user is always safe to send to clients
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null" json:"name"`
	Role     Role      `gorm:"type:varchar(16);not null;default:user" json:"role"`

	LastLogin  *time.Time `json:"lastLogin"`
	IsVerified bool       `gorm:"not null;default:false" json:"isVerified"`
	HasPremium bool       `gorm:"not null;default:false" json:"hasPremium"`

	// Most recently issued bearer token. At most one live value per user
	AuthToken *string `json:"-"`

	// Token/expiry pairs are always set together or cleared together
	ResetPasswordToken     *string    `gorm:"index" json:"-"`
	ResetPasswordExpiresAt *time.Time `json:"-"`
	VerificationToken      *string    `gorm:"index" json:"-"`
	VerificationExpiresAt  *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	if u.Role == "" {
		u.Role = RoleUser
	}

	return nil
}
