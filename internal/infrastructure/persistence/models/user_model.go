package models

import (
	"time"

	"github.com/MGTheTrain/news-api/internal/domain/auth"
)

// UserModel is the GORM database model for users
type UserModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"not null;uniqueIndex;type:varchar(100)"`
	Email        *string   `gorm:"type:varchar(255)"`
	PasswordHash string    `gorm:"not null;type:varchar(255)"`
	Salt         string    `gorm:"not null;type:varchar(64)"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the GORM model to a domain entity
func (m *UserModel) ToDomain() *auth.User {
	return &auth.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Salt:         m.Salt,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

// FromDomain converts a domain entity to the GORM model
func (m *UserModel) FromDomain(u *auth.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Salt = u.Salt
	m.CreatedAt = u.CreatedAt
}

// SessionModel is the GORM database model for sessions
type SessionModel struct {
	Token     string    `gorm:"primaryKey;type:varchar(64)"`
	UserID    int64     `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}

// ToDomain converts the GORM model to a domain entity
func (m *SessionModel) ToDomain() *auth.Session {
	return &auth.Session{
		Token:     m.Token,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

// FromDomain converts a domain entity to the GORM model
func (m *SessionModel) FromDomain(s *auth.Session) {
	m.Token = s.Token
	m.UserID = s.UserID
	m.CreatedAt = s.CreatedAt
}
