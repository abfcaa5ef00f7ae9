package models

import (
	"time"

	"github.com/MGTheTrain/news-api/internal/domain/articles"
)

// CommentModel is the GORM database model for comments
type CommentModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ArticleID int64     `gorm:"not null;index"`
	UserID    int64     `gorm:"not null"`
	ParentID  *int64    `gorm:"index"`
	Content   string    `gorm:"not null;type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CommentModel) TableName() string {
	return "comments"
}

// ToDomain converts the GORM model to a domain entity
func (m *CommentModel) ToDomain() *articles.Comment {
	return &articles.Comment{
		ID:        m.ID,
		ArticleID: m.ArticleID,
		UserID:    m.UserID,
		ParentID:  m.ParentID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

// LikeModel is the GORM database model for likes
type LikeModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_likes_user_article"`
	ArticleID int64     `gorm:"not null;uniqueIndex:idx_likes_user_article;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (LikeModel) TableName() string {
	return "likes"
}

// All returns every model in migration order
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&SessionModel{},
		&ArticleModel{},
		&TagModel{},
		&ArticleTagModel{},
		&CommentModel{},
		&LikeModel{},
	}
}
