package models

import (
	"time"

	"github.com/MGTheTrain/news-api/internal/domain/articles"
)

// ArticleModel is the GORM database model for articles
type ArticleModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	AuthorID  int64     `gorm:"not null;index"`
	Title     string    `gorm:"not null;type:varchar(255)"`
	Content   string    `gorm:"not null;type:text"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (ArticleModel) TableName() string {
	return "articles"
}

// ToDomain converts the GORM model to a domain entity without tags
func (m *ArticleModel) ToDomain() *articles.Article {
	return &articles.Article{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.UTC(),
		Tags:      []string{},
	}
}

// FromDomain converts a domain entity to the GORM model
func (m *ArticleModel) FromDomain(a *articles.Article) {
	m.ID = a.ID
	m.AuthorID = a.AuthorID
	m.Title = a.Title
	m.Content = a.Content
	m.CreatedAt = a.CreatedAt
}

// TagModel is the GORM database model for tags
type TagModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"not null;uniqueIndex;type:varchar(50)"`
}

// TableName specifies the table name for GORM
func (TagModel) TableName() string {
	return "tags"
}

// ArticleTagModel associates an article with a tag.
// Both references are foreign keys; a referenced tag cannot be deleted.
type ArticleTagModel struct {
	ArticleID int64 `gorm:"primaryKey;autoIncrement:false"`
	TagID     int64 `gorm:"primaryKey;autoIncrement:false;index"`

	Article ArticleModel `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	Tag     TagModel     `gorm:"foreignKey:TagID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for GORM
func (ArticleTagModel) TableName() string {
	return "article_tags"
}
