package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/news-api/internal/pkg/apperr"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSessionStore struct {
	db     *gorm.DB
	ttl    time.Duration
	logger logger.Logger
	now    func() time.Time
}

// NewGormSessionStore creates a session store; sessions older than ttl are treated
// as absent. A zero ttl keeps sessions until sign out.
func NewGormSessionStore(db *gorm.DB, ttl time.Duration, logger logger.Logger) (auth.SessionStore, error) {
	if ttl < 0 {
		return nil, fmt.Errorf("session ttl must not be negative, got %s", ttl)
	}
	return &gormSessionStore{
		db:     db,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (s *gormSessionStore) Save(ctx context.Context, session *auth.Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = s.now().UTC().Truncate(time.Microsecond)
	}

	model := &models.SessionModel{}
	model.FromDomain(session)

	if err := s.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("session token collision: %w", apperr.ErrConflict)
		}
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *gormSessionStore) Lookup(ctx context.Context, token string) (*auth.Session, error) {
	var model models.SessionModel
	if err := s.db.WithContext(ctx).Where("token = ?", token).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session: %w", apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}

	session := model.ToDomain()
	if session.Expired(s.now(), s.ttl) {
		return nil, fmt.Errorf("session expired: %w", apperr.ErrNotFound)
	}
	return session, nil
}

func (s *gormSessionStore) Delete(ctx context.Context, token string) error {
	if err := s.db.WithContext(ctx).Where("token = ?", token).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *gormSessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	if s.ttl == 0 {
		return 0, nil
	}

	cutoff := s.now().UTC().Add(-s.ttl)
	res := s.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.SessionModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", res.Error)
	}

	s.logger.Info("Purged expired sessions: ", res.RowsAffected)
	return res.RowsAffected, nil
}
