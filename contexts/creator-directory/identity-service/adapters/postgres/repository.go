package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"vitrine/contexts/creator-directory/identity-service/domain/entities"
	domainerrors "vitrine/contexts/creator-directory/identity-service/domain/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateSession(ctx context.Context, session entities.AnonymousSession) error {
	row := sessionModelFromEntity(session)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoNothing: true,
		}).
		Create(&row).
		Error
}

func (r *Repository) GetSession(ctx context.Context, sessionID string) (entities.AnonymousSession, error) {
	var row sessionModel
	err := r.db.WithContext(ctx).
		Where("session_id = ?", strings.TrimSpace(sessionID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.AnonymousSession{}, domainerrors.ErrSessionNotFound
		}
		return entities.AnonymousSession{}, err
	}
	return row.toEntity(), nil
}

// ClaimSession links the session row and stamps authored entries in one
// transaction. The guarded UPDATE on the session row is the claim's
// compare-and-set: it only fires while the session is unlinked, so two
// racing claims resolve to one link and one conflict/no-op.
func (r *Repository) ClaimSession(ctx context.Context, sessionID string, userID string, claimedAt time.Time) (int, error) {
	sessionID = strings.TrimSpace(sessionID)
	userID = strings.TrimSpace(userID)

	var stamped int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&sessionModel{}).
			Where("session_id = ?", sessionID).
			Where("linked_user_id IS NULL OR linked_user_id = ''").
			Updates(map[string]any{
				"linked_user_id": userID,
				"claimed_at":     claimedAt.UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var row sessionModel
			if err := tx.Where("session_id = ?", sessionID).First(&row).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domainerrors.ErrSessionNotFound
				}
				return err
			}
			if row.LinkedUserID == userID {
				return nil
			}
			return domainerrors.ErrIdentityConflict
		}

		entryResult := tx.Table("entries").
			Where("submitter_session_id = ?", sessionID).
			Where("submitter_user_id = ''").
			Updates(map[string]any{"submitter_user_id": userID})
		if entryResult.Error != nil {
			return entryResult.Error
		}
		stamped = entryResult.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(stamped), nil
}

type sessionModel struct {
	SessionID    string     `gorm:"column:session_id;primaryKey"`
	LinkedUserID string     `gorm:"column:linked_user_id"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	ClaimedAt    *time.Time `gorm:"column:claimed_at"`
}

func (sessionModel) TableName() string {
	return "anonymous_sessions"
}

func sessionModelFromEntity(item entities.AnonymousSession) sessionModel {
	return sessionModel{
		SessionID:    strings.TrimSpace(item.SessionID),
		LinkedUserID: strings.TrimSpace(item.LinkedUserID),
		CreatedAt:    item.CreatedAt.UTC(),
		ClaimedAt:    normalizeOptionalTime(item.ClaimedAt),
	}
}

func (m sessionModel) toEntity() entities.AnonymousSession {
	return entities.AnonymousSession{
		SessionID:    m.SessionID,
		LinkedUserID: m.LinkedUserID,
		CreatedAt:    m.CreatedAt.UTC(),
		ClaimedAt:    normalizeOptionalTime(m.ClaimedAt),
	}
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	timestamp := value.UTC()
	return &timestamp
}
