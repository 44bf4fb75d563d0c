package postgresadapter

import (
	"context"
	"log/slog"
	"time"

	"vitrine/contexts/creator-directory/ordering-service/domain/entities"
	domainerrors "vitrine/contexts/creator-directory/ordering-service/domain/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const statusAccepted = "accepted"

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

func (r *Repository) ListRanked(ctx context.Context) ([]entities.RankedEntry, error) {
	var rows []rankModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", statusAccepted).
		Order("position ASC NULLS LAST, created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.RankedEntry, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// Reorder locks the whole accepted set for the duration of the transaction,
// so concurrent reorders serialize and the later commit replaces the
// earlier one wholesale.
func (r *Repository) Reorder(ctx context.Context, orderedIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []rankModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("status = ?", statusAccepted).
			Find(&rows).
			Error; err != nil {
			return err
		}

		rankable := make(map[string]struct{}, len(rows))
		for _, row := range rows {
			rankable[row.EntryID] = struct{}{}
		}
		for _, id := range orderedIDs {
			if _, ok := rankable[id]; !ok {
				var count int64
				if err := tx.Model(&rankModel{}).
					Where("entry_id = ?", id).
					Count(&count).
					Error; err != nil {
					return err
				}
				if count == 0 {
					return domainerrors.ErrRankedEntryNotFound
				}
				return domainerrors.ErrEntryNotRankable
			}
		}

		for index, id := range orderedIDs {
			if err := tx.Model(&rankModel{}).
				Where("entry_id = ?", id).
				Update("position", index).
				Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) InsertLast(ctx context.Context, entry entities.RankedEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []rankModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("status = ?", statusAccepted).
			Find(&rows).
			Error; err != nil {
			return err
		}

		next := 0
		var target *rankModel
		for i := range rows {
			if rows[i].Position != nil && *rows[i].Position >= next {
				next = *rows[i].Position + 1
			}
			if rows[i].EntryID == entry.EntryID {
				target = &rows[i]
			}
		}
		if target == nil {
			return domainerrors.ErrEntryNotRankable
		}
		if target.Position != nil {
			return nil
		}

		return tx.Model(&rankModel{}).
			Where("entry_id = ?", entry.EntryID).
			Update("position", next).
			Error
	})
}

type rankModel struct {
	EntryID   string    `gorm:"column:entry_id;primaryKey"`
	Kind      string    `gorm:"column:kind"`
	Status    string    `gorm:"column:status"`
	Position  *int      `gorm:"column:position"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (rankModel) TableName() string {
	return "entries"
}

func (m rankModel) toEntity() entities.RankedEntry {
	return entities.RankedEntry{
		EntryID:   m.EntryID,
		Kind:      m.Kind,
		Position:  m.Position,
		CreatedAt: m.CreatedAt.UTC(),
	}
}
