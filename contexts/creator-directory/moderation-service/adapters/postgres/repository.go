package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"vitrine/contexts/creator-directory/moderation-service/domain/entities"
	domainerrors "vitrine/contexts/creator-directory/moderation-service/domain/errors"
	"vitrine/contexts/creator-directory/moderation-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
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

func (r *Repository) CreateEntry(ctx context.Context, entry entities.Entry, creation entities.HistoryRecord) error {
	row := entryModelFromEntity(entry)
	historyRow := historyModelFromRecord(creation)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrInvalidEntryInput
			}
			return err
		}
		return tx.Create(&historyRow).Error
	})
}

func (r *Repository) GetEntry(ctx context.Context, entryID string) (entities.Entry, error) {
	var row entryModel
	err := r.db.WithContext(ctx).
		Where("entry_id = ?", strings.TrimSpace(entryID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Entry{}, domainerrors.ErrEntryNotFound
		}
		return entities.Entry{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListEntries(ctx context.Context, filter ports.EntryFilter) ([]entities.Entry, error) {
	tx := r.db.WithContext(ctx).Model(&entryModel{})
	if filter.Kind != "" {
		tx = tx.Where("kind = ?", string(filter.Kind))
	}
	if filter.Status != entities.StatusNone {
		tx = tx.Where("status = ?", string(filter.Status))
	}
	if filter.UserID != "" {
		tx = tx.Where("submitter_user_id = ?", filter.UserID)
	}
	if filter.SessionID != "" {
		tx = tx.Where("submitter_session_id = ?", filter.SessionID)
	}

	var rows []entryModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Entry, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// TransitionEntry commits the status change, its history record and any
// outbox events in one transaction. The WHERE on the expected status is the
// compare-and-set: zero rows affected with the entry present means a
// concurrent transition won.
func (r *Repository) TransitionEntry(
	ctx context.Context,
	entry entities.Entry,
	expected entities.Status,
	record entities.HistoryRecord,
	outbox []ports.EventEnvelope,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entryModel{}).
			Where("entry_id = ?", entry.EntryID).
			Where("status = ?", string(expected)).
			Updates(map[string]any{
				"status":     string(entry.Status),
				"updated_at": entry.UpdatedAt.UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&entryModel{}).
				Where("entry_id = ?", entry.EntryID).
				Count(&count).
				Error; err != nil {
				return err
			}
			if count == 0 {
				return domainerrors.ErrEntryNotFound
			}
			return domainerrors.ErrTransitionConflict
		}

		historyRow := historyModelFromRecord(record)
		if err := tx.Create(&historyRow).Error; err != nil {
			return err
		}
		for _, event := range outbox {
			payload, err := json.Marshal(event)
			if err != nil {
				return err
			}
			outboxRow := outboxModel{
				OutboxID:     event.EventID,
				EventType:    event.EventType,
				PartitionKey: event.PartitionKey,
				Payload:      payload,
				Status:       outboxStatusPending,
				CreatedAt:    event.OccurredAtUTC.UTC(),
			}
			if err := tx.Create(&outboxRow).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) UpdateEntryPayload(ctx context.Context, entry entities.Entry, expected entities.Status) error {
	payload, err := marshalPayload(entry.Payload)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&entryModel{}).
		Where("entry_id = ?", entry.EntryID).
		Where("status = ?", string(expected)).
		Updates(map[string]any{
			"title":      entry.Title,
			"payload":    payload,
			"updated_at": entry.UpdatedAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&entryModel{}).
			Where("entry_id = ?", entry.EntryID).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrEntryNotFound
		}
		return domainerrors.ErrTransitionConflict
	}
	return nil
}

// DeleteEntry removes the entry row and cascades its history. This destroys
// the entry's audit trail, which is the documented hard-delete policy.
func (r *Repository) DeleteEntry(ctx context.Context, entryID string) error {
	id := strings.TrimSpace(entryID)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("entry_id = ?", id).Delete(&entryModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrEntryNotFound
		}
		return tx.Where("entry_id = ?", id).Delete(&entryHistoryModel{}).Error
	})
}

func (r *Repository) ListHistory(ctx context.Context, entryID string) ([]entities.HistoryRecord, error) {
	id := strings.TrimSpace(entryID)

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entryModel{}).
		Where("entry_id = ?", id).
		Count(&count).
		Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, domainerrors.ErrEntryNotFound
	}

	var rows []entryHistoryModel
	if err := r.db.WithContext(ctx).
		Where("entry_id = ?", id).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	records := make([]entities.HistoryRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}
	return records, nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      append([]byte(nil), row.Payload...),
			CreatedAt:    row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": publishedAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrEntryNotFound
	}
	return nil
}

type entryModel struct {
	EntryID            string    `gorm:"column:entry_id;primaryKey"`
	Kind               string    `gorm:"column:kind"`
	Title              string    `gorm:"column:title"`
	Payload            []byte    `gorm:"column:payload"`
	SubmitterUserID    string    `gorm:"column:submitter_user_id"`
	SubmitterSessionID string    `gorm:"column:submitter_session_id"`
	Status             string    `gorm:"column:status"`
	Position           *int      `gorm:"column:position"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (entryModel) TableName() string {
	return "entries"
}

func entryModelFromEntity(item entities.Entry) entryModel {
	payload, _ := marshalPayload(item.Payload)
	return entryModel{
		EntryID:            strings.TrimSpace(item.EntryID),
		Kind:               string(item.Kind),
		Title:              strings.TrimSpace(item.Title),
		Payload:            payload,
		SubmitterUserID:    item.Submitter.UserID,
		SubmitterSessionID: item.Submitter.AnonymousSessionID,
		Status:             string(item.Status),
		CreatedAt:          item.CreatedAt.UTC(),
		UpdatedAt:          item.UpdatedAt.UTC(),
	}
}

func (m entryModel) toEntity() entities.Entry {
	payload := map[string]any{}
	if len(m.Payload) > 0 {
		_ = json.Unmarshal(m.Payload, &payload)
	}
	return entities.Entry{
		EntryID: m.EntryID,
		Kind:    entities.EntryKind(m.Kind),
		Title:   m.Title,
		Payload: payload,
		Submitter: entities.Submitter{
			UserID:             m.SubmitterUserID,
			AnonymousSessionID: m.SubmitterSessionID,
		},
		Status:    entities.Status(m.Status),
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

type entryHistoryModel struct {
	HistoryID      string    `gorm:"column:history_id;primaryKey"`
	EntryID        string    `gorm:"column:entry_id"`
	PreviousStatus *string   `gorm:"column:previous_status"`
	NewStatus      string    `gorm:"column:new_status"`
	ActorID        string    `gorm:"column:actor_id"`
	ActorRole      string    `gorm:"column:actor_role"`
	Comment        string    `gorm:"column:comment"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (entryHistoryModel) TableName() string {
	return "entry_history"
}

func historyModelFromRecord(record entities.HistoryRecord) entryHistoryModel {
	var previous *string
	if record.PreviousStatus != entities.StatusNone {
		value := string(record.PreviousStatus)
		previous = &value
	}
	return entryHistoryModel{
		HistoryID:      record.HistoryID,
		EntryID:        record.EntryID,
		PreviousStatus: previous,
		NewStatus:      string(record.NewStatus),
		ActorID:        record.ActorID,
		ActorRole:      string(record.ActorRole),
		Comment:        record.Comment,
		CreatedAt:      record.CreatedAt.UTC(),
	}
}

func (m entryHistoryModel) toRecord() entities.HistoryRecord {
	previous := entities.StatusNone
	if m.PreviousStatus != nil {
		previous = entities.Status(*m.PreviousStatus)
	}
	return entities.HistoryRecord{
		HistoryID:      m.HistoryID,
		EntryID:        m.EntryID,
		PreviousStatus: previous,
		NewStatus:      entities.Status(m.NewStatus),
		ActorID:        m.ActorID,
		ActorRole:      entities.ActorRole(m.ActorRole),
		Comment:        m.Comment,
		CreatedAt:      m.CreatedAt.UTC(),
	}
}

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string {
	return "entry_outbox"
}

func marshalPayload(payload map[string]any) ([]byte, error) {
	if payload == nil {
		payload = map[string]any{}
	}
	return json.Marshal(payload)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
