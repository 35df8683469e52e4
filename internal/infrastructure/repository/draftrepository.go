package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tickform/internal/domain/draft"
	vo "tickform/internal/domain/draft/valueobjects"
	"tickform/internal/infrastructure/persistence/mappers"
	"tickform/internal/infrastructure/persistence/models"
	db "tickform/internal/shared/db"
)

type DraftRepository struct {
	db     *gorm.DB
	mapper mappers.DraftMapper
}

func NewDraftRepository(db *gorm.DB) *DraftRepository {
	return &DraftRepository{
		db:     db,
		mapper: mappers.NewDraftMapper(),
	}
}

// Upsert inserts the draft, or fully replaces the row when the user already
// has one. This is the "new draft-start overwrites the prior session"
// behavior; user_id is the primary key.
func (r *DraftRepository) Upsert(ctx context.Context, d *draft.Draft) error {
	model, err := r.mapper.ToModel(d)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(model).Error; err != nil {
		return fmt.Errorf("failed to upsert draft: %w", err)
	}

	return nil
}

// FindActiveByUserID returns the user's draft when it is still in the active
// state, or nil when there is no active draft.
func (r *DraftRepository) FindActiveByUserID(ctx context.Context, userID uint) (*draft.Draft, error) {
	var model models.TicketDraftModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("user_id = ? AND state = ?", userID, vo.StateDraft.String()).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find draft: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DraftRepository) Update(ctx context.Context, d *draft.Draft) error {
	model, err := r.mapper.ToModel(d)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	// Save writes every column so cleared fields are not silently skipped.
	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update draft: %w", err)
	}

	return nil
}
