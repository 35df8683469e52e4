package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tickform/internal/domain/user"
	"tickform/internal/infrastructure/persistence/models"
	db "tickform/internal/shared/db"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure inserts the user row if it does not exist yet.
func (r *UserRepository) Ensure(ctx context.Context, u *user.User) error {
	model := &models.UserModel{
		ID:       u.ID(),
		Username: u.Username(),
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model).Error; err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}

	return nil
}
