package migrations

import (
	"gorm.io/gorm"

	"tickform/internal/infrastructure/persistence/models"
)

func MigrateIntakeTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.TicketDraftModel{},
		&models.TicketModel{},
	)
}
