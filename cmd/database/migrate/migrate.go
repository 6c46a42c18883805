package migration

import (
	"fmt"

	"FreshStock-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		return fmt.Errorf("error migrating user database: %w", err)
	}
	if err := db.AutoMigrate(&entities.Storage{}); err != nil {
		return fmt.Errorf("error migrating storage database: %w", err)
	}
	if err := db.AutoMigrate(&entities.Item{}); err != nil {
		return fmt.Errorf("error migrating item database: %w", err)
	}

	fmt.Println("Database migration complete")
	return nil
}
