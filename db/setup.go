package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sumit03062/Task-Tracker/internal/models"
)

func Connect(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	return database, nil
}

func Migrate(database *gorm.DB) error {
	entities := []interface{}{
		&models.User{},
		&models.Project{},
		&models.Task{},
	}

	migrator := database.Migrator()

	for _, entity := range entities {
		if !migrator.HasTable(entity) {
			if err := database.AutoMigrate(entity); err != nil {
				return err
			}
		}
	}

	return nil
}
