package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	repository "task-manager.com/task-manager/internal/repositories"
)

func NewDatabase(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(&repository.TaskRecord{}, &repository.UserRecord{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
