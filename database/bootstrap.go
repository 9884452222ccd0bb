package database

import (
	"fmt"
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"agrisync/entities"
)

// Open opens (or creates) the sqlite database and migrates every entity.
// sqlite ships with foreign-key enforcement off; it is enabled through the
// DSN so every pooled connection gets it. The Field→Crop→InputUsed cascades
// and the Task assignee SET NULL depend on it.
func Open(path string) (*gorm.DB, error) {
	dsn := path + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Field{},
		&entities.Crop{},
		&entities.InputUsed{},
		&entities.Income{},
		&entities.Expense{},
		&entities.InventoryItem{},
		&entities.Task{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	return db, nil
}

func MustOpen(path string) *gorm.DB {
	db, err := Open(path)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	return db
}
