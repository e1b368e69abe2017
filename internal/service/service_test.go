package service

import (
	"testing"

	"bistro-server/internal/client"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	// single connection so every statement sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	if err := client.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}
