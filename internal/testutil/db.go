package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/lshigami/examprep/internal/model"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// PrepareDB returns a migrated in-memory SQLite database private to t.
func PrepareDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("PrepareDB() migrate failed: %v", err)
	}
	return db
}

// SeedQuestions inserts questions and returns them with ids assigned.
func SeedQuestions(t *testing.T, db *gorm.DB, questions ...model.Question) []model.Question {
	t.Helper()
	if err := db.Create(&questions).Error; err != nil {
		t.Fatalf("SeedQuestions() failed: %v", err)
	}
	return questions
}
