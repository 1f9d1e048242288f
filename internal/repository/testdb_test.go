package repository

import (
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hospital-records-api/internal/domain/entity"
)

// testDB opens the database named by TEST_DATABASE_DSN and prepares the
// schema the repositories rely on. Store-backed tests are skipped when the
// variable is unset.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		t.Fatalf("failed to enable pgcrypto: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Profile{}, &entity.Token{}); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}

// createTestUser inserts a user row and registers its cleanup.
func createTestUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM tokens WHERE user_id = ?", user.ID)
		db.Exec("DELETE FROM users WHERE id = ?", user.ID)
	})
	return user
}
