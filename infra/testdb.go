package infra

import (
	"fmt"
	"testing"

	"gin-marketplace/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB テストごとに独立したSQLiteインメモリデータベースを開き、
// マイグレーションを適用する。接続はt.Cleanupで閉じられる
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.CartEntry{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() { CloseDB(db) })
	return db
}
