// Package storetest provides gateways backed by throwaway in-memory databases.
package storetest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/andrewpaige1/studyapp-api/store"
)

// NewGateway returns a migrated gateway over a private in-memory SQLite database.
// The database is closed when the test ends.
func NewGateway(tb testing.TB) *store.Gateway {
	tb.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		tb.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("failed to get test database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := store.Migrate(db); err != nil {
		tb.Fatalf("failed to migrate test database: %v", err)
	}

	g := store.New(db, "study_test")
	tb.Cleanup(func() {
		_ = g.Close()
	})
	return g
}
