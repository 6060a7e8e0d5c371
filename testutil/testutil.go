// Package testutil provides a real database for package tests: an
// in-memory SQLite instance carrying the same schema the server creates
// on startup.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"pongapi/db"
)

// SetupDB returns a fresh in-memory database with all tables created.
// Each call gets its own private database; it is closed with the test.
func SetupDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// An in-memory database lives inside a single connection.
	sqldb.SetMaxOpenConns(1)

	bdb := bun.NewDB(sqldb, sqlitedialect.New())
	if _, err := bdb.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if err := db.CreateTables(context.Background(), bdb); err != nil {
		t.Fatalf("create tables: %v", err)
	}

	t.Cleanup(func() { _ = bdb.Close() })
	return bdb
}
