// Package services implements tournament record keeping: the player
// directory, entry reconciliation, and the tournament lifecycle. Every
// multi-step write runs inside a single transaction so a failed submission
// leaves no partial player or entry rows behind.
package services

import (
	"context"

	"github.com/uptrace/bun"
)

// Tournaments owns all tournament, player, and entry writes. The database
// handle is injected; nothing in this package reaches for global state.
type Tournaments struct {
	db *bun.DB
}

// NewTournaments creates a Tournaments service on the given database.
func NewTournaments(db *bun.DB) *Tournaments {
	return &Tournaments{db: db}
}

// inTx runs fn inside a transaction, committing on success and rolling
// back on any error or panic path.
func (s *Tournaments) inTx(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true

	return nil
}
