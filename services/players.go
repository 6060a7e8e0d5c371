package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"pongapi/models"
)

// resolvePlayer returns the identifier for name, inserting a new player row
// the first time the name is seen. Lookup is on the exact string – case and
// whitespace are significant, so "Bob" and "bob " are different players.
// Taking bun.IDB lets callers run this inside a transaction.
func resolvePlayer(ctx context.Context, idb bun.IDB, name string) (int, error) {
	player := &models.Player{}
	err := idb.NewSelect().Model(player).
		Where("name = ?", name).
		Scan(ctx)
	if err == nil {
		return player.PlayerID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	player.Name = name
	if _, err := idb.NewInsert().Model(player).Exec(ctx); err != nil {
		return 0, classify(err)
	}
	return player.PlayerID, nil
}
