package services

import (
	"context"

	"github.com/uptrace/bun"

	"pongapi/models"
)

// reconcileEntries writes one entry row per distinct participant name,
// carrying that name's placement rank (or none). The caller must have
// created the tournament row – and, on update, cleared its old entries –
// in the same transaction.
//
// The same name appearing twice in the input resolves to the same player,
// so duplicates are collapsed up front rather than left to trip the
// (tournament, player) uniqueness constraint.
func reconcileEntries(ctx context.Context, idb bun.IDB, tournamentID int, participants []string, placements models.Placements) error {
	seen := make(map[string]struct{}, len(participants))
	for _, name := range participants {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		playerID, err := resolvePlayer(ctx, idb, name)
		if err != nil {
			return err
		}

		entry := &models.Entry{
			TournamentID: tournamentID,
			PlayerID:     playerID,
			Placement:    placements.Rank(name),
		}
		if _, err := idb.NewInsert().Model(entry).Exec(ctx); err != nil {
			return classify(err)
		}
	}
	return nil
}
