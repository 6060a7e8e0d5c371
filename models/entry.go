package models

import "github.com/uptrace/bun"

// Entry records one player's participation in one tournament, with an
// optional placement rank of 1-3. A (tournament, player) pair appears at
// most once. Entries are removed with their tournament via the cascading
// foreign key.
type Entry struct {
	bun.BaseModel `bun:"table:entries,alias:e"`

	ID           int  `bun:"id,pk,autoincrement" json:"id"`
	TournamentID int  `bun:"tournament_id,notnull,unique:entries_no_dupes" json:"tournamentID"`
	PlayerID     int  `bun:"player_id,notnull,unique:entries_no_dupes" json:"playerID"`
	Placement    *int `bun:"placement" json:"placement,omitempty"`

	Tournament *Tournament `bun:"rel:belongs-to,join:tournament_id=tournament_id,on_delete:CASCADE" json:"-"`
	Player     *Player     `bun:"rel:belongs-to,join:player_id=player_id" json:"-"`
}
