package models

import "github.com/uptrace/bun"

// Player maps a display name to a stable identifier. Names are unique on
// exact string match; rows are created lazily the first time a name shows
// up in a tournament submission.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	PlayerID int    `bun:"player_id,pk,autoincrement" json:"playerID"`
	Name     string `bun:"name,notnull,unique" json:"name"`
}
