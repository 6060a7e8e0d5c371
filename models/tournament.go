package models

import "github.com/uptrace/bun"

// Tournament types.
const (
	TypeSingle = "single"
	TypeTeam   = "team"
)

// Tournament is one beer pong event. Date is stored as a plain
// YYYY-MM-DD string, the format the clients send.
type Tournament struct {
	bun.BaseModel `bun:"table:tournaments,alias:t"`

	TournamentID int     `bun:"tournament_id,pk,autoincrement" json:"tournamentID"`
	Date         string  `bun:"date,notnull,type:date" json:"date"`
	Type         string  `bun:"type,notnull" json:"type"`
	Flavor       *string `bun:"flavor" json:"flavor,omitempty"`
}
