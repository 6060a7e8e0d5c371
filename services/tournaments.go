package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"pongapi/models"
)

// Submission is a full tournament payload, used for both create and update.
// Updates are full replace: the entry set is rebuilt from Participants and
// Placements, never merged.
type Submission struct {
	Date         string             `json:"date"`
	Type         string             `json:"type"`
	Flavor       string             `json:"flavor"`
	Participants []string           `json:"participants"`
	Placements   *models.Placements `json:"placements"`
}

func (sub Submission) validate() error {
	if sub.Date == "" {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", sub.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	if sub.Type != models.TypeSingle && sub.Type != models.TypeTeam {
		return fmt.Errorf("%w: type must be single or team", ErrValidation)
	}
	if len(sub.Participants) == 0 {
		return fmt.Errorf("%w: at least one participant is required", ErrValidation)
	}
	for _, name := range sub.Participants {
		if name == "" {
			return fmt.Errorf("%w: participant names must be non-empty", ErrValidation)
		}
	}
	if sub.Placements == nil {
		return fmt.Errorf("%w: placements are required", ErrValidation)
	}
	return nil
}

// Summary is one row of the tournament list. Participants is a single
// comma-joined string, which is what the list view renders.
type Summary struct {
	ID           int    `json:"id"`
	Date         string `json:"date"`
	Type         string `json:"type"`
	Flavor       string `json:"flavor"`
	Participants string `json:"participants"`
}

// Detail is a full tournament read, shaped like a Submission so a client
// can fetch it, edit it, and PUT it straight back.
type Detail struct {
	ID           int               `json:"id"`
	Date         string            `json:"date"`
	Type         string            `json:"type"`
	Flavor       string            `json:"flavor"`
	Participants []string          `json:"participants"`
	Placements   models.Placements `json:"placements"`
}

// Create validates the submission, inserts the tournament row, and
// reconciles its entries, all in one transaction. Returns the new id.
func (s *Tournaments) Create(ctx context.Context, sub Submission) (int, error) {
	if err := sub.validate(); err != nil {
		return 0, err
	}

	t := &models.Tournament{
		Date:   sub.Date,
		Type:   sub.Type,
		Flavor: nullableString(sub.Flavor),
	}
	err := s.inTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(t).Exec(ctx); err != nil {
			return classify(err)
		}
		return reconcileEntries(ctx, tx, t.TournamentID, sub.Participants, *sub.Placements)
	})
	if err != nil {
		return 0, err
	}
	return t.TournamentID, nil
}

// Update overwrites the tournament row and fully replaces its entries.
// A missing id surfaces as ErrNotFound, detected by zero rows affected on
// the update rather than a separate existence check.
func (s *Tournaments) Update(ctx context.Context, id int, sub Submission) error {
	if err := sub.validate(); err != nil {
		return err
	}

	return s.inTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		t := &models.Tournament{
			TournamentID: id,
			Date:         sub.Date,
			Type:         sub.Type,
			Flavor:       nullableString(sub.Flavor),
		}
		res, err := tx.NewUpdate().Model(t).
			Column("date", "type", "flavor").
			WherePK().
			Exec(ctx)
		if err != nil {
			return classify(err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}

		if _, err := tx.NewDelete().Model((*models.Entry)(nil)).
			Where("tournament_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}
		return reconcileEntries(ctx, tx, id, sub.Participants, *sub.Placements)
	})
}

// Delete removes the tournament row; its entries go with it via the
// cascading foreign key. A missing id surfaces as ErrNotFound.
func (s *Tournaments) Delete(ctx context.Context, id int) error {
	res, err := s.db.NewDelete().Model((*models.Tournament)(nil)).
		Where("tournament_id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Flat scan targets for the read queries. Date is selected as text so the
// YYYY-MM-DD string round-trips unchanged.
type tournamentRow struct {
	TournamentID int     `bun:"tournament_id"`
	Date         string  `bun:"date"`
	Type         string  `bun:"type"`
	Flavor       *string `bun:"flavor"`
}

type entryRow struct {
	TournamentID int    `bun:"tournament_id"`
	Name         string `bun:"name"`
	Placement    *int   `bun:"placement"`
}

// Get returns one tournament with its participants and placement groups
// rebuilt from the entry rows.
func (s *Tournaments) Get(ctx context.Context, id int) (*Detail, error) {
	t := tournamentRow{}
	err := s.db.NewSelect().
		TableExpr("tournaments AS t").
		ColumnExpr("t.tournament_id, CAST(t.date AS TEXT) AS date, t.type, t.flavor").
		Where("t.tournament_id = ?", id).
		Scan(ctx, &t)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := s.entryRows(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &Detail{
		ID:           t.TournamentID,
		Date:         t.Date,
		Type:         t.Type,
		Flavor:       stringValue(t.Flavor),
		Participants: []string{},
		Placements: models.Placements{
			FirstPlace:  []string{},
			SecondPlace: []string{},
			ThirdPlace:  []string{},
		},
	}
	for _, row := range rows {
		detail.Participants = append(detail.Participants, row.Name)
		if row.Placement == nil {
			continue
		}
		switch *row.Placement {
		case 1:
			detail.Placements.FirstPlace = append(detail.Placements.FirstPlace, row.Name)
		case 2:
			detail.Placements.SecondPlace = append(detail.Placements.SecondPlace, row.Name)
		case 3:
			detail.Placements.ThirdPlace = append(detail.Placements.ThirdPlace, row.Name)
		}
	}
	return detail, nil
}

// List returns all tournaments, newest first, with participants aggregated
// into a comma-joined string per tournament.
func (s *Tournaments) List(ctx context.Context) ([]Summary, error) {
	var tournaments []tournamentRow
	err := s.db.NewSelect().
		TableExpr("tournaments AS t").
		ColumnExpr("t.tournament_id, CAST(t.date AS TEXT) AS date, t.type, t.flavor").
		OrderExpr("t.date DESC, t.tournament_id DESC").
		Scan(ctx, &tournaments)
	if err != nil {
		return nil, err
	}

	rows, err := s.entryRows(ctx, 0)
	if err != nil {
		return nil, err
	}
	names := map[int][]string{}
	for _, row := range rows {
		names[row.TournamentID] = append(names[row.TournamentID], row.Name)
	}

	summaries := make([]Summary, len(tournaments))
	for i, t := range tournaments {
		summaries[i] = Summary{
			ID:           t.TournamentID,
			Date:         t.Date,
			Type:         t.Type,
			Flavor:       stringValue(t.Flavor),
			Participants: strings.Join(names[t.TournamentID], ", "),
		}
	}
	return summaries, nil
}

// entryRows fetches the entries/players join in insertion order. A zero
// tournamentID fetches every tournament's entries.
func (s *Tournaments) entryRows(ctx context.Context, tournamentID int) ([]entryRow, error) {
	var rows []entryRow
	q := s.db.NewSelect().
		TableExpr("entries AS e").
		ColumnExpr("e.tournament_id, p.name, e.placement").
		Join("INNER JOIN players p ON p.player_id = e.player_id").
		OrderExpr("e.id")
	if tournamentID != 0 {
		q = q.Where("e.tournament_id = ?", tournamentID)
	}
	if err := q.Scan(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
