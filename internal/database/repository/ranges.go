package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jask/rangepick/internal/database"
	"github.com/jask/rangepick/internal/dates"
)

// RangeRepo stores confirmed ranges.
type RangeRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewRangeRepo(db *sql.DB) *RangeRepo {
	return &RangeRepo{db: db, now: database.Now}
}

// Record stores a complete range and returns the stored row.
func (r *RangeRepo) Record(ctx context.Context, start, end dates.Date) (Range, error) {
	if start.IsZero() || end.IsZero() {
		return Range{}, errors.New("record range: start and end are required")
	}
	rg := Range{
		ID:        uuid.NewString(),
		Start:     start,
		End:       end,
		Nights:    dates.NightsBetween(start, end),
		CreatedAt: r.now(),
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO ranges(id, start_date, end_date, nights, created_at)
	VALUES (?, ?, ?, ?, ?);
	`, rg.ID, rg.Start.String(), rg.End.String(), rg.Nights, rg.CreatedAt)
	if err != nil {
		return Range{}, fmt.Errorf("record range: %w", err)
	}
	return rg, nil
}

// Recent lists the latest ranges, newest first.
func (r *RangeRepo) Recent(ctx context.Context, limit int) ([]Range, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, start_date, end_date, nights, created_at
	FROM ranges ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Range
	for rows.Next() {
		var (
			rg         Range
			start, end string
		)
		if err := rows.Scan(&rg.ID, &start, &end, &rg.Nights, &rg.CreatedAt); err != nil {
			return nil, err
		}
		if rg.Start, err = parseStoredDate(start); err != nil {
			return nil, err
		}
		if rg.End, err = parseStoredDate(end); err != nil {
			return nil, err
		}
		out = append(out, rg)
	}
	return out, rows.Err()
}

// Latest returns the newest range, or nil when none is stored.
func (r *RangeRepo) Latest(ctx context.Context) (*Range, error) {
	list, err := r.Recent(ctx, 1)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}

func parseStoredDate(s string) (dates.Date, error) {
	t, err := time.Parse(dates.ISOLayout, s)
	if err != nil {
		return dates.Date{}, fmt.Errorf("stored date %q: %w", s, err)
	}
	return dates.FromTime(t), nil
}
