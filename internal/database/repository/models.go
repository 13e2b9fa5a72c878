package repository

import (
	"time"

	"github.com/jask/rangepick/internal/dates"
)

// Range is a confirmed start/end pair.
type Range struct {
	ID        string
	Start     dates.Date
	End       dates.Date
	Nights    int
	CreatedAt time.Time
}
