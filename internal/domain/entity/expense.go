package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaterialExpense is an append-only cost line against a site. Entries are
// never edited or deleted; a wrong entry is corrected by a new one.
type MaterialExpense struct {
	ID        uuid.UUID
	SiteID    uuid.UUID
	Name      string
	Quantity  string // Free-form quantity descriptor, e.g. "50 bags".
	Cost      Money  // Strictly positive.
	Day       Day
	CreatedAt time.Time
}
