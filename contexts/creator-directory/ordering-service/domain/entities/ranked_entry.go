package entities

import "time"

// RankedEntry is the ordering service's view of an accepted entry. Position
// is nil until the entry is placed (freshly accepted, consumer not yet run);
// unplaced entries sort after every placed one.
type RankedEntry struct {
	EntryID   string
	Kind      string
	Position  *int
	CreatedAt time.Time
}

func (e RankedEntry) IsPlaced() bool {
	return e.Position != nil
}
