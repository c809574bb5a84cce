package estimator

import (
	"servismotor-bot/internal/catalog"
	"servismotor-bot/internal/ledger"
)

// Snapshot is the serialisable form of a Session.
type Snapshot struct {
	ServiceID    string        `json:"service_id"`
	DifficultyID string        `json:"difficulty_id"`
	NextPartID   int64         `json:"next_part_id"`
	Parts        []ledger.Part `json:"parts,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ServiceID:    s.serviceID,
		DifficultyID: s.difficultyID,
		NextPartID:   s.parts.NextID(),
		Parts:        s.parts.Parts(),
	}
}

// Restore rebuilds a session against the given catalog. Ids the catalog no
// longer knows fall back to the catalog defaults.
func Restore(c *catalog.Catalog, snap Snapshot) *Session {
	s := &Session{
		catalog:      c,
		serviceID:    c.DefaultService().ID,
		difficultyID: c.DefaultDifficultyLevel().ID,
		parts:        ledger.Restore(snap.Parts, snap.NextPartID),
	}
	if _, ok := c.Service(snap.ServiceID); ok {
		s.serviceID = snap.ServiceID
	}
	if _, ok := c.DifficultyLevel(snap.DifficultyID); ok {
		s.difficultyID = snap.DifficultyID
	}
	return s
}
