package estimator

import (
	"errors"
	"fmt"

	"servismotor-bot/internal/catalog"
	"servismotor-bot/internal/ledger"
	"servismotor-bot/internal/pricing"
)

var (
	ErrUnknownSelection  = errors.New("unknown selection id")
	ErrUnknownService    = fmt.Errorf("service: %w", ErrUnknownSelection)
	ErrUnknownDifficulty = fmt.Errorf("difficulty level: %w", ErrUnknownSelection)
)

// Session is the state of one interactive estimate: the selected service,
// the selected difficulty and the part ledger. Everything else is derived
// on read.
type Session struct {
	catalog      *catalog.Catalog
	serviceID    string
	difficultyID string
	parts        *ledger.Ledger
}

// New starts a session with the first service and difficulty of the catalog
// selected and an empty ledger.
func New(c *catalog.Catalog) *Session {
	return &Session{
		catalog:      c,
		serviceID:    c.DefaultService().ID,
		difficultyID: c.DefaultDifficultyLevel().ID,
		parts:        ledger.New(),
	}
}

// SelectService changes the selected service. An unknown id keeps the
// previous selection.
func (s *Session) SelectService(id string) error {
	if _, ok := s.catalog.Service(id); !ok {
		return fmt.Errorf("%q: %w", id, ErrUnknownService)
	}
	s.serviceID = id
	return nil
}

func (s *Session) SelectDifficulty(id string) error {
	if _, ok := s.catalog.DifficultyLevel(id); !ok {
		return fmt.Errorf("%q: %w", id, ErrUnknownDifficulty)
	}
	s.difficultyID = id
	return nil
}

// AddPart appends a part. Validation errors (ledger.ErrInvalidPartName,
// ledger.ErrInvalidPartPrice) leave the session unchanged.
func (s *Session) AddPart(name, priceText string) (ledger.Part, error) {
	return s.parts.Add(name, priceText)
}

// RemovePart reports whether a part with the id existed.
func (s *Session) RemovePart(id int64) bool {
	return s.parts.Remove(id)
}

func (s *Session) Parts() []ledger.Part {
	return s.parts.Parts()
}

func (s *Session) Service() catalog.Service {
	svc, _ := s.catalog.Service(s.serviceID)
	return svc
}

func (s *Session) Difficulty() catalog.DifficultyLevel {
	d, _ := s.catalog.DifficultyLevel(s.difficultyID)
	return d
}

func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Quote recomputes the cost breakdown from the current state.
func (s *Session) Quote() pricing.Breakdown {
	return pricing.Calculate(s.Service(), s.parts.Total(), s.Difficulty())
}
