package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCatalog  = errors.New("catalog is empty")
	ErrDuplicateID   = errors.New("duplicate catalog id")
	ErrNegativeValue = errors.New("negative catalog value")
	ErrEmptyID       = errors.New("empty catalog id")
)

// Service is a type of maintenance work with a fixed base price.
type Service struct {
	ID    string  `json:"id" db:"id"`
	Name  string  `json:"name" db:"name"`
	Price float64 `json:"price" db:"price"`
}

// DifficultyLevel is an installation complexity tier. Multiplier is the
// surcharge fraction applied to the service base price.
type DifficultyLevel struct {
	ID         string  `json:"id" db:"id"`
	Name       string  `json:"name" db:"name"`
	Multiplier float64 `json:"multiplier" db:"multiplier"`
}

// Catalog holds the read-only service and difficulty lists. It is built once
// and never mutated afterwards.
type Catalog struct {
	services     []Service
	difficulties []DifficultyLevel

	serviceIdx    map[string]int
	difficultyIdx map[string]int
}

func New(services []Service, difficulties []DifficultyLevel) (*Catalog, error) {
	if len(services) == 0 {
		return nil, fmt.Errorf("services: %w", ErrEmptyCatalog)
	}
	if len(difficulties) == 0 {
		return nil, fmt.Errorf("difficulty levels: %w", ErrEmptyCatalog)
	}

	c := &Catalog{
		services:      make([]Service, len(services)),
		difficulties:  make([]DifficultyLevel, len(difficulties)),
		serviceIdx:    make(map[string]int, len(services)),
		difficultyIdx: make(map[string]int, len(difficulties)),
	}
	copy(c.services, services)
	copy(c.difficulties, difficulties)

	for i, s := range c.services {
		if s.ID == "" {
			return nil, fmt.Errorf("service #%d: %w", i, ErrEmptyID)
		}
		if _, exists := c.serviceIdx[s.ID]; exists {
			return nil, fmt.Errorf("service %q: %w", s.ID, ErrDuplicateID)
		}
		if s.Price < 0 {
			return nil, fmt.Errorf("service %q price %v: %w", s.ID, s.Price, ErrNegativeValue)
		}
		c.serviceIdx[s.ID] = i
	}

	for i, d := range c.difficulties {
		if d.ID == "" {
			return nil, fmt.Errorf("difficulty level #%d: %w", i, ErrEmptyID)
		}
		if _, exists := c.difficultyIdx[d.ID]; exists {
			return nil, fmt.Errorf("difficulty level %q: %w", d.ID, ErrDuplicateID)
		}
		if d.Multiplier < 0 {
			return nil, fmt.Errorf("difficulty level %q multiplier %v: %w", d.ID, d.Multiplier, ErrNegativeValue)
		}
		c.difficultyIdx[d.ID] = i
	}

	return c, nil
}

// Services returns the services in display order.
func (c *Catalog) Services() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// DifficultyLevels returns the difficulty tiers in display order.
func (c *Catalog) DifficultyLevels() []DifficultyLevel {
	out := make([]DifficultyLevel, len(c.difficulties))
	copy(out, c.difficulties)
	return out
}

func (c *Catalog) Service(id string) (Service, bool) {
	i, ok := c.serviceIdx[id]
	if !ok {
		return Service{}, false
	}
	return c.services[i], true
}

func (c *Catalog) DifficultyLevel(id string) (DifficultyLevel, bool) {
	i, ok := c.difficultyIdx[id]
	if !ok {
		return DifficultyLevel{}, false
	}
	return c.difficulties[i], true
}

// DefaultService is the initial selection of every new session.
func (c *Catalog) DefaultService() Service {
	return c.services[0]
}

func (c *Catalog) DefaultDifficultyLevel() DifficultyLevel {
	return c.difficulties[0]
}
