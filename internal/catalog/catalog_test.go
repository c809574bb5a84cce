package catalog

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestDefault(t *testing.T) {
	c := qt.New(t)

	cat := Default()
	c.Assert(cat.Services(), qt.HasLen, 5)
	c.Assert(cat.DifficultyLevels(), qt.HasLen, 4)
	c.Assert(cat.DefaultService().ID, qt.Equals, "ringan")
	c.Assert(cat.DefaultDifficultyLevel().ID, qt.Equals, "mudah")
	c.Assert(cat.DefaultDifficultyLevel().Multiplier, qt.Equals, 0.0)
}

func TestLookup(t *testing.T) {
	c := qt.New(t)
	cat := Default()

	s, ok := cat.Service("lengkap")
	c.Assert(ok, qt.IsTrue)
	c.Assert(s, qt.Equals, Service{ID: "lengkap", Name: "Servis Lengkap", Price: 150000})

	d, ok := cat.DifficultyLevel("sulit")
	c.Assert(ok, qt.IsTrue)
	c.Assert(d.Multiplier, qt.Equals, 0.30)

	_, ok = cat.Service("ganti-oli")
	c.Assert(ok, qt.IsFalse)
	_, ok = cat.DifficultyLevel("")
	c.Assert(ok, qt.IsFalse)
}

func TestServicesReturnsCopy(t *testing.T) {
	c := qt.New(t)
	cat := Default()

	list := cat.Services()
	list[0].Price = 1
	levels := cat.DifficultyLevels()
	levels[0].Multiplier = 9

	c.Assert(cat.DefaultService().Price, qt.Equals, 75000.0)
	c.Assert(cat.DefaultDifficultyLevel().Multiplier, qt.Equals, 0.0)
}

func TestNewRejectsInvalidCatalogs(t *testing.T) {
	services := []Service{{ID: "a", Name: "A", Price: 1}}
	levels := []DifficultyLevel{{ID: "x", Name: "X", Multiplier: 0}}

	tests := []struct {
		name     string
		services []Service
		levels   []DifficultyLevel
		want     error
	}{
		{"no services", nil, levels, ErrEmptyCatalog},
		{"no levels", services, nil, ErrEmptyCatalog},
		{"duplicate service", []Service{{ID: "a"}, {ID: "a"}}, levels, ErrDuplicateID},
		{"duplicate level", services, []DifficultyLevel{{ID: "x"}, {ID: "x"}}, ErrDuplicateID},
		{"negative price", []Service{{ID: "a", Price: -1}}, levels, ErrNegativeValue},
		{"negative multiplier", services, []DifficultyLevel{{ID: "x", Multiplier: -0.1}}, ErrNegativeValue},
		{"empty service id", []Service{{Name: "A"}}, levels, ErrEmptyID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.services, tt.levels)
			qt.New(t).Assert(err, qt.ErrorIs, tt.want)
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	c := qt.New(t)

	services := []Service{{ID: "a", Name: "A", Price: 10}}
	cat, err := New(services, []DifficultyLevel{{ID: "x"}})
	c.Assert(err, qt.IsNil)

	services[0].Price = 99
	s, _ := cat.Service("a")
	c.Assert(s.Price, qt.Equals, 10.0)
}
