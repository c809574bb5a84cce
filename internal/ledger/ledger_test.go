package ledger

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestAdd(t *testing.T) {
	c := qt.New(t)
	l := New()

	p, err := l.Add("  Kampas Rem  ", "45000")
	c.Assert(err, qt.IsNil)
	c.Assert(p, qt.Equals, Part{ID: 1, Name: "Kampas Rem", Price: 45000})
	c.Assert(l.Len(), qt.Equals, 1)

	p, err = l.Add("Oli Mesin", "55000.5")
	c.Assert(err, qt.IsNil)
	c.Assert(p.ID, qt.Equals, int64(2))
	c.Assert(p.Price, qt.Equals, 55000.5)
	c.Assert(l.Parts(), qt.DeepEquals, []Part{
		{ID: 1, Name: "Kampas Rem", Price: 45000},
		{ID: 2, Name: "Oli Mesin", Price: 55000.5},
	})
}

func TestAddAcceptsZeroAndDuplicateNames(t *testing.T) {
	c := qt.New(t)
	l := New()

	a, err := l.Add("Baut", "0")
	c.Assert(err, qt.IsNil)
	b, err := l.Add("Baut", "0")
	c.Assert(err, qt.IsNil)

	c.Assert(a.ID, qt.Not(qt.Equals), b.ID)
	c.Assert(l.Len(), qt.Equals, 2)
	c.Assert(l.Total(), qt.Equals, 0.0)
}

func TestAddRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		partName  string
		priceText string
		want      error
	}{
		{"empty name", "", "1000", ErrInvalidPartName},
		{"whitespace name", " \t\n", "1000", ErrInvalidPartName},
		{"empty price", "Busi", "", ErrInvalidPartPrice},
		{"non numeric price", "Busi", "murah", ErrInvalidPartPrice},
		{"trailing garbage", "Busi", "1000abc", ErrInvalidPartPrice},
		{"negative price", "Busi", "-1", ErrInvalidPartPrice},
		{"nan", "Busi", "NaN", ErrInvalidPartPrice},
		{"infinity", "Busi", "Inf", ErrInvalidPartPrice},
		{"overflow", "Busi", "1e400", ErrInvalidPartPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			l := New()
			_, _ = l.Add("Rantai", "250000")

			_, err := l.Add(tt.partName, tt.priceText)
			c.Assert(err, qt.ErrorIs, tt.want)
			c.Assert(l.Len(), qt.Equals, 1)
			c.Assert(l.NextID(), qt.Equals, int64(2))
		})
	}
}

func TestAddRejectsTotalOverflow(t *testing.T) {
	c := qt.New(t)
	l := New()

	_, err := l.Add("Mesin", "1e308")
	c.Assert(err, qt.IsNil)

	_, err = l.Add("Mesin Cadangan", "1e308")
	c.Assert(err, qt.ErrorIs, ErrInvalidPartPrice)
	c.Assert(l.Len(), qt.Equals, 1)
	c.Assert(math.IsInf(l.Total(), 0), qt.IsFalse)
}

func TestRemove(t *testing.T) {
	c := qt.New(t)
	l := New()
	a, _ := l.Add("Kampas Rem", "45000")
	b, _ := l.Add("Busi", "20000")
	d, _ := l.Add("Oli", "55000")

	c.Assert(l.Remove(b.ID), qt.IsTrue)
	c.Assert(l.Parts(), qt.DeepEquals, []Part{a, d})

	c.Assert(l.Remove(b.ID), qt.IsFalse)
	c.Assert(l.Remove(999), qt.IsFalse)
	c.Assert(l.Len(), qt.Equals, 2)
}

func TestRemovedIDsAreNotReused(t *testing.T) {
	c := qt.New(t)
	l := New()
	a, _ := l.Add("A", "1")
	l.Remove(a.ID)

	b, _ := l.Add("B", "1")
	c.Assert(b.ID, qt.Not(qt.Equals), a.ID)
}

func TestTotalIndependentOfHistory(t *testing.T) {
	c := qt.New(t)

	direct := New()
	direct.Add("A", "10000")
	direct.Add("B", "20000")

	churned := New()
	x, _ := churned.Add("X", "99999")
	churned.Add("B", "20000")
	churned.Remove(x.ID)
	churned.Add("A", "10000")

	c.Assert(direct.Total(), qt.Equals, 30000.0)
	c.Assert(churned.Total(), qt.Equals, 30000.0)
	c.Assert(New().Total(), qt.Equals, 0.0)
}

func TestRestore(t *testing.T) {
	c := qt.New(t)

	l := Restore([]Part{
		{ID: 7, Name: "Busi", Price: 20000},
		{ID: 3, Name: "Oli", Price: 55000},
		{ID: 7, Name: "Busi lagi", Price: 1},
	}, 2)
	c.Assert(l.Len(), qt.Equals, 2)
	c.Assert(l.NextID(), qt.Equals, int64(8))

	p, err := l.Add("Rantai", "1")
	c.Assert(err, qt.IsNil)
	c.Assert(p.ID, qt.Equals, int64(8))

	c.Assert(Restore(nil, 0).NextID(), qt.Equals, int64(1))
}

func TestParsePrice(t *testing.T) {
	c := qt.New(t)

	p, err := ParsePrice(" 1500 ")
	c.Assert(err, qt.IsNil)
	c.Assert(p, qt.Equals, 1500.0)

	p, err = ParsePrice("-0")
	c.Assert(err, qt.IsNil)
	c.Assert(math.Signbit(p), qt.IsFalse)

	p, err = ParsePrice("1e15")
	c.Assert(err, qt.IsNil)
	c.Assert(p, qt.Equals, 1e15)
}
