package ledger

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidPartName  = errors.New("part name is empty")
	ErrInvalidPartPrice = errors.New("part price must be a non-negative number")
)

// Part is a user-entered spare part line item. Immutable once created.
type Part struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Ledger is the ordered list of spare parts of one session. Insertion order
// is the display order. Not safe for concurrent use.
type Ledger struct {
	parts  []Part
	nextID int64
}

func New() *Ledger {
	return &Ledger{nextID: 1}
}

// Restore rebuilds a ledger from previously listed parts. The id counter is
// moved past every restored id so new parts never collide with them.
func Restore(parts []Part, nextID int64) *Ledger {
	l := &Ledger{
		parts:  make([]Part, 0, len(parts)),
		nextID: nextID,
	}
	seen := make(map[int64]struct{}, len(parts))
	for _, p := range parts {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		l.parts = append(l.parts, p)
		if p.ID >= l.nextID {
			l.nextID = p.ID + 1
		}
	}
	if l.nextID < 1 {
		l.nextID = 1
	}
	return l
}

// Add validates the name and price text and appends a new part. On a
// validation error the ledger is left unchanged.
func (l *Ledger) Add(name, priceText string) (Part, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Part{}, ErrInvalidPartName
	}

	price, err := ParsePrice(priceText)
	if err != nil {
		return Part{}, err
	}
	// each price is finite, but their sum must stay finite too
	if math.IsInf(l.Total()+price, 0) {
		return Part{}, ErrInvalidPartPrice
	}

	p := Part{ID: l.nextID, Name: name, Price: price}
	l.nextID++
	l.parts = append(l.parts, p)
	return p, nil
}

// Remove deletes the part with the given id, keeping the order of the rest.
// It reports whether a part was removed.
func (l *Ledger) Remove(id int64) bool {
	for i, p := range l.parts {
		if p.ID == id {
			l.parts = append(l.parts[:i], l.parts[i+1:]...)
			return true
		}
	}
	return false
}

func (l *Ledger) Parts() []Part {
	out := make([]Part, len(l.parts))
	copy(out, l.parts)
	return out
}

func (l *Ledger) Len() int {
	return len(l.parts)
}

// NextID is the id the next added part will get.
func (l *Ledger) NextID() int64 {
	return l.nextID
}

// Total is the sum of all part prices, 0 for an empty ledger.
func (l *Ledger) Total() float64 {
	var total float64
	for _, p := range l.parts {
		total += p.Price
	}
	return total
}

// ParsePrice parses user-entered price text. Prices have no upper bound.
func ParsePrice(text string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, ErrInvalidPartPrice
	}
	if price == 0 {
		// "-0"
		price = 0
	}
	return price, nil
}
