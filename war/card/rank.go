package card

import "fmt"

// Rank orders card values from Two (lowest) to Ace (highest).
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in ascending order.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankLabels = map[Rank]string{
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Compare returns -1, 0 or 1 as r is lower than, equal to or higher than other.
func (r Rank) Compare(other Rank) int {
	switch {
	case r < other:
		return -1
	case r > other:
		return 1
	default:
		return 0
	}
}

func (r Rank) String() string {
	if label, ok := rankLabels[r]; ok {
		return label
	}
	if r.Valid() {
		return fmt.Sprintf("%d", int(r))
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}
