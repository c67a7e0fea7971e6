package othello

import "fmt"

// Disc is the color of a playing piece.
type Disc uint8

const (
	Black Disc = iota
	White
)

// Opposite returns the other color.
func (d Disc) Opposite() Disc {
	if d == Black {
		return White
	}
	return Black
}

// String returns the lowercase color name.
func (d Disc) String() string {
	switch d {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return fmt.Sprintf("disc(%d)", uint8(d))
	}
}

// ParseDisc parses a color name as returned by String.
func ParseDisc(s string) (Disc, error) {
	switch s {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	default:
		return Black, fmt.Errorf("invalid disc: %q", s)
	}
}

// Square is the content of a single board cell: empty or holding a disc.
type Square struct {
	disc     Disc
	occupied bool
}

// Empty is the empty square.
var Empty = Square{}

// Occupied returns a square holding disc.
func Occupied(disc Disc) Square {
	return Square{disc: disc, occupied: true}
}

// Disc returns the disc on the square and whether there is one.
func (s Square) Disc() (Disc, bool) {
	return s.disc, s.occupied
}

// IsEmpty reports whether the square holds no disc.
func (s Square) IsEmpty() bool {
	return !s.occupied
}

// Holds reports whether the square holds a disc of the given color.
func (s Square) Holds(disc Disc) bool {
	return s.occupied && s.disc == disc
}
