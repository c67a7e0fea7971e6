package othello

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	MaxX    = 8
	MaxY    = 8
	Surface = MaxX * MaxY
)

// Errors returned by board operations. The board is never modified when one of them is returned.
var (
	ErrOutOfBounds    = errors.New("out of bounds")
	ErrSquareOccupied = errors.New("square occupied")
	ErrInvalidMove    = errors.New("invalid move")
)

type direction struct {
	dRow, dCol int
}

var (
	north     = direction{-1, 0}
	northEast = direction{-1, 1}
	east      = direction{0, 1}
	southEast = direction{1, 1}
	south     = direction{1, 0}
	southWest = direction{1, -1}
	west      = direction{0, -1}
	northWest = direction{-1, -1}
)

var directions = [8]direction{north, northEast, east, southEast, south, southWest, west, northWest}

// Board is an 8x8 Othello board. Squares are addressed row-major: index = row*8 + col.
type Board struct {
	squares [Surface]Square
}

// NewBoardStart creates a board with the standard starting position.
func NewBoardStart() Board {
	var b Board

	midRow, midCol := MaxY/2, MaxX/2

	b.squares[midRow*MaxX+midCol] = Occupied(White)
	b.squares[(midRow-1)*MaxX+midCol] = Occupied(Black)
	b.squares[midRow*MaxX+midCol-1] = Occupied(Black)
	b.squares[(midRow-1)*MaxX+midCol-1] = Occupied(White)

	return b
}

// NewBoardEmpty creates a board without any discs.
func NewBoardEmpty() Board {
	return Board{}
}

// NewBoardFromBitboards creates a board from a black and a white bitboard, bit i being square i.
func NewBoardFromBitboards(black, white uint64) (Board, error) {
	if black&white != 0 {
		return Board{}, errors.New("invalid board: black and white discs cannot overlap")
	}

	var b Board
	for i := 0; i < Surface; i++ {
		mask := uint64(1) << i
		switch {
		case black&mask != 0:
			b.squares[i] = Occupied(Black)
		case white&mask != 0:
			b.squares[i] = Occupied(White)
		}
	}

	return b, nil
}

// NewBoardFromString parses the representation returned by String.
func NewBoardFromString(s string) (Board, error) {
	if len(s) != 32 {
		return Board{}, fmt.Errorf("board string must be 32 characters long, got %d", len(s))
	}

	black, err := strconv.ParseUint(s[:16], 16, 64)
	if err != nil {
		return Board{}, fmt.Errorf("invalid black bitboard: %w", err)
	}

	white, err := strconv.ParseUint(s[16:], 16, 64)
	if err != nil {
		return Board{}, fmt.Errorf("invalid white bitboard: %w", err)
	}

	return NewBoardFromBitboards(black, white)
}

// Index converts a row and column to a square index.
func (b Board) Index(row, col int) (int, error) {
	if row < 0 || row >= MaxY || col < 0 || col >= MaxX {
		return 0, ErrOutOfBounds
	}
	return row*MaxX + col, nil
}

// RowCol converts a square index to its row and column.
func (b Board) RowCol(index int) (int, int, error) {
	if index < 0 || index >= Surface {
		return 0, 0, ErrOutOfBounds
	}
	return index / MaxX, index % MaxX, nil
}

// GetField returns the content of the square at index.
func (b Board) GetField(index int) (Square, error) {
	if index < 0 || index >= Surface {
		return Square{}, ErrOutOfBounds
	}
	return b.squares[index], nil
}

func (b *Board) setField(index int, disc Disc) error {
	if index < 0 || index >= Surface {
		return ErrOutOfBounds
	}
	b.squares[index] = Occupied(disc)
	return nil
}

// nextIndex returns the neighbour of index in direction dir, if it is on the board.
func (b Board) nextIndex(index int, dir direction) (int, bool) {
	row, col, err := b.RowCol(index)
	if err != nil {
		return 0, false
	}

	next, err := b.Index(row+dir.dRow, col+dir.dCol)
	if err != nil {
		return 0, false
	}

	return next, true
}

// flipsInDirection returns the discs captured in one direction when disc is played at start.
// It returns nil when nothing is captured.
func (b Board) flipsInDirection(start int, disc Disc, dir direction) []int {
	opponent := disc.Opposite()

	index, ok := b.nextIndex(start, dir)
	if !ok || !b.squares[index].Holds(opponent) {
		return nil
	}

	flips := []int{index}

	for {
		index, ok = b.nextIndex(index, dir)
		if !ok {
			return nil
		}

		switch square := b.squares[index]; {
		case square.Holds(opponent):
			flips = append(flips, index)
		case square.Holds(disc):
			return flips
		default:
			return nil
		}
	}
}

// flipped returns all discs captured when disc is played at start, in all directions.
func (b Board) flipped(start int, disc Disc) []int {
	var all []int
	for _, dir := range directions {
		all = append(all, b.flipsInDirection(start, disc, dir)...)
	}
	return all
}

// ApplyMove places disc at index and flips all captured discs.
// An occupied square always yields ErrSquareOccupied, whether or not the move would capture.
func (b *Board) ApplyMove(index int, disc Disc) error {
	square, err := b.GetField(index)
	if err != nil {
		return err
	}

	if !square.IsEmpty() {
		return ErrSquareOccupied
	}

	flips := b.flipped(index, disc)
	if len(flips) == 0 {
		return ErrInvalidMove
	}

	// Indices were validated above, setField cannot fail from here on.
	_ = b.setField(index, disc)
	for _, flip := range flips {
		_ = b.setField(flip, disc)
	}

	return nil
}

// IsValidMove checks if disc can be played at index. It returns false for indices off the board.
func (b Board) IsValidMove(index int, disc Disc) bool {
	square, err := b.GetField(index)
	if err != nil || !square.IsEmpty() {
		return false
	}
	return len(b.flipped(index, disc)) > 0
}

// ValidMoves returns all squares where disc can be played, in ascending order.
func (b Board) ValidMoves(disc Disc) []int {
	moves := make([]int, 0)
	for index := 0; index < Surface; index++ {
		if b.IsValidMove(index, disc) {
			moves = append(moves, index)
		}
	}
	return moves
}

// HasMoves checks if disc has any valid move.
func (b Board) HasMoves(disc Disc) bool {
	for index := 0; index < Surface; index++ {
		if b.IsValidMove(index, disc) {
			return true
		}
	}
	return false
}

// CountDiscs returns the number of discs of the given color.
func (b Board) CountDiscs(disc Disc) int {
	count := 0
	for _, square := range b.squares {
		if square.Holds(disc) {
			count++
		}
	}
	return count
}

// Bitboards returns the black and white discs as bitsets, bit i being square i.
func (b Board) Bitboards() (uint64, uint64) {
	var black, white uint64
	for i, square := range b.squares {
		mask := uint64(1) << i
		if square.Holds(Black) {
			black |= mask
		} else if square.Holds(White) {
			white |= mask
		}
	}
	return black, white
}

// ASCIIArtLines returns the ascii art lines for the board, marking valid moves for disc.
func (b Board) ASCIIArtLines(disc Disc) []string {
	lines := make([]string, MaxY+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for y := 0; y < MaxY; y++ {
		line := fmt.Sprintf("%d ", y+1)

		for x := 0; x < MaxX; x++ {
			index := (y * MaxX) + x
			square := b.squares[index]

			switch {
			case square.Holds(White):
				line += "○ "
			case square.Holds(Black):
				line += "● "
			case b.IsValidMove(index, disc):
				line += "· "
			default:
				line += "  "
			}
		}

		lines[y+1] = line + "|"
	}

	lines[MaxY+1] = "+-----------------+"

	return lines
}

// String returns the black and white bitboards as 32 hexadecimal characters.
func (b Board) String() string {
	black, white := b.Bitboards()
	return fmt.Sprintf("%016x%016x", black, white)
}
