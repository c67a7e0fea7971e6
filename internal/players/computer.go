package players

import "github.com/lk16/othello/internal/othello"

// Computer plays the first valid move in index order.
type Computer struct{}

// SelectMove returns the lowest valid move, or -1 if there is none.
func (Computer) SelectMove(board othello.Board, disc othello.Disc) int {
	moves := board.ValidMoves(disc)
	if len(moves) == 0 {
		return -1
	}
	return moves[0]
}
