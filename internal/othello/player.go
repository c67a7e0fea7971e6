package othello

// Player chooses moves for one side of a game.
type Player interface {
	// SelectMove returns the index of the square to play. The game validates the returned index.
	SelectMove(board Board, disc Disc) int
}

// PlayerFunc adapts a function to the Player interface.
type PlayerFunc func(board Board, disc Disc) int

// SelectMove calls f.
func (f PlayerFunc) SelectMove(board Board, disc Disc) int {
	return f(board, disc)
}
