package players

import "github.com/lk16/othello/internal/othello"

// Scripted replays a fixed list of moves, then returns -1 forever.
type Scripted struct {
	moves []int
	next  int
}

// NewScripted creates a Scripted player.
func NewScripted(moves ...int) *Scripted {
	return &Scripted{moves: append([]int{}, moves...)}
}

// SelectMove returns the next scripted move, ignoring the board.
func (s *Scripted) SelectMove(_ othello.Board, _ othello.Disc) int {
	if s.next >= len(s.moves) {
		return -1
	}

	move := s.moves[s.next]
	s.next++
	return move
}

// Remaining returns the number of moves not played yet.
func (s *Scripted) Remaining() int {
	return len(s.moves) - s.next
}

// Chain plays the moves of a script, then asks another player.
type Chain struct {
	script *Scripted
	then   othello.Player
}

// NewChain creates a Chain. The script may be shared by both sides of a game.
func NewChain(script *Scripted, then othello.Player) *Chain {
	return &Chain{script: script, then: then}
}

// SelectMove returns the next scripted move while there is one.
func (c *Chain) SelectMove(board othello.Board, disc othello.Disc) int {
	if c.script.Remaining() > 0 {
		return c.script.SelectMove(board, disc)
	}
	return c.then.SelectMove(board, disc)
}
