package othello

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrIllegalMove is returned when a move is not available to the side to move.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver is returned when a half-move is requested after the game ended.
	ErrGameOver = errors.New("game over")

	// ErrTooManyInvalidChoices is returned by Run when a player keeps choosing illegal moves.
	ErrTooManyInvalidChoices = errors.New("too many invalid choices")
)

type outcomeKind uint8

const (
	outcomeNone outcomeKind = iota
	outcomeTie
	outcomeWinner
)

// Outcome is the result of a finished game: a tie or a winning color.
// The zero value is no outcome at all; it is neither a tie nor a win and is
// what Run returns alongside an error.
type Outcome struct {
	kind   outcomeKind
	winner Disc
}

// TieOutcome returns the outcome of a drawn game.
func TieOutcome() Outcome {
	return Outcome{kind: outcomeTie}
}

// WinnerOutcome returns the outcome of a game won by disc.
func WinnerOutcome(disc Disc) Outcome {
	return Outcome{kind: outcomeWinner, winner: disc}
}

// IsDecided reports whether o is a real outcome rather than the zero value.
func (o Outcome) IsDecided() bool {
	return o.kind != outcomeNone
}

// IsTie reports whether the game ended in a draw.
func (o Outcome) IsTie() bool {
	return o.kind == outcomeTie
}

// Winner returns the winning color, if there is one.
func (o Outcome) Winner() (Disc, bool) {
	return o.winner, o.kind == outcomeWinner
}

// String returns "tie", "black", "white" or "none" for the zero value.
func (o Outcome) String() string {
	switch o.kind {
	case outcomeTie:
		return "tie"
	case outcomeWinner:
		return o.winner.String()
	default:
		return "none"
	}
}

// Game runs an Othello game between two players.
type Game struct {
	board   Board
	black   Player
	white   Player
	current Disc

	// maxInvalidChoices bounds consecutive rejected choices in Run, zero means no bound.
	maxInvalidChoices int
	invalidChoices    int
}

// NewGame creates a game from the starting position with black to move.
func NewGame(black, white Player) *Game {
	return NewGameWithStart(NewBoardStart(), Black, black, white)
}

// NewGameWithStart creates a game with a custom start board and side to move.
func NewGameWithStart(start Board, current Disc, black, white Player) *Game {
	return &Game{
		board:   start,
		black:   black,
		white:   white,
		current: current,
	}
}

// SetMaxInvalidChoices makes Run fail after n consecutive illegal choices of the side to move.
// With n == 0, which is the default, Run asks the player again until it picks a legal move.
func (g *Game) SetMaxInvalidChoices(n int) {
	g.maxInvalidChoices = max(n, 0)
}

// CurrentDisc returns the side to move.
func (g *Game) CurrentDisc() Disc {
	return g.current
}

// CurrentPlayer returns the player of the side to move.
func (g *Game) CurrentPlayer() Player {
	if g.current == White {
		return g.white
	}
	return g.black
}

// Board returns a copy of the board.
func (g *Game) Board() Board {
	return g.board
}

// AvailableMoves returns the valid moves of the side to move.
func (g *Game) AvailableMoves() []int {
	return g.board.ValidMoves(g.current)
}

// ForcedPass checks if the side to move has no valid move.
func (g *Game) ForcedPass() bool {
	return !g.board.HasMoves(g.current)
}

// ApplyCurrent plays index for the side to move. It does not change the side to move.
func (g *Game) ApplyCurrent(index int) error {
	if !g.board.IsValidMove(index, g.current) {
		return fmt.Errorf("%w: %s cannot play %d", ErrIllegalMove, g.current, index)
	}

	if err := g.board.ApplyMove(index, g.current); err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	return nil
}

func (g *Game) advanceTurn() {
	g.current = g.current.Opposite()
}

// IsOver checks if neither side has a valid move.
func (g *Game) IsOver() bool {
	return !g.board.HasMoves(Black) && !g.board.HasMoves(White)
}

// Outcome returns the result of the game. The second return value is false while the game is running.
func (g *Game) Outcome() (Outcome, bool) {
	return BoardOutcome(g.board)
}

// BoardOutcome compares disc counts on a board where neither side can move.
// The second return value is false if a side still has a valid move.
func BoardOutcome(board Board) (Outcome, bool) {
	if board.HasMoves(Black) || board.HasMoves(White) {
		return Outcome{}, false
	}

	black := board.CountDiscs(Black)
	white := board.CountDiscs(White)

	switch {
	case black > white:
		return WinnerOutcome(Black), true
	case white > black:
		return WinnerOutcome(White), true
	default:
		return TieOutcome(), true
	}
}

// Step plays one half-move. If the side to move has no valid move it passes without asking its player.
// If the player picks an illegal move, an error wrapping ErrIllegalMove is returned and nothing changes.
func (g *Game) Step() error {
	if g.IsOver() {
		return ErrGameOver
	}

	if g.ForcedPass() {
		slog.Debug("forced pass", "disc", g.current)
		g.advanceTurn()
		return nil
	}

	choice := g.CurrentPlayer().SelectMove(g.board, g.current)

	if err := g.ApplyCurrent(choice); err != nil {
		g.invalidChoices++
		slog.Warn("rejected move", "disc", g.current, "move", choice, "attempt", g.invalidChoices)
		return err
	}

	slog.Debug("played move", "disc", g.current, "move", FieldName(choice))

	g.invalidChoices = 0
	g.advanceTurn()
	return nil
}

// Run plays half-moves until the game is over and returns the outcome.
func (g *Game) Run() (Outcome, error) {
	for !g.IsOver() {
		err := g.Step()
		if err == nil {
			continue
		}

		if !errors.Is(err, ErrIllegalMove) {
			return Outcome{}, err
		}

		if g.maxInvalidChoices > 0 && g.invalidChoices >= g.maxInvalidChoices {
			return Outcome{}, fmt.Errorf("%w: %s chose %d illegal moves in a row",
				ErrTooManyInvalidChoices, g.current, g.invalidChoices)
		}
	}

	outcome, _ := g.Outcome()

	slog.Debug("game over", "outcome", outcome,
		"black", g.board.CountDiscs(Black), "white", g.board.CountDiscs(White))

	return outcome, nil
}
