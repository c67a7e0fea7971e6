package othello //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	dummyPlayer = PlayerFunc(func(Board, Disc) int { return 0 })
	firstPlayer = PlayerFunc(func(board Board, disc Disc) int { return board.ValidMoves(disc)[0] })
)

// newGameFromMoves applies moves alternating sides, starting with black.
func newGameFromMoves(t *testing.T, black, white Player, moves []int) *Game {
	t.Helper()

	game := NewGame(black, white)
	for _, move := range moves {
		require.NoError(t, game.ApplyCurrent(move))
		game.advanceTurn()
	}
	return game
}

func TestGame_CurrentDisc(t *testing.T) {
	game := NewGame(dummyPlayer, dummyPlayer)
	require.Equal(t, Black, game.CurrentDisc())

	game.advanceTurn()
	require.Equal(t, White, game.CurrentDisc())

	game.advanceTurn()
	require.Equal(t, Black, game.CurrentDisc())
}

func TestGame_CurrentPlayer(t *testing.T) {
	black := PlayerFunc(func(Board, Disc) int { return 1 })
	white := PlayerFunc(func(Board, Disc) int { return 2 })

	game := NewGame(black, white)
	require.Equal(t, 1, game.CurrentPlayer().SelectMove(game.Board(), Black))

	game.advanceTurn()
	require.Equal(t, 2, game.CurrentPlayer().SelectMove(game.Board(), White))
}

func TestGame_AvailableMoves(t *testing.T) {
	game := NewGame(dummyPlayer, dummyPlayer)
	require.Equal(t, []int{19, 26, 37, 44}, game.AvailableMoves())
	require.False(t, game.ForcedPass())
}

func TestGame_ApplyCurrent(t *testing.T) {
	game := NewGame(dummyPlayer, dummyPlayer)

	require.NoError(t, game.ApplyCurrent(19))

	square, err := game.Board().GetField(19)
	require.NoError(t, err)
	require.True(t, square.Holds(Black))

	// The side to move is unchanged, black cannot play a corner.
	before := game.Board()
	require.ErrorIs(t, game.ApplyCurrent(0), ErrIllegalMove)
	require.ErrorIs(t, game.ApplyCurrent(64), ErrIllegalMove)
	require.ErrorIs(t, game.ApplyCurrent(-5), ErrIllegalMove)
	require.Equal(t, before, game.Board())
}

func TestGame_ForcedPass(t *testing.T) {
	game := newGameFromMoves(t, dummyPlayer, dummyPlayer, []int{19, 18, 17, 9, 37, 16, 0, 2})

	require.Equal(t, Black, game.CurrentDisc())
	require.True(t, game.ForcedPass())
	require.Empty(t, game.AvailableMoves())
	require.False(t, game.IsOver())
}

func TestGame_Step_ForcedPassSkipsPlayer(t *testing.T) {
	setup := newGameFromMoves(t, dummyPlayer, dummyPlayer, []int{19, 18, 17, 9, 37, 16, 0, 2})

	black := PlayerFunc(func(Board, Disc) int {
		t.Fatal("black player must not be consulted on a forced pass")
		return 0
	})

	game := NewGameWithStart(setup.Board(), Black, black, firstPlayer)
	before := game.Board()

	require.NoError(t, game.Step())
	require.Equal(t, White, game.CurrentDisc())
	require.Equal(t, before, game.Board())

	// White still has moves and is asked next.
	require.NoError(t, game.Step())
	require.NotEqual(t, before, game.Board())
}

func TestGame_Step_InvalidChoice(t *testing.T) {
	game := NewGame(dummyPlayer, dummyPlayer)
	before := game.Board()

	err := game.Step()
	require.ErrorIs(t, err, ErrIllegalMove)
	require.Equal(t, Black, game.CurrentDisc())
	require.Equal(t, before, game.Board())
}

func TestGame_Step_ValidChoice(t *testing.T) {
	game := NewGame(firstPlayer, firstPlayer)

	require.NoError(t, game.Step())
	require.Equal(t, White, game.CurrentDisc())
	require.Equal(t, 4, game.Board().CountDiscs(Black))
	require.Equal(t, 1, game.Board().CountDiscs(White))
}

func TestGame_Step_GameOver(t *testing.T) {
	game := newGameFromMoves(t, dummyPlayer, dummyPlayer, []int{44, 29, 20, 45, 38, 43, 52, 37, 34})

	require.ErrorIs(t, game.Step(), ErrGameOver)
}

func TestGame_PrematureOutcome(t *testing.T) {
	game := NewGame(dummyPlayer, dummyPlayer)

	_, ok := game.Outcome()
	require.False(t, ok)
	require.False(t, game.IsOver())
}

func TestGame_Outcome(t *testing.T) {
	tests := []struct {
		name  string
		moves []int
		want  Outcome
	}{
		{
			name:  "black wins",
			moves: []int{44, 29, 20, 45, 38, 43, 52, 37, 34},
			want:  WinnerOutcome(Black),
		},
		{
			name:  "tie",
			moves: []int{37, 29, 18, 45, 54, 53, 21, 55, 61, 9, 47, 52, 63, 20, 51, 22, 13, 5, 0, 34},
			want:  TieOutcome(),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			game := newGameFromMoves(t, dummyPlayer, dummyPlayer, test.moves)

			require.True(t, game.IsOver())

			outcome, ok := game.Outcome()
			require.True(t, ok)
			require.Equal(t, test.want, outcome)
		})
	}
}

func TestOutcome(t *testing.T) {
	tie := TieOutcome()
	require.True(t, tie.IsTie())
	_, ok := tie.Winner()
	require.False(t, ok)
	require.Equal(t, "tie", tie.String())

	white := WinnerOutcome(White)
	require.False(t, white.IsTie())
	winner, ok := white.Winner()
	require.True(t, ok)
	require.Equal(t, White, winner)
	require.Equal(t, "white", white.String())
	require.True(t, white.IsDecided())

	var none Outcome
	require.False(t, none.IsDecided())
	require.False(t, none.IsTie())
	_, ok = none.Winner()
	require.False(t, ok)
	require.Equal(t, "none", none.String())
	require.NotEqual(t, WinnerOutcome(Black), none)
}

func TestGame_Run(t *testing.T) {
	game := NewGame(firstPlayer, firstPlayer)

	outcome, err := game.Run()
	require.NoError(t, err)

	require.True(t, game.IsOver())
	require.Empty(t, game.Board().ValidMoves(Black))
	require.Empty(t, game.Board().ValidMoves(White))

	require.Equal(t, WinnerOutcome(White), outcome)
	require.Equal(t, 19, game.Board().CountDiscs(Black))
	require.Equal(t, 45, game.Board().CountDiscs(White))
}

func TestGame_Run_RetriesInvalidChoices(t *testing.T) {
	calls := 0
	flaky := PlayerFunc(func(board Board, disc Disc) int {
		calls++
		if calls%3 != 0 {
			return -1
		}
		return board.ValidMoves(disc)[0]
	})

	game := NewGame(flaky, firstPlayer)

	outcome, err := game.Run()
	require.NoError(t, err)
	require.Equal(t, WinnerOutcome(White), outcome)
}

func TestGame_Run_MaxInvalidChoices(t *testing.T) {
	game := NewGame(firstPlayer, dummyPlayer)
	game.SetMaxInvalidChoices(3)

	outcome, err := game.Run()
	require.ErrorIs(t, err, ErrTooManyInvalidChoices)
	require.False(t, outcome.IsDecided())
	require.Equal(t, White, game.CurrentDisc())

	// Only black's first move was played.
	require.Equal(t, 4, game.Board().CountDiscs(Black))
}
