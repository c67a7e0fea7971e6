package models

import (
	"testing"

	"github.com/lk16/othello/internal/othello"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func TestBoardRequestParse(t *testing.T) {
	start := othello.NewBoardStart().String()

	tests := []struct {
		name     string
		request  BoardRequest
		wantSide othello.Disc
		wantErr  string
	}{
		{
			name:     "OK",
			request:  BoardRequest{Board: start, Side: "white"},
			wantSide: othello.White,
		},
		{
			name:    "InvalidBoard",
			request: BoardRequest{Board: "abc", Side: "black"},
			wantErr: "invalid board",
		},
		{
			name:    "InvalidSide",
			request: BoardRequest{Board: start, Side: "green"},
			wantErr: "invalid side",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, side, err := tt.request.Parse()
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, othello.NewBoardStart(), board)
			require.Equal(t, tt.wantSide, side)
		})
	}
}

func TestApplyMoveRequestParse(t *testing.T) {
	start := othello.NewBoardStart().String()

	request := ApplyMoveRequest{BoardRequest: BoardRequest{Board: start, Side: "black"}, Move: intPtr(19)}
	_, side, move, err := request.Parse()
	require.NoError(t, err)
	require.Equal(t, othello.Black, side)
	require.Equal(t, 19, move)

	request.Move = nil
	_, _, _, err = request.Parse()
	require.ErrorContains(t, err, "missing move")

	request = ApplyMoveRequest{BoardRequest: BoardRequest{Board: start}, Move: intPtr(19)}
	_, _, _, err = request.Parse()
	require.ErrorContains(t, err, "invalid side")
}

func TestNewBoardResponse(t *testing.T) {
	response := NewBoardResponse(othello.NewBoardStart(), othello.Black)

	require.Equal(t, othello.NewBoardStart().String(), response.Board)
	require.Equal(t, "black", response.Side)
	require.Equal(t, []int{19, 26, 37, 44}, response.Moves)
	require.Equal(t, 2, response.BlackDiscs)
	require.Equal(t, 2, response.WhiteDiscs)
	require.Len(t, response.ASCIIArt, 10)
	require.Empty(t, response.Outcome)
}

func TestNewBoardResponse_GameOver(t *testing.T) {
	board, err := othello.NewBoardFromBitboards(0x0000000000000003, 0x0000000000000000)
	require.NoError(t, err)

	response := NewBoardResponse(board, othello.White)
	require.Empty(t, response.Moves)
	require.Equal(t, "black", response.Outcome)
}

func TestNewGameResult(t *testing.T) {
	board, err := othello.NewBoardFromBitboards(0x0000000000000001, 0x0000000000000006)
	require.NoError(t, err)

	result := NewGameResult(board, othello.WinnerOutcome(othello.White))

	require.NotEmpty(t, result.ID.String())
	require.Equal(t, "white", result.Outcome)
	require.Equal(t, 1, result.BlackDiscs)
	require.Equal(t, 2, result.WhiteDiscs)
	require.Equal(t, board.String(), result.Board)
	require.False(t, result.CreatedAt.IsZero())
}

func TestStatsTotal(t *testing.T) {
	require.Equal(t, int64(6), Stats{Black: 1, White: 2, Tie: 3}.Total())
}
