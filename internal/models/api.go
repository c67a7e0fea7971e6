package models

import (
	"errors"
	"fmt"

	"github.com/lk16/othello/internal/othello"
)

// BoardRequest asks for the valid moves of a side on a board.
type BoardRequest struct {
	Board string `json:"board"`
	Side  string `json:"side"`
}

// Parse validates the request and returns the board and side.
func (r *BoardRequest) Parse() (othello.Board, othello.Disc, error) {
	board, err := othello.NewBoardFromString(r.Board)
	if err != nil {
		return othello.Board{}, othello.Black, fmt.Errorf("invalid board: %w", err)
	}

	side, err := othello.ParseDisc(r.Side)
	if err != nil {
		return othello.Board{}, othello.Black, fmt.Errorf("invalid side: %w", err)
	}

	return board, side, nil
}

// ApplyMoveRequest asks to play a move on a board.
type ApplyMoveRequest struct {
	BoardRequest
	Move *int `json:"move"`
}

// Parse validates the request and returns the board, side and move.
func (r *ApplyMoveRequest) Parse() (othello.Board, othello.Disc, int, error) {
	board, side, err := r.BoardRequest.Parse()
	if err != nil {
		return othello.Board{}, othello.Black, 0, err
	}

	if r.Move == nil {
		return othello.Board{}, othello.Black, 0, errors.New("missing move")
	}

	return board, side, *r.Move, nil
}

// BoardResponse describes a board as seen by the side to move.
type BoardResponse struct {
	Board      string   `json:"board"`
	Side       string   `json:"side"`
	Moves      []int    `json:"moves"`
	BlackDiscs int      `json:"black_discs"`
	WhiteDiscs int      `json:"white_discs"`
	ASCIIArt   []string `json:"ascii_art"`
	Outcome    string   `json:"outcome,omitempty"`
}

// NewBoardResponse builds a BoardResponse. Outcome is only set when neither side can move.
func NewBoardResponse(board othello.Board, side othello.Disc) BoardResponse {
	response := BoardResponse{
		Board:      board.String(),
		Side:       side.String(),
		Moves:      board.ValidMoves(side),
		BlackDiscs: board.CountDiscs(othello.Black),
		WhiteDiscs: board.CountDiscs(othello.White),
		ASCIIArt:   board.ASCIIArtLines(side),
	}

	if outcome, ok := othello.BoardOutcome(board); ok {
		response.Outcome = outcome.String()
	}

	return response
}

// VersionResponse holds the commit and toolchain the server was built with.
type VersionResponse struct {
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
}
