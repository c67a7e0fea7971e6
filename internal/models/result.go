package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lk16/othello/internal/othello"
)

// GameResult is the archived result of a finished game.
type GameResult struct {
	ID         uuid.UUID `json:"id"          db:"id"`
	Outcome    string    `json:"outcome"     db:"outcome"`
	BlackDiscs int       `json:"black_discs" db:"black_discs"`
	WhiteDiscs int       `json:"white_discs" db:"white_discs"`
	Board      string    `json:"board"       db:"board"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
}

// NewGameResult creates a result for a finished game.
func NewGameResult(board othello.Board, outcome othello.Outcome) GameResult {
	return GameResult{
		ID:         uuid.New(),
		Outcome:    outcome.String(),
		BlackDiscs: board.CountDiscs(othello.Black),
		WhiteDiscs: board.CountDiscs(othello.White),
		Board:      board.String(),
		CreatedAt:  time.Now().UTC(),
	}
}

// Stats counts archived games per outcome.
type Stats struct {
	Black int64 `json:"black"`
	White int64 `json:"white"`
	Tie   int64 `json:"tie"`
}

// Total returns the number of archived games.
func (s Stats) Total() int64 {
	return s.Black + s.White + s.Tie
}
