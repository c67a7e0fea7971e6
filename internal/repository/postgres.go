package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lk16/othello/internal/models"
)

const createGamesTable = `
	CREATE TABLE IF NOT EXISTS games (
		id          UUID PRIMARY KEY,
		outcome     TEXT NOT NULL,
		black_discs INTEGER NOT NULL,
		white_discs INTEGER NOT NULL,
		board       TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL
	);
`

type postgresArchive struct {
	db *sqlx.DB
}

func (a *postgresArchive) Migrate(ctx context.Context) error {
	if _, err := a.db.ExecContext(ctx, createGamesTable); err != nil {
		return fmt.Errorf("error creating games table: %w", err)
	}
	return nil
}

func (a *postgresArchive) Insert(ctx context.Context, result models.GameResult) error {
	query := `
		INSERT INTO games (id, outcome, black_discs, white_discs, board, created_at)
		VALUES (:id, :outcome, :black_discs, :white_discs, :board, :created_at)
	`

	if _, err := a.db.NamedExecContext(ctx, query, result); err != nil {
		return fmt.Errorf("error saving game result: %w", err)
	}
	return nil
}

func (a *postgresArchive) CountOutcomes(ctx context.Context) (map[string]int64, error) {
	query := `
		SELECT outcome, COUNT(*) AS count
		FROM games
		GROUP BY outcome
	`

	var rows []struct {
		Outcome string `db:"outcome"`
		Count   int64  `db:"count"`
	}

	if err := a.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("error counting game results: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Outcome] = row.Count
	}
	return counts, nil
}
