package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/lk16/othello/internal/models"
	"github.com/lk16/othello/internal/services"
)

// ResultStore archives finished games and counts their outcomes.
type ResultStore interface {
	Save(ctx context.Context, result models.GameResult) error
	Stats(ctx context.Context) (models.Stats, error)
}

// gameArchive is the durable record of finished games.
type gameArchive interface {
	Migrate(ctx context.Context) error
	Insert(ctx context.Context, result models.GameResult) error
	CountOutcomes(ctx context.Context) (map[string]int64, error)
}

// outcomeCounters caches the number of games per outcome.
type outcomeCounters interface {
	IncrementIfPresent(ctx context.Context, outcome string) error
	Load(ctx context.Context) (map[string]string, error)
	Replace(ctx context.Context, counts map[string]int64) error
}

// ResultRepository stores game results in Postgres and keeps outcome counters in Redis.
//
// Postgres is the source of truth. The counters are rebuilt from it when missing
// and expire after statsTTL. A game saved between the rebuild's count query and
// its write is missing from the counters until they expire.
type ResultRepository struct {
	archive  gameArchive
	counters outcomeCounters
}

var _ ResultStore = (*ResultRepository)(nil)

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(services *services.Services) *ResultRepository {
	return &ResultRepository{
		archive:  &postgresArchive{db: services.Postgres},
		counters: &redisCounters{client: services.Redis},
	}
}

// Migrate creates the games table if it does not exist.
func (repo *ResultRepository) Migrate(ctx context.Context) error {
	return repo.archive.Migrate(ctx)
}

// Save archives a game result and increments the counter of its outcome.
func (repo *ResultRepository) Save(ctx context.Context, result models.GameResult) error {
	if err := repo.archive.Insert(ctx, result); err != nil {
		return err
	}

	// Missing counters are rebuilt from Postgres, which already includes this game.
	return repo.counters.IncrementIfPresent(ctx, result.Outcome)
}

// Stats returns the number of archived games per outcome.
func (repo *ResultRepository) Stats(ctx context.Context) (models.Stats, error) {
	hash, err := repo.counters.Load(ctx)
	if err != nil {
		return models.Stats{}, err
	}

	if len(hash) == 0 {
		slog.Info("game stats not found in redis, rebuilding from postgres")

		if err = repo.rebuildStats(ctx); err != nil {
			return models.Stats{}, err
		}

		if hash, err = repo.counters.Load(ctx); err != nil {
			return models.Stats{}, err
		}
	}

	return statsFromHash(hash)
}

// rebuildStats recomputes the outcome counters from the games table.
func (repo *ResultRepository) rebuildStats(ctx context.Context) error {
	counts, err := repo.archive.CountOutcomes(ctx)
	if err != nil {
		return err
	}

	// Always write every key, so an empty archive still produces a non-empty hash.
	stats := map[string]int64{
		"black": 0,
		"white": 0,
		"tie":   0,
	}
	for outcome, count := range counts {
		stats[outcome] = count
	}

	return repo.counters.Replace(ctx, stats)
}

func statsFromHash(hash map[string]string) (models.Stats, error) {
	var stats models.Stats

	for key, value := range hash {
		count, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return models.Stats{}, fmt.Errorf("invalid count %q for %s: %w", value, key, err)
		}

		switch key {
		case "black":
			stats.Black = count
		case "white":
			stats.White = count
		case "tie":
			stats.Tie = count
		default:
			slog.Warn("ignoring unknown outcome in game stats", "outcome", key)
		}
	}

	return stats, nil
}
