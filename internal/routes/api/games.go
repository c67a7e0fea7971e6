package api

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello/internal/config"
	"github.com/lk16/othello/internal/models"
	"github.com/lk16/othello/internal/othello"
	"github.com/lk16/othello/internal/players"
	"github.com/lk16/othello/internal/repository"
)

// SimulateRequest optionally holds opening moves, played alternately before the computer takes over.
type SimulateRequest struct {
	Opening []int `json:"opening"`
}

// Simulate plays a computer versus computer game, archives and returns its result.
func Simulate(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.ServerConfig)        //nolint: errcheck
	results := c.Locals("results").(repository.ResultStore) //nolint: errcheck

	var payload SimulateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	game, err := playOpening(payload.Opening, cfg.MaxInvalidChoices)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	outcome, err := game.Run()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result := models.NewGameResult(game.Board(), outcome)

	if err = results.Save(c.Context(), result); err != nil {
		slog.Error("failed to save game result", "id", result.ID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// playOpening creates a computer versus computer game and plays the opening moves on it.
func playOpening(opening []int, maxInvalidChoices int) (*othello.Game, error) {
	script := players.NewScripted(opening...)
	player := players.NewChain(script, players.Computer{})

	game := othello.NewGame(player, player)
	game.SetMaxInvalidChoices(maxInvalidChoices)

	for script.Remaining() > 0 {
		played := len(opening) - script.Remaining()

		if err := game.Step(); err != nil {
			if errors.Is(err, othello.ErrIllegalMove) || errors.Is(err, othello.ErrGameOver) {
				return nil, fmt.Errorf("opening move %d: %w", played, err)
			}
			return nil, err
		}
	}

	return game, nil
}

// GetStats returns the number of archived games per outcome.
func GetStats(c *fiber.Ctx) error {
	results := c.Locals("results").(repository.ResultStore) //nolint: errcheck

	stats, err := results.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
