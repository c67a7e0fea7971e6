package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello/internal/models"
	"github.com/lk16/othello/internal/othello"
)

// GetStartBoard returns the starting position with black to move.
func GetStartBoard(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(models.NewBoardResponse(othello.NewBoardStart(), othello.Black))
}

// GetMoves returns the valid moves of a side on a board.
func GetMoves(c *fiber.Ctx) error {
	var payload models.BoardRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	board, side, err := payload.Parse()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.NewBoardResponse(board, side))
}

// ApplyMove plays a move and returns the resulting board for the next side to move.
// The next side is the opponent, unless the opponent has to pass.
func ApplyMove(c *fiber.Ctx) error {
	var payload models.ApplyMoveRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	board, side, move, err := payload.Parse()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err = board.ApplyMove(move, side); err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, othello.ErrOutOfBounds) ||
			errors.Is(err, othello.ErrSquareOccupied) ||
			errors.Is(err, othello.ErrInvalidMove) {
			status = fiber.StatusBadRequest
		}

		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	next := side.Opposite()
	if !board.HasMoves(next) && board.HasMoves(side) {
		next = side
	}

	return c.Status(fiber.StatusOK).JSON(models.NewBoardResponse(board, next))
}
