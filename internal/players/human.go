package players

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lk16/othello/internal/othello"
)

// Human reads moves from a text stream, typically a terminal.
type Human struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewHuman creates a Human that prompts on w and reads answers from r.
// When r is already a *bufio.Reader it is used as is, so several players
// can share one buffered stream without stealing each other's lines.
func NewHuman(r io.Reader, w io.Writer) *Human {
	reader, ok := r.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(r)
	}

	return &Human{
		reader: reader,
		writer: w,
	}
}

// SelectMove prompts until a valid move is entered. Moves are either an index (0-63) or a field like "d3".
// When the input is exhausted it returns -1.
func (h *Human) SelectMove(board othello.Board, disc othello.Disc) int {
	for {
		for _, line := range board.ASCIIArtLines(disc) {
			fmt.Fprintln(h.writer, line)
		}

		fmt.Fprintf(h.writer, "Enter move for %s: ", disc)

		input, err := h.reader.ReadString('\n')
		if err != nil && input == "" {
			if !errors.Is(err, io.EOF) {
				slog.Error("failed to read move", "error", err)
			}
			fmt.Fprintln(h.writer)
			return -1
		}

		move, err := parseMove(strings.TrimSpace(input))
		if err == nil && board.IsValidMove(move, disc) {
			return move
		}

		fmt.Fprintln(h.writer, "Invalid move, try again.")
	}
}

func parseMove(input string) (int, error) {
	if index, err := strconv.Atoi(input); err == nil {
		return index, nil
	}
	return othello.ParseField(input)
}
