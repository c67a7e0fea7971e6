package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lk16/othello/internal/config"
	"github.com/lk16/othello/internal/othello"
	"github.com/lk16/othello/internal/players"
)

// stdin is shared by both human players.
var stdin = bufio.NewReader(os.Stdin)

func newPlayer(kind string) (othello.Player, error) {
	switch kind {
	case "human":
		return players.NewHuman(stdin, os.Stdout), nil
	case "computer":
		return players.Computer{}, nil
	default:
		return nil, fmt.Errorf("unknown player kind %q, use \"human\" or \"computer\"", kind)
	}
}

func main() {
	config.SetLogLevel()
	cfg := config.LoadCLIConfig()

	blackKind := flag.String("black", "human", "player for black: human or computer")
	whiteKind := flag.String("white", "computer", "player for white: human or computer")
	flag.Parse()

	black, err := newPlayer(*blackKind)
	if err != nil {
		slog.Error("Invalid black player", "error", err)
		os.Exit(1)
	}

	white, err := newPlayer(*whiteKind)
	if err != nil {
		slog.Error("Invalid white player", "error", err)
		os.Exit(1)
	}

	game := othello.NewGame(black, white)
	game.SetMaxInvalidChoices(cfg.MaxInvalidChoices)

	outcome, err := game.Run()
	if err != nil {
		slog.Error("Game aborted", "error", err)
		os.Exit(1)
	}

	board := game.Board()
	for _, line := range board.ASCIIArtLines(game.CurrentDisc()) {
		fmt.Println(line)
	}

	fmt.Printf("Black: %d, White: %d\n", board.CountDiscs(othello.Black), board.CountDiscs(othello.White))

	if winner, ok := outcome.Winner(); ok {
		fmt.Printf("%s wins\n", winner)
	} else {
		fmt.Println("It's a tie")
	}
}
