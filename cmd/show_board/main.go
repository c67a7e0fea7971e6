package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/othello/internal/othello"
)

func main() {
	boardString := flag.String("board", othello.NewBoardStart().String(), "the board to show")
	side := flag.String("side", "black", "the side to show valid moves for")
	flag.Parse()

	board, err := othello.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	disc, err := othello.ParseDisc(*side)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	for _, line := range board.ASCIIArtLines(disc) {
		fmt.Println(line)
	}
}
