package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theapemachine/qgame/chess"
)

type boardOptions struct {
	fen    string
	lang   string
	splits []string
}

// NewBoardCommand prints a Chinese chess board, optionally after a series
// of split jumps written as "src:dst1:dst2".
func NewBoardCommand(root *RootOptions) *cobra.Command {
	opts := &boardOptions{}

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print a quantum Chinese chess board",
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := parseLanguage(opts.lang)
			if err != nil {
				return err
			}

			board, err := chess.Parse(opts.fen, chess.WithConfig(root.QuantumConfig()))
			if err != nil {
				return err
			}

			for _, split := range opts.splits {
				if err := applySplit(board, split); err != nil {
					return err
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), board.Render(lang))
			printMetrics(cmd, root, board.World())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.fen, "fen", chess.DefaultFEN, "position to print")
	cmd.Flags().StringVar(&opts.lang, "lang", "en", "piece symbols (en|zh)")
	cmd.Flags().StringArrayVar(&opts.splits, "split", nil, "split jump src:dst1:dst2, may repeat")

	return cmd
}

func parseLanguage(lang string) (chess.Language, error) {
	switch lang {
	case "en":
		return chess.EN, nil
	case "zh":
		return chess.ZH, nil
	}
	return chess.EN, fmt.Errorf("invalid language %q: must be one of [en zh]", lang)
}

func applySplit(board *chess.Board, move string) error {
	var squares [3]chess.Square

	parts := strings.Split(move, ":")
	if len(parts) != 3 {
		return fmt.Errorf("invalid split %q: want src:dst1:dst2", move)
	}

	for i, part := range parts {
		sq, err := chess.ParseSquare(part)
		if err != nil {
			return err
		}
		squares[i] = sq
	}

	return board.SplitJump(squares[0], squares[1], squares[2])
}
