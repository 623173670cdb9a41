package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newGamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List the games the server offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GamesResult

			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <game>",
		Short: "Start a new game and print the empty board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result NewGameResult

			path := fmt.Sprintf("/api/v1/games/%s/new", url.PathEscape(args[0]))
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newMoveCmd() *cobra.Command {
	var board string

	cmd := &cobra.Command{
		Use:   "move <game> <move>",
		Short: "Play a move and let the server reply",
		Long: `Play a move and let the server reply.

Tic-tac-toe moves are "row,col" (0-2). Connect-four moves are a column (0-6).
Without --board a new game is started.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{
				"board": board,
				"move":  args[1],
			}

			var result TurnResult

			path := fmt.Sprintf("/api/v1/games/%s/move", url.PathEscape(args[0]))
			if err := client.Post(path, body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&board, "board", "b", "", "Encoded board from the previous move")

	return cmd
}
