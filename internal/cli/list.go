package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/monju/internal/models"
	"github.com/spf13/cobra"
)

func (a *App) listCmd() *cobra.Command {
	var topic string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, most voted first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.entryService.List(cmd.Context(), topic)
			if err != nil {
				return err
			}
			printEntries(cmd.OutOrStdout(), list)
			return nil
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", "only show entries with exactly this topic")
	return cmd
}

func (a *App) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find entries whose text or topic contains query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.entryService.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printEntries(cmd.OutOrStdout(), list)
			return nil
		},
	}
}

func printEntries(w io.Writer, list []models.Entry) {
	for _, e := range list {
		fmt.Fprintln(w, e.String())
	}
}
