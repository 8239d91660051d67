package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/monju/internal/common"
	"github.com/spf13/cobra"
)

func (a *App) voteCmd() *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "vote <id>",
		Short: "Vote an entry up (or down with --down)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid entry id %q", args[0])
			}

			delta := 1
			if down {
				delta = -1
			}

			e, err := a.entryService.Vote(cmd.Context(), id, delta)
			if errors.Is(err, common.ErrorNotFound) {
				fmt.Fprintf(cmd.ErrOrStderr(), "entry #%d not found\n", id)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated: #%d votes=%d\n", e.ID, e.Votes)
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "vote down instead of up")
	return cmd
}
