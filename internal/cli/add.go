package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) addCmd() *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "add <topic> <text>",
		Short: "Add a knowledge entry",
		Example: `  monju add go "use errors.Is for sentinels" --tags errors --tags idioms
  monju add go "prefer small interfaces" --tags design,interfaces`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.entryService.Add(cmd.Context(), args[0], args[1], tags)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added: #%d [%s] %s\n", e.ID, e.Topic, e.Text)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tags", nil, "tags for the entry (repeatable or comma-separated)")
	return cmd
}
