package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/voidtools/repodata"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var staged bool

	cmd := &cobra.Command{
		Use:   "list <repodata|url>",
		Short: "List the packages of a repodata archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rd, err := repodata.FromRepodata(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			idx := rd.Index
			if staged {
				idx = rd.Stage
			}

			names := make([]string, 0, len(idx))
			for name := range idx {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), idx[name])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&staged, "staged", false, "List the staged set instead of the committed index")

	return cmd
}
