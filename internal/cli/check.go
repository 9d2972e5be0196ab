package cli

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/voidtools/repodata"
	"github.com/voidtools/repodata/internal/scanner"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "check <repodata|url|dir>...",
		Short: "Check staged packages for shared library consistency",
		Long: `Loads one or more repodata archives and reports every shared library
that would lose its provider if the staged packages were committed.
With --recursive, arguments are directories scanned for repodata
archives.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := args

			if recursive {
				sc := scanner.NewFileSystemScanner()
				sources = nil
				for _, dir := range args {
					found, err := sc.Scan(cmd.Context(), dir)
					if err != nil {
						return err
					}
					for _, f := range found {
						sources = append(sources, f.Path)
					}
				}
			}

			inconsistent := 0
			for _, source := range sources {
				rd, err := repodata.FromRepodata(cmd.Context(), source)
				if err != nil {
					return err
				}

				diffs := repodata.ComputeStage(rd)
				if len(diffs) == 0 {
					logrus.Infof("%s: stage is consistent (%d staged, %d indexed)",
						source, len(rd.Stage), len(rd.Index))
					continue
				}

				inconsistent += len(diffs)
				for _, diff := range diffs {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s no longer provided by %s, still required by %s\n",
						source, diff.Shlib, diff.Provider, strings.Join(diff.RequiredBy, ", "))
				}
			}

			if inconsistent > 0 {
				return fmt.Errorf("found %d inconsistent shared libraries", inconsistent)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Scan directories for repodata archives")

	return cmd
}
