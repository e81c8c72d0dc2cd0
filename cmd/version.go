package cmd

import (
	"fmt"

	"enclose/pkg/version"

	"github.com/spf13/cobra"
)

// newVersionCmd displays the current version of enclose.
// The --short flag allows users to retrieve a concise version string.
func newVersionCmd() *cobra.Command {
	var short bool
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Display the version of enclose",
		Long:  `Display the current version information of the enclose CLI tool.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := version.Get()
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), v.Version)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), v.String())
			}

			return nil
		},
	}

	versionCmd.Flags().BoolVarP(&short, "short", "s", false, "Print the version number only")
	return versionCmd
}
