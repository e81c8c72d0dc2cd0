package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"enclose/pkg/collect"
	"enclose/pkg/dialog"
)

func newListCmd(a *app) *cobra.Command {
	var flags filterFlags
	var tree bool
	var output string

	listCmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List the files combine would pick up, in output order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			r, collectOpts, err := flags.resolve(root, a.configPath, a.logger)
			if err != nil {
				return err
			}
			entries, err := collectFor(root, output, r, collectOpts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if tree {
				fmt.Fprint(out, collect.Tree(entries))
			} else {
				for _, e := range entries {
					fmt.Fprintln(out, e.Rel)
				}
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), dialog.RenderWarning(dialog.MsgNoFiles))
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d code files\n", len(entries))
			return nil
		},
	}

	flags.register(listCmd)
	listCmd.Flags().BoolVar(&tree, "tree", false, "print the files as a directory tree")
	listCmd.Flags().StringVarP(&output, "output", "o", "", "leave out this file, as combine does with its output")
	return listCmd
}
