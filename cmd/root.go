package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"enclose/pkg/logging"
	"enclose/pkg/version"
)

const appName = "enclose"

// app carries state shared by all commands of one invocation.
type app struct {
	logger      *zap.Logger
	debug       bool
	configPath  string
	interactive func() bool
}

// NewRootCmd builds the command tree. A nil logger is replaced by the one
// logging.Setup builds once flags are parsed.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	return newRootCmd(&app{logger: logger, interactive: stdioIsTerminal})
}

func newRootCmd(a *app) *cobra.Command {
	var flags combineFlags

	rootCmd := &cobra.Command{
		Use:   appName + " [dir]",
		Short: "Combine the code files of a directory into one annotated text file",
		Long: `enclose scans a directory recursively for recognized code files and writes
them into a single text file, one fenced block per file headed by its relative
path. Hidden directories and dependency folders (node_modules, __pycache__,
venv, env) are never entered.

Running enclose without a subcommand is the same as "enclose combine".`,
		Example: `  enclose ./project -o project.txt
  enclose list ./project --tree`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			if err := logging.Setup(a.debug, appName, version.Get().Version); err != nil {
				return err
			}
			a.logger = logging.Logger
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCombine(cmd, args, &flags)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML rules file")
	flags.register(rootCmd)

	rootCmd.AddCommand(newCombineCmd(a), newListCmd(a), newVersionCmd())
	return rootCmd
}

// Execute runs the command line and returns the error fang already reported.
func Execute(ctx context.Context) error {
	return fang.Execute(
		ctx,
		NewRootCmd(nil),
		fang.WithVersion(version.Get().Version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	)
}

func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
