package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"enclose/pkg/collect"
	"enclose/pkg/combine"
	"enclose/pkg/dialog"
	"enclose/pkg/rules"
)

const defaultOutput = "combined_code.txt"

type combineFlags struct {
	filterFlags
	output       string
	yes          bool
	previewLimit int
}

func (f *combineFlags) register(cmd *cobra.Command) {
	f.filterFlags.register(cmd)
	fs := cmd.Flags()
	fs.StringVarP(&f.output, "output", "o", defaultOutput, "path of the combined file (created or overwritten)")
	fs.BoolVarP(&f.yes, "yes", "y", false, "skip the preview, confirmation and path prompts")
	fs.IntVar(&f.previewLimit, "preview-limit", dialog.DefaultPreviewLimit, "number of file names shown in the preview")
}

func newCombineCmd(a *app) *cobra.Command {
	var flags combineFlags
	combineCmd := &cobra.Command{
		Use:   "combine [dir]",
		Short: "Combine the code files under dir (default: current directory) into one file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCombine(cmd, args, &flags)
		},
	}
	flags.register(combineCmd)
	return combineCmd
}

// runCombine is the caller around the two core operations: it picks the
// paths, previews the collected list, asks for confirmation, then combines.
func (a *app) runCombine(cmd *cobra.Command, args []string, f *combineFlags) error {
	logger := a.logger
	out := cmd.OutOrStdout()
	interactive := a.interactive() && !f.yes
	terminal := dialog.Terminal{In: cmd.InOrStdin(), Out: out}

	root := "."
	if len(args) > 0 {
		root = args[0]
	} else if interactive {
		picked, err := terminal.PromptPath("Select folder containing code files", root)
		if errors.Is(err, dialog.ErrCancelled) {
			fmt.Fprintln(out, dialog.MsgNoDirectory)
			return nil
		}
		if err != nil {
			return err
		}
		root = picked
	}

	r, collectOpts, err := f.resolve(root, a.configPath, logger)
	if err != nil {
		return err
	}

	// Preview pass; Combine derives the list again on its own.
	entries, err := collectFor(root, f.output, r, collectOpts)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		logger.Warn("No files to process after filtering", zap.String("directory", root))
		return fmt.Errorf("%w in %s", combine.ErrNoFiles, root)
	}

	if !f.yes {
		preview := dialog.PreviewMessage(collect.Rels(entries), f.previewLimit)
		var ok bool
		if interactive {
			ok, err = terminal.Confirm("Confirm", preview)
		} else {
			ok, err = dialog.PromptLine(cmd.InOrStdin(), out, preview+" (y/n): ")
		}
		if err != nil {
			logger.Error("Failed to read user input", zap.Error(err))
			return fmt.Errorf("failed to read user input: %w", err)
		}
		if !ok {
			logger.Info("User chose to abort the combine process")
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	output := f.output
	if interactive && !cmd.Flags().Changed("output") {
		picked, err := terminal.PromptPath("Save combined file as", output)
		if errors.Is(err, dialog.ErrCancelled) {
			fmt.Fprintln(out, dialog.MsgNoOutput)
			return nil
		}
		if err != nil {
			return err
		}
		output = picked
		// A picked path under root may itself be a collected file.
		if entries, err = collectFor(root, output, r, collectOpts); err != nil {
			return err
		}
		if len(entries) == 0 {
			return fmt.Errorf("%w in %s", combine.ErrNoFiles, root)
		}
	}

	var res combine.Result
	run := func() error {
		var err error
		res, err = combine.Combine(root, output, r,
			combine.WithLogger(logger),
			combine.WithCollectOptions(collectOpts...))
		return err
	}
	if interactive {
		err = terminal.RunWithSpinner(fmt.Sprintf("Combining %d files. This may take a moment...", len(entries)), run)
	} else {
		err = run()
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, dialog.RenderSummary(res))
	return nil
}

// collectFor lists the files Combine writes when its output is output. An
// empty output skips nothing.
func collectFor(root, output string, r rules.Rules, opts []collect.Option) ([]collect.FileEntry, error) {
	opts = opts[:len(opts):len(opts)]
	if output != "" {
		opts = append(opts, collect.WithSkip(output))
	}
	entries, err := collect.Collect(root, r, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to collect files: %w", err)
	}
	return entries, nil
}
