// Package combine concatenates collected files into a single annotated text
// file made of fenced blocks.
package combine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"enclose/pkg/collect"
	"enclose/pkg/rules"
)

// ErrNoFiles is returned when the root holds nothing to combine. No output is
// written in that case.
var ErrNoFiles = errors.New("no code files found")

// Result summarizes a successful run.
type Result struct {
	Output     string // Absolute path of the written file.
	Files      int    // Number of fenced blocks written.
	Unreadable int    // Blocks that carry an error marker instead of content.
	Bytes      int64  // Size of the output file.
}

type options struct {
	collect []collect.Option
	logger  *zap.Logger
}

// Option tunes a Combine call.
type Option func(*options)

// WithCollectOptions forwards options to the collector.
func WithCollectOptions(opts ...collect.Option) Option {
	return func(o *options) { o.collect = append(o.collect, opts...) }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Combine collects the files under root with r and writes them to output.
// The file list is always derived afresh. The output file itself is never
// part of the list, even when it lives under root.
func Combine(root, output string, r rules.Rules, opts ...Option) (Result, error) {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger
	startTime := time.Now()

	absOutput, err := filepath.Abs(output)
	if err != nil {
		logger.Error("Failed to resolve output path", zap.String("output", output), zap.Error(err))
		return Result{}, fmt.Errorf("failed to get absolute output path: %w", err)
	}

	logger.Info("Starting combination process", zap.String("directory", root), zap.String("output", absOutput))

	collectOpts := append([]collect.Option{collect.WithLogger(logger)}, o.collect...)
	collectOpts = append(collectOpts, collect.WithSkip(absOutput))
	entries, err := collect.Collect(root, r, collectOpts...)
	if err != nil {
		logger.Error("Failed to collect files", zap.Error(err))
		return Result{}, fmt.Errorf("failed to collect files: %w", err)
	}
	if len(entries) == 0 {
		logger.Warn("No files to process after filtering", zap.String("directory", root))
		return Result{}, ErrNoFiles
	}

	res, err := WriteFile(absOutput, entries, logger)
	if err != nil {
		logger.Error("Failed to write combined file", zap.String("combinedFile", absOutput), zap.Error(err))
		return Result{}, err
	}

	logger.Info("Combination process completed",
		zap.String("outputFile", res.Output),
		zap.Int("totalFiles", res.Files),
		zap.Int("unreadableFiles", res.Unreadable),
		zap.Int64("sizeBytes", res.Bytes),
		zap.Duration("elapsed", time.Since(startTime)))
	return res, nil
}

// WriteFile creates or truncates output and writes entries to it.
func WriteFile(output string, entries []collect.FileEntry, logger *zap.Logger) (res Result, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("Writing combined content to output file", zap.String("combinedFile", output))

	outFile, err := os.Create(output)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", output), zap.Error(err))
		return Result{}, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := outFile.Close(); cerr != nil && err == nil {
			logger.Error("Failed to close output file", zap.String("file", output), zap.Error(cerr))
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	writer := bufio.NewWriter(outFile)
	unreadable, err := WriteEntries(writer, entries, logger)
	if err != nil {
		return Result{}, err
	}
	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", output), zap.Error(err))
		return Result{}, fmt.Errorf("failed to flush output: %w", err)
	}

	info, err := outFile.Stat()
	if err != nil {
		return Result{}, fmt.Errorf("failed to stat output file: %w", err)
	}

	return Result{
		Output:     output,
		Files:      len(entries),
		Unreadable: unreadable,
		Bytes:      info.Size(),
	}, nil
}

// WriteEntries writes one fenced block per entry to w, in order. Blocks are
// separated by a blank line. A file that cannot be read is replaced by an
// inline error marker and counted in unreadable; only write errors abort.
func WriteEntries(w io.Writer, entries []collect.FileEntry, logger *zap.Logger) (unreadable int, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	for i, entry := range entries {
		content, readErr := readText(entry.Path)
		if readErr != nil {
			unreadable++
			logger.Warn("Failed to read file", zap.String("filePath", entry.Rel), zap.Error(readErr))
		}

		if _, err := io.WriteString(w, formatBlock(i, entry.Rel, content, readErr)); err != nil {
			logger.Error("Failed to write content to combined file", zap.String("contentPath", entry.Rel), zap.Error(err))
			return unreadable, fmt.Errorf("failed to write content: %w", err)
		}
		logger.Debug("Wrote file block", zap.Int("index", i), zap.String("filePath", entry.Rel))
	}
	return unreadable, nil
}
