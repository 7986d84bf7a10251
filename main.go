package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/parchment-engine/parchment/engine"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		width    float64
		cssFiles []string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "parchment [file]",
		Short: "Lay out an HTML document and print its display list",
		Long: `Parchment parses an HTML document, resolves its styles, computes
layout geometry for the given viewport width, and prints the resulting
display list one paint command per line. Malformed markup and styles
are repaired or skipped rather than reported as errors.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := readInput(args)
			if err != nil {
				return err
			}

			var extra []string
			for _, path := range cssFiles {
				src, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading stylesheet: %w", err)
				}
				extra = append(extra, string(src))
			}

			logger := zap.NewNop()
			if verbose {
				logger, err = zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer logger.Sync()
			}

			e, err := engine.New(engine.Options{
				Width:    width,
				ExtraCSS: extra,
				Logger:   logger,
			})
			if err != nil {
				return err
			}

			result := e.Load(markup)
			for _, c := range result.DisplayList {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 800, "viewport width in pixels")
	cmd.Flags().StringArrayVar(&cssFiles, "css", nil, "extra stylesheet file (repeatable)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline stages")
	return cmd
}

// readInput reads the document from the named file, or from stdin when
// no file is given.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(src), nil
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}
	return string(src), nil
}
