package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/selectorkit/internal/config"
	"github.com/alexisbeaulieu97/selectorkit/internal/match"
	"github.com/alexisbeaulieu97/selectorkit/internal/render"
	"github.com/alexisbeaulieu97/selectorkit/internal/sheet"
)

type renderOptions struct {
	jsonOutput bool
	strict     bool
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <sheet.yaml>",
		Short: "Render every selector of a selector sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, args[0], *opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output selectors as JSON")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when the HTML matcher does not understand a selector")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, path string, opts renderOptions) error {
	result, resolveErr := loadSheet(root, path)
	if result == nil {
		return resolveErr
	}

	var checkErr error
	if opts.strict {
		for _, entry := range result.Entries {
			if err := match.Check(entry.Selector); err != nil {
				checkErr = multierr.Append(checkErr, fmt.Errorf("selector %q: %w", entry.Name, err))
			}
		}
	}

	if err := writeEntries(cmd, result.Entries, opts.jsonOutput); err != nil {
		return err
	}

	if resolveErr != nil {
		return resolveErr
	}
	if checkErr != nil {
		return newCommandError("render", "checking selectors", checkErr, "Drop --strict for selectors the matcher does not support, such as dynamic pseudo-classes.")
	}
	return nil
}

// loadSheet parses and resolves a sheet. A nil result means nothing could be
// rendered; a non-nil result may still come with an error naming the
// selectors that failed to build.
func loadSheet(root *rootFlags, path string) (*sheet.Result, error) {
	abs, err := validateInputPath("sheet", path)
	if err != nil {
		return nil, err
	}

	log := root.log.With("sheet", abs)
	log.Debug("loading selector sheet")

	cfg, err := config.ParseConfig(abs)
	if err != nil {
		return nil, newCommandError("load sheet", abs, err, "Fix the sheet and run the command again.")
	}

	result, err := sheet.Resolve(cfg, log)
	if err != nil {
		if result == nil {
			return nil, newCommandError("render sheet", cfg.Name, err, "Fix the sheet and run the command again.")
		}
		return result, newCommandError("render sheet", cfg.Name, err, "Selector parts must follow the order element, id, class, attr, pseudo-class, pseudo-element, and element, id and pseudo-element may appear once.")
	}

	log.Info(fmt.Sprintf("rendered %d selectors", len(result.Entries)))
	return result, nil
}

func writeEntries(cmd *cobra.Command, entries []sheet.Entry, jsonOutput bool) error {
	out := cmd.OutOrStdout()
	if jsonOutput {
		return render.JSON(out, entries)
	}

	rows := make([]render.Row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, render.Row{Name: entry.Name, Selector: entry.Selector})
	}
	return render.Table(out, rows, render.IsTerminal(out))
}
