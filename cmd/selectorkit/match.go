package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/selectorkit/internal/match"
	"github.com/alexisbeaulieu97/selectorkit/internal/render"
)

type matchOptions struct {
	jsonOutput bool
}

type matchJSONPayload struct {
	Name     string `json:"name"`
	Selector string `json:"selector"`
	Matches  int    `json:"matches"`
	Error    string `json:"error,omitempty"`
}

func newMatchCmd(root *rootFlags) *cobra.Command {
	opts := &matchOptions{}

	cmd := &cobra.Command{
		Use:   "match <sheet.yaml> <page.html>",
		Short: "Count the elements each selector of a sheet matches in an HTML page",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, root, args[0], args[1], *opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output match counts as JSON")

	return cmd
}

func runMatch(cmd *cobra.Command, root *rootFlags, sheetPath, pagePath string, opts matchOptions) error {
	result, resolveErr := loadSheet(root, sheetPath)
	if result == nil {
		return resolveErr
	}

	pageAbs, err := validateInputPath("page", pagePath)
	if err != nil {
		return err
	}
	file, err := os.Open(pageAbs)
	if err != nil {
		return newCommandError("match", "opening page", err, "Check the page file permissions.")
	}
	defer file.Close()

	doc, err := match.Load(file)
	if err != nil {
		return newCommandError("match", "parsing page", err, "Make sure the page is HTML.")
	}

	payload := make([]matchJSONPayload, 0, len(result.Entries))
	for _, entry := range result.Entries {
		item := matchJSONPayload{Name: entry.Name, Selector: entry.Selector}
		count, err := doc.Count(entry.Selector)
		if err != nil {
			item.Error = err.Error()
			root.log.With("selector", entry.Name).Warn("selector not supported by matcher")
		} else {
			item.Matches = count
		}
		payload = append(payload, item)
	}
	root.log.With("page", pageAbs).Info(fmt.Sprintf("matched %d selectors", len(payload)))

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		if err := render.JSON(out, payload); err != nil {
			return err
		}
		return resolveErr
	}

	rows := make([]render.Row, 0, len(payload))
	for _, item := range payload {
		note := fmt.Sprintf("%d matches", item.Matches)
		if item.Error != "" {
			note = "unsupported by matcher"
		}
		rows = append(rows, render.Row{Name: item.Name, Selector: item.Selector, Note: note})
	}
	if err := render.Table(out, rows, render.IsTerminal(out)); err != nil {
		return err
	}
	return resolveErr
}
