package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/selectorkit/internal/render"
	"github.com/alexisbeaulieu97/selectorkit/pkg/diff"
)

var errGoldenMismatch = errors.New("rendered selectors differ from golden file")

func newVerifyCmd(root *rootFlags) *cobra.Command {
	var update bool

	cmd := &cobra.Command{
		Use:   "verify <sheet.yaml> <golden.json>",
		Short: "Check that a selector sheet still renders to a golden file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, root, args[0], args[1], update)
		},
	}

	cmd.Flags().BoolVar(&update, "update", false, "Rewrite the golden file with the current output")

	return cmd
}

func runVerify(cmd *cobra.Command, root *rootFlags, sheetPath, goldenPath string, update bool) error {
	result, err := loadSheet(root, sheetPath)
	if err != nil {
		return err
	}

	var rendered bytes.Buffer
	if err := render.JSON(&rendered, result.Entries); err != nil {
		return newCommandError("verify", sheetPath, err, "Run the command again with --verbose for details.")
	}

	log := root.log.With("golden", goldenPath)

	if update {
		if err := os.WriteFile(goldenPath, rendered.Bytes(), 0o644); err != nil {
			return newCommandError("verify", goldenPath, err, "Check that the golden file's directory is writable.")
		}
		log.Info("golden file updated")
		fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", goldenPath)
		return nil
	}

	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		return newCommandError("verify", goldenPath, err, "Run with --update to create the golden file.")
	}

	if delta := diff.Lines(string(golden), rendered.String(), goldenPath, "rendered"); delta != "" {
		fmt.Fprint(cmd.OutOrStdout(), delta)
		return newCommandError("verify", goldenPath, errGoldenMismatch, "Review the diff and rerun with --update if the change is intended.")
	}

	log.Debug("golden file matches")
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}
