package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/selectorkit/internal/selector"
)

func newCombineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "combine <left> <combinator> <right>",
		Short: "Join two rendered selectors with a combinator",
		Long: `Join two rendered selectors with a combinator token. The token is written
between single spaces and is not validated, so a space token yields three
consecutive spaces.`,
		Example: `  selectorkit combine 'div#main' + 'table#data'`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), selector.NewCombinator(args[0], args[1], args[2]).Stringify())
			return nil
		},
	}
}
