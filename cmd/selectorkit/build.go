package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/selectorkit/internal/match"
	"github.com/alexisbeaulieu97/selectorkit/internal/selector"
)

type buildOptions struct {
	element       string
	id            string
	classes       []string
	attributes    []string
	pseudoClasses []string
	pseudoElement string
	check         bool
}

func (o buildOptions) empty() bool {
	return o.element == "" && o.id == "" && len(o.classes) == 0 && len(o.attributes) == 0 &&
		len(o.pseudoClasses) == 0 && o.pseudoElement == ""
}

func newBuildCmd(root *rootFlags) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a single compound selector from fragments",
		Example: `  selectorkit build --id main --class container --class editable
  selectorkit build --element a --attr 'href$=".png"' --pseudo-class focus`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, root, *opts)
		},
	}

	cmd.Flags().StringVar(&opts.element, "element", "", "Element name")
	cmd.Flags().StringVar(&opts.id, "id", "", "Element id (without #)")
	cmd.Flags().StringArrayVar(&opts.classes, "class", nil, "Class name (repeatable)")
	cmd.Flags().StringArrayVar(&opts.attributes, "attr", nil, "Attribute expression without brackets (repeatable)")
	cmd.Flags().StringArrayVar(&opts.pseudoClasses, "pseudo-class", nil, "Pseudo-class without the leading colon (repeatable)")
	cmd.Flags().StringVar(&opts.pseudoElement, "pseudo-element", "", "Pseudo-element without the leading colons")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Verify the result with the HTML matcher")

	return cmd
}

func runBuild(cmd *cobra.Command, root *rootFlags, opts buildOptions) error {
	if opts.empty() {
		return newCommandError("build", "reading fragments", errors.New("no fragments given"), "Pass at least one of --element, --id, --class, --attr, --pseudo-class or --pseudo-element.")
	}

	b := selector.New()
	if opts.element != "" {
		b.Element(opts.element)
	}
	if opts.id != "" {
		b.ID(opts.id)
	}
	for _, class := range opts.classes {
		b.Class(class)
	}
	for _, attr := range opts.attributes {
		b.Attr(attr)
	}
	for _, pseudo := range opts.pseudoClasses {
		b.PseudoClass(pseudo)
	}
	if opts.pseudoElement != "" {
		b.PseudoElement(opts.pseudoElement)
	}

	rendered, err := b.Build()
	if err != nil {
		return newCommandError("build", "assembling selector", err, "Check the fragment values.")
	}
	root.log.With("selector", rendered).Debug("built selector")

	if opts.check {
		if err := match.Check(rendered); err != nil {
			return newCommandError("build", fmt.Sprintf("checking %q", rendered), err, "Drop --check for selectors the matcher does not support, such as dynamic pseudo-classes.")
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}
