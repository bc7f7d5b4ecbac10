package match

import (
	"fmt"
	"io"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	selectorerrors "github.com/alexisbeaulieu97/selectorkit/pkg/errors"
)

// Document is a parsed HTML page that selectors can be evaluated against.
type Document struct {
	root *html.Node
}

// Check reports whether the matcher understands selector. Dynamic
// pseudo-classes such as :hover are valid CSS but are not supported by the
// matcher and are reported as well.
func Check(selector string) error {
	_, err := compile(selector)
	return err
}

// Load parses an HTML document.
func Load(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, selectorerrors.NewParseError("html", 0, err)
	}
	return &Document{root: root}, nil
}

// Count returns the number of elements in the document matched by selector.
func (d *Document) Count(selector string) (int, error) {
	sel, err := compile(selector)
	if err != nil {
		return 0, err
	}
	return len(cascadia.QueryAll(d.root, sel)), nil
}

// Count parses r and counts the elements matched by selector.
func Count(selector string, r io.Reader) (int, error) {
	doc, err := Load(r)
	if err != nil {
		return 0, err
	}
	return doc.Count(selector)
}

func compile(selector string) (cascadia.Sel, error) {
	sel, err := cascadia.ParseWithPseudoElement(selector)
	if err != nil {
		return nil, selectorerrors.NewValidationError("selector", fmt.Sprintf("%q is not understood by the matcher", selector), err)
	}
	return sel, nil
}
