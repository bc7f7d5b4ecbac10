// Package selector renders CSS selectors assembled through a fluent builder.
//
// A compound selector is built from fragments that must be supplied in the
// order element, id, class, attribute, pseudo-class, pseudo-element, with at
// most one element, id and pseudo-element:
//
//	sel := selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus")
//	s, err := sel.Build() // a[href$=".png"]:focus
//
// Combine joins two rendered selectors with a combinator token:
//
//	selector.Combine(selector.Element("div").ID("main"), selector.AdjacentSibling,
//		selector.Element("table").ID("data")).Stringify() // div#main + table#data
//
// This package does not parse CSS.
package selector
