package selector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCombineJoinsWithSingleSpaces(t *testing.T) {
	t.Parallel()

	left := Element("div").ID("main")
	right := Element("table").ID("data")

	require.Equal(t, "div#main + table#data", Combine(left, AdjacentSibling, right).Stringify())
	require.Equal(t, "div#main > table#data", Combine(left, Child, right).String())
	require.Equal(t, "div#main ~ table#data", Combine(left, GeneralSibling, right).Stringify())
}

func TestCombineDescendantKeepsThreeSpaces(t *testing.T) {
	t.Parallel()

	got := Combine(Element("ul"), Descendant, Element("li")).Stringify()
	require.Equal(t, "ul   li", got)
}

func TestCombineAcceptsAnyToken(t *testing.T) {
	t.Parallel()

	require.Equal(t, "a || b", Combine(Element("a"), "||", Element("b")).Stringify())
}

func TestCombineIsEagerAndNests(t *testing.T) {
	t.Parallel()

	left := Element("div")
	combined := Combine(left, Child, Element("p"))

	// Mutating the source after Combine must not change the combinator.
	left.Class("late")
	require.Equal(t, "div > p", combined.Stringify())

	nested := Combine(Combine(Element("div").ID("main").Class("container").Class("draggable"), AdjacentSibling, Element("table").ID("data")), GeneralSibling,
		Combine(Element("tr").PseudoClass("nth-of-type(even)"), Descendant, Element("td").PseudoClass("nth-of-type(even)")))
	require.Equal(t, "div#main.container.draggable + table#data ~ tr:nth-of-type(even)   td:nth-of-type(even)", nested.Stringify())
}
