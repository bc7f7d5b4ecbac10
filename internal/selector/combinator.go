package selector

// Combinator tokens accepted by CSS. NewCombinator does not restrict itself to these.
const (
	Descendant      = " "
	AdjacentSibling = "+"
	GeneralSibling  = "~"
	Child           = ">"
)

// Combinator joins two rendered selectors around a combinator token.
// Its value is fixed at construction.
type Combinator struct {
	result string
}

// NewCombinator renders left, token and right separated by single spaces.
// A Descendant token therefore yields three consecutive spaces.
func NewCombinator(left, token, right string) *Combinator {
	return &Combinator{result: left + " " + token + " " + right}
}

// Stringify returns the joined selector.
func (c *Combinator) Stringify() string {
	return c.result
}

func (c *Combinator) String() string {
	return c.result
}
