package selector

// Category identifies a kind of selector fragment. The numeric order of the
// constants is the order fragments must be appended in.
type Category int

const (
	CategoryElement Category = iota
	CategoryID
	CategoryClass
	CategoryAttribute
	CategoryPseudoClass
	CategoryPseudoElement
)

var categoryNames = [...]string{
	CategoryElement:       "element",
	CategoryID:            "id",
	CategoryClass:         "class",
	CategoryAttribute:     "attribute",
	CategoryPseudoClass:   "pseudo-class",
	CategoryPseudoElement: "pseudo-element",
}

func (c Category) String() string {
	if c < CategoryElement || c > CategoryPseudoElement {
		return "unknown"
	}
	return categoryNames[c]
}

// Singular reports whether the category may hold at most one fragment.
func (c Category) Singular() bool {
	return c == CategoryElement || c == CategoryID || c == CategoryPseudoElement
}
