package selector

// Element starts a new selector with an element fragment.
func Element(value string) *Builder {
	return New().Element(value)
}

// ID starts a new selector with an id fragment.
func ID(value string) *Builder {
	return New().ID(value)
}

// Class starts a new selector with a class fragment.
func Class(value string) *Builder {
	return New().Class(value)
}

// Attr starts a new selector with an attribute fragment.
func Attr(value string) *Builder {
	return New().Attr(value)
}

// PseudoClass starts a new selector with a pseudo-class fragment.
func PseudoClass(value string) *Builder {
	return New().PseudoClass(value)
}

// PseudoElement starts a new selector with a pseudo-element fragment.
func PseudoElement(value string) *Builder {
	return New().PseudoElement(value)
}

// Combine renders both sides immediately and joins them with token.
func Combine(left Stringifier, token string, right Stringifier) *Combinator {
	return NewCombinator(left.Stringify(), token, right.Stringify())
}
