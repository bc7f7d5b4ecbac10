package config

// Config represents a selector sheet document.
type Config struct {
	Version     string     `yaml:"version" validate:"required,semver"`
	Name        string     `yaml:"name" validate:"required,min=1,max=100"`
	Description string     `yaml:"description,omitempty"`
	Selectors   []Selector `yaml:"selectors" validate:"required,min=1,dive"`
}

// Selector is one named entry of a sheet. Exactly one of Parts and Combine is set.
type Selector struct {
	Name        string   `yaml:"name" validate:"required,selector_name"`
	Description string   `yaml:"description,omitempty"`
	Parts       []Part   `yaml:"parts,omitempty" validate:"omitempty,dive"`
	Combine     *Combine `yaml:"combine,omitempty"`
}

// Part is a single fragment applied to a compound selector, in the order listed.
type Part struct {
	Kind  string `yaml:"kind" validate:"required,oneof=element id class attr pseudo-class pseudo-element"`
	Value string `yaml:"value" validate:"required"`
}

// Combine joins two other selectors of the same sheet by name.
type Combine struct {
	Left       string `yaml:"left" validate:"required,selector_name"`
	Combinator string `yaml:"combinator" validate:"combinator"`
	Right      string `yaml:"right" validate:"required,selector_name"`
}

// Part kinds.
const (
	KindElement       = "element"
	KindID            = "id"
	KindClass         = "class"
	KindAttr          = "attr"
	KindPseudoClass   = "pseudo-class"
	KindPseudoElement = "pseudo-element"
)

var combinatorAliases = map[string]string{
	" ":                " ",
	"+":                "+",
	"~":                "~",
	">":                ">",
	"descendant":       " ",
	"child":            ">",
	"adjacent-sibling": "+",
	"general-sibling":  "~",
}

// Token returns the combinator symbol, resolving named aliases such as "child".
func (c Combine) Token() string {
	if token, ok := combinatorAliases[c.Combinator]; ok {
		return token
	}
	return c.Combinator
}

// IsCombined reports whether the selector is built from other selectors.
func (s Selector) IsCombined() bool {
	return s.Combine != nil
}

// References lists the selector names this entry depends on.
func (s Selector) References() []string {
	if s.Combine == nil {
		return nil
	}
	return []string{s.Combine.Left, s.Combine.Right}
}
