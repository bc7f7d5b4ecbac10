package selector

import (
	"strings"

	"go.uber.org/multierr"

	selectorerrors "github.com/alexisbeaulieu97/selectorkit/pkg/errors"
)

// Stringifier is implemented by anything that renders to a selector string.
type Stringifier interface {
	Stringify() string
}

// Builder accumulates the fragments of one compound selector.
//
// The checked mutators (SetElement, SetID, AddClass, AddAttribute,
// AddPseudoClass, SetPseudoElement) return a *errors.SelectorError and leave
// the builder untouched when a call breaks uniqueness or ordering. The chain
// forms (Element, ID, Class, Attr, PseudoClass, PseudoElement) call them and
// record any failure, retrievable through Err.
type Builder struct {
	element       string
	id            string
	classes       []string
	attributes    []string
	pseudoClasses []string
	pseudoElement string

	errs error
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{}
}

// SetElement sets the element fragment.
func (b *Builder) SetElement(value string) error {
	if err := b.check(CategoryElement, value); err != nil {
		return err
	}
	b.element = value
	return nil
}

// SetID sets the id fragment, rendered as "#value".
func (b *Builder) SetID(value string) error {
	if err := b.check(CategoryID, value); err != nil {
		return err
	}
	b.id = "#" + value
	return nil
}

// AddClass appends a ".value" fragment.
func (b *Builder) AddClass(value string) error {
	if err := b.check(CategoryClass, value); err != nil {
		return err
	}
	b.classes = append(b.classes, "."+value)
	return nil
}

// AddAttribute appends a "[value]" fragment.
func (b *Builder) AddAttribute(value string) error {
	if err := b.check(CategoryAttribute, value); err != nil {
		return err
	}
	b.attributes = append(b.attributes, "["+value+"]")
	return nil
}

// AddPseudoClass appends a ":value" fragment.
func (b *Builder) AddPseudoClass(value string) error {
	if err := b.check(CategoryPseudoClass, value); err != nil {
		return err
	}
	b.pseudoClasses = append(b.pseudoClasses, ":"+value)
	return nil
}

// SetPseudoElement sets the pseudo-element fragment, rendered as "::value".
func (b *Builder) SetPseudoElement(value string) error {
	if err := b.check(CategoryPseudoElement, value); err != nil {
		return err
	}
	b.pseudoElement = "::" + value
	return nil
}

// Add dispatches to the checked mutator for the given category.
func (b *Builder) Add(category Category, value string) error {
	switch category {
	case CategoryElement:
		return b.SetElement(value)
	case CategoryID:
		return b.SetID(value)
	case CategoryClass:
		return b.AddClass(value)
	case CategoryAttribute:
		return b.AddAttribute(value)
	case CategoryPseudoClass:
		return b.AddPseudoClass(value)
	case CategoryPseudoElement:
		return b.SetPseudoElement(value)
	default:
		return selectorerrors.NewValidationError("category", "unknown selector category "+category.String(), nil)
	}
}

func (b *Builder) Element(value string) *Builder { return b.record(b.SetElement(value)) }

func (b *Builder) ID(value string) *Builder { return b.record(b.SetID(value)) }

func (b *Builder) Class(value string) *Builder { return b.record(b.AddClass(value)) }

func (b *Builder) Attr(value string) *Builder { return b.record(b.AddAttribute(value)) }

func (b *Builder) PseudoClass(value string) *Builder { return b.record(b.AddPseudoClass(value)) }

func (b *Builder) PseudoElement(value string) *Builder { return b.record(b.SetPseudoElement(value)) }

// Err returns every failure recorded by the chain forms, or nil.
func (b *Builder) Err() error {
	return b.errs
}

// Stringify renders the accumulated fragments in category order. It does
// not modify the builder.
func (b *Builder) Stringify() string {
	var sb strings.Builder
	sb.WriteString(b.element)
	sb.WriteString(b.id)
	for _, part := range b.classes {
		sb.WriteString(part)
	}
	for _, part := range b.attributes {
		sb.WriteString(part)
	}
	for _, part := range b.pseudoClasses {
		sb.WriteString(part)
	}
	sb.WriteString(b.pseudoElement)
	return sb.String()
}

func (b *Builder) String() string {
	return b.Stringify()
}

// Build returns the rendered selector together with any recorded chain failures.
func (b *Builder) Build() (string, error) {
	return b.Stringify(), b.errs
}

func (b *Builder) record(err error) *Builder {
	b.errs = multierr.Append(b.errs, err)
	return b
}

// check enforces uniqueness of singular categories first, then that no later
// category has been populated yet.
func (b *Builder) check(category Category, value string) error {
	if category.Singular() && b.filled(category) {
		return selectorerrors.NewSelectorError(selectorerrors.KindDuplicateFragment, category.String(), value)
	}
	for later := category + 1; later <= CategoryPseudoElement; later++ {
		if b.filled(later) {
			return selectorerrors.NewSelectorError(selectorerrors.KindOutOfOrderFragment, category.String(), value)
		}
	}
	return nil
}

func (b *Builder) filled(category Category) bool {
	switch category {
	case CategoryElement:
		return b.element != ""
	case CategoryID:
		return b.id != ""
	case CategoryClass:
		return len(b.classes) > 0
	case CategoryAttribute:
		return len(b.attributes) > 0
	case CategoryPseudoClass:
		return len(b.pseudoClasses) > 0
	case CategoryPseudoElement:
		return b.pseudoElement != ""
	default:
		return false
	}
}
