package sheet

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/selectorkit/internal/config"
	"github.com/alexisbeaulieu97/selectorkit/internal/logger"
	"github.com/alexisbeaulieu97/selectorkit/internal/selector"
)

// EntryKind tells how an entry was produced.
type EntryKind string

const (
	KindCompound EntryKind = "compound"
	KindCombined EntryKind = "combined"
)

// Entry is one rendered selector of a sheet.
type Entry struct {
	Name        string    `json:"name"`
	Selector    string    `json:"selector"`
	Kind        EntryKind `json:"kind"`
	Description string    `json:"description,omitempty"`
}

// Result holds the rendered selectors of a sheet in file order.
type Result struct {
	Sheet   string
	Entries []Entry
}

var partCategories = map[string]selector.Category{
	config.KindElement:       selector.CategoryElement,
	config.KindID:            selector.CategoryID,
	config.KindClass:         selector.CategoryClass,
	config.KindAttr:          selector.CategoryAttribute,
	config.KindPseudoClass:   selector.CategoryPseudoClass,
	config.KindPseudoElement: selector.CategoryPseudoElement,
}

// Resolve renders every selector of cfg. Selectors whose parts break the
// builder rules, or that combine such a selector, are left out of the result
// and reported together in the returned error; the rest are still returned.
func Resolve(cfg *config.Config, log *logger.Logger) (*Result, error) {
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	r := &resolver{
		byName: make(map[string]config.Selector, len(cfg.Selectors)),
		built:  make(map[string]selector.Stringifier, len(cfg.Selectors)),
		failed: make(map[string]bool),
		log:    log.With("sheet", cfg.Name),
	}
	for _, sel := range cfg.Selectors {
		r.byName[sel.Name] = sel
	}

	result := &Result{Sheet: cfg.Name, Entries: make([]Entry, 0, len(cfg.Selectors))}
	for _, sel := range cfg.Selectors {
		built, ok := r.resolve(sel.Name)
		if !ok {
			continue
		}
		kind := KindCompound
		if sel.IsCombined() {
			kind = KindCombined
		}
		result.Entries = append(result.Entries, Entry{
			Name:        sel.Name,
			Selector:    built.Stringify(),
			Kind:        kind,
			Description: sel.Description,
		})
	}

	r.log.WithFields(map[string]any{"resolved": len(result.Entries), "failed": len(r.failed)}).Debug("sheet resolved")
	return result, r.errs
}

type resolver struct {
	byName map[string]config.Selector
	built  map[string]selector.Stringifier
	failed map[string]bool
	errs   error
	log    *logger.Logger
}

func (r *resolver) resolve(name string) (selector.Stringifier, bool) {
	if built, ok := r.built[name]; ok {
		return built, true
	}
	if r.failed[name] {
		return nil, false
	}

	sel := r.byName[name]
	if sel.Combine != nil {
		return r.combine(sel)
	}
	return r.compound(sel)
}

func (r *resolver) compound(sel config.Selector) (selector.Stringifier, bool) {
	b := selector.New()
	var errs error
	for i, part := range sel.Parts {
		if err := b.Add(partCategories[part.Kind], part.Value); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("part %d (%s %q): %w", i, part.Kind, part.Value, err))
		}
	}
	if errs != nil {
		r.fail(sel.Name, errs)
		return nil, false
	}

	r.built[sel.Name] = b
	r.log.With("selector", sel.Name).Debug("built compound selector " + b.Stringify())
	return b, true
}

func (r *resolver) combine(sel config.Selector) (selector.Stringifier, bool) {
	left, leftOK := r.resolve(sel.Combine.Left)
	right, rightOK := r.resolve(sel.Combine.Right)
	if !leftOK || !rightOK {
		r.fail(sel.Name, errors.New("depends on a selector that failed to build"))
		return nil, false
	}

	combined := selector.Combine(left, sel.Combine.Token(), right)
	r.built[sel.Name] = combined
	r.log.With("selector", sel.Name).Debug("built combined selector " + combined.Stringify())
	return combined, true
}

func (r *resolver) fail(name string, err error) {
	r.failed[name] = true
	r.errs = multierr.Append(r.errs, fmt.Errorf("selector %q: %w", name, err))
	r.log.With("selector", name).Error(err, "selector failed to build")
}
