package config

import (
	"fmt"
	"strings"

	selectorerrors "github.com/alexisbeaulieu97/selectorkit/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire sheet.
// Fragment ordering is not checked here; the selector builder reports it when the
// sheet is resolved.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return selectorerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	index := make(map[string]int, len(cfg.Selectors))

	for i, sel := range cfg.Selectors {
		if _, exists := index[sel.Name]; exists {
			return selectorerrors.NewValidationError(fieldForSelector(i, "name"), fmt.Sprintf("duplicate selector name %q", sel.Name), nil)
		}

		switch {
		case len(sel.Parts) > 0 && sel.Combine != nil:
			return selectorerrors.NewValidationError(fieldForSelector(i, "combine"), "parts and combine are mutually exclusive", nil)
		case len(sel.Parts) == 0 && sel.Combine == nil:
			return selectorerrors.NewValidationError(fieldForSelector(i, "parts"), "either parts or combine is required", nil)
		}

		index[sel.Name] = i
	}

	for i, sel := range cfg.Selectors {
		if sel.Combine == nil {
			continue
		}
		if _, ok := index[sel.Combine.Left]; !ok {
			return selectorerrors.NewValidationError(fieldForSelector(i, "combine.left"), fmt.Sprintf("references unknown selector %q", sel.Combine.Left), nil)
		}
		if _, ok := index[sel.Combine.Right]; !ok {
			return selectorerrors.NewValidationError(fieldForSelector(i, "combine.right"), fmt.Sprintf("references unknown selector %q", sel.Combine.Right), nil)
		}
	}

	if cycle := detectCycle(cfg.Selectors); len(cycle) > 0 {
		return selectorerrors.NewValidationError("selectors", fmt.Sprintf("reference cycle detected: %s", strings.Join(cycle, " -> ")), nil)
	}

	return nil
}
