package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	selectorerrors "github.com/alexisbeaulieu97/selectorkit/pkg/errors"
)

// convertValidationError normalizes validator errors into selectorkit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return selectorerrors.NewValidationError(field, msg, err)
	}

	return selectorerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name, e.g. "Config.selectors[0].name" -> "selectors[0].name".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func fieldForSelector(index int, field string) string {
	return fmt.Sprintf("selectors[%d].%s", index, field)
}
