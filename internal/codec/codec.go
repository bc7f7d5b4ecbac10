package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/tidwall/gjson"

	selectorerrors "github.com/alexisbeaulieu97/selectorkit/pkg/errors"
)

const source = "json"

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Serialize renders v as compact JSON. Map keys are emitted in sorted order.
func Serialize(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", selectorerrors.NewValidationError("value", "cannot serialize value", err)
	}
	return string(data), nil
}

// Decode parses text into a new T using its struct tags.
func Decode[T any](text string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return out, selectorerrors.NewParseError(source, 0, err)
	}
	return out, nil
}

// DeserializeAs parses text, which must hold a JSON object or array, and
// passes its values positionally to ctor in document order. Object keys are
// ignored; only their position matters, so ctor's parameters must follow the
// order the keys are written in.
//
// ctor must be a non-variadic function returning T or (T, error). Each JSON
// value is decoded into the type of the matching parameter.
func DeserializeAs[T any](ctor any, text string) (T, error) {
	var zero T

	fn := reflect.ValueOf(ctor)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return zero, selectorerrors.NewValidationError("ctor", fmt.Sprintf("expected a function, got %T", ctor), nil)
	}
	fnType := fn.Type()
	if err := checkSignature[T](fnType); err != nil {
		return zero, err
	}

	if !gjson.Valid(text) {
		return zero, selectorerrors.NewParseError(source, 0, errors.New("invalid JSON document"))
	}
	doc := gjson.Parse(text)
	if !doc.IsObject() && !doc.IsArray() {
		return zero, selectorerrors.NewValidationError("text", "expected a JSON object or array", nil)
	}

	var values []gjson.Result
	doc.ForEach(func(_, value gjson.Result) bool {
		values = append(values, value)
		return true
	})

	if len(values) != fnType.NumIn() {
		return zero, selectorerrors.NewValidationError("ctor", fmt.Sprintf("constructor takes %d arguments, document holds %d values", fnType.NumIn(), len(values)), nil)
	}

	args := make([]reflect.Value, len(values))
	for i, value := range values {
		arg := reflect.New(fnType.In(i))
		if err := json.Unmarshal([]byte(value.Raw), arg.Interface()); err != nil {
			return zero, selectorerrors.NewValidationError(fmt.Sprintf("args[%d]", i), fmt.Sprintf("cannot decode %s into %s", value.Raw, fnType.In(i)), err)
		}
		args[i] = arg.Elem()
	}

	out := fn.Call(args)
	if len(out) == 2 && !out[1].IsNil() {
		return zero, out[1].Interface().(error)
	}

	var result T
	reflect.ValueOf(&result).Elem().Set(out[0])
	return result, nil
}

func checkSignature[T any](fnType reflect.Type) error {
	target := reflect.TypeOf((*T)(nil)).Elem()

	if fnType.IsVariadic() {
		return selectorerrors.NewValidationError("ctor", "variadic constructors are not supported", nil)
	}
	switch fnType.NumOut() {
	case 1:
	case 2:
		if fnType.Out(1) != errorType {
			return selectorerrors.NewValidationError("ctor", "second return value must be error", nil)
		}
	default:
		return selectorerrors.NewValidationError("ctor", fmt.Sprintf("constructor must return %s or (%s, error)", target, target), nil)
	}
	if !fnType.Out(0).AssignableTo(target) {
		return selectorerrors.NewValidationError("ctor", fmt.Sprintf("constructor returns %s, not assignable to %s", fnType.Out(0), target), nil)
	}
	return nil
}
