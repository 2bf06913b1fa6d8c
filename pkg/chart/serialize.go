package chart

import (
	"encoding/json"
	stderrors "errors"

	"github.com/matzehuels/chartkit/pkg/errors"
)

// Serialize renders the chart as the canonical configuration document.
//
// The only possible failure is a non-finite number (NaN or ±Inf) set on some
// field; it is reported as an INVALID_INPUT error.
func Serialize(c Chart) ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		var unsupported *json.UnsupportedValueError
		if stderrors.As(err, &unsupported) {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "chart holds a value the document cannot represent")
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize chart")
	}
	return data, nil
}

// MustSerialize is like [Serialize] but panics on error. It is intended for
// charts built from literal values.
func MustSerialize(c Chart) []byte {
	data, err := Serialize(c)
	if err != nil {
		panic(err)
	}
	return data
}
