package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	val "github.com/go-playground/validator/v10"

	"todosvc/shared/failure"
)

var validate = val.New(val.WithRequiredStructEnabled())

var (
	errTrailingData = errors.New("unexpected data after JSON document")
	errNotObject    = errors.New("request body is not a JSON object")
)

// Validate decodes the JSON object in r into data and then validates the struct
// tags of data. An absent body, or a well-formed document that is not an object,
// leaves data at its zero value so that required fields surface as validation
// failures. A body that does not parse, or whose fields have the wrong types,
// is an internal error.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	raw, err := readDocument(r)
	if err != nil {
		return failure.InternalError(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	if isObject(raw) {
		if err := json.Unmarshal(raw, data); err != nil {
			return failure.InternalError(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
		}
	}

	return ValidateStruct(data)
}

// ValidateObject is Validate for operations that read fields off the body
// unconditionally: anything other than a JSON object, including an empty body
// or null, is an internal error.
func ValidateObject[T any](r io.Reader, data *T) error {
	raw, err := readDocument(r)
	if err == nil && !isObject(raw) {
		err = errNotObject
	}

	if err == nil {
		err = json.Unmarshal(raw, data)
	}

	if err != nil {
		return failure.InternalError(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		var invalid *val.InvalidValidationError
		if errors.As(err, &invalid) {
			return failure.InternalError(err) //nolint:wrapcheck
		}

		return failure.Validation(message(err)) //nolint:wrapcheck
	}

	return nil
}

// readDocument returns the single JSON document in r, or nil when r holds
// nothing but whitespace.
func readDocument(r io.Reader) (json.RawMessage, error) {
	if r == nil {
		return nil, nil
	}

	decoder := json.NewDecoder(r)

	var raw json.RawMessage
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, err
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}

	return raw, nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)

	return len(trimmed) > 0 && trimmed[0] == '{'
}
