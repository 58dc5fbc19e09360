package problem

import (
	"encoding/json"
	"fmt"

	platformerrors "github.com/jmgilman/go/errors"
)

// Core member names of a problem document.
const (
	fieldType     = "type"
	fieldStatus   = "status"
	fieldTitle    = "title"
	fieldDetail   = "detail"
	fieldInstance = "instance"
)

// IsReservedFieldName reports whether name is one of the core member names
// and therefore cannot be used for an extension field.
func IsReservedFieldName(name string) bool {
	switch name {
	case fieldType, fieldStatus, fieldTitle, fieldDetail, fieldInstance:
		return true
	}
	return false
}

// encodeField validates the field name and encodes value.
// Every field setter in the package, fallible or not, goes through here.
func encodeField(name string, value any) (json.RawMessage, error) {
	if IsReservedFieldName(name) {
		return nil, platformerrors.Wrap(
			ErrReservedFieldName,
			platformerrors.CodeInvalidInput,
			fmt.Sprintf("field name %q is reserved", name),
		)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, platformerrors.Wrap(
			fmt.Errorf("%w: %w", ErrFieldEncoding, err),
			platformerrors.CodeInvalidInput,
			fmt.Sprintf("failed to encode field %q", name),
		)
	}

	return data, nil
}

// decodeField decodes a raw field into T. Decode failures are reported as a
// missing value.
func decodeField[T any](fields map[string]json.RawMessage, name string) (T, bool) {
	var out T
	raw, ok := fields[name]
	if !ok {
		return out, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		var zero T
		return zero, false
	}
	return out, true
}

// cloneFields returns a copy of fields, or nil when there is nothing to copy.
func cloneFields(fields map[string]json.RawMessage) map[string]json.RawMessage {
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out
}
