package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/go-faster/errors"
)

// ID identifies a unit or researcher. Remote payloads use either JSON
// numbers or strings for identifiers; ID remembers which one it saw so the
// value can be sent back unchanged. The zero value is the empty identifier
// and encodes as null.
type ID struct {
	value   string
	numeric bool
}

// NewID returns a string identifier. An empty value yields the empty ID.
func NewID(value string) ID {
	return ID{value: value}
}

// IntID returns a numeric identifier.
func IntID(value int64) ID {
	return ID{value: strconv.FormatInt(value, 10), numeric: true}
}

// IsZero reports whether the identifier is empty.
func (id ID) IsZero() bool {
	return id.value == ""
}

// Numeric reports whether the identifier was a JSON number.
func (id ID) Numeric() bool {
	return id.numeric
}

// String returns the identifier text, "" when empty.
func (id ID) String() string {
	return id.value
}

// MarshalJSON implements json.Marshaler.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

// UnmarshalJSON implements json.Unmarshaler. It accepts numbers, strings
// and null.
func (id *ID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*id = ID{}
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return errors.Wrap(err, "catalog: decode id")
		}
		*id = NewID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return errors.Wrapf(err, "catalog: id must be a string or number, got %s", trimmed)
	}
	*id = ID{value: n.String(), numeric: true}
	return nil
}

// MarshalYAML implements yaml.Marshaler with the same kind rules as JSON.
func (id ID) MarshalYAML() (any, error) {
	if id.IsZero() {
		return nil, nil
	}
	if id.numeric {
		if n, err := strconv.ParseInt(id.value, 10, 64); err == nil {
			return n, nil
		}
		if f, err := strconv.ParseFloat(id.value, 64); err == nil {
			return f, nil
		}
	}
	return id.value, nil
}
