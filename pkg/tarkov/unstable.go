package tarkov

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Unstable holds a field whose JSON type differs between call sites of the
// remote service (MemberCategory is a string on some calls and a number on
// others, item locations are objects or numbers). The raw value is kept and
// callers pick the shape they expect.
type Unstable struct {
	raw json.RawMessage
}

func (u *Unstable) UnmarshalJSON(data []byte) error {
	u.raw = append(u.raw[:0], data...)
	return nil
}

func (u Unstable) MarshalJSON() ([]byte, error) {
	if len(u.raw) == 0 {
		return []byte("null"), nil
	}
	return u.raw, nil
}

// Raw returns the undecoded JSON value.
func (u Unstable) Raw() json.RawMessage { return u.raw }

// IsNull reports whether the field was absent or null.
func (u Unstable) IsNull() bool {
	return len(u.raw) == 0 || bytes.Equal(u.raw, []byte("null"))
}

// Text returns the value as text. Numbers are rendered in their JSON form.
func (u Unstable) Text() (string, bool) {
	if u.IsNull() {
		return "", false
	}
	var s string
	if err := json.Unmarshal(u.raw, &s); err == nil {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(u.raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}

// Int returns the value as an integer. Numeric strings are accepted.
func (u Unstable) Int() (int64, bool) {
	if u.IsNull() {
		return 0, false
	}
	var n int64
	if err := json.Unmarshal(u.raw, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(u.raw, &s); err == nil {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

// Decode unmarshals the raw value into v.
func (u Unstable) Decode(v interface{}) error {
	if len(u.raw) == 0 {
		return json.Unmarshal([]byte("null"), v)
	}
	return json.Unmarshal(u.raw, v)
}
