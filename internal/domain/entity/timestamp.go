package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp is a created_at value exactly as the store returned it. Drivers
// that decode timestamps give a time.Time; text columns keep their text.
type Timestamp struct {
	raw any // nil, time.Time, string, int64 or float64
}

func TimeOf(t time.Time) Timestamp {
	return Timestamp{raw: t}
}

func TextOf(s string) Timestamp {
	return Timestamp{raw: s}
}

// Scan implements sql.Scanner. It never rejects a value: the log writer owns
// the column format.
func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil, time.Time, string, int64, float64:
		t.raw = v
	case []byte:
		t.raw = string(v)
	default:
		t.raw = fmt.Sprint(v)
	}
	return nil
}

// Time returns the decoded time when the driver produced one
func (t Timestamp) Time() (time.Time, bool) {
	v, ok := t.raw.(time.Time)
	return v, ok
}

func (t Timestamp) IsNull() bool {
	return t.raw == nil
}

// String renders the value in a form usable as a startDate/endDate bound
func (t Timestamp) String() string {
	switch v := t.raw.(type) {
	case nil:
		return ""
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if v, ok := t.raw.(time.Time); ok {
		return v.MarshalJSON()
	}
	return json.Marshal(t.raw)
}

// UnmarshalJSON keeps strings as text and numbers as numbers
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if n, ok := v.(float64); ok && n == float64(int64(n)) {
		t.raw = int64(n)
		return nil
	}
	t.raw = v
	return nil
}
