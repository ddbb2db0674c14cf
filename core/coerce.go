package core

import (
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Coerce implements the write-path TypeValidator rules: a
// Value supplied for a column is converted to that column's declared Type,
// or rejected. Callers are expected to handle NULL separately (NULL never
// reaches Coerce; NOT NULL is checked by the caller).
func Coerce(target Type, v Value) (Value, error) {
	switch target {
	case Integer:
		return coerceInteger(v)
	case Text:
		return coerceText(v)
	case Boolean:
		return coerceBoolean(v)
	case Real:
		return coerceReal(v)
	case Date:
		return coerceDate(v)
	default:
		return Value{}, &errTypeMismatch{target: target, value: v.String()}
	}
}

func coerceInteger(v Value) (Value, error) {
	switch v.typ {
	case Integer:
		return v, nil
	case Text:
		trimmed := strings.TrimSpace(v.s)
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil || strconv.FormatInt(n, 10) != trimmed {
			return Value{}, &errTypeMismatch{target: Integer, value: v.s}
		}
		return NewInteger(n), nil
	default:
		return Value{}, &errTypeMismatch{target: Integer, value: v.String()}
	}
}

func coerceText(v Value) (Value, error) {
	switch v.typ {
	case Text:
		return v, nil
	case Integer, Real, Boolean:
		return NewText(v.String()), nil
	default:
		return Value{}, &errTypeMismatch{target: Text, value: v.String()}
	}
}

func coerceBoolean(v Value) (Value, error) {
	switch v.typ {
	case Boolean:
		return v, nil
	case Integer:
		return NewBoolean(v.i != 0), nil
	case Real:
		return NewBoolean(v.f != 0), nil
	case Text:
		switch strings.ToLower(strings.TrimSpace(v.s)) {
		case "true", "1", "yes":
			return NewBoolean(true), nil
		case "false", "0", "no":
			return NewBoolean(false), nil
		}
		return Value{}, &errTypeMismatch{target: Boolean, value: v.s}
	default:
		return Value{}, &errTypeMismatch{target: Boolean, value: v.String()}
	}
}

func coerceReal(v Value) (Value, error) {
	switch v.typ {
	case Real:
		if !IsFiniteReal(v.f) {
			return Value{}, &errTypeMismatch{target: Real, value: v.String()}
		}
		return v, nil
	case Integer:
		return NewReal(float64(v.i)), nil
	case Text:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil || !IsFiniteReal(f) {
			return Value{}, &errTypeMismatch{target: Real, value: v.s}
		}
		return NewReal(f), nil
	default:
		return Value{}, &errTypeMismatch{target: Real, value: v.String()}
	}
}

func coerceDate(v Value) (Value, error) {
	switch v.typ {
	case Date:
		return v, nil
	case Integer:
		return NewDate(time.UnixMilli(v.i).UTC()), nil
	case Real:
		return NewDate(time.UnixMilli(int64(v.f)).UTC()), nil
	case Text:
		t, ok := parseDate(v.s)
		if !ok {
			return Value{}, &errTypeMismatch{target: Date, value: v.s}
		}
		return NewDate(t.UTC()), nil
	default:
		return Value{}, &errTypeMismatch{target: Date, value: v.String()}
	}
}
