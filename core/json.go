package core

import (
	"encoding/json"
	"fmt"
	"time"
)

// jsonValue is Value's wire representation: a type tag plus whichever
// single field that type actually uses. Value's fields are private (to
// keep callers going through the typed constructors and accessors), so
// marshaling needs this explicit shadow struct.
type jsonValue struct {
	Type Type   `json:"type"`
	I    int64  `json:"i,omitempty"`
	S    string `json:"s,omitempty"`
	B    bool   `json:"b,omitempty"`
	F    float64 `json:"f,omitempty"`
	T    *time.Time `json:"t,omitempty"`
}

// MarshalJSON implements json.Marshaler so a Value survives a round trip
// through the snapshot store.
func (v Value) MarshalJSON() ([]byte, error) {
	jv := jsonValue{Type: v.typ}
	switch v.typ {
	case Integer:
		jv.I = v.i
	case Text:
		jv.S = v.s
	case Boolean:
		jv.B = v.b
	case Real:
		jv.F = v.f
	case Date:
		t := v.t
		jv.T = &t
	}
	return json.Marshal(jv)
}

// UnmarshalJSON implements json.Unmarshaler, the inverse of MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	var jv jsonValue
	if err := json.Unmarshal(data, &jv); err != nil {
		return fmt.Errorf("core: decode value: %w", err)
	}
	switch jv.Type {
	case NullType:
		*v = Null
	case Integer:
		*v = NewInteger(jv.I)
	case Text:
		*v = NewText(jv.S)
	case Boolean:
		*v = NewBoolean(jv.B)
	case Real:
		*v = NewReal(jv.F)
	case Date:
		if jv.T != nil {
			*v = NewDate(*jv.T)
		} else {
			*v = NewDate(time.Time{})
		}
	default:
		return fmt.Errorf("core: decode value: unknown type tag %d", jv.Type)
	}
	return nil
}
