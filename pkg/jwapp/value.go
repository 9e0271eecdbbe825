package jwapp

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/cczukit/cczukit-go/pkg/errx"
)

type valueKind int

const (
	kindNull valueKind = iota
	kindInt
	kindFloat
	kindString
	kindBool
)

// Value is a permissive JSON scalar: int, float, string, bool or null. The
// timetable endpoint keys its payload dynamically (kc1..kc7, kcmc1..kcmc20,
// skjs1..skjs20) with mixed scalar types, so rows decode into string-keyed
// Values and readers ask for the type they expect.
type Value struct {
	kind valueKind
	i    int64
	f    float64
	s    string
	b    bool
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errx.Decoding(errInvalidScalar)
	}

	switch data[0] {
	case 'n':
		*v = Value{kind: kindNull}
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errx.Decoding(err)
		}
		*v = Value{kind: kindString, s: s}
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return errx.Decoding(err)
		}
		*v = Value{kind: kindBool, b: b}
		return nil
	default:
		if !bytes.ContainsAny(data, ".eE") {
			if i, err := strconv.ParseInt(string(data), 10, 64); err == nil {
				*v = Value{kind: kindInt, i: i}
				return nil
			}
		}
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return errx.Decoding(err)
		}
		*v = Value{kind: kindFloat, f: f}
		return nil
	}
}

var errInvalidScalar = errors.New("jwapp: empty JSON scalar")

// IsNull reports whether the value is JSON null (or was never set).
func (v Value) IsNull() bool { return v.kind == kindNull }

// String returns the string form and whether the value is a string.
func (v Value) String() (string, bool) { return v.s, v.kind == kindString }

// Int returns the integer form and whether the value is an integer.
func (v Value) Int() (int64, bool) { return v.i, v.kind == kindInt }

// Float returns the numeric form for both float and integer values.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case kindFloat:
		return v.f, true
	case kindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// Bool returns the boolean form and whether the value is a boolean.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == kindBool }
