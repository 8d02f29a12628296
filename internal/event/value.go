package event

import (
	"fmt"
	"strconv"
)

// ValueKind is the closed set of payload shapes.
type ValueKind uint8

const (
	KindPosition ValueKind = iota
	KindString
	KindInt
	KindBool
)

func (k ValueKind) String() string {
	switch k {
	case KindPosition:
		return "position"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	}
	return "unknown"
}

// Value is one payload entry. Only the fields matching Kind are meaningful.
type Value struct {
	Kind ValueKind `json:"kind"`
	X    int       `json:"x,omitempty"`
	Y    int       `json:"y,omitempty"`
	S    string    `json:"s,omitempty"`
	I    int       `json:"i,omitempty"`
	B    bool      `json:"b,omitempty"`
}

// Pos, Str, Int and Bool construct payload values.
func Pos(x, y int) Value { return Value{Kind: KindPosition, X: x, Y: y} }
func Str(s string) Value { return Value{Kind: KindString, S: s} }
func Int(i int) Value    { return Value{Kind: KindInt, I: i} }
func Bool(b bool) Value  { return Value{Kind: KindBool, B: b} }

// AsPos returns the position if v holds one.
func (v Value) AsPos() (int, int, bool) {
	if v.Kind != KindPosition {
		return 0, 0, false
	}
	return v.X, v.Y, true
}

// AsString returns the string if v holds one.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.S, true
}

// AsInt returns the integer if v holds one.
func (v Value) AsInt() (int, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I, true
}

// AsBool returns the boolean if v holds one.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

func (v Value) String() string {
	switch v.Kind {
	case KindPosition:
		return fmt.Sprintf("(%d,%d)", v.X, v.Y)
	case KindString:
		return v.S
	case KindInt:
		return strconv.Itoa(v.I)
	case KindBool:
		return strconv.FormatBool(v.B)
	}
	return ""
}
