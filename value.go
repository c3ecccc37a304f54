// value.go: the dynamic runtime value model
//
// A Value is a small tagged struct: Tag picks the active case and Data
// holds the Go payload for it. All operator semantics
// (arithmetic, comparison, truthiness) live here as plain functions that
// return typed errors; the interpreter never panics across its boundary.
//
// VTIdent is special: it only exists between parsing and evaluation. A
// fully-evaluated program never produces one, so any operation that
// receives an identifier value reports an internal-consistency error.
package interpreter

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTNil   ValueTag = iota // nil (no payload)
	VTBool                  // bool
	VTNum                   // float32
	VTStr                   // string
	VTIdent                 // string: unresolved variable name (transient)
)

func (t ValueTag) String() string {
	switch t {
	case VTNil:
		return "nil"
	case VTBool:
		return "boolean"
	case VTNum:
		return "number"
	case VTStr:
		return "string"
	case VTIdent:
		return "identifier"
	default:
		return "unknown"
	}
}

// Value is the universal runtime carrier.
//
// Invariants:
//   - When Tag==VTNil, Data is nil.
//   - When Tag==VTIdent, Data is the variable name; such a value never
//     survives evaluation.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Nil is the singleton nil Value.
var Nil = Value{Tag: VTNil}

// Primitive constructors.
func Bool(b bool) Value       { return Value{Tag: VTBool, Data: b} }
func Num(f float32) Value     { return Value{Tag: VTNum, Data: f} }
func Str(s string) Value      { return Value{Tag: VTStr, Data: s} }
func Ident(name string) Value { return Value{Tag: VTIdent, Data: name} }

// String renders the human-readable form used by `print`: booleans as
// true/false, numbers via default float formatting, strings verbatim, nil
// as the literal text nil.
func (v Value) String() string {
	switch v.Tag {
	case VTNil:
		return "nil"
	case VTBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VTNum:
		return strconv.FormatFloat(float64(v.Data.(float32)), 'g', -1, 32)
	case VTStr:
		return v.Data.(string)
	case VTIdent:
		return fmt.Sprintf("<ident %s>", v.Data.(string))
	default:
		return "<unknown>"
	}
}

// Repr renders the diagnostic form used for bare expression statements:
// like String, except string payloads keep their quotes.
func (v Value) Repr() string {
	if v.Tag == VTStr {
		return strconv.Quote(v.Data.(string))
	}
	return v.String()
}

func (v Value) num() float32 { return v.Data.(float32) }
func (v Value) str() string  { return v.Data.(string) }

// Truthy maps a value to a condition result: booleans as-is, strings true
// iff non-empty, numbers true iff non-zero, nil always false.
func (v Value) Truthy() (bool, error) {
	switch v.Tag {
	case VTNil:
		return false, nil
	case VTBool:
		return v.Data.(bool), nil
	case VTNum:
		return v.num() != 0, nil
	case VTStr:
		return v.str() != "", nil
	default:
		return false, unresolvedIdent(v)
	}
}

func unresolvedIdent(v Value) error {
	name, _ := v.Data.(string)
	return &RuntimeError{Msg: fmt.Sprintf("Internal error: unresolved identifier (%s)", name)}
}

/* ---------- binary arithmetic ---------- */

// addValues implements `+`: number addition, or string concatenation where
// the non-string side is stringified. Number+String (in that order) is not
// a concatenation form and fails like the other invalid pairings.
func addValues(lhs, rhs Value) (Value, error) {
	if lhs.Tag == VTIdent || rhs.Tag == VTIdent {
		return Nil, unresolvedIdent(pickIdent(lhs, rhs))
	}
	switch {
	case lhs.Tag == VTNum && rhs.Tag == VTNum:
		return Num(lhs.num() + rhs.num()), nil
	case lhs.Tag == VTStr:
		return Str(lhs.str() + rhs.String()), nil
	case lhs.Tag == VTBool && rhs.Tag == VTStr:
		return Str(lhs.String() + rhs.str()), nil
	case lhs.Tag == VTNil && rhs.Tag == VTStr:
		return Str(lhs.String() + rhs.str()), nil
	}
	return Nil, &RuntimeError{Msg: fmt.Sprintf("Cannot add %s and %s values", lhs.Tag, rhs.Tag)}
}

// subValues implements `-`: numbers only.
func subValues(lhs, rhs Value) (Value, error) {
	if lhs.Tag == VTNum && rhs.Tag == VTNum {
		return Num(lhs.num() - rhs.num()), nil
	}
	if lhs.Tag == VTIdent || rhs.Tag == VTIdent {
		return Nil, unresolvedIdent(pickIdent(lhs, rhs))
	}
	return Nil, &RuntimeError{Msg: fmt.Sprintf("Cannot subtract %s and %s values", lhs.Tag, rhs.Tag)}
}

// mulValues implements `*`: number multiplication, or string repetition
// when one side is a string and the other a number. The repeat count is
// floor(n); a non-positive count yields the empty string.
func mulValues(lhs, rhs Value) (Value, error) {
	switch {
	case lhs.Tag == VTNum && rhs.Tag == VTNum:
		return Num(lhs.num() * rhs.num()), nil
	case lhs.Tag == VTStr && rhs.Tag == VTNum:
		return Str(repeatString(lhs.str(), rhs.num())), nil
	case lhs.Tag == VTNum && rhs.Tag == VTStr:
		return Str(repeatString(rhs.str(), lhs.num())), nil
	}
	if lhs.Tag == VTIdent || rhs.Tag == VTIdent {
		return Nil, unresolvedIdent(pickIdent(lhs, rhs))
	}
	return Nil, &RuntimeError{Msg: fmt.Sprintf("Cannot multiply %s and %s values", lhs.Tag, rhs.Tag)}
}

// divValues implements `/`: numbers only. Division by zero follows IEEE-754
// (infinity or NaN), it is not an error.
func divValues(lhs, rhs Value) (Value, error) {
	if lhs.Tag == VTNum && rhs.Tag == VTNum {
		return Num(lhs.num() / rhs.num()), nil
	}
	if lhs.Tag == VTIdent || rhs.Tag == VTIdent {
		return Nil, unresolvedIdent(pickIdent(lhs, rhs))
	}
	return Nil, &RuntimeError{Msg: fmt.Sprintf("Cannot divide %s and %s values", lhs.Tag, rhs.Tag)}
}

func repeatString(s string, count float32) string {
	n := int(count)
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

func pickIdent(lhs, rhs Value) Value {
	if lhs.Tag == VTIdent {
		return lhs
	}
	return rhs
}

/* ---------- equality & ordering ---------- */

// equalValues implements `==`: structural, never fails for resolved values.
// Mismatched tags compare unequal.
func equalValues(lhs, rhs Value) (bool, error) {
	if lhs.Tag == VTIdent || rhs.Tag == VTIdent {
		return false, unresolvedIdent(pickIdent(lhs, rhs))
	}
	if lhs.Tag != rhs.Tag {
		return false, nil
	}
	switch lhs.Tag {
	case VTNil:
		return true, nil
	case VTBool:
		return lhs.Data.(bool) == rhs.Data.(bool), nil
	case VTNum:
		return lhs.num() == rhs.num(), nil
	case VTStr:
		return lhs.str() == rhs.str(), nil
	}
	return false, nil
}

// greaterValues implements `>` for same-type operands: numbers numerically,
// strings lexicographically, booleans with false < true, nil never greater
// than nil. Ordering values of different types is an error.
func greaterValues(lhs, rhs Value) (bool, error) {
	if lhs.Tag == VTIdent || rhs.Tag == VTIdent {
		return false, unresolvedIdent(pickIdent(lhs, rhs))
	}
	if lhs.Tag != rhs.Tag {
		return false, &RuntimeError{Msg: fmt.Sprintf("Cannot order %s and %s values", lhs.Tag, rhs.Tag)}
	}
	switch lhs.Tag {
	case VTNil:
		return false, nil
	case VTBool:
		return lhs.Data.(bool) && !rhs.Data.(bool), nil
	case VTNum:
		return lhs.num() > rhs.num(), nil
	case VTStr:
		return lhs.str() > rhs.str(), nil
	}
	return false, nil
}

// compareValues dispatches the four ordering operators. `>=` is `>` or
// `==`; `<` is the negation of `>=`; `<=` is the negation of `>`.
func compareValues(op Operator, lhs, rhs Value) (bool, error) {
	gt, err := greaterValues(lhs, rhs)
	if err != nil {
		return false, err
	}
	switch op {
	case OpGreater:
		return gt, nil
	case OpLessEqual:
		return !gt, nil
	}
	eq, err := equalValues(lhs, rhs)
	if err != nil {
		return false, err
	}
	switch op {
	case OpGreaterEqual:
		return gt || eq, nil
	case OpLess:
		return !(gt || eq), nil
	}
	return false, &RuntimeError{Msg: fmt.Sprintf("Invalid comparison operator (%s)", op)}
}
