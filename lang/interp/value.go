// Package interp implements MX's tree-walking interpreter: it executes an
// mxir.Pool produced by lang/sema directly, without compiling to bytecode.
// It is grounded on original_source/crates/mx/src/interpreter.rs, structured
// around the usual runtime shape — a Value domain, a call stack of Frames, a
// single entry point that drives everything — even though this is a
// tree-walker rather than a bytecode VM.
package interp

import "fmt"

// Value is the runtime value domain: Integer, Float, Boolean or String. A
// nil Value denotes "no value", the result of, for instance, looking up an
// unresolved variable or evaluating a bare `loop { break; }`. This mirrors
// original_source's Option<InterpreterValue> without needing a dedicated
// Undefined variant at the value-interface level.
type Value interface {
	isValue()
	String() string
}

type Integer struct{ Value int64 }
type Float struct{ Value float64 }
type Boolean struct{ Value bool }
type String struct{ Value string }

func (Integer) isValue() {}
func (Float) isValue()   {}
func (Boolean) isValue() {}
func (String) isValue()  {}

func (v Integer) String() string { return fmt.Sprintf("%d", v.Value) }
func (v Float) String() string   { return fmt.Sprintf("%g", v.Value) }
func (v Boolean) String() string { return fmt.Sprintf("%t", v.Value) }
func (v String) String() string  { return v.Value }

// formatValue renders v for output, treating nil (the "no value" case) as
// the empty string rather than panicking — print(x) on an unresolved x
// should still produce output rather than abort the run.
func formatValue(v Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}

// truthy is the rule for `if` conditions: Boolean uses its own value,
// Integer is truthy when nonzero, anything else (including nil, a String, or
// a Float) is falsy.
func truthy(v Value) bool {
	switch v := v.(type) {
	case Boolean:
		return v.Value
	case Integer:
		return v.Value != 0
	default:
		return false
	}
}
