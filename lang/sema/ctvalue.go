package sema

import (
	"fmt"

	"github.com/austincummings/mx/lang/ast"
	"github.com/austincummings/mx/lang/mxir"
)

// CTValue is the compile-time value domain: every name known at analysis
// time resolves to one of these, whether it denotes a literal, a type, or a
// declaration. Like mxir.NodeData, Go gives us no closed enum, so CTValue
// is an interface with a fixed, small set of implementations and
// exhaustive switches panic on an unhandled case.
type CTValue interface {
	ctValue()
	String() string
}

// CTUndefined is the value of a name that failed to resolve, or of a
// construct ctEval doesn't know how to fold. Treated as falsy/zero wherever
// it flows into a runtime-shaped position.
type CTUndefined struct{}

func (CTUndefined) ctValue()        {}
func (CTUndefined) String() string  { return "undefined" }

type CTInt struct{ Value int64 }

func (CTInt) ctValue()            {}
func (v CTInt) String() string    { return fmt.Sprintf("%d", v.Value) }

type CTFloat struct{ Value float64 }

func (CTFloat) ctValue()          {}
func (v CTFloat) String() string  { return fmt.Sprintf("%g", v.Value) }

type CTString struct{ Value string }

func (CTString) ctValue()         {}
func (v CTString) String() string { return v.Value }

type CTBool struct{ Value bool }

func (CTBool) ctValue()           {}
func (v CTBool) String() string   { return fmt.Sprintf("%t", v.Value) }

// CTType represents a type expression evaluated at compile time. MX's
// surface syntax writes types as ordinary comptime expressions (`0`, a
// nested fn_proto, ...), so a type is just whatever CTValue that expression
// folds to; CTType wraps it for the positions (return_type, param type)
// where the distinction matters to a reader even though the underlying
// representation doesn't change.
type CTType struct{ Underlying CTValue }

func (CTType) ctValue()           {}
func (v CTType) String() string   { return "type(" + v.Underlying.String() + ")" }

// ParamDecl is one entry of a fn_proto's parameter list, compile-time typed.
type ParamDecl struct {
	Name string
	Type CTValue
}

// CTFnProto is the compile-time value of a `fn_proto` node: its parameter
// shapes and return type, without a body.
type CTFnProto struct {
	ComptimeParams []ParamDecl
	Params         []ParamDecl
	ReturnType     CTValue
}

func (CTFnProto) ctValue()        {}
func (CTFnProto) String() string  { return "fn_proto" }

// CTFnDecl is the compile-time value bound to a function's name. MxirRef
// points at the mxir.FnDecl or mxir.BuiltinFnDecl node carrying the lazy
// lowering state; AstRef is the ast fn_decl node, kept for diagnostics.
type CTFnDecl struct {
	Name    string
	Proto   CTFnProto
	AstRef  ast.NodeRef
	MxirRef mxir.Ref
}

func (CTFnDecl) ctValue()         {}
func (v CTFnDecl) String() string { return "fn " + v.Name }

// CTVarDecl marks a name declared by `var`. Sema only needs to know the name
// resolves to *something*; the actual runtime value lives in an
// interp.Frame, not in the compile-time environment.
type CTVarDecl struct{ Name string }

func (CTVarDecl) ctValue()        {}
func (v CTVarDecl) String() string { return "var " + v.Name }

// truthy mirrors the interpreter's notion of truthiness for the handful of
// compile-time contexts (none currently) that might need it.
func truthy(v CTValue) bool {
	switch v := v.(type) {
	case CTBool:
		return v.Value
	case CTInt:
		return v.Value != 0
	case CTUndefined:
		return false
	default:
		return true
	}
}
