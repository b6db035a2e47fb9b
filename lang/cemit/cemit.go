// Package cemit implements a C emitter as an external boundary pass over
// MXIR: given a fully lowered mxir.Pool, it
// produces a C translation unit that, compiled and run, performs the same
// computation the tree-walking interpreter in lang/interp would perform.
// It is not part of the semantic core — it exists to demonstrate that MXIR
// is a real target-independent IR, not just an interpreter's private
// bytecode.
package cemit

import (
	"fmt"
	"strings"

	"github.com/austincummings/mx/lang/mxir"
)

// Emit renders pool as a standalone C source file. Every variable,
// parameter and function result is declared as a C `long long`; float and
// string literals are written as C literals but are not given a `double` or
// `const char*` declaration of their own. MX has no static type checking to
// lean on, so a mistyped program may simply fail to compile as C — an
// acceptable outcome for a boundary pass that is explicitly out of scope for
// the analyzer's own diagnostics.
func Emit(pool *mxir.Pool) (string, error) {
	e := &emitter{pool: pool}
	sf, ok := pool.Node(0).Data.(mxir.SourceFile)
	if !ok {
		return "", fmt.Errorf("cemit: mxir node 0 is not a SourceFile")
	}

	e.writeln("#include <stdio.h>")
	e.writeln("")

	for _, ref := range sf.Children {
		if err := e.emitTopLevel(ref); err != nil {
			return "", err
		}
	}

	return e.sb.String(), nil
}

type emitter struct {
	pool *mxir.Pool
	sb   strings.Builder
}

func (e *emitter) writeln(s string) {
	e.sb.WriteString(s)
	e.sb.WriteByte('\n')
}

func (e *emitter) writef(format string, args ...interface{}) {
	fmt.Fprintf(&e.sb, format, args...)
}

func (e *emitter) emitTopLevel(ref mxir.Ref) error {
	n := e.pool.Node(ref)
	switch fd := n.Data.(type) {
	case mxir.BuiltinFnDecl:
		return nil // builtins map to libc calls inline, no declaration needed
	case mxir.FnDecl:
		return e.emitFnDecl(fd)
	default:
		return fmt.Errorf("cemit: unexpected top-level mxir kind %T", n.Data)
	}
}

// emitFnDecl renders a function as `long long name(long long p0, ...)`.
// main is emitted the same way as every other function, as
// `long long main()`.
func (e *emitter) emitFnDecl(fd mxir.FnDecl) error {
	e.writef("long long %s(", fd.Name)
	for i, p := range fd.Params {
		if i > 0 {
			e.writef(", ")
		}
		e.writef("long long %s", p)
	}
	e.writeln(") {")
	if err := e.emitBlockBody(fd.Body); err != nil {
		return err
	}
	e.writeln("}")
	e.writeln("")
	return nil
}

func (e *emitter) emitBlockBody(ref mxir.Ref) error {
	n := e.pool.Node(ref)
	block, ok := n.Data.(mxir.Block)
	if !ok {
		return fmt.Errorf("cemit: expected Block, got %T", n.Data)
	}
	for _, stmtRef := range block.Children {
		if err := e.emitStmt(stmtRef); err != nil {
			return err
		}
	}
	return nil
}

func (e *emitter) emitStmt(ref mxir.Ref) error {
	n := e.pool.Node(ref)
	switch d := n.Data.(type) {
	case mxir.Nop:
		return nil
	case mxir.VarDecl:
		e.writef("long long %s", d.Name)
		if d.Value != 0 {
			e.writef(" = ")
			if err := e.emitExpr(d.Value); err != nil {
				return err
			}
		} else {
			e.writef(" = 0")
		}
		e.writeln(";")
		return nil
	case mxir.Assign:
		lhs, ok := e.pool.Node(d.Lhs).Data.(mxir.VarExpr)
		if !ok {
			return fmt.Errorf("cemit: assignment target must be a variable")
		}
		e.writef("%s = ", lhs.Name)
		if err := e.emitExpr(d.Rhs); err != nil {
			return err
		}
		e.writeln(";")
		return nil
	case mxir.ExprStmt:
		if err := e.emitCallStmt(d.Expr); err != nil {
			return err
		}
		return nil
	case mxir.Return:
		if d.Value == 0 {
			e.writeln("return 0;")
			return nil
		}
		e.writef("return ")
		if err := e.emitExpr(d.Value); err != nil {
			return err
		}
		e.writeln(";")
		return nil
	case mxir.If:
		e.writef("if (")
		if err := e.emitExpr(d.Cond); err != nil {
			return err
		}
		e.writeln(") {")
		if err := e.emitBlockBody(d.Then); err != nil {
			return err
		}
		if d.Else != 0 {
			e.writeln("} else {")
			if _, ok := e.pool.Node(d.Else).Data.(mxir.Block); ok {
				if err := e.emitBlockBody(d.Else); err != nil {
					return err
				}
			} else if err := e.emitStmt(d.Else); err != nil { // nested else-if
				return err
			}
		}
		e.writeln("}")
		return nil
	case mxir.Loop:
		e.writeln("for (;;) {")
		if err := e.emitBlockBody(d.Body); err != nil {
			return err
		}
		e.writeln("}")
		return nil
	case mxir.Break:
		e.writeln("break;")
		return nil
	case mxir.Continue:
		e.writeln("continue;")
		return nil
	case mxir.Block:
		e.writeln("{")
		if err := e.emitBlockBody(ref); err != nil {
			return err
		}
		e.writeln("}")
		return nil
	default:
		return fmt.Errorf("cemit: unhandled statement kind %T", d)
	}
}

// emitCallStmt handles an expr_stmt whose expression is a call to the
// "print" builtin specially, since C has no equivalent single-argument
// polymorphic print; every other call is emitted as an ordinary
// expression statement.
func (e *emitter) emitCallStmt(ref mxir.Ref) error {
	n := e.pool.Node(ref)
	call, ok := n.Data.(mxir.CallExpr)
	if !ok {
		if err := e.emitExpr(ref); err != nil {
			return err
		}
		e.writeln(";")
		return nil
	}
	if bf, ok := e.pool.Node(call.FnDeclRef).Data.(mxir.BuiltinFnDecl); ok && bf.Name == "print" {
		e.writef("printf(\"%%lld\\n\", (long long)(")
		if len(call.Args) > 0 {
			if err := e.emitExpr(call.Args[0]); err != nil {
				return err
			}
		} else {
			e.writef("0")
		}
		e.writeln("));")
		return nil
	}
	if err := e.emitExpr(ref); err != nil {
		return err
	}
	e.writeln(";")
	return nil
}

func (e *emitter) emitExpr(ref mxir.Ref) error {
	n := e.pool.Node(ref)
	switch d := n.Data.(type) {
	case mxir.IntLiteral:
		e.writef("%d", d.Value)
	case mxir.FloatLiteral:
		e.writef("%g", d.Value)
	case mxir.BoolLiteral:
		if d.Value {
			e.writef("1")
		} else {
			e.writef("0")
		}
	case mxir.StringLiteral:
		e.writef("%q", d.Value)
	case mxir.VarExpr:
		e.writef("%s", d.Name)
	case mxir.BinaryOp:
		e.writef("(")
		if err := e.emitExpr(d.Left); err != nil {
			return err
		}
		e.writef(" %s ", d.Op)
		if err := e.emitExpr(d.Right); err != nil {
			return err
		}
		e.writef(")")
	case mxir.CallExpr:
		fn, ok := e.pool.Node(d.FnDeclRef).Data.(mxir.FnDecl)
		if !ok {
			return fmt.Errorf("cemit: call to a builtin is only supported as a statement")
		}
		e.writef("%s(", fn.Name)
		for i, argRef := range d.Args {
			if i > 0 {
				e.writef(", ")
			}
			if err := e.emitExpr(argRef); err != nil {
				return err
			}
		}
		e.writef(")")
	default:
		return fmt.Errorf("cemit: unhandled expression kind %T", d)
	}
	return nil
}
