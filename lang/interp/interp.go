package interp

import (
	"errors"
	"io"

	"github.com/austincummings/mx/lang/mxir"
)

// ErrNoEntrypoint is returned by Execute when the mxir.Pool has no
// top-level function named "main". lang/sema already reports a
// MissingEntrypointFunction diagnostic for this case; a caller that ignores
// diagnostics and tries to run anyway gets this instead of a panic.
var ErrNoEntrypoint = errors.New("interp: no \"main\" function in program")

// ErrStepLimitExceeded is returned when a run exceeds its configured step
// budget — a guard against runaway `loop {}` programs during interactive or
// CI use.
var ErrStepLimitExceeded = errors.New("interp: step limit exceeded")

// Interpreter executes one mxir.Pool. Execute creates one per run; it is
// not safe for concurrent use, matching original_source's Interpreter,
// which owns a single linear frame stack.
type Interpreter struct {
	pool   *mxir.Pool
	frames []*Frame
	stdout io.Writer

	maxSteps int // 0 means unlimited
	steps    int
}

// Execute scans the top-level declarations for the FnDecl named "main" and
// evaluates a synthesized call to it with no arguments. No name table is
// built: calls reach their callee through CallExpr.FnDeclRef. maxSteps of 0
// disables the step budget.
func Execute(pool *mxir.Pool, stdout io.Writer, maxSteps int) (Value, error) {
	sf, ok := pool.Node(0).Data.(mxir.SourceFile)
	if !ok {
		panic("interp: mxir node 0 is not a SourceFile")
	}

	var mainRef mxir.Ref
	found := false
	for _, ref := range sf.Children {
		if fd, ok := pool.Node(ref).Data.(mxir.FnDecl); ok && fd.Name == "main" {
			mainRef, found = ref, true
			break
		}
	}
	if !found {
		return nil, ErrNoEntrypoint
	}

	in := &Interpreter{pool: pool, stdout: stdout, maxSteps: maxSteps}
	val, _, err := in.invokeFn(mainRef, nil)
	return val, err
}

func (in *Interpreter) node(ref mxir.Ref) mxir.Node { return in.pool.Node(ref) }

func (in *Interpreter) pushFrame(f *Frame) { in.frames = append(in.frames, f) }
func (in *Interpreter) popFrame()          { in.frames = in.frames[:len(in.frames)-1] }
func (in *Interpreter) frame() *Frame      { return in.frames[len(in.frames)-1] }

func (in *Interpreter) tick() error {
	in.steps++
	if in.maxSteps > 0 && in.steps > in.maxSteps {
		return ErrStepLimitExceeded
	}
	return nil
}

// eval dispatches on ref's node kind. Node kinds that are never evaluated
// directly (SourceFile, FnDecl, BuiltinFnDecl — these are only ever
// reached through invokeFn) panic if eval is handed one, a grammar/lowering
// invariant violation rather than recoverable input.
func (in *Interpreter) eval(ref mxir.Ref) (Value, control, error) {
	if err := in.tick(); err != nil {
		return nil, control{}, err
	}

	n := in.node(ref)
	switch data := n.Data.(type) {
	case mxir.Nop:
		return nil, none, nil
	case mxir.Block:
		return in.evalBlock(data)
	case mxir.VarDecl:
		return in.evalVarDecl(data)
	case mxir.ExprStmt:
		return in.eval(data.Expr)
	case mxir.Return:
		return in.evalReturn(data)
	case mxir.Loop:
		return in.evalLoop(data)
	case mxir.If:
		return in.evalIf(data)
	case mxir.Break:
		return nil, control{signal: sigBreak}, nil
	case mxir.Continue:
		return nil, control{signal: sigContinue}, nil
	case mxir.Assign:
		return in.evalAssign(data)
	case mxir.IntLiteral:
		return Integer{Value: data.Value}, none, nil
	case mxir.FloatLiteral:
		return Float{Value: data.Value}, none, nil
	case mxir.StringLiteral:
		return String{Value: data.Value}, none, nil
	case mxir.BoolLiteral:
		return Boolean{Value: data.Value}, none, nil
	case mxir.VarExpr:
		v, _ := in.frame().get(data.Name) // unresolved name: soft error, nil value
		return v, none, nil
	case mxir.BinaryOp:
		return in.evalBinaryOp(data)
	case mxir.CallExpr:
		return in.evalCallExpr(data)
	default:
		panic("interp: unhandled mxir node kind in eval")
	}
}

// evalBlock runs each statement in order, tracking the last produced value
// (the block's implicit result if it runs off the end) and stopping at the
// first non-sigNone control signal, which it propagates unchanged to its
// caller — the mechanism by which break/continue/return reach through
// arbitrarily nested if/block statements up to the loop or call frame that
// consumes them.
func (in *Interpreter) evalBlock(b mxir.Block) (Value, control, error) {
	var last Value
	for _, stmtRef := range b.Children {
		val, ctrl, err := in.eval(stmtRef)
		if err != nil {
			return nil, control{}, err
		}
		if val != nil {
			last = val
		}
		if ctrl.signal != sigNone {
			return last, ctrl, nil
		}
	}
	return last, none, nil
}

func (in *Interpreter) evalVarDecl(d mxir.VarDecl) (Value, control, error) {
	var val Value
	if d.Value != 0 {
		v, ctrl, err := in.eval(d.Value)
		if err != nil {
			return nil, control{}, err
		}
		if ctrl.signal != sigNone {
			return nil, ctrl, nil
		}
		val = v
	}
	in.frame().set(d.Name, val)
	return nil, none, nil
}

func (in *Interpreter) evalReturn(r mxir.Return) (Value, control, error) {
	if r.Value == 0 {
		return nil, control{signal: sigReturn}, nil
	}
	val, ctrl, err := in.eval(r.Value)
	if err != nil {
		return nil, control{}, err
	}
	if ctrl.signal != sigNone {
		return nil, ctrl, nil
	}
	return nil, control{signal: sigReturn, value: val}, nil
}

// evalLoop repeats body until it sees sigBreak (loop exits, no value) or
// sigReturn (propagated unchanged, exits the loop and keeps unwinding);
// sigContinue and sigNone both mean "run the body again".
func (in *Interpreter) evalLoop(l mxir.Loop) (Value, control, error) {
	for {
		_, ctrl, err := in.eval(l.Body)
		if err != nil {
			return nil, control{}, err
		}
		switch ctrl.signal {
		case sigBreak:
			return nil, none, nil
		case sigReturn:
			return nil, ctrl, nil
		default: // sigNone or sigContinue: go again
		}
	}
}

func (in *Interpreter) evalIf(node mxir.If) (Value, control, error) {
	cond, ctrl, err := in.eval(node.Cond)
	if err != nil {
		return nil, control{}, err
	}
	if ctrl.signal != sigNone {
		return nil, ctrl, nil
	}
	if truthy(cond) {
		return in.eval(node.Then)
	}
	if node.Else != 0 {
		return in.eval(node.Else)
	}
	return nil, none, nil
}

func (in *Interpreter) evalAssign(a mxir.Assign) (Value, control, error) {
	rhs, ctrl, err := in.eval(a.Rhs)
	if err != nil {
		return nil, control{}, err
	}
	if ctrl.signal != sigNone {
		return nil, ctrl, nil
	}
	lhsExpr, ok := in.node(a.Lhs).Data.(mxir.VarExpr)
	if !ok {
		return nil, none, nil // malformed lhs: soft error, no-op
	}
	in.frame().set(lhsExpr.Name, rhs)
	return nil, none, nil
}

// evalCallExpr evaluates every argument in the caller's current frame (so
// an argument expression can read the caller's own locals), then invokes
// the callee in a fresh frame.
func (in *Interpreter) evalCallExpr(c mxir.CallExpr) (Value, control, error) {
	args := make([]Value, len(c.Args))
	for i, argRef := range c.Args {
		v, ctrl, err := in.eval(argRef)
		if err != nil {
			return nil, control{}, err
		}
		if ctrl.signal != sigNone {
			return nil, ctrl, nil
		}
		args[i] = v
	}
	return in.invokeFn(c.FnDeclRef, args)
}

// invokeFn calls the function at fnRef (a BuiltinFnDecl or a FnDecl) with
// already-evaluated args. "Returns do not escape the callee": a sigReturn
// produced while evaluating the body is consumed here and converted to a
// plain value with sigNone, so the caller's enclosing block keeps running.
func (in *Interpreter) invokeFn(fnRef mxir.Ref, args []Value) (Value, control, error) {
	switch fd := in.node(fnRef).Data.(type) {
	case mxir.BuiltinFnDecl:
		return in.callBuiltin(fd.Name, args), none, nil
	case mxir.FnDecl:
		frame := newFrame()
		for i, name := range fd.Params {
			if i < len(args) {
				frame.set(name, args[i])
			}
		}
		in.pushFrame(frame)
		val, ctrl, err := in.eval(fd.Body)
		in.popFrame()
		if err != nil {
			return nil, control{}, err
		}
		if ctrl.signal == sigReturn {
			return ctrl.value, none, nil
		}
		return val, none, nil
	default:
		panic("interp: call target is neither FnDecl nor BuiltinFnDecl")
	}
}
