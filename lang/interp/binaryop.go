package interp

import "github.com/austincummings/mx/lang/mxir"

// evalBinaryOp evaluates both operands left-to-right (so a side-effecting
// call on the left happens before the right is evaluated, the usual
// left-to-right rule) and then dispatches on their runtime types. A type
// mismatch, or a division/modulo by zero, is a soft runtime error: produce a
// nil value and keep going, rather than aborting the whole run.
func (in *Interpreter) evalBinaryOp(b mxir.BinaryOp) (Value, control, error) {
	left, ctrl, err := in.eval(b.Left)
	if err != nil {
		return nil, control{}, err
	}
	if ctrl.signal != sigNone {
		return nil, ctrl, nil
	}
	right, ctrl, err := in.eval(b.Right)
	if err != nil {
		return nil, control{}, err
	}
	if ctrl.signal != sigNone {
		return nil, ctrl, nil
	}
	return applyBinaryOp(b.Op, left, right), none, nil
}

func applyBinaryOp(op string, left, right Value) Value {
	switch l := left.(type) {
	case Integer:
		if r, ok := right.(Integer); ok {
			return applyIntOp(op, l.Value, r.Value)
		}
	case Float:
		if r, ok := right.(Float); ok {
			return applyFloatOp(op, l.Value, r.Value)
		}
	case String:
		if r, ok := right.(String); ok {
			return applyStringOp(op, l.Value, r.Value)
		}
	case Boolean:
		if r, ok := right.(Boolean); ok {
			return applyBoolOp(op, l.Value, r.Value)
		}
	}
	return nil // mismatched or unsupported operand types: soft error
}

func applyIntOp(op string, l, r int64) Value {
	if op == "%" {
		if r == 0 {
			return nil
		}
		return Integer{Value: l % r}
	}
	if v, ok := foldArith(op, l, r); ok {
		return Integer{Value: v}
	}
	if b, ok := foldCompare(op, l, r); ok {
		return Boolean{Value: b}
	}
	return nil
}

func applyFloatOp(op string, l, r float64) Value {
	if v, ok := foldArith(op, l, r); ok {
		return Float{Value: v}
	}
	if b, ok := foldCompare(op, l, r); ok {
		return Boolean{Value: b}
	}
	return nil
}

func applyStringOp(op string, l, r string) Value {
	switch op {
	case "+":
		return String{Value: l + r}
	case "==":
		return Boolean{Value: l == r}
	case "!=":
		return Boolean{Value: l != r}
	default:
		return nil
	}
}

func applyBoolOp(op string, l, r bool) Value {
	switch op {
	case "==":
		return Boolean{Value: l == r}
	case "!=":
		return Boolean{Value: l != r}
	default:
		return nil
	}
}
