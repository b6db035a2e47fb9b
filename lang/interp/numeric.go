package interp

import "golang.org/x/exp/constraints"

// foldArith folds an arithmetic binary operator over two same-typed numeric
// operands generically, so Integer and Float share one implementation
// instead of two copy-pasted switches. ok is false for "/" by zero, the
// soft-error case the caller turns into a nil Value, and for any operator
// it does not fold, "%" included (applyIntOp handles integer "%" itself).
func foldArith[T constraints.Integer | constraints.Float](op string, l, r T) (T, bool) {
	switch op {
	case "+":
		return l + r, true
	case "-":
		return l - r, true
	case "*":
		return l * r, true
	case "/":
		if r == 0 {
			return 0, false
		}
		return l / r, true
	default:
		return 0, false
	}
}

// foldCompare folds a comparison/equality operator over two same-typed
// ordered operands generically.
func foldCompare[T constraints.Ordered](op string, l, r T) (bool, bool) {
	switch op {
	case "==":
		return l == r, true
	case "!=":
		return l != r, true
	case "<":
		return l < r, true
	case "<=":
		return l <= r, true
	case ">":
		return l > r, true
	case ">=":
		return l >= r, true
	default:
		return false, false
	}
}
