package sema

import "golang.org/x/exp/constraints"

// foldArith and foldCompare mirror lang/interp's numeric helpers of the
// same name: compile-time constant folding and runtime evaluation share the
// same generic arithmetic/comparison semantics, just against different
// value domains (CTValue here, interp.Value there).
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
