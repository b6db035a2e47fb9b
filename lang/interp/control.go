package interp

// signal is the reason an evaluation stopped early, mirroring
// original_source's ControlFlow enum. sigNone means "ran normally, keep
// going" and is the zero value so an unset control struct behaves exactly
// like normal completion.
type signal uint8

const (
	sigNone signal = iota
	sigBreak
	sigContinue
	sigReturn
)

// control is returned alongside a Value by every evalX function, the same
// way original_source's eval_node_with_control_flow pairs a value with a
// ControlFlow. A block propagates any non-sigNone control upward without
// running its remaining statements; a Loop node is the only place sigBreak
// and sigContinue are actually consumed, and a call frame is the only place
// sigReturn is consumed ("returns do not escape the callee").
type control struct {
	signal signal
	value  Value
}

var none = control{signal: sigNone}
