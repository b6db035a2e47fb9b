package interp

import "github.com/dolthub/swiss"

// Frame is one call's local variable bindings: flat, not nested, exactly
// original_source's Frame{members: HashMap<String,InterpreterValue>}. MX has
// no runtime notion of nested block scoping — only lang/sema's compile-time
// ScopeStack distinguishes shadowing across blocks — so a function call
// needs exactly one flat map for its whole lifetime, not one per block.
type Frame struct {
	members *swiss.Map[string, Value]
}

func newFrame() *Frame {
	return &Frame{members: swiss.NewMap[string, Value](8)}
}

func (f *Frame) get(name string) (Value, bool) {
	return f.members.Get(name)
}

func (f *Frame) set(name string, v Value) {
	f.members.Put(name, v)
}
