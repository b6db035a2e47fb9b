package interp

import "fmt"

// callBuiltin dispatches a BuiltinFnDecl call by name. "print" is this
// repo's one builtin: it writes its single argument to the interpreter's
// configured stdout followed by a newline and always yields no value.
func (in *Interpreter) callBuiltin(name string, args []Value) Value {
	switch name {
	case "print":
		var arg Value
		if len(args) > 0 {
			arg = args[0]
		}
		fmt.Fprintln(in.stdout, formatValue(arg))
		return nil
	default:
		panic("interp: unknown builtin " + name)
	}
}
