// Package mxir defines MXIR, the typed intermediate representation the
// semantic analyzer (lang/sema) lowers ast.Pool nodes into and the
// interpreter (lang/interp) executes. Like lang/ast, it is a flat, indexed
// node pool rather than a pointer tree: handles are cheap to
// copy, there is no ownership graph to walk on drop, and a node can refer to
// a sibling that appears later in the vector (e.g. SourceFile(0) refers
// forward to every top-level declaration) without any unsafe trick, since
// the forward reference is just an integer that is not yet valid until the
// pool finishes filling in.
package mxir

import (
	"fmt"

	"github.com/austincummings/mx/lang/ast"
)

// Ref is a dense 32-bit index into a Pool. Ref(0) is always the lowered
// SourceFile node for a given analysis.
type Ref uint32

func (r Ref) String() string { return fmt.Sprintf("mxir#%d", uint32(r)) }

// Node is one entry of the MXIR pool: the node's own ref (redundant with its
// position but convenient when a Node value is copied out of the pool), the
// ast.NodeRef it was lowered from (for diagnostics that need a source
// range), and the node's kind-specific payload.
type Node struct {
	SelfRef Ref
	AstRef  ast.NodeRef
	Data    NodeData
}

// NodeData is implemented by every concrete MXIR node payload. Go has no
// closed sum type, so exhaustiveness is enforced the same way the lowering
// and evaluation switches throughout this repo are written: a type switch
// with a default branch that panics, naming the unhandled concrete type.
type NodeData interface {
	mxirNodeData()
}

// --- structural ---

// SourceFile is always mxir node 0; Children holds the lowered top-level
// declarations in source order. Node 0 is reserved before any declaration
// is lowered, so Children's refs are the first sanctioned exception to MXIR
// ref monotonicity (see FnDecl.Body for the second).
type SourceFile struct{ Children []Ref }

// Block holds a lowered statement sequence; used for function bodies, if/else
// arms and loop bodies alike.
type Block struct{ Children []Ref }

// Nop is substituted wherever lowering must still produce a Ref but the
// input was already rejected by a diagnostic: append the diagnostic,
// substitute Nop (or Undefined for a value), and keep going.
type Nop struct{}

// --- declarations ---

// FnDecl is a lowered function declaration. Under this repo's lazy-lowering
// rule, Body is mxir.Ref(0) (a placeholder, never a real reference to the
// source file) until the function's first call site triggers
// ensureFnLowered, which lowers the body and overwrites this field. The
// FnDecl node itself is always pushed before its body, so that a
// self-recursive call within the body can resolve CallExpr.FnDeclRef to
// this node's own ref while the body is still being lowered; this makes
// Body the second sanctioned exception (after SourceFile.Children) to MXIR
// ref monotonicity — FnDecl.Body routinely exceeds FnDecl.SelfRef, since
// the body's nodes are pushed well after the FnDecl node itself.
type FnDecl struct {
	Name    string
	Params  []string
	Body    Ref
	Lowered bool
}

// BuiltinFnDecl is a function whose body is supplied by the interpreter
// rather than lowered from source. The node carries only a name, with no
// parameter list; a call passes its arguments through CallExpr.Args. There
// is exactly one builtin, "print", wired through to demonstrate the hook.
type BuiltinFnDecl struct{ Name string }

// VarDecl declares a mutable binding. Value may be the zero Ref when the
// declaration had no initializer.
type VarDecl struct {
	Name  string
	Value Ref
}

// --- statements ---

type ExprStmt struct{ Expr Ref }

// Return carries an optional value; Value is the zero Ref for a bare
// `return;`.
type Return struct{ Value Ref }

type Loop struct{ Body Ref }

// If carries a condition and a then-block; Else is the zero Ref when there
// was no else clause. Else may itself point at another If node (to lower an
// `else if` chain) or at a Block.
type If struct {
	Cond Ref
	Then Ref
	Else Ref
}

type Break struct{}
type Continue struct{}

// Assign lowers `lhs = rhs;`. Lhs is constrained to a
// VarExpr at the AST level; MXIR still carries it as a general Ref so a
// future target (e.g. field or index assignment) would not require a new
// node kind.
type Assign struct {
	Lhs Ref
	Rhs Ref
}

// --- expressions ---

type IntLiteral struct{ Value int64 }
type FloatLiteral struct{ Value float64 }
type StringLiteral struct{ Value string }
type BoolLiteral struct{ Value bool }

type VarExpr struct{ Name string }

// CallExpr lowers a call expression once the callee has resolved to a known
// FnDeclRef (an unresolved callee is a recoverable semantic error, reported
// as SymbolNotFound and lowered to Nop instead of CallExpr). Args holds the
// lowered argument expressions in call order.
type CallExpr struct {
	FnDeclRef Ref
	Args      []Ref
}

// BinaryOp extends the lowering table with arithmetic/comparison/equality,
// the obvious next node kind needed to make loop/if/break scenarios
// arithmetically interesting. Op is one of "+", "-", "*", "/", "%", "==",
// "!=", "<", "<=", ">", ">=".
type BinaryOp struct {
	Op    string
	Left  Ref
	Right Ref
}

func (SourceFile) mxirNodeData()    {}
func (Block) mxirNodeData()         {}
func (Nop) mxirNodeData()           {}
func (FnDecl) mxirNodeData()        {}
func (BuiltinFnDecl) mxirNodeData() {}
func (VarDecl) mxirNodeData()       {}
func (ExprStmt) mxirNodeData()      {}
func (Return) mxirNodeData()        {}
func (Loop) mxirNodeData()          {}
func (If) mxirNodeData()            {}
func (Break) mxirNodeData()         {}
func (Continue) mxirNodeData()      {}
func (Assign) mxirNodeData()        {}
func (IntLiteral) mxirNodeData()    {}
func (FloatLiteral) mxirNodeData()  {}
func (StringLiteral) mxirNodeData() {}
func (BoolLiteral) mxirNodeData()   {}
func (VarExpr) mxirNodeData()       {}
func (CallExpr) mxirNodeData()      {}
func (BinaryOp) mxirNodeData()      {}

// Pool is the flat, indexed MXIR node vector a Sema run produces.
type Pool struct {
	Nodes []Node
}

// Reserve appends a placeholder node (Nop data) and returns its Ref, so a
// caller that needs to refer to a node before it has fully lowered its
// contents (the SourceFile root, a not-yet-lowered FnDecl) can do so and
// overwrite it later with Set.
func (p *Pool) Reserve(astRef ast.NodeRef) Ref {
	ref := Ref(len(p.Nodes))
	p.Nodes = append(p.Nodes, Node{SelfRef: ref, AstRef: astRef, Data: Nop{}})
	return ref
}

// Push appends a fully-formed node and returns its Ref.
func (p *Pool) Push(astRef ast.NodeRef, data NodeData) Ref {
	ref := Ref(len(p.Nodes))
	p.Nodes = append(p.Nodes, Node{SelfRef: ref, AstRef: astRef, Data: data})
	return ref
}

// Set overwrites the node at ref in place, preserving its AstRef. Used to
// fill in a Reserve placeholder once the real payload is known.
func (p *Pool) Set(ref Ref, data NodeData) {
	p.Nodes[ref].Data = data
}

// Node returns the node at ref. It panics if ref is out of range: like
// ast.Pool.Node, an out-of-range Ref can only result from a bug in the
// lowering pass itself, not from untrusted input.
func (p *Pool) Node(ref Ref) Node {
	return p.Nodes[ref]
}

func (p *Pool) Len() int { return len(p.Nodes) }
