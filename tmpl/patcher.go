package tmpl

import (
	"log/slog"
	"slices"

	"github.com/expr-lang/expr/ast"

	"github.com/ardnew/cio/log"
)

// methodPatcher rewrites method-call syntax into built-in function calls.
//
// Placeholder expressions use receiver syntax for the fixed operation set
// (e.g., "s.to_uppercase()"), but the evaluation environment holds plain
// functions. This visitor detects CallNodes whose callee is a member
// access, and patches allow-listed names to a call of the corresponding
// built-in with the receiver as first argument. Names outside the
// allow-list are recorded and reported after compilation.
//
// Division is also rewritten, into the checked "div" built-in: the
// stock "/" operator divides as float64 and turns a zero divisor into
// Inf instead of an error, and it loses integer semantics for integer
// operands.
type methodPatcher struct {
	logger      log.Logger
	unsupported []string
}

// Visit implements ast.Visitor for methodPatcher.
func (p *methodPatcher) Visit(node *ast.Node) {
	if bin, ok := (*node).(*ast.BinaryNode); ok && bin.Operator == "/" {
		ast.Patch(node, &ast.CallNode{
			Callee:    &ast.IdentifierNode{Value: "div"},
			Arguments: []ast.Node{bin.Left, bin.Right},
		})

		p.logger.Trace("patch division",
			slog.String("target", "div"))

		return
	}

	call, ok := (*node).(*ast.CallNode)
	if !ok {
		return
	}

	member, ok := call.Callee.(*ast.MemberNode)
	if !ok {
		return
	}

	prop, ok := member.Property.(*ast.StringNode)
	if !ok {
		return
	}

	target, ok := methodTargets[prop.Value]
	if !ok {
		p.unsupported = append(p.unsupported, prop.Value)

		return
	}

	args := make([]ast.Node, 0, len(call.Arguments)+1)
	args = append(args, member.Node)
	args = append(args, call.Arguments...)

	ast.Patch(node, &ast.CallNode{
		Callee:    &ast.IdentifierNode{Value: target},
		Arguments: args,
	})

	p.logger.Trace("patch method call",
		slog.String("method", prop.Value),
		slog.String("target", target))
}

// identCollector gathers the identifiers an expression references so
// unresolved names can be reported before execution. Callee identifiers
// are tracked separately: function names resolve through the built-in
// environment, not through caller bindings.
type identCollector struct {
	seen    map[string]struct{}
	callees map[string]struct{}
}

func newIdentCollector() *identCollector {
	return &identCollector{
		seen:    make(map[string]struct{}),
		callees: make(map[string]struct{}),
	}
}

// Visit implements ast.Visitor for identCollector.
func (c *identCollector) Visit(node *ast.Node) {
	switch n := (*node).(type) {
	case *ast.IdentifierNode:
		c.seen[n.Value] = struct{}{}

	case *ast.CallNode:
		if id, ok := n.Callee.(*ast.IdentifierNode); ok {
			c.callees[id.Value] = struct{}{}
		}
	}
}

// names returns the referenced identifiers that require an Environment
// binding, in stable order.
func (c *identCollector) names() []string {
	var out []string

	for name := range c.seen {
		if _, ok := c.callees[name]; ok {
			continue
		}

		if isReserved(name) {
			continue
		}

		out = append(out, name)
	}

	slices.Sort(out)

	return out
}
