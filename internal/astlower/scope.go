package astlower

import "kdc/internal/hir"

// scopeKind mirrors the lexical nesting this language's lowering cares
// about: whether yielding here should fall through to a function return.
type scopeKind uint8

const (
	scopeRoot scopeKind = iota
	scopeFunction
	scopeBlock
)

// scope is one frame of the stack-threaded lexical scope chain: a symbol
// map with a borrowed parent link. Lookup walks up through parents;
// exiting a scope simply stops using it, there is nothing to tear down.
type scope struct {
	kind    scopeKind
	parent  *scope
	symbols map[string]hir.ExprId
}

func newScope(kind scopeKind, parent *scope) *scope {
	return &scope{kind: kind, parent: parent, symbols: make(map[string]hir.ExprId)}
}

// find walks this scope and its ancestors for name, without reporting.
func (s *scope) find(name string) (hir.ExprId, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if id, ok := sc.symbols[name]; ok {
			return id, true
		}
	}
	return 0, false
}

// put binds name to id in this scope, returning the previous binding (from
// any reachable enclosing scope) if name was already declared.
func (s *scope) put(name string, id hir.ExprId) (hir.ExprId, bool) {
	existing, redeclared := s.find(name)
	s.symbols[name] = id
	return existing, redeclared
}
