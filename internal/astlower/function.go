package astlower

import (
	"kdc/internal/ast"
	"kdc/internal/hir"
)

// lowerFunction implements the FunctionDecl rule in spec §4.5: a Function
// scope holds the parameters, a nested Block scope (pushed by lowerBlock)
// holds the body's let-bindings.
func (l *lowering) lowerFunction(fn *ast.FunctionDecl) {
	outer := l.scope
	l.scope = newScope(scopeFunction, outer)
	defer func() { l.scope = outer }()

	params := make([]hir.ExprId, 0, len(fn.Params))
	for _, p := range fn.Params {
		id := l.root.AllocExpr(hir.Expr{
			Kind: hir.KindArgument,
			Type: l.lowerType(p.Type),
			Span: p.Span(),
			Name: p.Name,
		})
		l.putSymbol(p.Name, p.Span(), id)
		params = append(params, id)
	}

	bodyType := hir.Type{Tag: hir.Infer}
	if fn.HasReturnType {
		bodyType = l.lowerType(fn.ReturnType)
	}
	blockID := l.root.AllocExpr(hir.Expr{Kind: hir.KindBlock, Type: bodyType, Span: fn.Body.Span()})

	function := &hir.Function{Name: fn.Name, NameSpan: fn.NameSpan, Params: params, Body: blockID, HasReturnType: fn.HasReturnType}
	l.root.Functions = append(l.root.Functions, function)
	l.functionMap[fn.Name] = function

	prevBlock := l.currentBlock
	l.currentBlock = blockID
	l.lowerBlock(fn.Body)
	l.currentBlock = prevBlock
}
