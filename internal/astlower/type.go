package astlower

import (
	"strconv"
	"strings"

	"fortio.org/safecast"

	"kdc/internal/ast"
	"kdc/internal/hir"
	"kdc/internal/types"
)

// lowerType maps an AST type name to a concrete HIR type: identifiers of
// the form u<N> become an unsigned integer of N bits, "bool" becomes the
// distinguished boolean type. Any other shape is a bug in an earlier
// stage, not a user error, so it panics instead of reporting a diagnostic.
func (l *lowering) lowerType(t ast.Type) hir.Type {
	bt, ok := t.(*ast.BaseType)
	if !ok {
		panic("astlower: unsupported type node")
	}
	if bt.Name == "bool" {
		return hir.Type{Tag: hir.Real, Handle: l.types.Bool()}
	}
	if rest, ok := strings.CutPrefix(bt.Name, "u"); ok {
		width, err := strconv.Atoi(rest)
		if err == nil && width > 0 {
			w, err := safecast.Conv[types.Width](width)
			if err == nil {
				return hir.Type{Tag: hir.Real, Handle: l.types.Uint(w)}
			}
		}
	}
	panic("astlower: unrecognized type name '" + bt.Name + "'")
}
