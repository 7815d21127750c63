package token

var keywords = map[string]Kind{
	"fn":     KwFn,
	"let":    KwLet,
	"match":  KwMatch,
	"return": KwReturn,
	"yield":  KwYield,
}

// LookupKeyword returns the keyword kind for ident, if ident names one.
// Keywords are case-sensitive: only the lowercase spelling is recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
