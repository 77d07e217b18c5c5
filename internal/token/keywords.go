package token

var keywords = map[string]Kind{
	"func":   KwFunc,
	"struct": KwStruct,
	"let":    KwLet,
	"if":     KwIf,
	"else":   KwElse,
	"while":  KwWhile,
	"return": KwReturn,
}

// Lookup returns the keyword Kind for ident, or (Invalid, false) if ident
// is not a keyword.
func Lookup(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
