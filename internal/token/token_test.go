package token

import "testing"

func TestLookupRecognisesEveryKeyword(t *testing.T) {
	cases := map[string]Kind{
		"func":   KwFunc,
		"struct": KwStruct,
		"let":    KwLet,
		"if":     KwIf,
		"else":   KwElse,
		"while":  KwWhile,
		"return": KwReturn,
	}
	for text, want := range cases {
		got, ok := Lookup(text)
		if !ok || got != want {
			t.Errorf("Lookup(%q) = (%v, %v), want (%v, true)", text, got, ok, want)
		}
	}
}

func TestLookupRejectsNonKeywords(t *testing.T) {
	if _, ok := Lookup("x"); ok {
		t.Error("want Lookup to reject a plain identifier")
	}
	if _, ok := Lookup("Func"); ok {
		t.Error("want Lookup to be case-sensitive")
	}
}
