package sql

import "testing"

func collect(src string) []Token {
	l := NewLexer(src)
	var out []Token
	for {
		tok := l.NextToken()
		out = append(out, tok)
		if tok.Type == EOF {
			return out
		}
	}
}

func TestLexerKeywordsAreCaseInsensitive(t *testing.T) {
	toks := collect("select * from Users")
	want := []TokenType{Select, Star, From, Identifier, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, ty := range want {
		if toks[i].Type != ty {
			t.Fatalf("token %d: got type %d, want %d", i, toks[i].Type, ty)
		}
	}
	if toks[3].Value != "Users" {
		t.Fatalf("identifier should keep original case, got %q", toks[3].Value)
	}
}

func TestLexerDotIsStandalonePunctuation(t *testing.T) {
	toks := collect("users.id")
	want := []TokenType{Identifier, Dot, Identifier, EOF}
	for i, ty := range want {
		if toks[i].Type != ty {
			t.Fatalf("token %d: got %d, want %d", i, toks[i].Type, ty)
		}
	}
}

func TestLexerFractionalNumber(t *testing.T) {
	toks := collect("3.14")
	if toks[0].Type != Number || toks[0].Value != "3.14" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestLexerNumberFollowedByDotNotFraction(t *testing.T) {
	// "1." with no digit after the dot: the dot is its own token.
	toks := collect("1.x")
	if toks[0].Type != Number || toks[0].Value != "1" {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[1].Type != Dot {
		t.Fatalf("expected Dot, got %+v", toks[1])
	}
}

func TestLexerStringEscape(t *testing.T) {
	toks := collect(`'it''s'`)
	// ' is not the escape char here; \' is. Verify the backslash form.
	toks2 := collect(`'a\'b'`)
	if toks2[0].Type != String || toks2[0].Value != "a'b" {
		t.Fatalf("got %+v", toks2[0])
	}
	_ = toks
}

func TestLexerLineComment(t *testing.T) {
	toks := collect("SELECT 1 -- trailing comment\nFROM t")
	want := []TokenType{Select, Number, From, Identifier, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens: %+v", len(toks), toks)
	}
}

func TestLexerUnknownBytesSkipped(t *testing.T) {
	toks := collect("SELECT # 1")
	want := []TokenType{Select, Number, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens: %+v", len(toks), toks)
	}
}

func TestLexerOperators(t *testing.T) {
	toks := collect("= != > < >= <=")
	want := []TokenType{Eq, Neq, Gt, Lt, Gte, Lte, EOF}
	for i, ty := range want {
		if toks[i].Type != ty {
			t.Fatalf("token %d: got %d, want %d", i, toks[i].Type, ty)
		}
	}
}

func TestLexerAutoIncrementKeyword(t *testing.T) {
	toks := collect("AUTO_INCREMENT")
	if toks[0].Type != AutoIncrement {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestLexerTracksBytePosition(t *testing.T) {
	toks := collect("  SELECT")
	if toks[0].Pos != 2 {
		t.Fatalf("expected Pos 2, got %d", toks[0].Pos)
	}
}
