package lexer

import (
	"testing"

	"github.com/rry-lang/rryc/internal/source"
)

func TestLexKeywordsAndPunctuation(t *testing.T) {
	src := source.New("class A is B end", "test.rry")
	tokens := Lex(src)

	want := []Type{Class, TypeName, Is, TypeName, End, EOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(want), tokens)
	}
	for i, ty := range want {
		if tokens[i].Type != ty {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Type, ty)
		}
	}
}

func TestLexIdentifierCase(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Type
	}{
		{"type name", "Foo", TypeName},
		{"value name", "foo", ValueName},
		{"value name with punctuation tail", "foo'bar?baz!", ValueName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := source.New(tt.text, "test.rry")
			tokens := Lex(src)
			if tokens[0].Type != tt.want {
				t.Errorf("got %s, want %s", tokens[0].Type, tt.want)
			}
			if tokens[0].Text != tt.text {
				t.Errorf("got text %q, want %q", tokens[0].Text, tt.text)
			}
		})
	}
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"123", "123"},
		{"1_000", "1_000"},
		{"12.5", "12.5"},
		{"12.", "12"}, // trailing dot with no digit is not part of the number
	}

	for _, tt := range tests {
		src := source.New(tt.text, "test.rry")
		tokens := Lex(src)
		if tokens[0].Type != Number {
			t.Fatalf("%q: got %s, want Number", tt.text, tokens[0].Type)
		}
		if tokens[0].Text != tt.want {
			t.Errorf("%q: got %q, want %q", tt.text, tokens[0].Text, tt.want)
		}
	}
}

func TestLexString(t *testing.T) {
	src := source.New(`"hello world"`, "test.rry")
	tokens := Lex(src)
	if tokens[0].Type != String {
		t.Fatalf("got %s, want String", tokens[0].Type)
	}
	if tokens[0].Text != "hello world" {
		t.Errorf("got %q, want %q", tokens[0].Text, "hello world")
	}
}

func TestLexColonEqual(t *testing.T) {
	src := source.New(":=", "test.rry")
	tokens := Lex(src)
	if tokens[0].Type != ColonEqual {
		t.Fatalf("got %s, want ':='", tokens[0].Type)
	}
}

func TestLexIllegalCharacter(t *testing.T) {
	src := source.New("@", "test.rry")
	tokens := Lex(src)
	if tokens[0].Type != Illegal {
		t.Fatalf("got %s, want Illegal", tokens[0].Type)
	}
}

func TestLexAlwaysEndsInEOF(t *testing.T) {
	for _, text := range []string{"", "   ", "class A end", "???"} {
		src := source.New(text, "test.rry")
		tokens := Lex(src)
		if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
			t.Errorf("%q: stream does not end in EOF: %+v", text, tokens)
		}
	}
}

func TestLexSpansAreByteOffsets(t *testing.T) {
	src := source.New("  foo", "test.rry")
	tokens := Lex(src)
	if tokens[0].Span.Start != 2 || tokens[0].Span.End != 5 {
		t.Errorf("got span [%d:%d], want [2:5]", tokens[0].Span.Start, tokens[0].Span.End)
	}
}
