package texttools

import (
	"errors"
	"reflect"
	"testing"
)

func TestTokenizeWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple sentence",
			text: "The cat sat.",
			want: []string{"The", "cat", "sat"},
		},
		{
			name: "punctuation stripped",
			text: "Hello, world! (Really.)",
			want: []string{"Hello", "world", "Really"},
		},
		{
			name: "embedded apostrophes kept",
			text: "don't stop O'Brien's car",
			want: []string{"don't", "stop", "O'Brien's", "car"},
		},
		{
			name: "digits count as word runs",
			text: "chapter 42 begins",
			want: []string{"chapter", "42", "begins"},
		},
		{
			name: "original case preserved",
			text: "The THE the",
			want: []string{"The", "THE", "the"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: " \t\n ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenizeWords(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenizeWords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokenizeCharacters(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "whitespace filtered and case folded",
			text: "Go go!",
			want: []string{"g", "o", "g", "o", "!"},
		},
		{
			name: "punctuation retained",
			text: "a.b",
			want: []string{"a", ".", "b"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenizeCharacters(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenizeCharacters(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokenizeSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "mixed terminators",
			text: "First. Second! Third?",
			want: []string{"First", "Second", "Third"},
		},
		{
			name: "terminator stripped and whitespace trimmed",
			text: "  Hello world.  ",
			want: []string{"Hello world"},
		},
		{
			name: "consecutive terminators drop empty fragments",
			text: "Wait... what?",
			want: []string{"Wait", "what"},
		},
		{
			name: "trailing fragment without terminator",
			text: "Done. And more",
			want: []string{"Done", "And more"},
		},
		{
			name: "no terminator at all",
			text: "just a fragment",
			want: []string{"just a fragment"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenizeSentences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenizeSentences(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseElementType(t *testing.T) {
	tests := []struct {
		code    string
		want    ElementType
		wantErr bool
	}{
		{code: "w", want: Words},
		{code: "words", want: Words},
		{code: "c", want: Characters},
		{code: "characters", want: Characters},
		{code: "s", want: Sentences},
		{code: "SENTENCES", want: Sentences},
		{code: " w ", want: Words},
		{code: "x", wantErr: true},
		{code: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseElementType(tt.code)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownElementType) {
					t.Fatalf("ParseElementType(%q) error = %v, want ErrUnknownElementType", tt.code, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseElementType(%q) unexpected error: %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("ParseElementType(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestTextTokensViews(t *testing.T) {
	text := New("The cat sat. The cat ran fast.")

	if got := len(text.Tokens(Words)); got != 7 {
		t.Errorf("words view has %d tokens, want 7", got)
	}
	if got := len(text.Tokens(Sentences)); got != 2 {
		t.Errorf("sentences view has %d tokens, want 2", got)
	}
	// 24 non-whitespace runes, including the two periods.
	if got := len(text.Tokens(Characters)); got != 24 {
		t.Errorf("characters view has %d tokens, want 24", got)
	}
}
