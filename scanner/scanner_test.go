package scanner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected []Token
	}{
		{
			name:     "empty input",
			src:      "",
			expected: []Token{{Kind: EOF, Start: 0, Length: 0}},
		},
		{
			name: "dotted chain",
			src:  "os.path.jo",
			expected: []Token{
				{Kind: IDENTIFIER, Start: 0, Length: 2},
				{Kind: DOT, Start: 2, Length: 1},
				{Kind: IDENTIFIER, Start: 3, Length: 4},
				{Kind: DOT, Start: 7, Length: 1},
				{Kind: IDENTIFIER, Start: 8, Length: 2},
				{Kind: EOF, Start: 10, Length: 0},
			},
		},
		{
			name: "trailing dot",
			src:  "os.",
			expected: []Token{
				{Kind: IDENTIFIER, Start: 0, Length: 2},
				{Kind: DOT, Start: 2, Length: 1},
				{Kind: EOF, Start: 3, Length: 0},
			},
		},
		{
			name: "import statement",
			src:  "import ma",
			expected: []Token{
				{Kind: IMPORT, Start: 0, Length: 6},
				{Kind: IDENTIFIER, Start: 7, Length: 2},
				{Kind: EOF, Start: 9, Length: 0},
			},
		},
		{
			name: "call and assignment",
			src:  "x = f(1, 2.5)",
			expected: []Token{
				{Kind: IDENTIFIER, Start: 0, Length: 1},
				{Kind: OPERATOR, Start: 2, Length: 1},
				{Kind: IDENTIFIER, Start: 4, Length: 1},
				{Kind: LPAREN, Start: 5, Length: 1},
				{Kind: INT, Start: 6, Length: 1},
				{Kind: COMMA, Start: 7, Length: 1},
				{Kind: FLOAT, Start: 9, Length: 3},
				{Kind: RPAREN, Start: 12, Length: 1},
				{Kind: EOF, Start: 13, Length: 0},
			},
		},
		{
			name: "string and comment are skipped as single tokens",
			src:  `s = "a.b" # os.`,
			expected: []Token{
				{Kind: IDENTIFIER, Start: 0, Length: 1},
				{Kind: OPERATOR, Start: 2, Length: 1},
				{Kind: STRING, Start: 4, Length: 5},
				{Kind: EOF, Start: 15, Length: 0},
			},
		},
		{
			name: "unterminated string ends with ERROR",
			src:  `print("abc`,
			expected: []Token{
				{Kind: IDENTIFIER, Start: 0, Length: 5},
				{Kind: LPAREN, Start: 5, Length: 1},
				{Kind: ERROR, Start: 6, Length: 4},
			},
		},
		{
			name: "unknown character ends with ERROR",
			src:  "a $",
			expected: []Token{
				{Kind: IDENTIFIER, Start: 0, Length: 1},
				{Kind: ERROR, Start: 2, Length: 1},
			},
		},
		{
			name: "line continuation is whitespace",
			src:  "x \\\n.y",
			expected: []Token{
				{Kind: IDENTIFIER, Start: 0, Length: 1},
				{Kind: DOT, Start: 4, Length: 1},
				{Kind: IDENTIFIER, Start: 5, Length: 1},
				{Kind: EOF, Start: 6, Length: 0},
			},
		},
		{
			name: "compound operators",
			src:  "a **= b // c -> d",
			expected: []Token{
				{Kind: IDENTIFIER, Start: 0, Length: 1},
				{Kind: OPERATOR, Start: 2, Length: 3},
				{Kind: IDENTIFIER, Start: 6, Length: 1},
				{Kind: OPERATOR, Start: 8, Length: 2},
				{Kind: IDENTIFIER, Start: 11, Length: 1},
				{Kind: OPERATOR, Start: 13, Length: 2},
				{Kind: IDENTIFIER, Start: 16, Length: 1},
				{Kind: EOF, Start: 17, Length: 0},
			},
		},
		{
			name: "bytes literal with prefix",
			src:  `b"x".`,
			expected: []Token{
				{Kind: BYTES, Start: 0, Length: 4},
				{Kind: DOT, Start: 4, Length: 1},
				{Kind: EOF, Start: 5, Length: 0},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.src)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKind_IsIdentLike(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		expected bool
	}{
		{name: "identifier", kind: IDENTIFIER, expected: true},
		{name: "first keyword", kind: AND, expected: true},
		{name: "import keyword", kind: IMPORT, expected: true},
		{name: "last keyword", kind: YIELD, expected: true},
		{name: "dot", kind: DOT, expected: false},
		{name: "string", kind: STRING, expected: false},
		{name: "eof", kind: EOF, expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.IsIdentLike(); got != tt.expected {
				t.Errorf("IsIdentLike() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestToken_Text(t *testing.T) {
	src := "math.floor"
	tokens := Tokenize(src)
	var got []string
	for _, tok := range tokens[:len(tokens)-1] {
		got = append(got, tok.Text(src))
	}
	if diff := cmp.Diff([]string{"math", ".", "floor"}, got); diff != "" {
		t.Errorf("Text() mismatch (-want +got):\n%s", diff)
	}
}
