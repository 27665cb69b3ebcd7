package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scanner は入力文字列を先頭から走査してトークンを切り出す
// 補完のために入力途中の行を再走査する用途なので、インデントや改行はトークンにしない
type Scanner struct {
	src   string
	start int
	pos   int
	done  bool
}

// NewScanner はScannerのインスタンスを生成する
func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Tokenize は入力全体を走査し、EOFかERRORで終わるトークン列を返す
func Tokenize(src string) []Token {
	s := NewScanner(src)
	tokens := make([]Token, 0, 8)
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Kind == EOF || tok.Kind == ERROR {
			return tokens
		}
	}
}

// Next は次のトークンを返す
// EOFもしくはERRORを返した後は、以降ずっとEOFを返す
func (s *Scanner) Next() Token {
	if s.done {
		return Token{Kind: EOF, Start: len(s.src)}
	}
	s.skipSpaceAndComments()
	s.start = s.pos
	if s.pos >= len(s.src) {
		s.done = true
		return s.makeToken(EOF)
	}

	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	switch {
	case isIdentStart(r):
		return s.identifier()
	case isDigit(r):
		return s.number()
	case r == '.':
		// .5 のような小数
		if s.pos+1 < len(s.src) && isDigit(rune(s.src[s.pos+1])) {
			return s.number()
		}
		s.pos += size
		return s.makeToken(DOT)
	case r == '"' || r == '\'':
		return s.stringLit(STRING)
	}

	s.pos += size
	switch r {
	case ',':
		return s.makeToken(COMMA)
	case ':':
		return s.makeToken(COLON)
	case ';':
		return s.makeToken(SEMICOLON)
	case '(':
		return s.makeToken(LPAREN)
	case ')':
		return s.makeToken(RPAREN)
	case '[':
		return s.makeToken(LBRACK)
	case ']':
		return s.makeToken(RBRACK)
	case '{':
		return s.makeToken(LBRACE)
	case '}':
		return s.makeToken(RBRACE)
	case '+', '-', '%', '&', '|', '^', '~', '=', '!', '@':
		s.match('=')
		if r == '-' {
			s.match('>')
		}
		return s.makeToken(OPERATOR)
	case '*', '/', '<', '>':
		// **, //, <<, >> とその代入形
		s.match(byte(r))
		s.match('=')
		return s.makeToken(OPERATOR)
	}
	return s.errorToken()
}

func (s *Scanner) skipSpaceAndComments() {
	for s.pos < len(s.src) {
		switch c := s.src[s.pos]; c {
		case ' ', '\t', '\r', '\n', '\f':
			s.pos++
		case '\\':
			// 行継続
			if s.pos+1 < len(s.src) && s.src[s.pos+1] == '\n' {
				s.pos += 2
				continue
			}
			return
		case '#':
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
			}
		default:
			return
		}
	}
}

func (s *Scanner) identifier() Token {
	for s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if !isIdentStart(r) && !isDigit(r) {
			break
		}
		s.pos += size
	}
	word := s.src[s.start:s.pos]
	// r"..." や b'...' のような接頭辞つき文字列
	if s.pos < len(s.src) && (s.src[s.pos] == '"' || s.src[s.pos] == '\'') {
		switch strings.ToLower(word) {
		case "r":
			return s.stringLit(STRING)
		case "b", "rb", "br":
			return s.stringLit(BYTES)
		}
	}
	if kind, ok := keywords[word]; ok {
		return s.makeToken(kind)
	}
	return s.makeToken(IDENTIFIER)
}

func (s *Scanner) number() Token {
	kind := INT
	if strings.HasPrefix(s.src[s.pos:], "0x") || strings.HasPrefix(s.src[s.pos:], "0X") ||
		strings.HasPrefix(s.src[s.pos:], "0o") || strings.HasPrefix(s.src[s.pos:], "0O") ||
		strings.HasPrefix(s.src[s.pos:], "0b") || strings.HasPrefix(s.src[s.pos:], "0B") {
		s.pos += 2
		for s.pos < len(s.src) && isHexDigit(s.src[s.pos]) {
			s.pos++
		}
		return s.makeToken(kind)
	}
	for s.pos < len(s.src) && isDigit(rune(s.src[s.pos])) {
		s.pos++
	}
	if s.pos < len(s.src) && s.src[s.pos] == '.' {
		kind = FLOAT
		s.pos++
		for s.pos < len(s.src) && isDigit(rune(s.src[s.pos])) {
			s.pos++
		}
	}
	if s.pos < len(s.src) && (s.src[s.pos] == 'e' || s.src[s.pos] == 'E') {
		kind = FLOAT
		s.pos++
		if s.pos < len(s.src) && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
			s.pos++
		}
		for s.pos < len(s.src) && isDigit(rune(s.src[s.pos])) {
			s.pos++
		}
	}
	return s.makeToken(kind)
}

// stringLit は文字列リテラルを読む
// 閉じられていない文字列はERRORになる
func (s *Scanner) stringLit(kind Kind) Token {
	quote := s.src[s.pos]
	triple := strings.HasPrefix(s.src[s.pos:], strings.Repeat(string(quote), 3))
	if triple {
		s.pos += 3
	} else {
		s.pos++
	}
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '\\':
			s.pos += 2
			continue
		case c == '\n' && !triple:
			return s.errorToken()
		case c == quote && !triple:
			s.pos++
			return s.makeToken(kind)
		case c == quote && strings.HasPrefix(s.src[s.pos:], strings.Repeat(string(quote), 3)):
			s.pos += 3
			return s.makeToken(kind)
		}
		s.pos++
	}
	return s.errorToken()
}

func (s *Scanner) match(c byte) bool {
	if s.pos < len(s.src) && s.src[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

func (s *Scanner) makeToken(kind Kind) Token {
	end := s.pos
	if end > len(s.src) {
		end = len(s.src)
	}
	return Token{Kind: kind, Start: s.start, Length: end - s.start}
}

func (s *Scanner) errorToken() Token {
	s.done = true
	return s.makeToken(ERROR)
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(rune(c)) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F') || c == '_'
}
