package scanner

// Kind はトークンの種類を表す
type Kind int

const (
	EOF Kind = iota
	ERROR

	// リテラル
	INT
	FLOAT
	STRING
	BYTES

	// 区切り記号
	DOT
	COMMA
	COLON
	SEMICOLON
	LPAREN
	RPAREN
	LBRACK
	RBRACK
	LBRACE
	RBRACE
	OPERATOR

	// IDENTIFIER から YIELD までは補完対象になりうる識別子クラス
	// この範囲は連続していなければならない
	IDENTIFIER

	AND
	AS
	ASSERT
	ASYNC
	AWAIT
	BREAK
	CLASS
	CONTINUE
	DEF
	DEL
	ELIF
	ELSE
	EXCEPT
	FINALLY
	FOR
	FROM
	GLOBAL
	IF
	IMPORT
	IN
	IS
	LAMBDA
	LOAD
	NONLOCAL
	NOT
	OR
	PASS
	RAISE
	RETURN
	TRY
	WHILE
	WITH
	YIELD
)

var kindNames = map[Kind]string{
	EOF:        "EOF",
	ERROR:      "ERROR",
	INT:        "INT",
	FLOAT:      "FLOAT",
	STRING:     "STRING",
	BYTES:      "BYTES",
	DOT:        "DOT",
	COMMA:      "COMMA",
	COLON:      "COLON",
	SEMICOLON:  "SEMICOLON",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACK:     "LBRACK",
	RBRACK:     "RBRACK",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	OPERATOR:   "OPERATOR",
	IDENTIFIER: "IDENTIFIER",
}

// keywords は予約語とトークン種別の対応
// Starlarkで予約されているが文法上使われない語も含める
var keywords = map[string]Kind{
	"and":      AND,
	"as":       AS,
	"assert":   ASSERT,
	"async":    ASYNC,
	"await":    AWAIT,
	"break":    BREAK,
	"class":    CLASS,
	"continue": CONTINUE,
	"def":      DEF,
	"del":      DEL,
	"elif":     ELIF,
	"else":     ELSE,
	"except":   EXCEPT,
	"finally":  FINALLY,
	"for":      FOR,
	"from":     FROM,
	"global":   GLOBAL,
	"if":       IF,
	"import":   IMPORT,
	"in":       IN,
	"is":       IS,
	"lambda":   LAMBDA,
	"load":     LOAD,
	"nonlocal": NONLOCAL,
	"not":      NOT,
	"or":       OR,
	"pass":     PASS,
	"raise":    RAISE,
	"return":   RETURN,
	"try":      TRY,
	"while":    WHILE,
	"with":     WITH,
	"yield":    YIELD,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	for word, kind := range keywords {
		if kind == k {
			return word
		}
	}
	return "UNKNOWN"
}

// IsIdentLike は識別子もしくは予約語のトークンかどうかを判定する
func (k Kind) IsIdentLike() bool {
	return k >= IDENTIFIER && k <= YIELD
}

// Token はソース文字列上の範囲でトークンを表す
// ソースそのものは保持しない
type Token struct {
	Kind   Kind
	Start  int
	Length int
}

// End はトークン末尾の次のオフセットを返す
func (t Token) End() int {
	return t.Start + t.Length
}

// Text はソースからトークンの文字列を切り出す
func (t Token) Text(src string) string {
	return src[t.Start:t.End()]
}
