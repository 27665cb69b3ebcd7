package completer

import (
	"github.com/kakkky/starsole/scanner"
)

// chainSpec は補完対象となる末尾の属性参照チェーン
// segmentsは外側から順に識別子とドットが交互に並ぶ
// 末尾がドットでない場合、最後の要素は入力途中の識別子になる
type chainSpec struct {
	segments       []scanner.Token
	prefixLength   int
	isBareDot      bool
	importAnchored bool
}

// extractChain はカーソルまでの入力を走査し直して、補完対象のチェーンを取り出す
// 補完するものがなければfalseを返す
func extractChain(buffer string, cursor int) (chainSpec, bool) {
	if cursor <= 0 {
		return chainSpec{}, false
	}
	if cursor > len(buffer) {
		cursor = len(buffer)
	}
	tokens := scanner.Tokenize(buffer[:cursor])
	if len(tokens) == 1 || tokens[len(tokens)-1].Kind == scanner.ERROR {
		return chainSpec{}, false
	}

	// 終端の一つ前のトークンで補完の種類が決まる
	last := len(tokens) - 2
	var spec chainSpec
	switch kind := tokens[last].Kind; {
	case kind == scanner.DOT:
		spec.isBareDot = true
	case kind.IsIdentLike():
		spec.prefixLength = tokens[last].Length
	default:
		return chainSpec{}, false
	}

	// 識別子とドットが交互に並ぶ限り後ろへ辿る
	start := last
	for start > 0 {
		prev := tokens[start-1].Kind
		if tokens[start].Kind == scanner.DOT {
			if prev != scanner.IDENTIFIER {
				break
			}
		} else if prev != scanner.DOT {
			break
		}
		start--
	}
	// ドットから始まるチェーンは辿りようがない
	if tokens[start].Kind == scanner.DOT {
		return chainSpec{}, false
	}
	if start > 0 {
		switch tokens[start-1].Kind {
		case scanner.IMPORT, scanner.FROM:
			spec.importAnchored = true
		}
	}
	spec.segments = tokens[start : last+1]
	return spec, true
}

// steps は属性を解決していく識別子を外側から順に返す
// 末尾の入力途中の識別子は含まない
func (cs chainSpec) steps() []scanner.Token {
	var idents []scanner.Token
	resolvable := cs.segments
	if !cs.isBareDot {
		resolvable = cs.segments[:len(cs.segments)-1]
	}
	for _, seg := range resolvable {
		if seg.Kind == scanner.IDENTIFIER {
			idents = append(idents, seg)
		}
	}
	return idents
}

// prefix は入力済みの接頭辞を返す
func (cs chainSpec) prefix(src string) string {
	if cs.isBareDot || len(cs.segments) == 0 {
		return ""
	}
	return cs.segments[len(cs.segments)-1].Text(src)
}
