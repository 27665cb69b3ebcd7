package completer

import (
	"slices"

	"github.com/kakkky/starsole/types"
)

// scope は候補を列挙する対象の名前空間
type scope interface {
	members() ([]string, error)
	lookup(name string) (types.Value, bool)
}

// hostScope はランタイムの値をそのまま名前空間として扱う
type hostScope struct {
	host  Host
	value types.Value
}

func (hs hostScope) members() ([]string, error) {
	return hs.host.Members(hs.value)
}

func (hs hostScope) lookup(name string) (types.Value, bool) {
	return hs.host.Attr(hs.value, name)
}

// syntheticScope は補完の呼び出し中だけ使う名前だけの名前空間
// 値は持たないので、どの名前も呼び出し可能とはみなさない
type syntheticScope []string

func (ss syntheticScope) members() ([]string, error) {
	return ss, nil
}

func (ss syntheticScope) lookup(name string) (types.Value, bool) {
	return nil, slices.Contains(ss, name)
}

// keywordNames はキーワード補完の候補
// importとfromはREPLが独自に解釈する文なので含める
var keywordNames = []string{
	"and", "as", "break", "continue", "def", "elif", "else", "for", "from",
	"if", "import", "in", "lambda", "load", "not", "or", "pass", "return",
	"while", "True", "False", "None",
}

func newKeywordScope() syntheticScope {
	return slices.Clone(keywordNames)
}

func newModuleListingScope(names []types.ModuleName) syntheticScope {
	ss := make(syntheticScope, 0, len(names))
	for _, name := range names {
		ss = append(ss, string(name))
	}
	return ss
}
