package completer

import (
	"io"

	"github.com/kakkky/starsole/types"
)

// Host は補完エンジンが必要とするランタイムの値モデル
// 補完エンジンは値の表現に依存せず、このインターフェースだけを通して値を辿る
type Host interface {
	// GlobalScope は現在のモジュールスコープを返す
	GlobalScope() types.Value
	// BuiltinScope は組み込みの名前空間を返す
	BuiltinScope() types.Value
	// LoadedModules はロード済みのモジュール名を返す
	LoadedModules() []types.ModuleName
	// Attr は値の属性を名前で引く。存在しなければfalseを返す
	Attr(v types.Value, name string) (types.Value, bool)
	// Members は値が持つ属性名を列挙する
	Members(v types.Value) ([]string, error)
	// IsCallable は値がユーザー定義関数、束縛メソッド、ネイティブ関数のいずれかかを判定する
	IsCallable(v types.Value) bool
}

// Editor は補完結果を反映する先の行エディタ
type Editor interface {
	InsertText(text string)
	RepositionCursor()
	TerminalWidth() int
	// Output は候補一覧を書き出す先
	Output() io.Writer
}

// Completer はTabキーによる補完を担う
type Completer struct {
	host Host
	diag io.Writer
}

// NewCompleter はCompleterのインスタンスを生成する
// diagには補完中の内部エラーが書き出される
func NewCompleter(host Host, diag io.Writer) *Completer {
	return &Completer{
		host: host,
		diag: diag,
	}
}

// Complete はカーソルまでの入力を補完し、結果をエディタに反映する
func (c *Completer) Complete(buffer string, cursor int, ed Editor) {
	candidates, prefix, ok := c.Candidates(buffer, cursor)
	if !ok {
		return
	}
	action := render(candidates, prefix, ed.TerminalWidth())
	apply(action, ed)
}

// Candidates はカーソルまでの入力に対する補完候補と、入力済みの接頭辞を返す
// 補完できない入力ではfalseを返す
func (c *Completer) Candidates(buffer string, cursor int) ([]Candidate, string, bool) {
	if cursor > len(buffer) {
		cursor = len(buffer)
	}
	src := buffer[:max(cursor, 0)]
	chain, ok := extractChain(buffer, cursor)
	if !ok {
		return nil, "", false
	}
	root, isGlobal, ok := c.resolveChain(chain, src)
	if !ok {
		return nil, "", false
	}
	prefix := chain.prefix(src)
	// モジュール一覧を起点にした場合は名前空間を広げない
	escalate := isGlobal && len(prefix) != 0 && !chain.importAnchored
	candidates, err := c.collect(root, prefix, escalate)
	if err != nil {
		io.WriteString(c.diag, "\nInternal error while tab completing.\n")
		return nil, "", false
	}
	return candidates, prefix, true
}
