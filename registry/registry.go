package registry

import (
	"slices"
	"sync"

	"github.com/kakkky/starsole/types"
)

// Origin はモジュールがどこから読み込まれたかを表す
type Origin int

const (
	// OriginStd は組み込みの標準モジュール
	OriginStd Origin = iota
	// OriginFile はモジュール検索パス上の .star ファイル
	OriginFile
)

// Entry はロード済みモジュールの記録
type Entry struct {
	Name   types.ModuleName
	Origin Origin
	// Path はOriginFileの場合のファイルパス
	Path  string
	Value types.Value
}

// Registry はREPLセッションでロードされたモジュールを保持する
// import文の補完候補はここから作られる
// ファイル監視のゴルーチンからも登録を取り消すので、操作はロックの中で行う
type Registry struct {
	mu      sync.RWMutex
	entries map[types.ModuleName]Entry
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[types.ModuleName]Entry),
	}
}

// Register はモジュールを登録する
// 同じ名前で登録済みの場合は上書きする
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.Name] = entry
}

// Unregister はモジュールの登録を取り消す
func (r *Registry) Unregister(name types.ModuleName) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Names は登録済みのモジュール名を名前順に返す
func (r *Registry) Names() []types.ModuleName {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]types.ModuleName, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// FindByPath はファイルパスから登録済みのモジュールを探す
func (r *Registry) FindByPath(path string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entry := range r.entries {
		if entry.Origin == OriginFile && entry.Path == path {
			return entry, true
		}
	}
	return Entry{}, false
}
