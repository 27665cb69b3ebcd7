package executor

import (
	"fmt"
	"sync"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/kakkky/starsole/errs"
	"github.com/kakkky/starsole/log"
)

// loader は .star ファイルを実行した結果をファイルパスごとにキャッシュする
// キャッシュはファイルの変更を検知したwatcherから無効化される
type loader struct {
	mu       sync.Mutex
	cache    map[string]*loadEntry
	fileOpts *syntax.FileOptions
	filer
	// onLoad は新しくファイルを実行したときに呼ばれる
	onLoad func(path string)
}

type loadEntry struct {
	globals starlark.StringDict
}

func newLoader(fileOpts *syntax.FileOptions, f filer) *loader {
	return &loader{
		cache:    make(map[string]*loadEntry),
		fileOpts: fileOpts,
		filer:    f,
	}
}

// load はファイルを実行してグローバル変数を返す
// 読み込み中のファイルを再び読み込もうとした場合は循環とみなしてエラーにする
func (l *loader) load(parent *starlark.Thread, path string) (starlark.StringDict, error) {
	l.mu.Lock()
	e, ok := l.cache[path]
	if e != nil {
		l.mu.Unlock()
		return e.globals, nil
	}
	if ok {
		l.mu.Unlock()
		return nil, errs.NewBadInputError(fmt.Sprintf("cycle in load graph: %s", path))
	}
	// 読み込み中の印
	l.cache[path] = nil
	l.mu.Unlock()

	globals, err := l.exec(parent, path)

	l.mu.Lock()
	if err != nil {
		// 失敗したファイルは修正後に読み直せるようキャッシュしない
		delete(l.cache, path)
		l.mu.Unlock()
		return nil, err
	}
	l.cache[path] = &loadEntry{globals: globals}
	l.mu.Unlock()

	if l.onLoad != nil {
		l.onLoad(path)
	}
	log.Debug("loaded", path)
	return globals, nil
}

func (l *loader) exec(parent *starlark.Thread, path string) (starlark.StringDict, error) {
	src, err := l.readFile(path)
	if err != nil {
		return nil, err
	}
	thread := &starlark.Thread{
		Name:  "load " + path,
		Load:  parent.Load,
		Print: parent.Print,
	}
	globals, err := starlark.ExecFileOptions(l.fileOpts, thread, path, src, nil)
	if err != nil {
		return nil, wrapEvalError(err)
	}
	return globals, nil
}

// invalidate はファイルのキャッシュを捨てる
// 読み込み中のファイルには触らない
func (l *loader) invalidate(path string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.cache[path]
	if !ok || e == nil {
		return false
	}
	delete(l.cache, path)
	return true
}

func (l *loader) isCached(path string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.cache[path]
	return ok && e != nil
}
