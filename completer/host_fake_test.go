package completer

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/kakkky/starsole/types"
)

// fakeObject はテスト用の属性を持つ値
type fakeObject struct {
	names []string
	attrs map[string]types.Value
}

func newFakeObject(kv ...any) *fakeObject {
	obj := &fakeObject{attrs: make(map[string]types.Value)}
	for i := 0; i+1 < len(kv); i += 2 {
		name := kv[i].(string)
		obj.names = append(obj.names, name)
		obj.attrs[name] = kv[i+1]
	}
	return obj
}

// fakeFunc はテスト用の呼び出し可能な値
type fakeFunc struct{}

// brokenObject は属性の列挙に失敗する値
type brokenObject struct{}

type fakeHost struct {
	globals  *fakeObject
	builtins *fakeObject
	modules  []types.ModuleName
}

func (fh *fakeHost) GlobalScope() types.Value  { return fh.globals }
func (fh *fakeHost) BuiltinScope() types.Value { return fh.builtins }
func (fh *fakeHost) LoadedModules() []types.ModuleName {
	return fh.modules
}

func (fh *fakeHost) Attr(v types.Value, name string) (types.Value, bool) {
	obj, ok := v.(*fakeObject)
	if !ok {
		return nil, false
	}
	attr, ok := obj.attrs[name]
	return attr, ok
}

func (fh *fakeHost) Members(v types.Value) ([]string, error) {
	switch obj := v.(type) {
	case *fakeObject:
		return obj.names, nil
	case brokenObject:
		return nil, errors.New("dir() did not return a list")
	}
	return nil, nil
}

func (fh *fakeHost) IsCallable(v types.Value) bool {
	_, ok := v.(fakeFunc)
	return ok
}

// fakeEditor は補完結果の反映を記録する
type fakeEditor struct {
	inserted    []string
	repositions int
	width       int
	out         bytes.Buffer
}

func (fe *fakeEditor) InsertText(text string) { fe.inserted = append(fe.inserted, text) }
func (fe *fakeEditor) RepositionCursor()      { fe.repositions++ }
func (fe *fakeEditor) TerminalWidth() int     { return fe.width }
func (fe *fakeEditor) Output() io.Writer      { return &fe.out }

// newTestHost は補完のテストで共通に使うスコープを組み立てる
func newTestHost() *fakeHost {
	osModule := newFakeObject(
		"getcwd", fakeFunc{},
		"sep", "/",
	)
	str := newFakeObject(
		"join", fakeFunc{},
		"split", fakeFunc{},
	)
	return &fakeHost{
		globals: newFakeObject(
			"os", osModule,
			"value_a", 1,
			"value_b", 2,
			"print", "shadowed",
			"broken", brokenObject{},
		),
		builtins: newFakeObject(
			"len", fakeFunc{},
			"print", fakeFunc{},
			"str", str,
			"None", nil,
		),
		modules: []types.ModuleName{"json", "math", "time"},
	}
}

// newManyNamesHost は上限を超える数の名前を持つホストを返す
func newManyNamesHost(n int) *fakeHost {
	kv := make([]any, 0, n*2)
	for i := 0; i < n; i++ {
		kv = append(kv, fmt.Sprintf("v%03d", i), i)
	}
	return &fakeHost{
		globals:  newFakeObject(kv...),
		builtins: newFakeObject("vars", fakeFunc{}),
	}
}
