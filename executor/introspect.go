package executor

import (
	"fmt"
	"slices"

	"go.starlark.net/starlark"

	"github.com/kakkky/starsole/errs"
	"github.com/kakkky/starsole/stdmod"
	"github.com/kakkky/starsole/types"
)

// globalScope はセッションのグローバル変数を一つの値として補完エンジンに渡すための包み
type globalScope struct {
	dict starlark.StringDict
}

// builtinScope は組み込みの名前空間を表す
type builtinScope struct{}

// GlobalScope は現在のモジュールスコープを返す
func (e *Executor) GlobalScope() types.Value {
	return globalScope{dict: e.globals}
}

// BuiltinScope は組み込みの名前空間を返す
func (e *Executor) BuiltinScope() types.Value {
	return builtinScope{}
}

// LoadedModules はimportできるモジュールの名前を返す
// 標準モジュールは常に含まれる
func (e *Executor) LoadedModules() []types.ModuleName {
	names := append(stdmod.Names(), e.registry.Names()...)
	slices.Sort(names)
	return slices.Compact(names)
}

// Attr は値の属性を名前で引く
// 取得に失敗した場合とNoneの場合は存在しないものとして扱う
func (e *Executor) Attr(v types.Value, name string) (types.Value, bool) {
	var attr starlark.Value
	switch v := v.(type) {
	case globalScope:
		attr = v.dict[name]
	case builtinScope:
		attr = starlark.Universe[name]
	case starlark.HasAttrs:
		a, err := v.Attr(name)
		if err != nil {
			return nil, false
		}
		attr = a
	default:
		return nil, false
	}
	if attr == nil || attr == starlark.None {
		return nil, false
	}
	return attr, true
}

// Members は値が持つ属性名を列挙する
func (e *Executor) Members(v types.Value) ([]string, error) {
	switch v := v.(type) {
	case globalScope:
		return v.dict.Keys(), nil
	case builtinScope:
		return starlark.Universe.Keys(), nil
	case starlark.HasAttrs:
		return slices.Clone(v.AttrNames()), nil
	case starlark.Value:
		return []string{}, nil
	default:
		return nil, errs.NewInternalError(fmt.Sprintf("introspection returned a non-list result for %T", v))
	}
}

// IsCallable は値が関数か組み込み関数(束縛メソッドを含む)かを判定する
func (e *Executor) IsCallable(v types.Value) bool {
	switch v.(type) {
	case *starlark.Function, *starlark.Builtin:
		return true
	default:
		return false
	}
}

// Repr は値をrepr()で文字列にする
func (e *Executor) Repr(v types.Value) (string, error) {
	return e.callStringer("repr", v)
}

// Str は値をstr()で文字列にする
func (e *Executor) Str(v types.Value) (string, error) {
	return e.callStringer("str", v)
}

func (e *Executor) callStringer(builtin string, v types.Value) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = "", errs.NewInternalError(fmt.Sprintf("%s panicked: %v", builtin, r))
		}
	}()

	sv, ok := v.(starlark.Value)
	if !ok {
		return "", errs.NewInternalError(fmt.Sprintf("%T is not a runtime value", v))
	}
	thread := &starlark.Thread{Name: builtin}
	res, err := starlark.Call(thread, starlark.Universe[builtin], starlark.Tuple{sv}, nil)
	if err != nil {
		return "", err
	}
	str, ok := starlark.AsString(res)
	if !ok {
		return "", errs.NewInternalError(fmt.Sprintf("%s returned %s", builtin, res.Type()))
	}
	return str, nil
}
