package stdmod

import (
	"slices"
	"sync"

	"go.starlark.net/lib/json"
	"go.starlark.net/lib/math"
	"go.starlark.net/lib/time"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"

	"github.com/kakkky/starsole/types"
)

// Lookup は与えられたモジュール名が標準モジュールかどうかを判定し、
// 標準モジュールであればそのモジュールを返す
func Lookup(name types.ModuleName) (*starlarkstruct.Module, bool) {
	if module, found := getCoreModules()[name]; found {
		return module, true
	}
	if module, found := getEncodingModules()[name]; found {
		return module, true
	}
	return nil, false
}

// Names は標準モジュールの名前を名前順に返す
func Names() []types.ModuleName {
	var names []types.ModuleName
	for name := range getCoreModules() {
		names = append(names, name)
	}
	for name := range getEncodingModules() {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// getCoreModules は基本的なモジュールのマップを返す
func getCoreModules() map[types.ModuleName]*starlarkstruct.Module {
	return map[types.ModuleName]*starlarkstruct.Module{
		"math": math.Module,
		"time": time.Module,
	}
}

// getEncodingModules はエンコーディング関連のモジュールのマップを返す
func getEncodingModules() map[types.ModuleName]*starlarkstruct.Module {
	return map[types.ModuleName]*starlarkstruct.Module{
		"json": json.Module,
	}
}

var installOnce sync.Once

// InstallBuiltins は組み込みの名前空間にstructとmoduleのコンストラクタを追加する
// 組み込みの名前空間はプロセス全体で共有されるので一度だけ行う
func InstallBuiltins() {
	installOnce.Do(func() {
		starlark.Universe["struct"] = starlark.NewBuiltin("struct", starlarkstruct.Make)
		starlark.Universe["module"] = starlark.NewBuiltin("module", starlarkstruct.MakeModule)
	})
}
