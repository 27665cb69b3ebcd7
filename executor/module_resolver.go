package executor

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"

	"github.com/kakkky/starsole/errs"
	"github.com/kakkky/starsole/registry"
	"github.com/kakkky/starsole/stdmod"
	"github.com/kakkky/starsole/types"
)

//go:generate mockgen -package=executor -source=./module_resolver.go -destination=./module_resolver_mock.go
type moduleResolver interface {
	resolve(thread *starlark.Thread, name types.ModuleName) (entry registry.Entry, err error)
}

type defaultModuleResolver struct {
	searchPath []string
	loader     *loader
	filer
}

func newDefaultModuleResolver(searchPath []string, l *loader, f filer) *defaultModuleResolver {
	return &defaultModuleResolver{
		searchPath: searchPath,
		loader:     l,
		filer:      f,
	}
}

// resolve はモジュール名からモジュールを解決する
// 標準モジュールを優先し、なければ検索パス上の .star ファイルを実行する
func (dmr *defaultModuleResolver) resolve(thread *starlark.Thread, name types.ModuleName) (registry.Entry, error) {
	if module, ok := stdmod.Lookup(name); ok {
		return registry.Entry{
			Name:   name,
			Origin: registry.OriginStd,
			Value:  module,
		}, nil
	}

	path, ok := findModuleFile(dmr.searchPath, string(name), dmr.filer)
	if !ok {
		return registry.Entry{}, errs.NewBadInputError(fmt.Sprintf("no module named %q", name))
	}
	globals, err := dmr.loader.load(thread, path)
	if err != nil {
		return registry.Entry{}, err
	}
	return registry.Entry{
		Name:   name,
		Origin: registry.OriginFile,
		Path:   path,
		Value:  newFileModule(name, globals),
	}, nil
}

// newFileModule はファイルのグローバル変数をモジュールとしてまとめる
func newFileModule(name types.ModuleName, globals starlark.StringDict) *starlarkstruct.Module {
	members := make(starlark.StringDict, len(globals))
	for k, v := range globals {
		members[k] = v
	}
	return &starlarkstruct.Module{
		Name:    string(name),
		Members: members,
	}
}
