package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/kakkky/starsole/errs"
	"github.com/kakkky/starsole/log"
	"github.com/kakkky/starsole/registry"
	"github.com/kakkky/starsole/stdmod"
	"github.com/kakkky/starsole/types"
)

// Options はExecutorの設定
type Options struct {
	// ModulePath はimport文とload文でファイルを探すディレクトリ
	ModulePath []string
	// Watch が真ならloadしたファイルの変更を監視する
	Watch bool
	// Output はprint()の出力先。nilなら標準出力
	Output io.Writer
}

// Executor はREPLセッション内でのコード実行を担う
// セッションのグローバル変数を保持し、補完エンジンに値モデルを提供する
type Executor struct {
	thread        *starlark.Thread
	globals       starlark.StringDict
	fileOpts      *syntax.FileOptions
	registry      *registry.Registry
	loader        *loader
	watcher       *watcher
	searchPath    []string
	out           io.Writer
	exitRequested bool
	filer
	moduleResolver
}

// NewExecutor はExecutorのインスタンスを生成する
func NewExecutor(reg *registry.Registry, opts Options) (*Executor, error) {
	stdmod.InstallBuiltins()

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	fileOpts := &syntax.FileOptions{
		Set:               true,
		While:             true,
		TopLevelControl:   true,
		GlobalReassign:    true,
		Recursion:         true,
		LoadBindsGlobally: true,
	}
	df := newDefaultFiler()
	l := newLoader(fileOpts, df)

	e := &Executor{
		fileOpts:       fileOpts,
		registry:       reg,
		loader:         l,
		searchPath:     opts.ModulePath,
		out:            out,
		filer:          df,
		moduleResolver: newDefaultModuleResolver(opts.ModulePath, l, df),
	}
	e.thread = &starlark.Thread{
		Name:  "repl",
		Print: e.print,
		Load:  e.load,
	}
	e.globals = starlark.StringDict{
		"exit": starlark.NewBuiltin("exit", e.exit),
	}

	if opts.Watch {
		w, err := newWatcher(l, reg)
		if err != nil {
			return nil, err
		}
		e.watcher = w
		l.onLoad = w.add
	}
	return e, nil
}

// ====================以下にメソッドを定義する======================

// Execute は入力されたソースを実行し、式の値を返す
// 値を返さない文やNoneの場合はnilを返す
// ctxが終了すると実行中の処理は中断される
func (e *Executor) Execute(ctx context.Context, src string, label types.SourceLabel) (result types.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			panicMsg := fmt.Sprintf("%v", r)
			log.Debug(string(debug.Stack()))
			result, err = nil, errs.NewInternalError(panicMsg)
		}
	}()

	if strings.TrimSpace(src) == "" {
		return nil, nil
	}

	// import文はREPLが解釈してからStarlarkに渡す
	specs, rest, err := extractImports(src)
	if err != nil {
		return nil, err
	}
	if err := e.importModules(specs); err != nil {
		return nil, err
	}
	if strings.TrimSpace(rest) == "" {
		return nil, nil
	}

	f, err := e.fileOpts.Parse(string(label), rest, 0)
	if err != nil {
		return nil, errs.NewBadInputError("syntax error").Wrap(err)
	}

	e.thread.Uncancel()
	stop := context.AfterFunc(ctx, func() {
		e.thread.Cancel("interrupted")
	})
	defer stop()

	var v starlark.Value = starlark.None
	if expr := soleExpr(f); expr != nil {
		v, err = starlark.EvalExprOptions(f.Options, e.thread, expr, e.globals)
	} else {
		err = starlark.ExecREPLChunk(f, e.thread, e.globals)
	}
	if err != nil {
		return nil, wrapEvalError(err)
	}
	if v == starlark.None {
		return nil, nil
	}
	// 直前の結果は _ で参照できる
	e.globals["_"] = v
	return v, nil
}

// ExecFile はファイルをセッションのグローバル変数の上で実行する
func (e *Executor) ExecFile(ctx context.Context, path string) error {
	src, err := e.readFile(path)
	if err != nil {
		return err
	}
	_, err = e.Execute(ctx, string(src), types.SourceLabel(path))
	return err
}

// ExitRequested はexit()が呼ばれたかどうかを返す
func (e *Executor) ExitRequested() bool {
	return e.exitRequested
}

// Close はファイル監視を止める
func (e *Executor) Close() error {
	if e.watcher == nil {
		return nil
	}
	return e.watcher.close()
}

func (e *Executor) importModules(specs []importSpec) error {
	for _, spec := range specs {
		entry, err := e.resolve(e.thread, spec.module)
		if err != nil {
			return err
		}
		e.registry.Register(entry)
		log.Debug("imported", spec.module)

		if spec.member == "" {
			e.globals[spec.alias] = entry.Value.(starlark.Value)
			continue
		}
		member, ok := e.Attr(entry.Value, string(spec.member))
		if !ok {
			return errs.NewBadInputError(fmt.Sprintf("cannot import name %q from %q", spec.member, spec.module))
		}
		e.globals[spec.alias] = member.(starlark.Value)
	}
	return nil
}

// load はload文から呼ばれ、ファイルを実行してグローバル変数を返す
func (e *Executor) load(thread *starlark.Thread, module string) (starlark.StringDict, error) {
	path, ok := resolveLoadPath(e.searchPath, module, e.filer)
	if !ok {
		return nil, errs.NewBadInputError(fmt.Sprintf("cannot find %q on the module path", module))
	}
	globals, err := e.loader.load(thread, path)
	if err != nil {
		return nil, err
	}
	name := types.ModuleName(moduleNameFromPath(path))
	e.registry.Register(registry.Entry{
		Name:   name,
		Origin: registry.OriginFile,
		Path:   path,
		Value:  newFileModule(name, globals),
	})
	return globals, nil
}

func (e *Executor) print(_ *starlark.Thread, msg string) {
	fmt.Fprintln(e.out, msg)
}

func (e *Executor) exit(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	e.exitRequested = true
	return starlark.None, nil
}

func soleExpr(f *syntax.File) syntax.Expr {
	if len(f.Stmts) == 1 {
		if stmt, ok := f.Stmts[0].(*syntax.ExprStmt); ok {
			return stmt.X
		}
	}
	return nil
}

// wrapEvalError は実行時エラーをバックトレースつきのエラーにする
func wrapEvalError(err error) error {
	var badInputErr *errs.BadInputError
	if errors.As(err, &badInputErr) {
		return err
	}
	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		return errs.NewBadInputError(evalErr.Backtrace())
	}
	return errs.NewBadInputError(err.Error())
}
