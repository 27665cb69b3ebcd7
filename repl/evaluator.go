package repl

import (
	"context"

	"github.com/kakkky/starsole/types"
)

// evaluator は文を実行し、結果の値を文字列にする
//
//go:generate mockgen -package=repl -source=./evaluator.go -destination=./evaluator_mock.go
type evaluator interface {
	Execute(ctx context.Context, src string, label types.SourceLabel) (types.Value, error)
	Repr(v types.Value) (string, error)
	Str(v types.Value) (string, error)
	ExitRequested() bool
}
