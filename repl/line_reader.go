package repl

import "errors"

// ErrInterrupted は行の入力中にCtrl-Cが押されたことを表す
var ErrInterrupted = errors.New("interrupted")

// lineReader は端末から一行ずつ読み込む
//
// ReadLine はpreloadを入力済みの状態でpromptを表示し、改行つきの一行を返す
// 入力の終わりに達した場合は改行のない文字列を返す
//
//go:generate mockgen -package=repl -source=./line_reader.go -destination=./line_reader_mock.go
type lineReader interface {
	ReadLine(prompt, preload string) (string, error)
	AppendHistory(line string)
	Close() error
}
