package log

import (
	"io"
	"log"
	"os"
)

// logger は全体で共有するロガー
// SetOutputが呼ばれるまでは出力を捨てる
var logger = log.New(io.Discard, "", log.LstdFlags)

// SetOutput はログの出力先を設定する
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// OpenFile はログファイルを追記モードで開いて出力先にする
// 返り値の関数でファイルを閉じる
func OpenFile(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	SetOutput(f)
	return func() error {
		SetOutput(io.Discard)
		return f.Close()
	}, nil
}

func Fatal(v ...any) {
	output("[FATAL]", v...)
}

func Warn(v ...any) {
	output("[WARN]", v...)
}

func Info(v ...any) {
	output("[INFO]", v...)
}

func Debug(v ...any) {
	output("[DEBUG]", v...)
}

func output(level string, v ...any) {
	args := make([]any, 0, len(v)+1)
	args = append(args, level)
	args = append(args, v...)
	logger.Println(args...)
}
