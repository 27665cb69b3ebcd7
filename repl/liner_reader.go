package repl

import (
	"errors"
	"io"

	"github.com/peterh/liner"

	"github.com/kakkky/starsole/completer"
)

// linerReader はlinerで一行ずつ読み込む
// go-promptが使えない端末や、標準入力がパイプの場合に使う
type linerReader struct {
	state *liner.State
}

func newLinerReader(c *completer.Completer, initialHistory []string) *linerReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetTabCompletionStyle(liner.TabPrints)
	state.SetWordCompleter(wordCompleter(c))
	for _, line := range initialHistory {
		state.AppendHistory(line)
	}
	return &linerReader{state: state}
}

func (lr *linerReader) ReadLine(promptText, preload string) (string, error) {
	line, err := lr.state.PromptWithSuggestion(promptText, preload, -1)
	switch {
	case errors.Is(err, liner.ErrPromptAborted):
		return "", ErrInterrupted
	case errors.Is(err, io.EOF):
		return "", nil
	case err != nil:
		return "", err
	}
	return line + "\n", nil
}

func (lr *linerReader) AppendHistory(line string) {
	lr.state.AppendHistory(line)
}

func (lr *linerReader) Close() error {
	return lr.state.Close()
}

// wordCompleter は補完候補をlinerの形式に変換する
// 候補の表示はlinerに任せる
func wordCompleter(c *completer.Completer) liner.WordCompleter {
	return func(line string, pos int) (string, []string, string) {
		// linerのposはルーン単位
		pos = len(string([]rune(line)[:pos]))
		candidates, prefix, ok := c.Candidates(line, pos)
		if !ok || len(candidates) == 0 {
			return line[:pos], nil, line[pos:]
		}
		names := make([]string, 0, len(candidates))
		for _, candidate := range candidates {
			names = append(names, candidate.Name)
		}
		return line[:pos-len(prefix)], names, line[pos:]
	}
}
