package repl

import (
	"io"
	"os"

	"github.com/c-bata/go-prompt"

	"github.com/kakkky/starsole/completer"
)

// promptReader はgo-promptで一行ずつ読み込む
// 端末の設定を一度で済ませるため、一つのPromptを使い回す
type promptReader struct {
	pt        *prompt.Prompt
	parser    prompt.ConsoleParser
	completer *completer.Completer
	out       io.Writer
	prefix    string
	// entered はEnterで入力が確定したことを表す
	entered bool
	// interrupted はCtrl-Cで入力が中断されたことを表す
	interrupted bool
}

func newPromptReader(c *completer.Completer, initialHistory []string) *promptReader {
	pr := &promptReader{
		parser:    prompt.NewStandardInputParser(),
		completer: c,
		out:       NewTTYWriter(os.Stdout),
	}
	pr.pt = prompt.New(
		// 実行はREPLのループが行うので、go-promptには何もさせない
		func(string) {},
		func(prompt.Document) []prompt.Suggest { return nil },
		prompt.OptionTitle("starsole"),
		prompt.OptionParser(pr.parser),
		prompt.OptionHistory(initialHistory),
		prompt.OptionLivePrefix(func() (string, bool) {
			return pr.prefix, true
		}),
		prompt.OptionPrefixTextColor(prompt.Cyan),
		prompt.OptionAddKeyBind(pr.keyBinds()...),
		prompt.OptionSetExitCheckerOnInput(func(string, bool) bool {
			return pr.interrupted
		}),
	)
	return pr
}

func (pr *promptReader) ReadLine(promptText, preload string) (string, error) {
	pr.prefix = promptText
	pr.entered = false
	pr.interrupted = false
	if preload != "" {
		_ = prompt.OptionInitialBufferText(preload)(pr.pt)
	}

	line := pr.pt.Input()
	switch {
	case pr.interrupted:
		return "", ErrInterrupted
	case pr.entered:
		return line + "\n", nil
	default:
		// 空の行でCtrl-Dが押された
		return line, nil
	}
}

// AppendHistory は何もしない。確定した行はgo-promptが自分の履歴に加える
func (pr *promptReader) AppendHistory(string) {}

func (pr *promptReader) Close() error {
	return nil
}

func (pr *promptReader) keyBinds() []prompt.KeyBind {
	markEntered := func(*prompt.Buffer) {
		pr.entered = true
	}
	return []prompt.KeyBind{
		{Key: prompt.Enter, Fn: markEntered},
		{Key: prompt.ControlM, Fn: markEntered},
		{Key: prompt.ControlJ, Fn: markEntered},
		{
			Key: prompt.ControlC,
			Fn: func(*prompt.Buffer) {
				pr.interrupted = true
			},
		},
		{
			Key: prompt.Tab,
			Fn: func(buf *prompt.Buffer) {
				text := buf.Document().TextBeforeCursor()
				pr.completer.Complete(text, len(text), &promptEditor{buf: buf, reader: pr})
			},
		},
	}
}

// promptEditor は補完結果をgo-promptのバッファに反映する
type promptEditor struct {
	buf    *prompt.Buffer
	reader *promptReader
}

func (pe *promptEditor) InsertText(text string) {
	pe.buf.InsertText(text, false, true)
}

// RepositionCursor は何もしない。InsertTextがカーソルを挿入した文字列の後ろに移す
func (pe *promptEditor) RepositionCursor() {}

func (pe *promptEditor) TerminalWidth() int {
	return int(pe.reader.parser.GetWinSize().Col)
}

func (pe *promptEditor) Output() io.Writer {
	return pe.reader.out
}
