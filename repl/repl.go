package repl

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/kakkky/starsole/completer"
	"github.com/kakkky/starsole/errs"
	"github.com/kakkky/starsole/executor"
	"github.com/kakkky/starsole/log"
	"github.com/kakkky/starsole/types"
)

// 行エディタの種類
const (
	EditorPrompt = "prompt"
	EditorLiner  = "liner"
)

// Control は一回の読み込みと実行の後にREPLを続けるかどうかを表す
type Control int

const (
	Continue Control = iota
	Terminate
)

// Options はREPLの設定
type Options struct {
	Prompt      string
	BlockPrompt string
	// Editor は "prompt" か "liner"。端末がgo-promptに対応していなければlinerを使う
	Editor      string
	HistoryFile string
	HistorySize int
}

type Repl struct {
	reader      lineReader
	history     *history
	prompt      string
	blockPrompt string
	out         io.Writer
	evaluator
}

func NewRepl(completer *completer.Completer, executor *executor.Executor, opts Options) (*Repl, error) {
	h, err := loadHistory(opts.HistoryFile, opts.HistorySize)
	if err != nil {
		return nil, err
	}
	return &Repl{
		reader:      newLineReader(opts.Editor, completer, h.entries()),
		history:     h,
		prompt:      opts.Prompt,
		blockPrompt: opts.BlockPrompt,
		out:         os.Stdout,
		evaluator:   executor,
	}, nil
}

func newLineReader(editor string, c *completer.Completer, initialHistory []string) lineReader {
	if editor != EditorLiner && isatty.IsTerminal(os.Stdin.Fd()) && liner.TerminalSupported() {
		log.Debug("line editor: go-prompt")
		return newPromptReader(c, initialHistory)
	}
	log.Debug("line editor: liner")
	return newLinerReader(c, initialHistory)
}

// Run は入力の終わりかexit()まで読み込みと実行を繰り返す
func (r *Repl) Run(ctx context.Context) error {
	log.Info("session started")
	for ctx.Err() == nil {
		if r.step(ctx) == Terminate {
			break
		}
	}
	log.Info("session finished")
	return r.Close()
}

// Close は履歴を保存して行エディタを閉じる
func (r *Repl) Close() error {
	var result error
	if err := r.history.save(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := r.reader.Close(); err != nil {
		result = multierror.Append(result, errs.NewInternalError("failed to close line editor").Wrap(err))
	}
	return result
}

// step は一つの文を読み込んで実行する
func (r *Repl) step(ctx context.Context) Control {
	acc := newAccumulator()
	for {
		prompt := r.prompt
		if acc.state == stateInProgress {
			prompt = r.blockPrompt
		}
		line, err := r.reader.ReadLine(prompt, acc.preload())
		if errors.Is(err, ErrInterrupted) {
			r.printInterrupt()
			return Continue
		}
		if err != nil {
			errs.FprintError(r.out, err)
			return Terminate
		}
		state := acc.feed(line)
		if !acc.discarded {
			r.recordHistory(line)
		}

		switch state {
		case stateInProgress:
			continue
		case stateComplete:
			return r.execute(ctx, acc.statement())
		default:
			if acc.eof {
				return Terminate
			}
			return Continue
		}
	}
}

// recordHistory は文として正しいかどうかに関わらず、読み込んだ行を履歴に残す
// 文を閉じるために捨てられた行は残さない
func (r *Repl) recordHistory(line string) {
	entry := strings.TrimSuffix(line, "\n")
	if entry == "" {
		return
	}
	r.history.add(entry)
	r.reader.AppendHistory(entry)
}

// execute は文を実行して結果を表示する
// 実行中のCtrl-Cは実行を中断するだけでREPLは終了しない
func (r *Repl) execute(ctx context.Context, src string) Control {
	execCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	v, err := r.Execute(execCtx, src, types.StdinLabel)
	if err != nil {
		errs.FprintError(r.out, err)
	} else {
		r.printResult(v)
	}
	if r.ExitRequested() {
		return Terminate
	}
	return Continue
}
