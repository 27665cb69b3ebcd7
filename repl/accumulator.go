package repl

import "strings"

// blockIndentWidth はコロンで終わる行の次の行に求めるインデントの増分
const blockIndentWidth = 4

type accumulatorState int

const (
	stateFresh accumulatorState = iota
	stateInProgress
	stateComplete
	stateAborted
)

// accumulator は物理行を集めて一つの文にまとめる
// 文が完結したかどうかは行末のコロンやバックスラッシュ、空行といった字句の手がかりだけで判定する
type accumulator struct {
	lines       []string
	state       accumulatorState
	blockIndent int
	valid       bool
	// eof は入力の終わりに達したことを表す
	eof bool
	// discarded は直前に渡された行が文に含まれず捨てられたことを表す
	discarded bool
}

func newAccumulator() *accumulator {
	return &accumulator{
		state: stateFresh,
		valid: true,
	}
}

// feed は改行を含む一行を受け取り、遷移後の状態を返す
// 規則は上から順に評価する
func (a *accumulator) feed(line string) accumulatorState {
	a.discarded = false
	if !strings.HasSuffix(line, "\n") {
		a.state = stateAborted
		a.valid = false
		a.eof = true
		a.discarded = true
		return a.state
	}

	content := strings.TrimSuffix(line, "\n")
	spaces := countLeadingSpaces(content)
	inBlock := a.state == stateInProgress

	switch {
	case strings.HasSuffix(content, ":"):
		a.lines = append(a.lines, line)
		a.blockIndent = spaces + blockIndentWidth
		a.state = stateInProgress
	case strings.HasSuffix(content, `\`):
		a.lines = append(a.lines, line)
		a.state = stateInProgress
	case inBlock && content != "":
		if spaces == len(content) {
			// ブロック内の空白だけの行は捨てて文を閉じる
			a.state = stateComplete
			a.discarded = true
			return a.state
		}
		a.lines = append(a.lines, line)
		a.blockIndent = spaces
	case spaces < len(content) && content[spaces] == '@':
		a.lines = append(a.lines, line)
		a.blockIndent = spaces
		a.state = stateInProgress
	case inBlock:
		// ブロック内の空行も捨てる
		a.state = stateComplete
		a.discarded = true
	case spaces == len(content):
		a.state = stateAborted
		a.valid = false
	default:
		a.lines = append(a.lines, line)
		a.state = stateComplete
	}
	return a.state
}

// preload は次の行にあらかじめ入力しておくインデントを返す
func (a *accumulator) preload() string {
	if a.state != stateInProgress {
		return ""
	}
	return strings.Repeat(" ", a.blockIndent)
}

// statement は集めた行をそのまま連結する
func (a *accumulator) statement() string {
	return strings.Join(a.lines, "")
}

func countLeadingSpaces(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
}
