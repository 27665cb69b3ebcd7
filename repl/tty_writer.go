package repl

import (
	"io"
	"strings"
)

// ttyWriter はrawモードの端末でも改行が崩れないよう \n を \r\n にして書き出す
type ttyWriter struct {
	w io.Writer
}

// NewTTYWriter は行エディタが端末をrawモードにしている間に書き出すためのWriterを返す
// 補完中の候補一覧や診断メッセージはこれを通す
func NewTTYWriter(w io.Writer) io.Writer {
	return &ttyWriter{w: w}
}

func (tw *ttyWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(tw.w, normalizeTTYNewlines(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}

func normalizeTTYNewlines(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/8)
	prev := byte(0)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '\n' && prev != '\r' {
			b.WriteString("\r\n")
		} else {
			b.WriteByte(ch)
		}
		prev = ch
	}
	return b.String()
}
