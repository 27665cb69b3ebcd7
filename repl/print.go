package repl

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/kakkky/starsole/types"
)

// noRepresentation は値をreprでもstrでも文字列にできなかったときに表示する
const noRepresentation = "Unable to produce representation for value."

var (
	resultStyle    = lipgloss.NewStyle().Faint(true)
	interruptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	bannerStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 2)
	bannerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
)

// printResult は実行結果を表示する。値がなければ何も表示しない
func (r *Repl) printResult(v types.Value) {
	if v == nil {
		return
	}
	fmt.Fprintln(r.out, resultStyle.Render(" => "+r.represent(v)))
}

// represent はrepr、str の順に値を文字列にする
func (r *Repl) represent(v types.Value) string {
	if s, err := r.Repr(v); err == nil {
		return s
	}
	if s, err := r.Str(v); err == nil {
		return s
	}
	return noRepresentation
}

func (r *Repl) printInterrupt() {
	fmt.Fprintln(r.out, interruptStyle.Render("KeyboardInterrupt"))
}

// PrintBanner は起動時の案内を表示する
func PrintBanner(w io.Writer, version string) {
	title := bannerTitleStyle.Render("starsole " + version)
	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		"Tab      complete names",
		"Ctrl-C   cancel the current statement",
		"Ctrl-D   quit (or call exit())",
	)
	fmt.Fprintln(w, bannerStyle.Render(body))
}
