package repl

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kakkky/starsole/errs"
	"github.com/kakkky/starsole/log"
)

// history はセッションをまたいで入力履歴を保持する
type history struct {
	path  string
	size  int
	lines []string
}

// loadHistory は履歴ファイルを読み込む
// pathが空なら保存しない履歴を返す
func loadHistory(path string, size int) (*history, error) {
	h := &history{path: path, size: size}
	if path == "" {
		return h, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return h, nil
	}
	if err != nil {
		return nil, errs.NewInternalError("failed to open history file").Wrap(err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		h.lines = append(h.lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errs.NewInternalError("failed to read history file").Wrap(err)
	}
	h.trim()
	log.Debug("history loaded:", len(h.lines), "entries")
	return h, nil
}

func (h *history) add(line string) {
	h.lines = append(h.lines, line)
	h.trim()
}

func (h *history) entries() []string {
	return slices.Clone(h.lines)
}

// save は古いものから切り詰めた履歴をファイルに書き出す
func (h *history) save() error {
	if h.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return errs.NewInternalError("failed to create history directory").Wrap(err)
	}
	var sb strings.Builder
	for _, line := range h.lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if err := os.WriteFile(h.path, []byte(sb.String()), 0o600); err != nil {
		return errs.NewInternalError("failed to write history file").Wrap(err)
	}
	return nil
}

func (h *history) trim() {
	if h.size > 0 && len(h.lines) > h.size {
		h.lines = h.lines[len(h.lines)-h.size:]
	}
}
