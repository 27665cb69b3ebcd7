package repl

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kakkky/starsole/completer"
	"github.com/kakkky/starsole/executor"
	"github.com/kakkky/starsole/registry"
)

func TestWordCompleter(t *testing.T) {
	e, err := executor.NewExecutor(registry.NewRegistry(), executor.Options{Output: io.Discard})
	if err != nil {
		t.Fatalf("failed to create Executor: %v", err)
	}
	defer e.Close()
	sut := wordCompleter(completer.NewCompleter(e, io.Discard))

	tests := []struct {
		name          string
		line          string
		pos           int
		expectedHead  string
		expectedNames []string
		expectedTail  string
	}{
		{
			name:          "keyword",
			line:          "impo",
			pos:           4,
			expectedHead:  "",
			expectedNames: []string{"import"},
			expectedTail:  "",
		},
		{
			name:          "position counted in runes",
			line:          "s = 'é'; imp",
			pos:           12,
			expectedHead:  "s = 'é'; ",
			expectedNames: []string{"import"},
			expectedTail:  "",
		},
		{
			name:          "nothing to complete",
			line:          "1 + ",
			pos:           4,
			expectedHead:  "1 + ",
			expectedNames: nil,
			expectedTail:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			head, names, tail := sut(tt.line, tt.pos)
			if diff := cmp.Diff(tt.expectedHead, head); diff != "" {
				t.Errorf("head mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.expectedNames, names); diff != "" {
				t.Errorf("names mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.expectedTail, tail); diff != "" {
				t.Errorf("tail mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
