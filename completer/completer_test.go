package completer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompleter_Candidates(t *testing.T) {
	tests := []struct {
		name     string
		host     *fakeHost
		buffer   string
		expected []Candidate
		prefix   string
		ok       bool
	}{
		{
			name:   "module attributes with callables marked",
			host:   newTestHost(),
			buffer: "os.",
			expected: []Candidate{
				{Name: "getcwd(", Callable: true},
				{Name: "sep"},
			},
			prefix: "",
			ok:     true,
		},
		{
			name:   "escalates to keywords",
			host:   newTestHost(),
			buffer: "imp",
			expected: []Candidate{
				{Name: "import"},
			},
			prefix: "imp",
			ok:     true,
		},
		{
			name:   "same marked name appears once across scopes",
			host:   newTestHost(),
			buffer: "No",
			expected: []Candidate{
				{Name: "None"},
			},
			prefix: "No",
			ok:     true,
		},
		{
			name:   "marked and unmarked names are distinct",
			host:   newTestHost(),
			buffer: "pri",
			expected: []Candidate{
				{Name: "print"},
				{Name: "print(", Callable: true},
			},
			prefix: "pri",
			ok:     true,
		},
		{
			name:   "root falls back to builtins",
			host:   newTestHost(),
			buffer: "str.s",
			expected: []Candidate{
				{Name: "split(", Callable: true},
			},
			prefix: "s",
			ok:     true,
		},
		{
			name:     "qualified root does not escalate",
			host:     newTestHost(),
			buffer:   "os.no",
			expected: []Candidate{},
			prefix:   "no",
			ok:       true,
		},
		{
			name:   "import lists loaded modules",
			host:   newTestHost(),
			buffer: "import m",
			expected: []Candidate{
				{Name: "math"},
			},
			prefix: "m",
			ok:     true,
		},
		{
			name:   "from lists loaded modules",
			host:   newTestHost(),
			buffer: "from j",
			expected: []Candidate{
				{Name: "json"},
			},
			prefix: "j",
			ok:     true,
		},
		{
			name:   "unresolvable identifier",
			host:   newTestHost(),
			buffer: "nope.x",
			ok:     false,
		},
		{
			name:   "unresolvable attribute",
			host:   newTestHost(),
			buffer: "os.path.",
			ok:     false,
		},
		{
			name:   "cursor at start",
			host:   newTestHost(),
			buffer: "",
			ok:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var diag bytes.Buffer
			c := NewCompleter(tt.host, &diag)
			got, prefix, ok := c.Candidates(tt.buffer, len(tt.buffer))
			if ok != tt.ok {
				t.Fatalf("Candidates() ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Candidates() mismatch (-want +got):\n%s", diff)
			}
			if prefix != tt.prefix {
				t.Errorf("Candidates() prefix = %q, want %q", prefix, tt.prefix)
			}
			if diag.Len() != 0 {
				t.Errorf("unexpected diagnostic output: %q", diag.String())
			}
		})
	}
}

func TestCompleter_Candidates_Cap(t *testing.T) {
	c := NewCompleter(newManyNamesHost(300), &bytes.Buffer{})
	got, _, ok := c.Candidates("v", 1)
	if !ok {
		t.Fatalf("Candidates() ok = false")
	}
	if len(got) != maxCandidates {
		t.Errorf("len(Candidates()) = %d, want %d", len(got), maxCandidates)
	}
	// 上限に達したら組み込みの段には進まない
	for _, cand := range got {
		if cand.Name == "vars(" {
			t.Errorf("builtin candidate collected after reaching the cap")
		}
	}
}

func TestCompleter_Candidates_Unique(t *testing.T) {
	c := NewCompleter(newTestHost(), &bytes.Buffer{})
	for _, buffer := range []string{"p", "N", "v", "s"} {
		got, _, _ := c.Candidates(buffer, len(buffer))
		seen := make(map[string]bool)
		for _, cand := range got {
			if seen[cand.Name] {
				t.Errorf("duplicate candidate %q for %q", cand.Name, buffer)
			}
			seen[cand.Name] = true
		}
	}
}

func TestCompleter_Candidates_InternalError(t *testing.T) {
	var diag bytes.Buffer
	c := NewCompleter(newTestHost(), &diag)
	_, _, ok := c.Candidates("broken.", len("broken."))
	if ok {
		t.Fatalf("Candidates() ok = true, want false")
	}
	if !strings.Contains(diag.String(), "Internal error while tab completing.") {
		t.Errorf("diagnostic output = %q", diag.String())
	}
}

func TestCompleter_Complete(t *testing.T) {
	tests := []struct {
		name                string
		buffer              string
		expectedInserted    []string
		expectedRepositions int
		expectedOutput      string
	}{
		{
			name:                "single candidate inserts remainder",
			buffer:              "imp",
			expectedInserted:    []string{"ort"},
			expectedRepositions: 1,
		},
		{
			name:             "common prefix inserted",
			buffer:           "va",
			expectedInserted: []string{"lue_"},
		},
		{
			name:           "listing when prefix cannot grow",
			buffer:         "os.",
			expectedOutput: "\ngetcwd(  sep      \n",
		},
		{
			name:   "no candidates does nothing",
			buffer: "os.zz",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := &fakeEditor{width: 80}
			c := NewCompleter(newTestHost(), &bytes.Buffer{})
			c.Complete(tt.buffer, len(tt.buffer), ed)

			if diff := cmp.Diff(tt.expectedInserted, ed.inserted); diff != "" {
				t.Errorf("inserted mismatch (-want +got):\n%s", diff)
			}
			if ed.repositions != tt.expectedRepositions {
				t.Errorf("repositions = %d, want %d", ed.repositions, tt.expectedRepositions)
			}
			if got := ed.out.String(); got != tt.expectedOutput {
				t.Errorf("output = %q, want %q", got, tt.expectedOutput)
			}
		})
	}
}
