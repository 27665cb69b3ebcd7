package completer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name       string
		candidates []Candidate
		prefix     string
		width      int
		expected   renderAction
	}{
		{
			name:     "no candidates",
			expected: renderAction{kind: actionEmpty},
		},
		{
			name:       "single candidate inserts the rest",
			candidates: []Candidate{{Name: "import"}},
			prefix:     "imp",
			expected:   renderAction{kind: actionSingleInsert, insert: "ort"},
		},
		{
			name:       "single candidate equal to prefix inserts nothing",
			candidates: []Candidate{{Name: "import"}},
			prefix:     "import",
			expected:   renderAction{kind: actionSingleInsert, insert: ""},
		},
		{
			name:       "common prefix longer than typed prefix",
			candidates: []Candidate{{Name: "value_a"}, {Name: "value_b"}},
			prefix:     "va",
			expected:   renderAction{kind: actionCommonPrefixInsert, insert: "lue_"},
		},
		{
			name:       "first candidate ends inside the common prefix",
			candidates: []Candidate{{Name: "split"}, {Name: "splitlines("}},
			prefix:     "sp",
			expected:   renderAction{kind: actionCommonPrefixInsert, insert: "lit"},
		},
		{
			name:       "no extension possible lists every candidate",
			candidates: []Candidate{{Name: "getcwd(", Callable: true}, {Name: "sep"}},
			width:      80,
			expected:   renderAction{kind: actionListing, listing: "\ngetcwd(  sep      \n"},
		},
		{
			name:       "listing wraps at the terminal width",
			candidates: []Candidate{{Name: "aa"}, {Name: "ab"}, {Name: "ac"}},
			prefix:     "a",
			width:      8,
			expected:   renderAction{kind: actionListing, listing: "\naa  ab  \nac  \n"},
		},
		{
			name:       "full last row has no extra newline",
			candidates: []Candidate{{Name: "aa"}, {Name: "ab"}},
			prefix:     "a",
			width:      8,
			expected:   renderAction{kind: actionListing, listing: "\naa  ab  \n"},
		},
		{
			name:       "narrow terminal still shows one column",
			candidates: []Candidate{{Name: "aa"}, {Name: "ab"}},
			prefix:     "a",
			width:      0,
			expected:   renderAction{kind: actionListing, listing: "\naa  \nab  \n"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(tt.candidates, tt.prefix, tt.width)
			if diff := cmp.Diff(tt.expected, got, cmp.AllowUnexported(renderAction{})); diff != "" {
				t.Errorf("render() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name                string
		action              renderAction
		expectedInserted    []string
		expectedRepositions int
		expectedOutput      string
	}{
		{
			name:   "empty",
			action: renderAction{kind: actionEmpty},
		},
		{
			name:                "single insert repositions the cursor",
			action:              renderAction{kind: actionSingleInsert, insert: "ort"},
			expectedInserted:    []string{"ort"},
			expectedRepositions: 1,
		},
		{
			name:             "common prefix insert",
			action:           renderAction{kind: actionCommonPrefixInsert, insert: "lue_"},
			expectedInserted: []string{"lue_"},
		},
		{
			name:           "listing goes to the output",
			action:         renderAction{kind: actionListing, listing: "\naa  ab  \n"},
			expectedOutput: "\naa  ab  \n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := &fakeEditor{}
			apply(tt.action, ed)
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
