package sexptree

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDocumentDump(t *testing.T) {
	doc, err := Parse([]byte("(a b (c))"))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	want := strings.Join([]string{
		"Root",
		"  Group [0:9]",
		"    Word [1:2] a",
		"    Word [3:4] b",
		"    Group [5:8]",
		"      Word [6:7] c",
		"",
	}, "\n")
	if got := doc.Dump(); got != want {
		t.Errorf("Dump mismatch:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestDocumentDumpUnclosed(t *testing.T) {
	doc, err := Parse([]byte("(a"), WithUnclosedPolicy(UnclosedLeave))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if !strings.Contains(doc.Dump(), "Group [0:-]") {
		t.Errorf("Expected open group marker, got:\n%s", doc.Dump())
	}
}

func TestDocumentFormat(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"a", "a"},
		{"  ( a\n\tb   ( c ) )  ", "(a b (c))"},
		{"(x)(y) z", "(x)\n(y)\nz"},
		{"(()())", "(() ())"},
	}

	for _, tt := range tests {
		doc, err := Parse([]byte(tt.input))
		if err != nil {
			t.Fatalf("Failed to parse %q: %v", tt.input, err)
		}
		if got := doc.Format(); got != tt.want {
			t.Errorf("Format(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDocumentMarshalJSON(t *testing.T) {
	doc, err := Parse([]byte("(a (b))"))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var root struct {
		Kind     string `json:"kind"`
		End      *int   `json:"end"`
		Children []struct {
			Kind     string `json:"kind"`
			Start    int    `json:"start"`
			End      *int   `json:"end"`
			Children []struct {
				Kind string `json:"kind"`
				Text string `json:"text"`
			} `json:"children"`
		} `json:"children"`
	}
	if err := json.Unmarshal(data, &root); err != nil {
		t.Fatalf("Failed to unmarshal %s: %v", data, err)
	}

	if root.Kind != "Root" || root.End != nil {
		t.Errorf("Expected Root without end, got %s %v", root.Kind, root.End)
	}
	if len(root.Children) != 1 {
		t.Fatalf("Expected 1 child, got %d", len(root.Children))
	}
	group := root.Children[0]
	if group.Kind != "Group" || group.End == nil || *group.End != 7 {
		t.Errorf("Expected closed group ending at 7, got %+v", group)
	}
	if len(group.Children) != 2 || group.Children[0].Text != "a" || group.Children[1].Kind != "Group" {
		t.Errorf("Unexpected group children: %+v", group.Children)
	}
}
