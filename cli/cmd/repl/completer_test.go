package repl

import (
	"slices"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/ardnew/cio/tmpl"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		cursor int
		word   string
		start  int
		end    int
	}{
		{"empty", "", 0, "", 0, 0},
		{"single word", "name", 4, "name", 0, 4},
		{"cursor mid-word", "name", 2, "name", 0, 4},
		{"after space", "a b", 2, "b", 2, 3},
		{"inside braces", "{name}", 3, "name", 1, 5},
		{"after dot", "xs.su", 5, "su", 3, 5},
		{"cursor on boundary", "a ", 2, "", 2, 2},
		{"after colon", ":na", 3, "na", 1, 3},
		{"spec separator", "{pi:.2}", 3, "pi", 1, 3},
		{"cursor past end", "ab", 9, "ab", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.word || start != tt.start || end != tt.end {
				t.Errorf("wordBounds(%q, %d) = %q, %d, %d; want %q, %d, %d",
					tt.input, tt.cursor,
					word, start, end,
					tt.word, tt.start, tt.end)
			}
		})
	}
}

func TestAfterDot(t *testing.T) {
	if !afterDot("xs.su", 3) {
		t.Error("expected afterDot for member access")
	}

	if afterDot("name", 0) {
		t.Error("unexpected afterDot at line start")
	}

	if afterDot("a b", 2) {
		t.Error("unexpected afterDot after space")
	}
}

func testModel(input string, cursor int) model {
	ti := textinput.New()
	ti.SetValue(input)
	ti.SetCursor(cursor)

	env := tmpl.NewEnvironment().
		Bind("name", "Ada").
		Bind("nums", []int{1, 2, 3})

	return model{input: ti, env: env}
}

func matchStrings(t *testing.T, m model) []string {
	t.Helper()

	matches, _, _, _ := m.computeMatches()

	out := make([]string, len(matches))
	for i, match := range matches {
		out[i] = match.Str
	}

	return out
}

func TestComputeMatches_BoundNames(t *testing.T) {
	got := matchStrings(t, testModel("{na", 3))

	if !slices.Contains(got, "name") {
		t.Errorf("expected binding candidate, got %v", got)
	}
}

func TestComputeMatches_MethodsAfterDot(t *testing.T) {
	got := matchStrings(t, testModel("{nums.su", 8))

	if !slices.Contains(got, "sum") {
		t.Errorf("expected method candidate, got %v", got)
	}

	if slices.Contains(got, "name") {
		t.Errorf("bindings must not complete after a dot: %v", got)
	}
}

func TestComputeMatches_BrowseAllMethodsAfterDot(t *testing.T) {
	got := matchStrings(t, testModel("{nums.", 6))

	want := tmpl.Builtins()
	if len(got) != len(want) {
		t.Fatalf("expected all %d methods, got %d: %v",
			len(want), len(got), got)
	}
}

func TestComputeMatches_Commands(t *testing.T) {
	got := matchStrings(t, testModel(":na", 3))

	if !slices.Contains(got, "names") {
		t.Errorf("expected command candidate, got %v", got)
	}

	if slices.Contains(got, "name") {
		t.Errorf("bindings must not complete in command position: %v", got)
	}
}

func TestComputeMatches_EmptyTopLevelShowsNothing(t *testing.T) {
	if got := matchStrings(t, testModel("", 0)); len(got) != 0 {
		t.Errorf("expected no matches on empty input, got %v", got)
	}

	if got := matchStrings(t, testModel("name ", 5)); len(got) != 0 {
		t.Errorf("expected no matches on boundary, got %v", got)
	}
}

func TestRenderCandidateBar_Ellipsizes(t *testing.T) {
	m := testModel("{n", 2)

	matches, _, _, _ := m.computeMatches()
	if len(matches) == 0 {
		t.Fatal("expected matches to render")
	}

	bar := renderCandidateBar(matches, -1, false, 20)
	if bar == "" {
		t.Error("expected non-empty candidate bar")
	}

	if renderCandidateBar(matches, -1, false, 0) != "" {
		t.Error("zero width must render nothing")
	}
}
