package highlight

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("empty name uses default", func(t *testing.T) {
		t.Parallel()

		hl, err := New("")
		if err != nil {
			t.Fatalf("New(\"\") error: %v", err)
		}
		if hl == nil {
			t.Fatal("New(\"\") = nil")
		}
	})

	t.Run("known style", func(t *testing.T) {
		t.Parallel()

		if _, err := New("dracula"); err != nil {
			t.Errorf("New(dracula) error: %v", err)
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()

		_, err := New("not-a-style")
		if !errors.Is(err, ErrUnknownStyle) {
			t.Errorf("err = %v, want ErrUnknownStyle", err)
		}
	})
}

func TestHighlighterHTML(t *testing.T) {
	t.Parallel()

	hl, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	t.Run("go code", func(t *testing.T) {
		t.Parallel()

		out, err := hl.HTML(`fmt.Println("hi")`, "go", nil)
		if err != nil {
			t.Fatalf("HTML: %v", err)
		}
		if !strings.Contains(out, "chroma") {
			t.Error("missing chroma class markup")
		}
		if !strings.Contains(out, "Println") {
			t.Error("missing code content")
		}
	})

	t.Run("unknown language falls back to plain", func(t *testing.T) {
		t.Parallel()

		out, err := hl.HTML("some text", "nolang", nil)
		if err != nil {
			t.Fatalf("HTML: %v", err)
		}
		if !strings.Contains(out, "some text") {
			t.Error("missing code content")
		}
	})

	t.Run("highlighted lines marked", func(t *testing.T) {
		t.Parallel()

		out, err := hl.HTML("a\nb\nc", "", []int{2})
		if err != nil {
			t.Fatalf("HTML: %v", err)
		}
		// chroma marks emphasized lines with the hl class.
		if !strings.Contains(out, "hl") {
			t.Errorf("missing highlight marker:\n%s", out)
		}
	})
}

func TestHighlighterCSS(t *testing.T) {
	t.Parallel()

	hl, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	css, err := hl.CSS()
	if err != nil {
		t.Fatalf("CSS: %v", err)
	}
	if !strings.Contains(css, ".chroma") {
		t.Error("missing .chroma selectors")
	}
}

func TestToRanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []int
		want  [][2]int
	}{
		{name: "empty", lines: nil, want: nil},
		{name: "single line", lines: []int{3}, want: [][2]int{{3, 3}}},
		{name: "adjacent merged", lines: []int{1, 2, 3}, want: [][2]int{{1, 3}}},
		{name: "gap splits", lines: []int{1, 3, 4}, want: [][2]int{{1, 1}, {3, 4}}},
		{name: "unsorted input", lines: []int{4, 1, 3}, want: [][2]int{{1, 1}, {3, 4}}},
		{name: "duplicates collapse", lines: []int{2, 2, 3}, want: [][2]int{{2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := toRanges(tt.lines); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("toRanges(%v) = %v, want %v", tt.lines, got, tt.want)
			}
		})
	}
}
