package mdeck

import "testing"

func TestParseBlocks_ListMarkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		content    string
		wantMarker ListMarker
	}{
		{name: "dash is static", content: "- item", wantMarker: MarkerStatic},
		{name: "plus is next-step", content: "+ item", wantMarker: MarkerNextStep},
		{name: "star is with-prev", content: "* item", wantMarker: MarkerWithPrev},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			list := mustList(t, parseBlocks(tt.content))
			if list.Ordered {
				t.Error("Ordered = true, want false")
			}
			if len(list.Items) != 1 {
				t.Fatalf("got %d items, want 1", len(list.Items))
			}
			if list.Items[0].Marker != tt.wantMarker {
				t.Errorf("Marker = %q, want %q", list.Items[0].Marker, tt.wantMarker)
			}
		})
	}
}

func TestParseBlocks_OrderedList(t *testing.T) {
	t.Parallel()

	list := mustList(t, parseBlocks("1. first\n2. second\n10. tenth"))
	if !list.Ordered {
		t.Error("Ordered = false, want true")
	}
	if len(list.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(list.Items))
	}
	for _, item := range list.Items {
		if item.Marker != MarkerOrdered {
			t.Errorf("Marker = %q, want %q", item.Marker, MarkerOrdered)
		}
	}
	if got := inlineText(list.Items[2].Inlines); got != "tenth" {
		t.Errorf("item 2 text = %q, want %q", got, "tenth")
	}
}

func TestParseBlocks_NestedList(t *testing.T) {
	t.Parallel()

	content := "- parent\n  - child one\n    - grandchild\n  - child two\n- sibling"
	list := mustList(t, parseBlocks(content))
	if len(list.Items) != 2 {
		t.Fatalf("got %d top-level items, want 2", len(list.Items))
	}

	parent := list.Items[0]
	if len(parent.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(parent.Children))
	}
	if got := inlineText(parent.Children[0].Inlines); got != "child one" {
		t.Errorf("child 0 = %q, want %q", got, "child one")
	}
	if len(parent.Children[0].Children) != 1 {
		t.Fatalf("got %d grandchildren, want 1", len(parent.Children[0].Children))
	}
	if got := inlineText(parent.Children[0].Children[0].Inlines); got != "grandchild" {
		t.Errorf("grandchild = %q, want %q", got, "grandchild")
	}
	if got := inlineText(list.Items[1].Inlines); got != "sibling" {
		t.Errorf("item 1 = %q, want %q", got, "sibling")
	}
}

func TestParseBlocks_ListMixedMarkers(t *testing.T) {
	t.Parallel()

	// Reveal markers mix freely inside one list.
	list := mustList(t, parseBlocks("- shown\n+ revealed\n* with previous"))
	wantMarkers := []ListMarker{MarkerStatic, MarkerNextStep, MarkerWithPrev}
	if len(list.Items) != len(wantMarkers) {
		t.Fatalf("got %d items, want %d", len(list.Items), len(wantMarkers))
	}
	for i, item := range list.Items {
		if item.Marker != wantMarkers[i] {
			t.Errorf("item %d Marker = %q, want %q", i, item.Marker, wantMarkers[i])
		}
	}
}

func TestParseBlocks_ListBlankLineHandling(t *testing.T) {
	t.Parallel()

	t.Run("blank before next item continues list", func(t *testing.T) {
		t.Parallel()

		list := mustList(t, parseBlocks("- one\n\n- two"))
		if len(list.Items) != 2 {
			t.Fatalf("got %d items, want 2", len(list.Items))
		}
	})

	t.Run("blank before non-item ends list", func(t *testing.T) {
		t.Parallel()

		blocks := parseBlocks("- one\n\nA paragraph")
		if len(blocks) != 2 {
			t.Fatalf("got %d blocks %+v, want 2", len(blocks), blocks)
		}
		list := mustList(t, blocks[:1])
		if len(list.Items) != 1 {
			t.Errorf("got %d items, want 1", len(list.Items))
		}
		if _, ok := blocks[1].(Paragraph); !ok {
			t.Errorf("block 1 = %T, want Paragraph", blocks[1])
		}
	})
}

func TestIsListStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{line: "- item", want: true},
		{line: "+ item", want: true},
		{line: "* item", want: true},
		{line: "-item", want: false},
		{line: "* * *", want: false}, // horizontal rule
		{line: "", want: false},
		{line: "-", want: false},
	}

	for _, tt := range tests {
		if got := isListStart(tt.line); got != tt.want {
			t.Errorf("isListStart(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestIsOrderedListStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{line: "1. item", want: true},
		{line: "42. item", want: true},
		{line: "1.item", want: false},
		{line: ". item", want: false},
		{line: "1a. item", want: false},
		{line: "item", want: false},
	}

	for _, tt := range tests {
		if got := isOrderedListStart(tt.line); got != tt.want {
			t.Errorf("isOrderedListStart(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

// mustList asserts the first block is a List and returns it.
func mustList(t *testing.T, blocks []Block) List {
	t.Helper()
	if len(blocks) == 0 {
		t.Fatal("no blocks parsed")
	}
	list, ok := blocks[0].(List)
	if !ok {
		t.Fatalf("block = %T, want List", blocks[0])
	}
	return list
}
