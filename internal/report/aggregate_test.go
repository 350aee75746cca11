package report

import "testing"

func TestAggregateJoinsInPageOrder(t *testing.T) {
	doc := Aggregate([]string{"page one", "page two", "page three"})

	want := "page one\n\f\npage two\n\f\npage three"
	if doc.Full != want {
		t.Errorf("Full = %q, want %q", doc.Full, want)
	}
	if len(doc.Pages) != 3 {
		t.Errorf("Pages = %d, want 3", len(doc.Pages))
	}
}

func TestAggregateSkipsEmptyPages(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  string
	}{
		{"middle page empty", []string{"a", "", "c"}, "a\n\f\nc"},
		{"whitespace-only page", []string{"a", "  \n\t ", "c"}, "a\n\f\nc"},
		{"leading empty", []string{"", "b"}, "b"},
		{"trailing empty", []string{"a", ""}, "a"},
		{"all empty", []string{"", ""}, ""},
		{"no pages", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Aggregate(tt.pages).Full; got != tt.want {
				t.Errorf("Full = %q, want %q", got, tt.want)
			}
		})
	}
}

// The joined text must depend only on slice position, which is what makes
// out-of-order OCR completion safe upstream.
func TestAggregateOrderIndependentOfCompletion(t *testing.T) {
	pages := make([]string, 5)
	// fill in reverse, as if the last page's OCR finished first
	for i := len(pages) - 1; i >= 0; i-- {
		pages[i] = string(rune('a' + i))
	}
	doc := Aggregate(pages)
	want := "a\n\f\nb\n\f\nc\n\f\nd\n\f\ne"
	if doc.Full != want {
		t.Errorf("Full = %q, want %q", doc.Full, want)
	}
}
