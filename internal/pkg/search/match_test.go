package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name string
		item string
		term string
		want bool
	}{
		{name: "empty term matches everything", item: "Organic Milk", term: "", want: true},
		{name: "exact substring", item: "Organic Milk", term: "Milk", want: true},
		{name: "case insensitive", item: "Organic Milk", term: "miLK", want: true},
		{name: "partial word", item: "Organic Milk", term: "gan", want: true},
		{name: "no match", item: "Organic Milk", term: "bread", want: false},
		{name: "term longer than name", item: "Milk", term: "Milkshake", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.item, tt.term); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.item, tt.term, got, tt.want)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	names := []string{"Whole Milk", "Skim Milk", "Sourdough Bread", "Milk Chocolate", "Butter"}
	ident := func(s string) string { return s }

	t.Run("filters by term preserving order", func(t *testing.T) {
		got := Filter(names, "milk", 0, ident)
		want := []string{"Whole Milk", "Skim Milk", "Milk Chocolate"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Filter mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("truncates at limit", func(t *testing.T) {
		got := Filter(names, "milk", 2, ident)
		want := []string{"Whole Milk", "Skim Milk"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Filter mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty term with limit still truncates", func(t *testing.T) {
		got := Filter(names, "", 3, ident)
		if len(got) != 3 {
			t.Errorf("len = %d, want 3", len(got))
		}
	})
}
