package session

import (
	"reflect"
	"testing"

	"fresh-catalog/internal/common/pagination"
)

func baseParams() pagination.Params {
	return pagination.Params{
		OwnerID:   "tenant-1",
		Status:    pagination.StatusFilterAll,
		SortField: pagination.SortByName,
		SortDir:   pagination.SortAsc,
		PageSize:  5,
	}
}

func TestReduce_ParamsChangedResetsToPageZero(t *testing.T) {
	s := NewState(baseParams())
	s.Params.PageIndex = 4
	s.HasMore = true

	changed := baseParams()
	changed.Search = "milk"
	changed.PageIndex = 4 // must be ignored

	next, eff := Reduce(s, ParamsChanged{Params: changed})

	if next.Params.PageIndex != 0 {
		t.Errorf("PageIndex = %d, want 0", next.Params.PageIndex)
	}
	if next.Params.Search != "milk" {
		t.Errorf("Search = %q, want milk", next.Params.Search)
	}
	if next.Generation != s.Generation+1 {
		t.Errorf("Generation = %d, want %d", next.Generation, s.Generation+1)
	}
	if eff == nil {
		t.Fatal("effect = nil, want fetch effect")
	}
	if !eff.ResetLedger || !eff.RefreshTotal {
		t.Errorf("effect = %+v, want ResetLedger and RefreshTotal", eff)
	}
	if eff.Params != next.Params || eff.Generation != next.Generation {
		t.Error("effect snapshot must match the next state")
	}
}

func TestReduce_ParamsChangedSameShapeIsNoOp(t *testing.T) {
	s := NewState(baseParams())
	s.Params.PageIndex = 2

	same := baseParams()
	same.PageIndex = 7 // page index is not part of the shape

	next, eff := Reduce(s, ParamsChanged{Params: same})

	if eff != nil {
		t.Fatalf("effect = %+v, want nil for same-shape change", eff)
	}
	if !reflect.DeepEqual(next, s) {
		t.Errorf("state changed on no-op: %+v", next)
	}
}

func TestReduce_EveryNonPageFieldChangeResetsLedger(t *testing.T) {
	mutations := map[string]func(pagination.Params) pagination.Params{
		"search":    func(p pagination.Params) pagination.Params { p.Search = "milk"; return p },
		"status":    func(p pagination.Params) pagination.Params { p.Status = "expired"; return p },
		"sort":      func(p pagination.Params) pagination.Params { p.SortField = pagination.SortByPrice; return p },
		"direction": func(p pagination.Params) pagination.Params { p.SortDir = pagination.SortDesc; return p },
		"page size": func(p pagination.Params) pagination.Params { p.PageSize = 10; return p },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			s := NewState(baseParams())
			s.Params.PageIndex = 3

			next, eff := Reduce(s, ParamsChanged{Params: mutate(baseParams())})
			if eff == nil || !eff.ResetLedger {
				t.Fatalf("effect = %+v, want ledger reset", eff)
			}
			if next.Params.PageIndex != 0 {
				t.Errorf("PageIndex = %d, want 0", next.Params.PageIndex)
			}
		})
	}
}

func TestReduce_NextPageGatedOnHasMore(t *testing.T) {
	s := NewState(baseParams())

	// Disabled while HasMore is false.
	next, eff := Reduce(s, NextPage{})
	if eff != nil || next.Params.PageIndex != 0 {
		t.Fatalf("NextPage without HasMore: state=%+v eff=%+v, want no-op", next, eff)
	}

	s.HasMore = true
	next, eff = Reduce(s, NextPage{})
	if eff == nil {
		t.Fatal("effect = nil, want fetch effect")
	}
	if next.Params.PageIndex != 1 {
		t.Errorf("PageIndex = %d, want 1", next.Params.PageIndex)
	}
	if eff.ResetLedger {
		t.Error("NextPage must not reset the ledger")
	}
}

func TestReduce_PrevPageGatedOnPageIndex(t *testing.T) {
	s := NewState(baseParams())

	next, eff := Reduce(s, PrevPage{})
	if eff != nil || next.Params.PageIndex != 0 {
		t.Fatalf("PrevPage at page 0: state=%+v eff=%+v, want no-op", next, eff)
	}

	s.Params.PageIndex = 2
	next, eff = Reduce(s, PrevPage{})
	if eff == nil {
		t.Fatal("effect = nil, want fetch effect")
	}
	if next.Params.PageIndex != 1 {
		t.Errorf("PageIndex = %d, want 1", next.Params.PageIndex)
	}
}

func TestReduce_RefreshResetsLedgerAndPage(t *testing.T) {
	s := NewState(baseParams())
	s.Params.PageIndex = 3
	s.HasMore = true

	next, eff := Reduce(s, Refresh{})
	if eff == nil || !eff.ResetLedger || !eff.RefreshTotal {
		t.Fatalf("effect = %+v, want ledger reset and re-count", eff)
	}
	if next.Params.PageIndex != 0 {
		t.Errorf("PageIndex = %d, want 0", next.Params.PageIndex)
	}
}
