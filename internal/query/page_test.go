package query

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		no, size int
		wantNo   int
		wantSize int
	}{
		{-5, 0, 0, 1},
		{2, 10, 2, 10},
		{-1, 0, 0, 1},
		{0, 1, 0, 1},
		{3, -7, 3, 1},
		{-2, 500, 0, 500},
	}
	for _, tc := range cases {
		got := Normalize(tc.no, tc.size)
		if got.Number != tc.wantNo || got.Size != tc.wantSize {
			t.Fatalf("Normalize(%d, %d) = %+v, want (%d, %d)", tc.no, tc.size, got, tc.wantNo, tc.wantSize)
		}
	}
}

func TestNormalizeIdentityWithinBounds(t *testing.T) {
	for no := 0; no < 5; no++ {
		for size := 1; size < 5; size++ {
			got := Normalize(no, size)
			if got.Number != no || got.Size != size {
				t.Fatalf("Normalize(%d, %d) changed valid input to %+v", no, size, got)
			}
		}
	}
}

func TestPageRequestOffset(t *testing.T) {
	if off := (PageRequest{Number: 3, Size: 20}).Offset(); off != 60 {
		t.Fatalf("offset = %d, want 60", off)
	}
}

func TestNewPageTotals(t *testing.T) {
	p := NewPage([]string{"a", "b"}, PageRequest{Number: 1, Size: 2}, 5)
	if p.TotalPages != 3 {
		t.Fatalf("total pages = %d, want 3", p.TotalPages)
	}
	if p.PageNumber != 1 || p.PageSize != 2 || p.TotalElements != 5 {
		t.Fatalf("unexpected metadata %+v", p)
	}

	empty := NewPage[string](nil, PageRequest{Number: 0, Size: 10}, 0)
	if empty.Content == nil || len(empty.Content) != 0 || empty.TotalPages != 0 {
		t.Fatalf("empty page should have non-nil empty content and 0 pages: %+v", empty)
	}
}

func TestMapPageKeepsMetadata(t *testing.T) {
	p := NewPage([]int{1, 2}, PageRequest{Number: 0, Size: 2}, 4)
	m := MapPage(p, func(i int) int { return i * 10 })
	if m.Content[1] != 20 || m.TotalElements != 4 || m.TotalPages != 2 {
		t.Fatalf("unexpected mapped page %+v", m)
	}
}
