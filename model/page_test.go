package model

import "testing"

func TestPagesFor(t *testing.T) {
	cases := []struct {
		totalItems, pageSize, want int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{4, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{11, 5, 3},
		{25, 5, 5},
		{3, 0, 0},
	}
	for _, tc := range cases {
		if got := PagesFor(tc.totalItems, tc.pageSize); got != tc.want {
			t.Fatalf("PagesFor(%d, %d) = %d; want %d", tc.totalItems, tc.pageSize, got, tc.want)
		}
	}
}

func TestPageWindowDisplayRange(t *testing.T) {
	cases := []struct {
		name        string
		w           PageWindow
		first, last int
	}{
		{"empty listing", PageWindow{PageIndex: 1, PageSize: 5, TotalItems: 0, TotalPages: 0}, 0, 0},
		{"single short page", PageWindow{PageIndex: 1, PageSize: 5, TotalItems: 4, TotalPages: 1}, 1, 4},
		{"full first page", PageWindow{PageIndex: 1, PageSize: 5, TotalItems: 12, TotalPages: 3}, 1, 5},
		{"middle page", PageWindow{PageIndex: 2, PageSize: 5, TotalItems: 12, TotalPages: 3}, 6, 10},
		{"short last page", PageWindow{PageIndex: 3, PageSize: 5, TotalItems: 12, TotalPages: 3}, 11, 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.w.FirstItemIndex(); got != tc.first {
				t.Fatalf("FirstItemIndex = %d; want %d", got, tc.first)
			}
			if got := tc.w.LastItemIndex(); got != tc.last {
				t.Fatalf("LastItemIndex = %d; want %d", got, tc.last)
			}
			if tc.w.TotalItems > 0 {
				if tc.w.FirstItemIndex() < 1 || tc.w.LastItemIndex() > tc.w.TotalItems {
					t.Fatal("display range escaped [1, totalItems]")
				}
			}
			if got := PagesFor(tc.w.TotalItems, tc.w.PageSize); got != tc.w.TotalPages {
				t.Fatalf("totalPages invariant broken: ceil(%d/%d) = %d; window says %d",
					tc.w.TotalItems, tc.w.PageSize, got, tc.w.TotalPages)
			}
		})
	}
}
