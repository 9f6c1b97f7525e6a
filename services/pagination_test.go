package services

import (
	"testing"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		total      int64
		page       int
		perPage    int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{0, 1, 20, 1, false, false},
		{1, 1, 20, 1, false, false},
		{20, 1, 20, 1, false, false},
		{21, 1, 20, 2, true, false},
		{21, 2, 20, 2, false, true},
		{100, 2, 10, 10, true, true},
	}

	for _, tc := range cases {
		p := NewPagination(tc.total, tc.page, tc.perPage)
		if p.TotalPages != tc.totalPages {
			t.Errorf("NewPagination(%d, %d, %d).TotalPages = %d, want %d",
				tc.total, tc.page, tc.perPage, p.TotalPages, tc.totalPages)
		}
		if p.HasNext != tc.hasNext || p.HasPrev != tc.hasPrev {
			t.Errorf("NewPagination(%d, %d, %d) nav = next %v prev %v, want next %v prev %v",
				tc.total, tc.page, tc.perPage, p.HasNext, p.HasPrev, tc.hasNext, tc.hasPrev)
		}
	}
}
