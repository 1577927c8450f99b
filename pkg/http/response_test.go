package http

import (
	"testing"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		limit          int
		total          int64
		wantTotalPages int
		wantHasMore    bool
	}{
		{"first of three pages", 1, 10, 25, 3, true},
		{"middle page", 2, 10, 25, 3, true},
		{"last partial page", 3, 10, 25, 3, false},
		{"exact page boundary", 2, 10, 20, 2, false},
		{"single page", 1, 10, 5, 1, false},
		{"empty result", 1, 10, 0, 0, false},
		{"limit one", 3, 1, 4, 4, true},
		{"max limit", 1, 50, 50, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			if p.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantTotalPages)
			}
			if p.HasMore != tt.wantHasMore {
				t.Errorf("HasMore = %v, want %v", p.HasMore, tt.wantHasMore)
			}
			// hasMore must agree with the defining inequality.
			if want := int64(tt.page)*int64(tt.limit) < tt.total; p.HasMore != want {
				t.Errorf("HasMore disagrees with page*limit < total")
			}
		})
	}
}
