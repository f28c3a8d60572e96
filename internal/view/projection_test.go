package view

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/cinemood/internal/catalog"
)

// rawResults builds n ranked results with ids 1..n in rank order.
func rawResults(n int) []catalog.RankedResult {
	results := make([]catalog.RankedResult, n)
	for i := range results {
		results[i] = catalog.RankedResult{
			Rank:    i + 1,
			MovieID: int64(i + 1),
			Title:   fmt.Sprintf("Movie %d", i+1),
			Rating:  "4.0",
		}
	}
	return results
}

// TestProject_WindowWalk drives the show-more affordance across a 45-item
// result set with the default page size: 20 → 40 → 45, with CanShowMore
// dropping exactly when everything is visible.
func TestProject_WindowWalk(t *testing.T) {
	t.Parallel()
	raw := rawResults(45)

	window := DefaultPageSize
	p := Project(raw, nil, false, window)
	if len(p.Visible) != 20 || p.Total != 45 || !p.CanShowMore {
		t.Fatalf("first page: len=%d total=%d more=%v, want 20/45/true", len(p.Visible), p.Total, p.CanShowMore)
	}

	window = NextWindow(window, DefaultPageSize)
	p = Project(raw, nil, false, window)
	if len(p.Visible) != 40 || !p.CanShowMore {
		t.Fatalf("second page: len=%d more=%v, want 40/true", len(p.Visible), p.CanShowMore)
	}

	window = NextWindow(window, DefaultPageSize)
	p = Project(raw, nil, false, window)
	if len(p.Visible) != 45 || p.CanShowMore {
		t.Fatalf("third page: len=%d more=%v, want 45/false", len(p.Visible), p.CanShowMore)
	}
}

func TestProject_HideWatched(t *testing.T) {
	t.Parallel()
	raw := rawResults(45)
	watched := make(map[int64]bool)
	for id := int64(1); id <= 10; id++ {
		watched[id] = true
	}

	p := Project(raw, watched, true, 100)
	if p.Total != 35 {
		t.Errorf("Total = %d, want 35", p.Total)
	}
	for _, r := range p.Visible {
		if watched[r.MovieID] {
			t.Errorf("watched movie %d visible with hide enabled", r.MovieID)
		}
	}

	// Toggle off: same raw set, full total.
	p = Project(raw, watched, false, 100)
	if p.Total != 45 {
		t.Errorf("Total with hide off = %d, want 45", p.Total)
	}
}

func TestProject_PreservesRankOrder(t *testing.T) {
	t.Parallel()
	raw := rawResults(30)
	watched := map[int64]bool{3: true, 7: true}

	p := Project(raw, watched, true, 10)
	for i := 1; i < len(p.Visible); i++ {
		if p.Visible[i].Rank <= p.Visible[i-1].Rank {
			t.Fatalf("rank order broken at index %d: %d after %d", i, p.Visible[i].Rank, p.Visible[i-1].Rank)
		}
	}
}

func TestProject_Edges(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		raw         int
		window      int
		wantVisible int
		wantMore    bool
	}{
		{"empty raw", 0, 20, 0, false},
		{"window equals total", 20, 20, 20, false},
		{"window beyond total", 10, 20, 10, false},
		{"zero window", 10, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := Project(rawResults(tt.raw), nil, false, tt.window)
			if len(p.Visible) != tt.wantVisible || p.CanShowMore != tt.wantMore {
				t.Errorf("Project = len %d, more %v; want %d, %v",
					len(p.Visible), p.CanShowMore, tt.wantVisible, tt.wantMore)
			}
		})
	}
}

func TestProject_NoFilterReturnsSameBacking(t *testing.T) {
	t.Parallel()
	raw := rawResults(5)
	p := Project(raw, map[int64]bool{1: true}, false, 10)
	if diff := cmp.Diff(raw, p.Visible); diff != "" {
		t.Errorf("Visible mismatch (-want +got):\n%s", diff)
	}
}

func TestNextWindow(t *testing.T) {
	t.Parallel()
	tests := []struct {
		window, step, want int
	}{
		{20, 20, 40},
		{40, 20, 60},
		{20, 0, 40}, // zero step falls back to the default page size
	}
	for _, tt := range tests {
		if got := NextWindow(tt.window, tt.step); got != tt.want {
			t.Errorf("NextWindow(%d, %d) = %d, want %d", tt.window, tt.step, got, tt.want)
		}
	}
}
