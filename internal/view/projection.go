// Package view derives the visible result window from a raw ranked result
// set and the current list membership. Everything here is a pure function of
// its inputs; it is recomputed on every render rather than cached.
package view

import "github.com/papapumpkin/cinemood/internal/catalog"

// DefaultPageSize is the visible-window increment when none is configured.
const DefaultPageSize = 20

// Projection is the derived, render-ready view of one query's results.
type Projection struct {
	// Visible is the filtered result set truncated to the current window.
	Visible []catalog.RankedResult
	// Total is the size of the filtered-but-untruncated set.
	Total int
	// CanShowMore reports whether growing the window would reveal more rows.
	// It goes false exactly when the window covers Total.
	CanShowMore bool
}

// Project filters raw through the hide-watched toggle and truncates to the
// window cursor. Backend rank order is preserved; no re-sorting happens
// client-side.
func Project(raw []catalog.RankedResult, watched map[int64]bool, hideWatched bool, window int) Projection {
	filtered := raw
	if hideWatched && len(watched) > 0 {
		filtered = make([]catalog.RankedResult, 0, len(raw))
		for _, r := range raw {
			if watched[r.MovieID] {
				continue
			}
			filtered = append(filtered, r)
		}
	}

	total := len(filtered)
	visible := filtered
	if window >= 0 && window < total {
		visible = filtered[:window]
	}

	return Projection{
		Visible:     visible,
		Total:       total,
		CanShowMore: window < total,
	}
}

// NextWindow grows the window cursor by step. The cursor is reset to one
// step on every new query by the caller; growth is monotonic within a
// query's lifetime.
func NextWindow(window, step int) int {
	if step <= 0 {
		step = DefaultPageSize
	}
	return window + step
}
