package catalog

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// MovieRef is the minimal identity+label record used everywhere a movie is
// referenced — a result row or a list entry.
type MovieRef struct {
	MovieID int64  `json:"movieId"`
	Title   string `json:"title"`
}

// Genre is an opaque genre tag as returned by the backend. It is used
// verbatim both for display and as a query parameter.
type Genre string

// Rating is an average rating as reported by the backend. The wire value may
// be a JSON number or a string; either way it is display-only, so it is kept
// as text and never recomputed client-side.
type Rating string

// UnmarshalJSON accepts both a JSON number and a JSON string.
func (r *Rating) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*r = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("rating: %w", err)
		}
		*r = Rating(str)
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("rating: not a number or string: %q", s)
	}
	*r = Rating(s)
	return nil
}

// RankedResult is a movie returned by a search or genre query. Rank is the
// result's position in the backend ordering and is preserved as-is for
// keying and display.
type RankedResult struct {
	Rank    int    `json:"rank"`
	MovieID int64  `json:"movieId"`
	Title   string `json:"title"`
	Rating  Rating `json:"rating"`
}

// Ref returns the identity+label portion of the result.
func (r RankedResult) Ref() MovieRef {
	return MovieRef{MovieID: r.MovieID, Title: r.Title}
}

// Feedback is a transient draft submitted through the feedback endpoint.
// It is never persisted locally.
type Feedback struct {
	Message string  `json:"message"`
	Email   *string `json:"email"`
}
