// Package catalog is the typed gateway to the movie recommendation backend.
// It wraps the three read endpoints and the one write endpoint, normalizing
// failures per operation: the genre menu degrades silently, queries surface
// their HTTP status, and feedback submission follows a named ack policy.
package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// AckPolicy controls how SubmitFeedback reports transport and server
// failures to the caller.
type AckPolicy int

const (
	// AckOptimistic converts any transport or HTTP failure into a success
	// acknowledgment. This preserves the original product behavior: the
	// user always sees "thanks", even when the backend was unreachable.
	AckOptimistic AckPolicy = iota
	// AckStrict surfaces transport and HTTP failures to the caller.
	AckStrict
)

// ParseAckPolicy maps a config string to an AckPolicy, defaulting to
// AckOptimistic for unknown values.
func ParseAckPolicy(s string) AckPolicy {
	if strings.EqualFold(strings.TrimSpace(s), "strict") {
		return AckStrict
	}
	return AckOptimistic
}

// DefaultBaseURL is used when no base address is configured.
const DefaultBaseURL = "http://127.0.0.1:8000"

// Request caps. The backend truncates server-side as well; these bound what
// the client ever asks for.
const (
	DefaultSearchLimit = 100
	DefaultGenreLimit  = 50
)

// ErrEmptyMessage is returned by SubmitFeedback when the message is blank
// after trimming. No network call is made in that case.
var ErrEmptyMessage = errors.New("feedback message is empty")

// StatusError reports a non-2xx response from a query endpoint.
type StatusError struct {
	Op     string // "search" or "browse"
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: backend returned HTTP %d", e.Op, e.Status)
}

// RejectedError reports a server-side validation rejection of a feedback
// submission ({ok:false} with a reason). It is surfaced under every ack
// policy — the backend accepted the request and explicitly said no.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("feedback rejected: %s", e.Reason)
}

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	Timeout     time.Duration // per-request timeout; 0 means 10s
	Ack         AckPolicy
	SearchLimit int
	GenreLimit  int
}

// Client talks to the recommendation backend. It is stateless and safe for
// concurrent use.
type Client struct {
	base        string
	http        *http.Client
	ack         AckPolicy
	searchLimit int
	genreLimit  int
}

// New creates a Client for the given base URL. A trailing slash on base is
// tolerated. The base address is resolved once by the caller at startup.
func New(base string, opts Options) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	searchLimit := opts.SearchLimit
	if searchLimit <= 0 {
		searchLimit = DefaultSearchLimit
	}
	genreLimit := opts.GenreLimit
	if genreLimit <= 0 {
		genreLimit = DefaultGenreLimit
	}
	return &Client{
		base:        strings.TrimRight(base, "/"),
		http:        &http.Client{Timeout: timeout},
		ack:         opts.Ack,
		searchLimit: searchLimit,
		genreLimit:  genreLimit,
	}
}

// TopGenres fetches the ranked genre menu. The menu is a convenience, not
// critical: any transport failure, non-2xx status, or malformed body yields
// an empty slice and a nil error.
func (c *Client) TopGenres(ctx context.Context) []Genre {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/top-genres", nil)
	if err != nil {
		return nil
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil
	}
	var genres []Genre
	if err := json.NewDecoder(resp.Body).Decode(&genres); err != nil {
		return nil
	}
	return genres
}

// Search runs a free-text mood query. A query that is empty after trimming
// short-circuits to an empty result set without touching the network.
// Non-2xx responses are reported as *StatusError.
func (c *Client) Search(ctx context.Context, query string) ([]RankedResult, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, nil
	}
	u := fmt.Sprintf("%s/recommend?query=%s&n=%d", c.base, url.QueryEscape(q), c.searchLimit)
	return c.getRanked(ctx, "search", u)
}

// MoviesByGenre fetches the top-rated movies for a genre tag. Same error
// contract as Search.
func (c *Client) MoviesByGenre(ctx context.Context, genre Genre) ([]RankedResult, error) {
	u := fmt.Sprintf("%s/movies-by-genre?genre=%s&limit=%d", c.base, url.QueryEscape(string(genre)), c.genreLimit)
	return c.getRanked(ctx, "browse", u)
}

func (c *Client) getRanked(ctx context.Context, op, u string) ([]RankedResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Op: op, Status: resp.StatusCode}
	}
	var results []RankedResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	return results, nil
}

// feedbackReply is the backend's response envelope for POST /feedback.
type feedbackReply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// SubmitFeedback posts a feedback draft. A message blank after trimming is
// rejected locally with ErrEmptyMessage before any network call. Transport
// and HTTP failures are handled per the client's AckPolicy; a server-side
// {ok:false} rejection is surfaced under both policies.
func (c *Client) SubmitFeedback(ctx context.Context, fb Feedback) error {
	fb.Message = strings.TrimSpace(fb.Message)
	if fb.Message == "" {
		return ErrEmptyMessage
	}
	if fb.Email != nil && strings.TrimSpace(*fb.Email) == "" {
		fb.Email = nil
	}

	body, err := json.Marshal(fb)
	if err != nil {
		return c.maskable(fmt.Errorf("feedback: encode body: %w", err))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/feedback", bytes.NewReader(body))
	if err != nil {
		return c.maskable(fmt.Errorf("feedback: build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.maskable(fmt.Errorf("feedback: %w", err))
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.maskable(&StatusError{Op: "feedback", Status: resp.StatusCode})
	}

	var reply feedbackReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return c.maskable(fmt.Errorf("feedback: decode response: %w", err))
	}
	if !reply.OK {
		reason := reply.Error
		if reason == "" {
			reason = "unspecified"
		}
		return &RejectedError{Reason: reason}
	}
	return nil
}

// maskable applies the ack policy to a feedback failure.
func (c *Client) maskable(err error) error {
	if c.ack == AckOptimistic {
		return nil
	}
	return err
}
