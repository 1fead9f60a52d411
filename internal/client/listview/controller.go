// Package listview implements the reactive pattern shared by every list
// screen of the StoreHub client: a query (filters + sort) owned by the view,
// a result set that always corresponds to the most recently issued query, and
// read-after-write consistency for mutations by re-issuing the current query.
//
// Every fetch is tagged with a monotonically increasing sequence number at
// issue time; a response is applied only if its sequence number is the
// highest yet observed. Out-of-order responses for superseded queries are
// discarded, so rapid filter or sort changes can never leave a stale result
// set on screen.
package listview

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"storehub-client/internal/logging"
)

var (
	// ErrStale marks a response that arrived after its query was superseded
	// by a newer one. The response was discarded; the view keeps rendering
	// the newest applied results.
	ErrStale = errors.New("stale response discarded")

	// ErrClosed is returned when the view owning the controller has been
	// unmounted. No further fetches are issued and no responses are applied.
	ErrClosed = errors.New("list controller closed")
)

// Fetcher issues the query against the data service and returns the ordered
// result set. Filters and sort are passed verbatim.
type Fetcher[T any] func(ctx context.Context, q Query) ([]T, error)

// Controller keeps one list view in sync with server-held filter, sort and
// mutation state. Safe for concurrent use; overlapping fetches are resolved
// by the sequence-number discipline above.
type Controller[T any] struct {
	fetch Fetcher[T]
	log   logging.Logger

	mu      sync.Mutex
	query   Query
	results []T
	issued  uint64 // sequence number of the most recently issued fetch
	applied uint64 // highest sequence number whose response was applied
	closed  bool
}

// New builds a controller with an empty result set and the initial query
// sorted by sortField ascending. No fetch is issued until the first Refresh.
func New[T any](fetch Fetcher[T], sortField string, log logging.Logger) *Controller[T] {
	return &Controller[T]{
		fetch: fetch,
		log:   log,
		query: NewQuery(sortField),
	}
}

// Query returns a copy of the current filter and sort criteria.
func (c *Controller[T]) Query() Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query.clone()
}

// Results returns the most recently applied result set. On transient fetch
// failures the previous value is retained, so the table is never blanked.
func (c *Controller[T]) Results() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results
}

// SetFilter records a substring filter for the given field and issues a new
// fetch. An empty substring removes the filter.
func (c *Controller[T]) SetFilter(ctx context.Context, field, substring string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if substring == "" {
		delete(c.query.Filters, field)
	} else {
		c.query.Filters[field] = substring
	}
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SortBy applies ToggleSort for the picked column and issues a new fetch.
func (c *Controller[T]) SortBy(ctx context.Context, field string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.query.Sort = ToggleSort(c.query.Sort, field)
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Refresh issues the current query and applies the response under the
// sequence-number discipline. On fetch failure the previous results are kept
// and the error is returned for the caller to surface as a transient
// notification.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.issued++
	seq := c.issued
	q := c.query.clone()
	c.mu.Unlock()

	c.log.Debug(ctx, "query issued", "seq", seq, "sort", q.Sort.Field, "dir", q.Sort.Direction)
	rows, err := c.fetch(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if seq <= c.applied {
		c.log.Warn(ctx, "stale response discarded", "seq", seq, "applied", c.applied)
		return ErrStale
	}

	// A failure is an observed outcome too: later responses of older queries
	// must not be applied over it.
	c.applied = seq
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	c.results = rows
	return nil
}

// Submit runs a mutation and, only after its response is observed, re-issues
// the current query so the rendered rows pick up server-derived state. The
// mutation error is returned as-is and leaves the displayed results
// untouched; no retry is attempted.
func (c *Controller[T]) Submit(ctx context.Context, mutate func(context.Context) error) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.mu.Unlock()

	if err := mutate(ctx); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Close marks the view unmounted. Any in-flight response is discarded on
// arrival and all later operations return ErrClosed.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
