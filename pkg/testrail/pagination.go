package testrail

import (
	"context"
	"errors"
)

// PageFetcher returns one page of results. An empty link requests the first
// page; otherwise link is a continuation obtained alongside a prior page and
// is dereferenced verbatim. next is the continuation for the following page,
// or "" on the last one.
type PageFetcher[T any] func(ctx context.Context, link string) (items []T, next string, err error)

// PageIterator walks a paginated listing by following the server's
// continuation links, so the caller never tracks offsets itself. It is not
// safe for concurrent use; each call is independent, and losing the iterator
// merely ends the sequence early.
type PageIterator[T any] struct {
	ctx     context.Context
	fetch   PageFetcher[T]
	items   []T
	index   int
	next    string
	started bool
}

// NewPageIterator creates an iterator over the pages produced by fetch.
func NewPageIterator[T any](ctx context.Context, fetch PageFetcher[T]) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:   ctx,
		fetch: fetch,
	}
}

// HasNext reports whether another item may be available. Before the first
// fetch it is always true; afterwards it reflects the buffered items and the
// presence of a continuation link.
func (it *PageIterator[T]) HasNext() bool {
	if it.index < len(it.items) {
		return true
	}

	if !it.started {
		return true
	}

	return it.next != ""
}

// Next returns the next item, fetching pages as needed. It returns
// ErrNoMoreItems once the sequence is exhausted.
func (it *PageIterator[T]) Next() (*T, error) {
	for it.index >= len(it.items) {
		if it.started && it.next == "" {
			return nil, ErrNoMoreItems
		}

		items, next, err := it.fetch(it.ctx, it.next)
		if err != nil {
			return nil, err
		}

		it.started = true
		it.items = items
		it.index = 0
		it.next = next

		if len(items) == 0 && next == "" {
			return nil, ErrNoMoreItems
		}
	}

	item := &it.items[it.index]
	it.index++

	return item, nil
}

// All drains the iterator and returns every remaining item in order.
func (it *PageIterator[T]) All() ([]T, error) {
	var all []T

	for {
		item, err := it.Next()
		if errors.Is(err, ErrNoMoreItems) {
			return all, nil
		}

		if err != nil {
			return nil, err
		}

		all = append(all, *item)
	}
}
