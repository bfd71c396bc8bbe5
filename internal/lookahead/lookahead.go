// Package lookahead provides a buffer that lets a consumer look any number of
// items ahead of a stream while still receiving every item exactly once and
// in order.
package lookahead

// Source produces items one at a time. ok is false once the source is
// exhausted.
type Source[T any] interface {
	Next() (item T, ok bool)
}

type sliceSource[T any] struct {
	items []T
}

func (s *sliceSource[T]) Next() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	item := s.items[0]
	s.items = s.items[1:]

	return item, true
}

// FromSlice returns a Source that yields the elements of items in order.
func FromSlice[T any](items []T) Source[T] {
	return &sliceSource[T]{items: items}
}

// Buffer wraps a Source with multi-item lookahead.
//
// Items pulled from the source by Peek or NextIf are kept in a pending queue
// until Next hands them out, first peeked first returned. Peek keeps a cursor
// into the queue so that successive calls look one item further ahead; Next
// and ResetPeek move the cursor back to the front.
type Buffer[T any] struct {
	source  Source[T]
	pending []T
	cursor  int
}

func New[T any](source Source[T]) *Buffer[T] {
	return &Buffer[T]{source: source}
}

// Next consumes and returns the next item.
func (b *Buffer[T]) Next() (T, bool) {
	b.cursor = 0
	if len(b.pending) > 0 {
		item := b.pending[0]
		b.pending = b.pending[1:]
		return item, true
	}

	return b.source.Next()
}

// Peek returns the next item not yet seen by Peek without consuming it.
func (b *Buffer[T]) Peek() (T, bool) {
	if !b.fill(b.cursor + 1) {
		var zero T
		return zero, false
	}
	item := b.pending[b.cursor]
	b.cursor++

	return item, true
}

// ResetPeek makes the following Peek return the front of the stream again.
func (b *Buffer[T]) ResetPeek() {
	b.cursor = 0
}

// NextIf consumes the front item only if pred holds for it.
// The peek cursor is left untouched when nothing is consumed.
func (b *Buffer[T]) NextIf(pred func(T) bool) (T, bool) {
	var zero T
	if !b.fill(1) || !pred(b.pending[0]) {
		return zero, false
	}

	return b.Next()
}

// Pending reports how many items have been pulled from the source but not
// yet consumed.
func (b *Buffer[T]) Pending() int {
	return len(b.pending)
}

// fill pulls from the source until at least n items are pending.
func (b *Buffer[T]) fill(n int) bool {
	for len(b.pending) < n {
		item, ok := b.source.Next()
		if !ok {
			return false
		}
		b.pending = append(b.pending, item)
	}

	return true
}
