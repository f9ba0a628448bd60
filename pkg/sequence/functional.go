package sequence

import "iter"

// Iterator is a lazy, restartable, chainable view over an iter.Seq.
// Every terminal call walks the underlying sequence from the start.
type Iterator[T any] struct {
	seq iter.Seq[T]
}

// From creates a new Iterator over a slice of T.
func From[T any](data []T) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			for _, v := range data {
				if !yield(v) {
					return
				}
			}
		},
	}
}

// FromSeq wraps an existing iter.Seq.
func FromSeq[T any](seq iter.Seq[T]) *Iterator[T] {
	return &Iterator[T]{seq: seq}
}

// Indexed creates an Iterator that yields at(0) .. at(n-1).
// at is evaluated lazily, once per element per traversal.
func Indexed[T any](n int, at func(int) T) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			for i := 0; i < n; i++ {
				if !yield(at(i)) {
					return
				}
			}
		},
	}
}

// Seq returns the underlying sequence function for the iterator.
func (i *Iterator[T]) Seq() iter.Seq[T] {
	return i.seq
}

// Collect exhausts the iterator into a freshly allocated slice.
// The result is never nil, an empty iterator yields an empty slice.
func (i *Iterator[T]) Collect() []T {
	out := make([]T, 0)
	i.seq(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Filter returns a new Iterator containing only elements that satisfy the predicate.
func (i *Iterator[T]) Filter(pred func(T) bool) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			i.seq(func(v T) bool {
				if pred(v) {
					return yield(v)
				}
				return true
			})
		},
	}
}

// Find returns the first element matching the predicate, or false if not found.
func (i *Iterator[T]) Find(pred func(T) bool) (T, bool) {
	var found T
	ok := false
	i.seq(func(v T) bool {
		if pred(v) {
			found = v
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// Map lazily transforms elements from type T to type S.
func Map[T any, S any](it *Iterator[T], fn func(T) S) *Iterator[S] {
	return &Iterator[S]{
		seq: func(yield func(S) bool) {
			it.seq(func(v T) bool {
				return yield(fn(v))
			})
		},
	}
}
