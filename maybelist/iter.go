package maybelist

import "iter"

// All returns an iterator over the elements in insertion order. The sequence
// is finite and restartable; ranging over it does not mutate the list, so
// multiple independent passes are allowed.
func (l MaybeList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.kind == variantOne {
			yield(l.one)
			return
		}
		for _, v := range l.many {
			if !yield(v) {
				return
			}
		}
	}
}

// Drain returns a consuming iterator: it yields the elements in insertion
// order and resets the list to empty. The list must not be reused as if it
// still held its elements once the sequence has been started.
func (l *MaybeList[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		drained := *l
		*l = MaybeList[T]{}
		if drained.kind == variantOne {
			yield(drained.one)
			return
		}
		for _, v := range drained.many {
			if !yield(v) {
				return
			}
		}
	}
}
