package maybelist

import (
	"errors"
	"fmt"
	"iter"
)

// ErrOutOfRange is returned by At when the index is outside [0, Len()).
var ErrOutOfRange = errors.New("index out of range")

type variant uint8

const (
	// variantMany is the zero value so that a zero MaybeList is an empty list.
	variantMany variant = iota
	variantOne
)

// MaybeList holds either exactly one element of type T, or any number of
// elements in a heap-allocated slice. It exists for call sites that usually
// produce a single value: the One variant stores that value inline, so the
// common case never allocates.
//
// The zero value is an empty list and ready to use. MaybeList is a plain
// value type with no internal locking; concurrent readers are fine, but
// mutation requires exclusive access.
type MaybeList[T any] struct {
	kind variant
	one  T
	many []T
}

// One returns a list holding exactly value. It performs no heap allocation.
func One[T any](value T) MaybeList[T] {
	return MaybeList[T]{kind: variantOne, one: value}
}

// Empty returns a list with no elements.
func Empty[T any]() MaybeList[T] {
	return MaybeList[T]{}
}

// FromSlice wraps items as a list, taking ownership of the slice. A
// single-element slice is normalized to the One variant so that later reads
// of a length-1 result stay allocation-free.
func FromSlice[T any](items []T) MaybeList[T] {
	if len(items) == 1 {
		return One(items[0])
	}
	return MaybeList[T]{many: items}
}

// Collect eagerly consumes seq into a list, preserving production order.
// It buffers the first value before committing to a representation: a
// producer that yields exactly one value collects into the One variant,
// anything else into Many.
func Collect[T any](seq iter.Seq[T]) MaybeList[T] {
	var (
		first T
		list  MaybeList[T]
		n     int
	)
	for v := range seq {
		switch n {
		case 0:
			first = v
		case 1:
			list.many = append(make([]T, 0, 2), first, v)
		default:
			list.many = append(list.many, v)
		}
		n++
	}
	if n == 1 {
		return One(first)
	}
	return list
}

// Push appends value to the end of the list. Pushing onto a One list is the
// one deferred allocation point: it transitions to Many holding the existing
// element followed by value. The transition is never reversed.
func (l *MaybeList[T]) Push(value T) {
	if l.kind == variantOne {
		l.many = []T{l.one, value}
		var zero T
		l.one = zero // the slice owns the element now
		l.kind = variantMany
		return
	}
	l.many = append(l.many, value)
}

// Len returns the number of elements: 1 for a One list, the slice length
// otherwise.
func (l MaybeList[T]) Len() int {
	if l.kind == variantOne {
		return 1
	}
	return len(l.many)
}

// IsEmpty reports whether the list holds no elements. A One list is never
// empty.
func (l MaybeList[T]) IsEmpty() bool {
	return l.Len() == 0
}

// At returns the element at 0-based index i. Indexes outside [0, Len())
// fail with ErrOutOfRange rather than clamping, so caller bugs stay visible.
func (l MaybeList[T]) At(i int) (T, error) {
	if i < 0 || i >= l.Len() {
		var zero T
		return zero, fmt.Errorf("%w: %d with length %d", ErrOutOfRange, i, l.Len())
	}
	if l.kind == variantOne {
		return l.one, nil
	}
	return l.many[i], nil
}

// Slice converts the list to a plain slice. A One list yields a fresh
// single-element slice; a Many list hands back its backing slice without
// copying, so the caller and the list must not both keep mutating it.
func (l MaybeList[T]) Slice() []T {
	if l.kind == variantOne {
		return []T{l.one}
	}
	return l.many
}

// String implements fmt.Stringer, labeling the active variant.
func (l MaybeList[T]) String() string {
	if l.kind == variantOne {
		return fmt.Sprintf("MaybeList{one: %v}", l.one)
	}
	return fmt.Sprintf("MaybeList{many: %v}", l.many)
}
