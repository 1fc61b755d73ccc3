// Package chunker splits inputs into bounded chunks. Most inputs fit in a
// single chunk, so every routine returns a maybelist.MaybeList and pays for
// a slice only when it genuinely produced more than one piece.
package chunker

import (
	"iter"
	"time"
	"unicode/utf8"

	"github.com/on-the-ground/maybe_list_go/maybelist"
	"github.com/rickb777/date/v2/timespan"
)

// SplitMax splits s into chunks of at most max characters, preserving input
// order. An input that already fits in one chunk comes back unchanged as a
// One list with no allocation. Panics if max is not positive.
func SplitMax(s string, max int) maybelist.MaybeList[string] {
	if max <= 0 {
		panic("max should be greater than 0")
	}
	if utf8.RuneCountInString(s) <= max {
		return maybelist.One(s)
	}
	return maybelist.Collect(chunks(s, max))
}

// chunks yields consecutive substrings of at most max runes. Chunk
// boundaries land on rune starts, never mid-encoding.
func chunks(s string, max int) iter.Seq[string] {
	return func(yield func(string) bool) {
		start, n := 0, 0
		for i := range s {
			if n == max {
				if !yield(s[start:i]) {
					return
				}
				start, n = i, 0
			}
			n++
		}
		yield(s[start:])
	}
}

// SplitSpan splits ts into consecutive sub-spans of at most max each. A span
// no longer than max comes back whole as a One list. Panics if max is not
// positive.
func SplitSpan(ts timespan.TimeSpan, max time.Duration) maybelist.MaybeList[timespan.TimeSpan] {
	if max <= 0 {
		panic("max should be greater than 0")
	}
	if ts.Duration() <= max {
		return maybelist.One(ts)
	}
	list := maybelist.Empty[timespan.TimeSpan]()
	for from := ts.Start(); from.Before(ts.End()); from = from.Add(max) {
		to := from.Add(max)
		if to.After(ts.End()) {
			to = ts.End()
		}
		list.Push(timespan.BetweenTimes(from, to))
	}
	return list
}
