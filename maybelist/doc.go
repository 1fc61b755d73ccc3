// Package maybelist provides MaybeList, a container for "usually one,
// sometimes many" results.
//
// # Why another list type?
//
// Plenty of routines yield exactly one value almost every time — a splitter
// whose input usually fits in a single chunk, a resolver that usually finds
// one match — yet their signatures force a slice, and with it an allocation,
// on every call. MaybeList keeps the single value inline and only reaches
// for a slice when a second element actually shows up.
//
// # Usage
//
//	func splitMax(s string, max int) maybelist.MaybeList[string] {
//		if len(s) <= max {
//			return maybelist.One(s) // no allocation
//		}
//		return maybelist.Collect(chunks(s, max))
//	}
//
//	list := splitMax("foo bar baz", 4)
//	for chunk := range list.All() {
//		fmt.Println(chunk)
//	}
//
// The representation is a two-variant tagged union: One holds its element
// directly, Many delegates to a slice. Push transitions One to Many exactly
// once and the transition is never undone, even if a Many list is down to a
// single element. See the chunker package for the splitting routines this
// type was built around.
package maybelist
