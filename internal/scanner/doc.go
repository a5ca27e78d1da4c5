// Package scanner provides a cursor over an in-memory string for writing
// recursive-descent parsers by hand.
//
// # Operations
//
// A Scanner offers cursor primitives (Advance, PeekAt, Matches), bounded and
// unbounded search (ReadUntil, TryReadUntil, SkipAfter, ReadBackUntil), word
// lookahead (TryReadWord, TryLookWord), balanced structure extraction
// (TryReadXMLNode, DecodeBraced) and numeric decoding (ReadInt, ReadDouble).
//
// # Failures
//
// Searches that may legitimately find nothing report a miss through a
// boolean and leave the cursor alone. Calls made in a state their contract
// forbids, such as reading a number where there is no digit, panic with a
// *PreconditionError. Structure extractors are transactional: they either
// consume the whole structure or leave the cursor untouched.
//
// # Lookahead
//
// Scanner is a value type. Copy it to look ahead, then Commit the copy or
// drop it:
//
//	look := sc.Clone()
//	if name, ok := look.TryReadWord(); ok && look.Eat(':') {
//		sc.Commit(look)
//		_ = name
//	}
//
// A Scanner must not be mutated from several goroutines; independent clones
// over the same buffer may be used concurrently.
package scanner
