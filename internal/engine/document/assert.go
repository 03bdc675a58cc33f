package document

import "fmt"

// Debug turns Assert failures into panics. It is off by default so misuse
// by a host degrades to a no-op; tests switch it on.
var Debug = false

// Assert panics with the formatted message when cond is false and Debug is
// set. It guards programmer errors only, never conditions reachable from
// well-formed input.
func Assert(cond bool, format string, args ...any) {
	if cond || !Debug {
		return
	}
	panic(fmt.Sprintf("glyphedit: "+format, args...))
}
