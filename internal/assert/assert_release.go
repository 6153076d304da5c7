//go:build release

package assert

// Assert panics if cond is false, formatting the message with args.
//
// Assert is a no-op when compiled with the release build tag.
func Assert(cond bool, format string, args ...any) {
	// no-op
}
