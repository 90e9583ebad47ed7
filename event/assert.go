package event

import (
	"fmt"
	"runtime"
)

// callerSkip is the stack depth of a Cast function's caller as seen from
// assertAt: assertAt, assertf or assertType, the Cast function, the caller.
const callerSkip = 3

func assertf(cond bool, format string, args ...any) {
	assertAt(callerSkip, cond, format, args...)
}

func assertType(e Any, want EventType, fn string) {
	t := typeOf(e)
	assertAt(callerSkip, t == want, "%s: unexpected %v", fn, t)
}

func assertAt(skip int, cond bool, format string, args ...any) {
	if !assertionsEnabled || cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if _, file, line, ok := runtime.Caller(skip); ok {
		msg = fmt.Sprintf("%s:%d: %s", file, line, msg)
	}
	panic("event: assertion failed: " + msg)
}
