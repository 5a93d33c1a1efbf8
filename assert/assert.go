//go:build lutrigdebug

package assert

import "github.com/oomph-ac/lutrig/oerror"

// Enabled reports whether assertions are compiled in.
const Enabled = true

// IsTrue panics with an *oerror.Error if ok is false.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
