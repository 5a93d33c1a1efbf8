//go:build !lutrigdebug

package assert

const Enabled = false

// IsTrue does nothing unless the lutrigdebug build tag is set.
func IsTrue(bool, string, ...interface{}) {}
