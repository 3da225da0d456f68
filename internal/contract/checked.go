//go:build !ltl_unchecked

package contract

import "github.com/StarQTius/Little-Type-Library/errors"

// Enabled reports whether precondition checks are compiled in.
const Enabled = true

// Require panics with the error built by violation when cond is false.
// violation is only called on failure.
func Require(cond bool, violation func() *errors.AppError) {
	if !cond {
		panic(violation())
	}
}
