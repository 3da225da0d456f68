//go:build ltl_unchecked

package contract

import "github.com/StarQTius/Little-Type-Library/errors"

// Enabled reports whether precondition checks are compiled in.
const Enabled = false

// Require is a no-op in unchecked builds.
func Require(bool, func() *errors.AppError) {}
