package owned

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("owned")

// ErrExhausted is returned when an Allocator refuses to hand out another
// control block because its limit has been reached.
var ErrExhausted = errors.New("allocator exhausted")
