package cli

import (
	"errors"
	"fmt"
)

type invalidArgError struct {
	name  string
	value string
	why   string
}

func (e invalidArgError) Error() string {
	if e.value == "" {
		return fmt.Sprintf("invalid %s: %s", e.name, e.why)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.name, e.value, e.why)
}

func errInvalidArg(name, value, why string) error {
	return invalidArgError{name: name, value: value, why: why}
}

type unknownOpError struct {
	op string
}

func (e unknownOpError) Error() string {
	return fmt.Sprintf("unknown op: %q (run `dtpick docs apply` to list ops)", e.op)
}

func errUnknownOp(op string) error {
	return unknownOpError{op: op}
}

// errNotConfirmed is returned after printing the value of a picker that was
// closed without confirming, so the process exits non-zero.
var errNotConfirmed = errors.New("picker closed without confirming")
