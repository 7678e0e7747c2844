package common

import "fmt"

// InvalidParameterError reports a fatal, caller-visible contract violation:
// an arithmetic link built with the wrong concrete type, or a malformed
// variable declaration. See spec §7.
type InvalidParameterError struct {
	Where   string
	Message string
}

func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: invalid parameter: %s", e.Where, e.Message)
}

// InvariantViolationError reports a fatal post-condition failure that
// indicates a bug in the core itself rather than caller error — e.g. a
// reduced PLUS_LINK that still carries more than one NUMBER_NODE child.
// See spec §7.
type InvariantViolationError struct {
	Where   string
	Message string
}

func (e InvariantViolationError) Error() string {
	return fmt.Sprintf("%s: invariant violation: %s", e.Where, e.Message)
}
