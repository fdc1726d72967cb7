package navigation

import (
	"errors"
	"fmt"
)

// ErrEmptyStack reports an operation on an empty menu stack. The stack is
// never empty once SetRootMenu has been called, so hitting this is a
// programmer error and surfaces as a panic.
var ErrEmptyStack = errors.New("menu stack is empty")

// ErrStackItemNotFound reports a replace targeting a stack item that is no
// longer part of the stack, which means the caller violated the engine's
// single-owner mutation discipline. Surfaces as a panic.
var ErrStackItemNotFound = errors.New("stack item not found in stack")

// UnsupportedActionResultError reports an ActionItem whose action returned
// a value the engine cannot dispatch on.
type UnsupportedActionResultError struct {
	Result any
}

func (e *UnsupportedActionResultError) Error() string {
	return fmt.Sprintf("unsupported value returned by action item: %T", e.Result)
}
