package convert

import "fmt"

// UnsupportedInputError reports a value Convert doesn't know how to
// interpret as B-Rep geometry.
type UnsupportedInputError struct {
	Value any
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("unsupported input type %T", e.Value)
}
