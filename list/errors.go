package list

import "errors"

// ErrIndexOutOfRange indicates an Insert or Remove index outside the list.
// The operation returns the original list unchanged alongside this error.
var ErrIndexOutOfRange = errors.New("list: index out of range")
