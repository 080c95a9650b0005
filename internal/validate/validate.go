// Package validate holds the argument precondition checks shared by the
// builder. Each check returns nil or an error wrapping one of the sentinels
// below; callers decide whether to record, return or panic.
package validate

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNil      = errors.New("argument is nil")
	ErrArgument = errors.New("invalid argument")
	ErrRange    = errors.New("argument out of range")
)

// ArgumentNotNil fails when arg is nil, an empty string, or a nil pointer,
// slice, map, func, chan or interface.
func ArgumentNotNil(arg any, name string) error {
	if isNil(arg) {
		return fmt.Errorf("%w: %s", ErrNil, name)
	}
	return nil
}

// Argument fails with msg when cond is false.
func Argument(cond bool, msg string) error {
	if !cond {
		return fmt.Errorf("%w: %s", ErrArgument, msg)
	}
	return nil
}

// ArgumentInRange fails when arg lies outside [start, end].
func ArgumentInRange(arg, start, end int, name string) error {
	if arg < start || arg > end {
		return fmt.Errorf("%w: %s=%d not in [%d, %d]", ErrRange, name, arg, start, end)
	}
	return nil
}

func isNil(arg any) bool {
	if arg == nil {
		return true
	}
	if s, ok := arg.(string); ok {
		return s == ""
	}
	v := reflect.ValueOf(arg)
	switch v.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
