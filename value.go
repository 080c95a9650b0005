package tostr

import (
	"fmt"
	"reflect"
)

// value is a renderable entry of the plan. It is either a baseValue, which
// goes through strategy dispatch, or a substitutedValue, which never does.
type value interface {
	name() string
	isValue()
}

type baseValue struct {
	m member
}

func (b baseValue) name() string { return b.m.name }
func (baseValue) isValue()       {}

func (b baseValue) read(inst reflect.Value) reflect.Value {
	return b.m.read(inst)
}

// substitutedValue renders its inner value through a user func(U) string.
type substitutedValue struct {
	inner baseValue
	fn    reflect.Value
}

func (s substitutedValue) name() string { return s.inner.name() }
func (substitutedValue) isValue()       {}

func (s substitutedValue) render(inst reflect.Value) string {
	return s.fn.Call([]reflect.Value{s.inner.read(inst)})[0].String()
}

func substitute(inner baseValue, fn any) (substitutedValue, error) {
	fv := reflect.ValueOf(fn)
	in := fv.Type().In(0)
	if !inner.m.typ.AssignableTo(in) {
		return substitutedValue{}, fmt.Errorf("%w: cannot substitute member %q because type %s is not assignable to type %s",
			ErrInvalidConfiguration, inner.name(), inner.m.typ, in)
	}
	return substitutedValue{inner: inner, fn: fv}, nil
}

// checkSubstituteFunc reports whether fn has the shape func(U) string.
func checkSubstituteFunc(fn any) error {
	ft := reflect.TypeOf(fn)
	if ft.Kind() != reflect.Func || ft.IsVariadic() || ft.NumIn() != 1 || ft.NumOut() != 1 || ft.Out(0).Kind() != reflect.String {
		return fmt.Errorf("%w: substitute must be a func(T) string, got %T", ErrInvalidArgument, fn)
	}
	return nil
}
