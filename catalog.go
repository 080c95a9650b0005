package tostr

import (
	"fmt"
	"reflect"
	"strings"
)

const tagName = "tostr"

// Ignorer lets a type keep members out of every renderer built for it,
// regardless of [Builder.Ignore]. It covers getters, which cannot carry
// struct tags; fields can also use the tag `tostr:"-"`.
type Ignorer interface {
	ToStrIgnore() []string
}

var (
	ignorerType  = reflect.TypeFor[Ignorer]()
	stringerType = reflect.TypeFor[fmt.Stringer]()
	errorType    = reflect.TypeFor[error]()
)

// Methods that are a type's own textual conversion, not data.
var reservedMethods = map[string]bool{
	"String":      true,
	"GoString":    true,
	"Error":       true,
	"ToStrIgnore": true,
}

type memberKind int

const (
	fieldMember memberKind = iota
	methodMember
)

func (k memberKind) String() string {
	if k == methodMember {
		return "method"
	}
	return "field"
}

// member is one readable field or getter of the target type.
// read receives the instance as a value of the target type.
type member struct {
	name   string
	typ    reflect.Type
	kind   memberKind
	char   bool
	marked bool
	read   func(reflect.Value) reflect.Value
}

// catalogOf lists the members of t: fields first in declaration order, then
// getters in method set order. Marked members are listed with marked set so
// they can still be named by Ignore.
func catalogOf(t reflect.Type, fields, methods bool) []member {
	marked := markedNames(t)
	seen := make(map[string]bool)
	var out []member
	add := func(ms []member) {
		for _, m := range ms {
			if seen[m.name] {
				continue
			}
			seen[m.name] = true
			if marked[m.name] {
				m.marked = true
			}
			out = append(out, m)
		}
	}
	if fields {
		add(fieldMembers(t))
	}
	if methods {
		add(methodMembers(t))
	}
	return out
}

func fieldMembers(t reflect.Type) []member {
	st := structOf(t)
	if st == nil {
		return nil
	}
	var out []member
	for _, f := range reflect.VisibleFields(st) {
		if !f.IsExported() {
			continue
		}
		if f.Anonymous && structOf(f.Type) != nil {
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get(tagName), ",")
		out = append(out, member{
			name:   f.Name,
			typ:    f.Type,
			kind:   fieldMember,
			char:   hasOption(opts, "char"),
			marked: name == "-",
			read:   fieldReader(f.Index, f.Type),
		})
	}
	return out
}

func fieldReader(index []int, typ reflect.Type) func(reflect.Value) reflect.Value {
	return func(v reflect.Value) reflect.Value {
		if v.Kind() == reflect.Ptr {
			v = v.Elem()
		}
		fv, err := v.FieldByIndexErr(index)
		if err != nil {
			// Promoted through a nil embedded pointer.
			return reflect.Zero(typ)
		}
		return fv
	}
}

func methodMembers(t reflect.Type) []member {
	var out []member
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !m.IsExported() || reservedMethods[m.Name] {
			continue
		}
		in := m.Type.NumIn()
		if t.Kind() != reflect.Interface {
			in-- // receiver
		}
		if in != 0 || m.Type.NumOut() != 1 {
			continue
		}
		out = append(out, member{
			name: m.Name,
			typ:  m.Type.Out(0),
			kind: methodMember,
			read: methodReader(i),
		})
	}
	return out
}

func methodReader(index int) func(reflect.Value) reflect.Value {
	return func(v reflect.Value) reflect.Value {
		return v.Method(index).Call(nil)[0]
	}
}

// markedNames collects the names returned by an Ignorer implementation on
// t's base type, for either receiver kind.
func markedNames(t reflect.Type) map[string]bool {
	base := t
	if base.Kind() == reflect.Ptr {
		base = base.Elem()
	}
	if base.Kind() == reflect.Interface {
		return nil
	}
	inst := reflect.New(base)
	if !inst.Type().Implements(ignorerType) {
		return nil
	}
	names := make(map[string]bool)
	for _, name := range inst.Interface().(Ignorer).ToStrIgnore() {
		names[name] = true
	}
	return names
}

func structOf(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return t
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if strings.TrimSpace(opt) == want {
			return true
		}
	}
	return false
}
