package tostr

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// strategy selects how a member's value is written.
type strategy int

const (
	strategyPrimitive strategy = iota
	strategyChar
	strategyString
	strategyUnsupported
	strategyFallback
)

func (s strategy) String() string {
	switch s {
	case strategyPrimitive:
		return "primitive"
	case strategyChar:
		return "char"
	case strategyString:
		return "string"
	case strategyUnsupported:
		return "unsupported"
	default:
		return "fallback"
	}
}

// appender writes one rendered value to sb.
type appender func(sb *strings.Builder, v reflect.Value)

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// strategyFor picks the strategy for m. The first match wins.
func strategyFor(m member) strategy {
	t := m.typ
	char := m.char && isCharKind(t)
	switch {
	case !char && isPrimitive(t):
		return strategyPrimitive
	case char:
		return strategyChar
	case isString(t):
		return strategyString
	case isUnsupported(t):
		return strategyUnsupported
	default:
		return strategyFallback
	}
}

func appenderFor(s strategy, maxWidth int) appender {
	switch s {
	case strategyPrimitive:
		return appendPrimitive
	case strategyChar:
		return appendChar
	case strategyString:
		return func(sb *strings.Builder, v reflect.Value) { appendString(sb, v, maxWidth) }
	case strategyFallback:
		return func(sb *strings.Builder, v reflect.Value) { appendFallback(sb, v, maxWidth) }
	default:
		// resolve rejects unsupported members before a plan is composed.
		panic("tostr: no appender for " + s.String())
	}
}

func appendPrimitive(sb *strings.Builder, v reflect.Value) {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			sb.WriteString("True")
		} else {
			sb.WriteString("False")
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sb.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		sb.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32:
		sb.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 32))
	case reflect.Float64:
		sb.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case reflect.Complex64:
		sb.WriteString(strconv.FormatComplex(v.Complex(), 'g', -1, 64))
	case reflect.Complex128:
		sb.WriteString(strconv.FormatComplex(v.Complex(), 'g', -1, 128))
	}
}

func appendChar(sb *strings.Builder, v reflect.Value) {
	var r rune
	if v.Kind() == reflect.Uint8 {
		r = rune(v.Uint())
	} else {
		r = rune(v.Int())
	}
	sb.WriteByte('\'')
	if r == '\'' || r == '\\' {
		sb.WriteByte('\\')
	}
	sb.WriteRune(r)
	sb.WriteByte('\'')
}

func appendString(sb *strings.Builder, v reflect.Value, maxWidth int) {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	sb.WriteByte('"')
	sb.WriteString(escaper.Replace(truncate(v.String(), maxWidth)))
	sb.WriteByte('"')
}

func appendFallback(sb *strings.Builder, v reflect.Value, maxWidth int) {
	s, ok := textOf(v)
	if !ok {
		return
	}
	sb.WriteString(truncate(s, maxWidth))
}

// textOf returns the value's own textual conversion, or false when v is nil.
// Interfaces are unwrapped to their dynamic value, so a typed nil pointer
// inside one counts as nil. Pointers without their own String or Error are
// unwrapped.
// A panicking String or Error method is not recovered.
func textOf(v reflect.Value) (string, bool) {
	for {
		switch v.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.UnsafePointer:
			if v.IsNil() {
				return "", false
			}
		}
		if v.Kind() == reflect.Interface {
			v = v.Elem()
			continue
		}
		if hasText(v.Type()) {
			break
		}
		if v.Kind() != reflect.Ptr {
			break
		}
		v = v.Elem()
	}
	switch x := v.Interface().(type) {
	case error:
		return x.Error(), true
	case fmt.Stringer:
		return x.String(), true
	default:
		return fmt.Sprint(x), true
	}
}

func hasText(t reflect.Type) bool {
	return t.Implements(stringerType) || t.Implements(errorType)
}

func isPrimitive(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return !hasText(t)
	}
	return false
}

func isCharKind(t reflect.Type) bool {
	return t.Kind() == reflect.Int32 || t.Kind() == reflect.Uint8
}

func isString(t reflect.Type) bool {
	if hasText(t) {
		return false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
		if hasText(t) {
			return false
		}
	}
	return t.Kind() == reflect.String
}

// isUnsupported reports whether t, or the type t points to, is the empty
// interface, a sequence (slice, array, map, chan) or a func, iter.Seq and
// iter.Seq2 included. Strings are not sequences.
func isUnsupported(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Interface:
		return t.NumMethod() == 0
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan, reflect.Func:
		return true
	}
	return false
}
