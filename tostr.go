package tostr

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/bjaus/tostr/internal/validate"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNilArgument          = validate.ErrNil
	ErrInvalidArgument      = validate.ErrArgument
	ErrArgumentRange        = validate.ErrRange
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrNotSupported         = errors.New("not supported")
)

// maxWidthLimit bounds [Builder.MaxWidth].
const maxWidthLimit = 4096

// Func renders an instance of T as {Name1=val1, Name2=val2}.
// A Func returned by [Builder.Build] holds no mutable state and is safe for
// concurrent use.
type Func[T any] func(T) string

// Builder configures and builds a [Func] for T.
//
// Configuration methods return the builder for chaining. The first invalid
// argument is recorded, reported by [Builder.Err] and returned by
// [Builder.Build]; configuration calls after it are ignored. A Builder is not
// safe for concurrent use.
type Builder[T any] struct {
	fields   bool
	methods  bool
	ignored  map[string]struct{}
	ignores  []string
	subs     map[string]any
	subOrder []string
	maxWidth int
	err      error
}

// New returns a Builder for T with no members selected.
func New[T any]() *Builder[T] {
	return &Builder[T]{
		ignored: make(map[string]struct{}),
		subs:    make(map[string]any),
	}
}

// Err returns the first argument error recorded by a configuration call.
func (b *Builder[T]) Err() error { return b.err }

// UseFields includes the exported fields of T, promoted fields included.
func (b *Builder[T]) UseFields() *Builder[T] {
	b.fields = true
	return b
}

// UseMethods includes the getters of T: exported methods that take no
// arguments and return exactly one value. String, GoString and Error are
// never treated as getters.
func (b *Builder[T]) UseMethods() *Builder[T] {
	b.methods = true
	return b
}

// Ignore excludes the named members. Every name must exist among the
// selected members when Build is called. Calling Ignore with no names does
// nothing.
func (b *Builder[T]) Ignore(names ...string) *Builder[T] {
	if b.err != nil {
		return b
	}
	for _, name := range names {
		if err := validate.Argument(name != "", "a name cannot be empty"); err != nil {
			b.err = err
			return b
		}
		if _, ok := b.ignored[name]; ok {
			continue
		}
		b.ignored[name] = struct{}{}
		b.ignores = append(b.ignores, name)
	}
	return b
}

// Substitute replaces the rendering of the named member with fn, which must
// be a func(U) string where the member's type is assignable to U. The string
// fn returns is written as is, without quoting. Calling Substitute twice for
// the same name keeps the last fn.
func (b *Builder[T]) Substitute(name string, fn any) *Builder[T] {
	if b.err != nil {
		return b
	}
	if err := validate.ArgumentNotNil(name, "name"); err != nil {
		b.err = err
		return b
	}
	if err := validate.ArgumentNotNil(fn, "fn"); err != nil {
		b.err = err
		return b
	}
	if err := checkSubstituteFunc(fn); err != nil {
		b.err = err
		return b
	}
	if _, ok := b.subs[name]; !ok {
		b.subOrder = append(b.subOrder, name)
	}
	b.subs[name] = fn
	return b
}

// SubstituteFunc is the type-checked form of [Builder.Substitute].
func SubstituteFunc[T, U any](b *Builder[T], name string, fn func(U) string) *Builder[T] {
	return b.Substitute(name, fn)
}

// MaxWidth truncates string and fallback values wider than width terminal
// columns, ending them with "...". Zero disables truncation.
func (b *Builder[T]) MaxWidth(width int) *Builder[T] {
	if b.err != nil {
		return b
	}
	if err := validate.ArgumentInRange(width, 0, maxWidthLimit, "width"); err != nil {
		b.err = err
		return b
	}
	b.maxWidth = width
	return b
}

// Build validates the configuration against the members of T and returns
// the compiled renderer.
//
// It fails with [ErrInvalidConfiguration] when no members were selected, an
// ignored or substituted name is unknown, or a substitute cannot accept its
// member's type, and with [ErrNotSupported] when a member that is not
// substituted has type any, a func type (iter.Seq included) or a sequence
// type (slice, array, map, chan), or a pointer to one of these. A Builder that failed to build must not be reused.
func (b *Builder[T]) Build() (Func[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	t := reflect.TypeFor[T]()
	if !b.fields && !b.methods {
		return nil, fmt.Errorf("%w: no members to use for %s, call UseFields or UseMethods", ErrInvalidConfiguration, t)
	}

	catalog := catalogOf(t, b.fields, b.methods)
	known := make(map[string]struct{}, len(catalog))
	for _, m := range catalog {
		known[m.name] = struct{}{}
	}
	for _, name := range b.ignores {
		if _, ok := known[name]; !ok {
			return nil, fmt.Errorf("%w: cannot ignore member %q because it does not exist in type %s", ErrInvalidConfiguration, name, t)
		}
	}

	var survivors []member
	surviving := make(map[string]struct{}, len(catalog))
	for _, m := range catalog {
		if _, ok := b.ignored[m.name]; ok || m.marked {
			continue
		}
		survivors = append(survivors, m)
		surviving[m.name] = struct{}{}
	}
	for _, name := range b.subOrder {
		if _, ok := surviving[name]; !ok {
			return nil, fmt.Errorf("%w: cannot substitute member %q because it does not exist in type %s or was ignored", ErrInvalidConfiguration, name, t)
		}
	}

	values := make([]value, 0, len(survivors))
	for _, m := range survivors {
		fn, ok := b.subs[m.name]
		if !ok {
			values = append(values, baseValue{m: m})
			continue
		}
		sv, err := substitute(baseValue{m: m}, fn)
		if err != nil {
			return nil, err
		}
		values = append(values, sv)
	}

	plan, err := resolve(values)
	if err != nil {
		return nil, err
	}
	return compose[T](plan, b.maxWidth), nil
}

// MustBuild is like Build but panics if the configuration is invalid.
func (b *Builder[T]) MustBuild() Func[T] {
	fn, err := b.Build()
	if err != nil {
		panic("tostr: " + err.Error())
	}
	return fn
}
