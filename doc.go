// Package tostr builds String-style renderers for Go types.
//
// A [Builder] inspects a type once and compiles a [Func] that renders any
// value of that type as
//
//	{Name1=value1, Name2=value2}
//
// All configuration errors surface from [Builder.Build]; the returned Func
// never fails because of configuration and is safe for concurrent use.
//
//	render, err := tostr.New[User]().
//		UseFields().
//		Ignore("Password").
//		Substitute("Created", func(t time.Time) string { return t.Format(time.DateOnly) }).
//		Build()
//	if err != nil { ... }
//	fmt.Println(render(u)) // {Name="Ada", Admin=True, Created=2024-01-02}
//
// # Members
//
// [Builder.UseFields] selects exported fields, including fields promoted from
// embedded structs, in declaration order. [Builder.UseMethods] selects
// getters: exported methods with no arguments and one result, in method set
// order. At least one of the two is required.
//
// A field tagged `tostr:"-"` is never rendered. Types can also implement
// [Ignorer] to exclude any member, getters included.
//
// # Values
//
// Each member is rendered according to its declared type:
//
//   - bool: True or False
//   - integers, floats and complex numbers: their strconv form
//   - int32 or uint8 fields tagged `tostr:",char"`: 'c', with ' and \ escaped
//   - strings and *string: "s" with \ and " escaped; a nil *string renders nothing
//   - anything else: its Error or String method, or its fmt form; nil renders nothing
//
// Members of type any, of func types such as iter.Seq, and of slice, array,
// map or chan types, are rejected with [ErrNotSupported] unless they are
// substituted. So are pointers to these types. Use
// [Builder.Substitute] or [SubstituteFunc] to render a member with a custom
// func(U) string; its result is written as is.
//
// [Builder.MaxWidth] truncates long string and fallback values to a number of
// terminal columns.
//
// # Configuration Files
//
// The declarative options can be loaded from YAML with [LoadConfig] and
// applied with [Builder.Apply].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNilArgument]: a required configuration argument is missing
//   - [ErrInvalidArgument]: a configuration argument is malformed
//   - [ErrArgumentRange]: a numeric argument is out of range
//   - [ErrInvalidConfiguration]: the configuration does not match the type
//   - [ErrNotSupported]: a member's type cannot be rendered
package tostr
