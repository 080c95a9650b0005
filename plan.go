package tostr

import (
	"fmt"
	"reflect"
	"strings"
)

// entry is one step of a render plan. strat is unused for substituted values.
type entry struct {
	val   value
	strat strategy
}

// resolve assigns a strategy to every base value, rejecting unsupported
// member types.
func resolve(values []value) ([]entry, error) {
	plan := make([]entry, 0, len(values))
	for _, val := range values {
		bv, ok := val.(baseValue)
		if !ok {
			plan = append(plan, entry{val: val})
			continue
		}
		s := strategyFor(bv.m)
		if s == strategyUnsupported {
			return nil, fmt.Errorf("%w: cannot render %s %q of type %s: any, func and sequence types need a substitute",
				ErrNotSupported, bv.m.kind, bv.m.name, bv.m.typ)
		}
		plan = append(plan, entry{val: val, strat: s})
	}
	return plan, nil
}

type step struct {
	label string
	write func(sb *strings.Builder, inst reflect.Value)
}

// compose turns a plan into a renderer. The closure only reads the steps
// built here.
func compose[T any](plan []entry, maxWidth int) Func[T] {
	if len(plan) == 0 {
		return func(T) string { return "{}" }
	}
	steps := make([]step, len(plan))
	for i, e := range plan {
		label := e.val.name() + "="
		if i > 0 {
			label = ", " + label
		}
		steps[i] = step{label: label, write: writerFor(e, maxWidth)}
	}
	return func(inst T) string {
		rv := reflect.ValueOf(&inst).Elem()
		if isNilInstance(rv) {
			return "<nil>"
		}
		var sb strings.Builder
		sb.WriteByte('{')
		for _, s := range steps {
			sb.WriteString(s.label)
			s.write(&sb, rv)
		}
		sb.WriteByte('}')
		return sb.String()
	}
}

func writerFor(e entry, maxWidth int) func(*strings.Builder, reflect.Value) {
	switch v := e.val.(type) {
	case substitutedValue:
		return func(sb *strings.Builder, inst reflect.Value) {
			sb.WriteString(v.render(inst))
		}
	case baseValue:
		app := appenderFor(e.strat, maxWidth)
		return func(sb *strings.Builder, inst reflect.Value) {
			app(sb, v.read(inst))
		}
	default:
		panic(fmt.Sprintf("tostr: unknown value %T", e.val))
	}
}

func isNilInstance(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	}
	return false
}
