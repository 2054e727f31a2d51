package value

// Value is a structured shell value: a Primitive, a List or an *Object.
type Value interface {
	// TypeName returns a short description of the value's variant for use in
	// error messages.
	TypeName() string
}

// List is an ordered sequence of values. Homogeneity isn't enforced.
type List []Value

// NewList creates a list from the given values.
func NewList(values ...Value) List {
	out := make(List, 0, len(values))
	return append(out, values...)
}

// TypeName implements Value.TypeName.
func (List) TypeName() string {
	return "list"
}

var (
	_ Value = List(nil)
	_ Value = (*Object)(nil)
	_ Value = Primitive{}
)

// Equal reports whether two values are deeply equal. Objects are equal when
// they hold the same fields in the same order with equal values.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Primitive:
		b, ok := b.(Primitive)
		return ok && a.Equal(b)

	case List:
		b, ok := b.(List)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true

	case *Object:
		b, ok := b.(*Object)
		if !ok {
			return false
		}
		if a == nil || b == nil {
			return a == b
		}
		return a.dict.equal(&b.dict)

	default:
		return a == nil && b == nil
	}
}
