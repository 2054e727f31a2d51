package value

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the variant of a Primitive.
type Kind int

const (
	KindNone Kind = iota
	KindString
	KindInteger
	KindTime
	KindSize
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindTime:
		return "time"
	case KindSize:
		return "size"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Primitive is a scalar value. The zero value is None.
type Primitive struct {
	kind Kind
	str  string
	num  int64
	size uint64
	time time.Time
}

// None returns the None primitive.
func None() Primitive {
	return Primitive{}
}

// String creates a String primitive.
func String(s string) Primitive {
	return Primitive{kind: KindString, str: s}
}

// Int creates an Integer primitive.
func Int(i int64) Primitive {
	return Primitive{kind: KindInteger, num: i}
}

// Time creates a Time primitive.
func Time(t time.Time) Primitive {
	return Primitive{kind: KindTime, time: t}
}

// Size creates a Size primitive holding a byte count.
func Size(bytes uint64) Primitive {
	return Primitive{kind: KindSize, size: bytes}
}

// TypeName implements Value.TypeName.
func (p Primitive) TypeName() string {
	return p.kind.String()
}

// Kind returns the primitive's variant.
func (p Primitive) Kind() Kind {
	return p.kind
}

// IsNone is true for the None primitive.
func (p Primitive) IsNone() bool {
	return p.kind == KindNone
}

// AsString returns the text of a String primitive.
func (p Primitive) AsString() (string, bool) {
	return p.str, p.kind == KindString
}

// AsInt returns the value of an Integer primitive.
func (p Primitive) AsInt() (int64, bool) {
	return p.num, p.kind == KindInteger
}

// AsTime returns the value of a Time primitive.
func (p Primitive) AsTime() (time.Time, bool) {
	return p.time, p.kind == KindTime
}

// AsSize returns the byte count of a Size primitive.
func (p Primitive) AsSize() (uint64, bool) {
	return p.size, p.kind == KindSize
}

// Equal reports whether two primitives have the same kind and value.
func (p Primitive) Equal(o Primitive) bool {
	if p.kind != o.kind {
		return false
	}
	switch p.kind {
	case KindString:
		return p.str == o.str
	case KindInteger:
		return p.num == o.num
	case KindTime:
		return p.time.Equal(o.time)
	case KindSize:
		return p.size == o.size
	default:
		return true
	}
}

// Compare orders two primitives. None is equal to None and less than any other
// kind. Values of the same kind use their natural order. Comparisons between
// two different non-None kinds are undefined and report ok=false.
func Compare(a, b Primitive) (cmp int, ok bool) {
	switch {
	case a.kind == KindNone && b.kind == KindNone:
		return 0, true
	case a.kind == KindNone:
		return -1, true
	case b.kind == KindNone:
		return 1, true
	case a.kind != b.kind:
		return 0, false
	}

	switch a.kind {
	case KindString:
		return strings.Compare(a.str, b.str), true
	case KindInteger:
		return compareOrdered(a.num, b.num), true
	case KindSize:
		return compareOrdered(a.size, b.size), true
	case KindTime:
		switch {
		case a.time.Before(b.time):
			return -1, true
		case a.time.After(b.time):
			return 1, true
		default:
			return 0, true
		}
	}
	return 0, false
}

func compareOrdered[T int64 | uint64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Format renders the primitive as display text. Times are shown as a calendar
// date in loc, or UTC if loc is nil.
func (p Primitive) Format(loc *time.Location) string {
	switch p.kind {
	case KindString:
		return p.str
	case KindInteger:
		return strconv.FormatInt(p.num, 10)
	case KindTime:
		if loc == nil {
			loc = time.UTC
		}
		return p.time.In(loc).Format("2006-01-02")
	case KindSize:
		return FormatSize(p.size)
	default:
		return ""
	}
}

// FormatSize scales a byte count to the largest binary unit that is at least
// 1.0, up to GB.
func FormatSize(bytes uint64) string {
	kilobytes := float64(bytes) / 1024
	megabytes := kilobytes / 1024
	gigabytes := megabytes / 1024

	switch {
	case gigabytes >= 1:
		return fmt.Sprintf("%.2f GB", gigabytes)
	case megabytes >= 1:
		return fmt.Sprintf("%.2f MB", megabytes)
	case kilobytes >= 1:
		return fmt.Sprintf("%.2f KB", kilobytes)
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}
