package value

import (
	"strings"
	"time"
)

// Format renders any value as a single line of text. Primitives use their own
// formatting, lists are bracketed and records show their fields.
func Format(v Value, loc *time.Location) string {
	switch v := v.(type) {
	case Primitive:
		return v.Format(loc)

	case List:
		parts := make([]string, len(v))
		for i, elem := range v {
			parts[i] = Format(elem, loc)
		}
		return "[" + strings.Join(parts, ", ") + "]"

	case *Object:
		var parts []string
		for _, desc := range v.DataDescriptors() {
			parts = append(parts, desc.Name+": "+Format(v.GetData(desc), loc))
		}
		return "{" + strings.Join(parts, ", ") + "}"

	default:
		return ""
	}
}
