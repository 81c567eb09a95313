package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Stringify renders v the way `print`/string-interpolation do: no quotes
// around top-level strings, quoted strings nested inside lists/hashes.
// Grounded on the teacher's interpreter_stringify.go conventions.
func Stringify(v Value) string {
	return stringify(v, false)
}

func stringify(v Value, nested bool) string {
	switch val := v.(type) {
	case Integer:
		return strconv.FormatInt(int64(val), 10)
	case Float:
		return strconv.FormatFloat(float64(val), 'g', -1, 64)
	case Boolean:
		if val {
			return "true"
		}
		return "false"
	case String:
		if nested {
			return strconv.Quote(string(val))
		}
		return string(val)
	case Null:
		return "null"
	case *List:
		parts := make([]string, len(val.Elements))
		for i, e := range val.Elements {
			parts[i] = stringify(e, true)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Hash:
		parts := make([]string, 0, val.Len())
		for _, k := range val.Keys() {
			ev, _ := val.Get(k)
			parts = append(parts, fmt.Sprintf("%q: %s", k, stringify(ev, true)))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *Object:
		return fmt.Sprintf("<object:%s>", val.ClassName)
	case ClassRef:
		return fmt.Sprintf("<class:%s>", val.Name)
	case LambdaRef:
		return fmt.Sprintf("<lambda:%s>", val.ID)
	default:
		return fmt.Sprintf("%v", v)
	}
}
