package trace

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Renderer turns call arguments or results into their textual form.
type Renderer func(values []any) string

// RenderDefault renders a single value with %v, no values as "()" and several
// values as a parenthesised, comma separated list.
func RenderDefault(values []any) string {
	return render(values, func(v any) string { return fmt.Sprintf("%v", v) })
}

var spewConfig = spew.ConfigState{
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// RenderSpew follows pointers and prints nested structures on one line,
// without pointer addresses.
func RenderSpew(values []any) string {
	return render(values, func(v any) string { return spewConfig.Sprintf("%v", v) })
}

func render(values []any, one func(any) string) string {
	switch len(values) {
	case 0:
		return "()"
	case 1:
		return one(values[0])
	}

	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, one(v))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
