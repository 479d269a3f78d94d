package dynarr

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// String renders the length and the live slots keyed by position, e.g.
// {length: 2, data: {0: 6, 1: 2}}.
func (a *Array[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "{length: %d, data: {", a.length)
	for i := 0; i < a.length; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d: %v", i, a.data[i])
	}
	sb.WriteString("}}")
	return sb.String()
}

// Dump is a verbose, type-annotated view of the live slots for debugging.
func (a *Array[T]) Dump() string {
	return fmt.Sprintf("length: %d\n%s", a.length, dumper.Sdump(a.data[:a.length]))
}
