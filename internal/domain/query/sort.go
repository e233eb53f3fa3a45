package query

import (
	"cmp"
	"slices"
)

// sortConditions orders conditions by column so generated SQL is stable across map iteration.
func sortConditions(conds []Condition) {
	slices.SortStableFunc(conds, func(a, b Condition) int {
		if c := cmp.Compare(a.Field, b.Field); c != 0 {
			return c
		}

		return cmp.Compare(a.Op, b.Op)
	})
}
