package store

import (
	"fmt"
	"sort"
	"strconv"
)

// buildSet turns a field map into a SET clause with positional
// placeholders, in deterministic column order. Callers append their own
// trailing args (usually the id) after the returned ones.
func buildSet(fields map[string]interface{}) (string, []interface{}) {
	cols := make([]string, 0, len(fields))
	for col := range fields {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	set := ""
	args := make([]interface{}, 0, len(fields))
	for i, col := range cols {
		if i > 0 {
			set += ", "
		}
		set += fmt.Sprintf("%s = $%d", col, i+1)
		args = append(args, fields[col])
	}
	return set, args
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
