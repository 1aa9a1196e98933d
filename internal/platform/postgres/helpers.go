package postgres

import (
	"fmt"
	"strings"
)

// updateBuilder assembles the SET clause of a partial UPDATE from the
// non-nil fields of a store patch. updated_at is always touched, so the
// builder must only be used for non-empty patches.
type updateBuilder struct {
	assignments []string
	args        []any
}

// set adds one column assignment with the next placeholder.
func (b *updateBuilder) set(column string, value any) {
	b.args = append(b.args, value)
	b.assignments = append(b.assignments, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// build returns the UPDATE statement for the given table and id, and the
// ordered argument list.
func (b *updateBuilder) build(table string, id int64) (string, []any) {
	b.args = append(b.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s, updated_at = NOW() WHERE id = $%d",
		table,
		strings.Join(b.assignments, ", "),
		len(b.args),
	)
	return query, b.args
}
