package database

import (
	"fmt"
	"strings"

	"estatelink/pkg/apperr"
)

// ErrNoFieldsToUpdate is returned by Build when no assignments were
// collected; an UPDATE with an empty SET list is never emitted.
var ErrNoFieldsToUpdate = apperr.New(apperr.KindNoFieldsToUpdate, "No fields to update")

type assignment struct {
	column string
	value  any
}

// Field is one supplied (column, new value) pair of a partial update.
// Slices of Field keep the caller's order, which the builder preserves.
type Field struct {
	Column string
	Value  any
}

// UpdateBuilder accumulates partial-update assignments in call order and
// renders one parameterized UPDATE with aligned positional placeholders.
// Column names never come from request input directly: Set only accepts
// columns from the fixed allow-list the builder was constructed with.
type UpdateBuilder struct {
	table       string
	allowed     map[string]struct{}
	assignments []assignment
	err         error
}

// NewUpdateBuilder creates a builder for table (already-quoted name) with
// a fixed set of updatable columns.
func NewUpdateBuilder(table string, allowedColumns []string) *UpdateBuilder {
	allowed := make(map[string]struct{}, len(allowedColumns))
	for _, c := range allowedColumns {
		allowed[c] = struct{}{}
	}
	return &UpdateBuilder{table: table, allowed: allowed}
}

// Set records one column assignment. Call order is preserved in the
// generated SET clause and bound-values slice.
func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	if _, ok := b.allowed[column]; !ok {
		if b.err == nil {
			b.err = fmt.Errorf("column %q is not updatable on %s", column, b.table)
		}
		return b
	}
	b.assignments = append(b.assignments, assignment{column: column, value: value})
	return b
}

// SetIf records the assignment only when supplied is true, so handlers can
// forward optional request fields without branching.
func (b *UpdateBuilder) SetIf(supplied bool, column string, value any) *UpdateBuilder {
	if supplied {
		return b.Set(column, value)
	}
	return b
}

// Len reports how many assignments were collected.
func (b *UpdateBuilder) Len() int {
	return len(b.assignments)
}

// Build renders the statement:
//
//	UPDATE <table> SET "c1" = $1, ..., "updatedAt" = CURRENT_TIMESTAMP
//	WHERE <idExpr> = $n RETURNING <returning>
//
// idExpr is the caller's WHERE column expression (e.g. `"id"` or a cast
// form for environment-dependent key types); id is always the last bound
// value. The placeholder count equals len(values) on every path.
func (b *UpdateBuilder) Build(idExpr string, id any, returning string) (string, []any, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	if len(b.assignments) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}

	fragments := make([]string, 0, len(b.assignments)+1)
	values := make([]any, 0, len(b.assignments)+1)

	for i, a := range b.assignments {
		fragments = append(fragments, fmt.Sprintf(`"%s" = $%d`, a.column, i+1))
		values = append(values, a.value)
	}
	fragments = append(fragments, `"updatedAt" = CURRENT_TIMESTAMP`)
	values = append(values, id)

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(b.table)
	sb.WriteString(" SET ")
	sb.WriteString(strings.Join(fragments, ", "))
	sb.WriteString(fmt.Sprintf(" WHERE %s = $%d", idExpr, len(values)))
	if returning != "" {
		sb.WriteString(" RETURNING ")
		sb.WriteString(returning)
	}

	return sb.String(), values, nil
}
