// Package gaql assembles Google Ads Query Language statements.
//
// Clauses are joined with AND in the order they are added. String values
// are always quoted and escaped; numeric IDs are emitted bare only when they
// consist solely of digits.
package gaql

import (
	"strconv"
	"strings"
)

// Clause is one rendered predicate of a WHERE expression.
type Clause string

// Query is a GAQL SELECT statement under construction.
type Query struct {
	fields  []string
	from    string
	where   []Clause
	orderBy []string
	limit   int
}

// Select starts a query projecting fields.
func Select(fields ...string) *Query {
	return &Query{fields: fields}
}

// From sets the queried resource.
func (q *Query) From(resource string) *Query {
	q.from = resource
	return q
}

// Where appends clauses; empty clauses are skipped so optional filters can
// be passed unconditionally.
func (q *Query) Where(clauses ...Clause) *Query {
	for _, c := range clauses {
		if c != "" {
			q.where = append(q.where, c)
		}
	}
	return q
}

// OrderBy appends an ordering term.
func (q *Query) OrderBy(field string, desc bool) *Query {
	if desc {
		field += " DESC"
	} else {
		field += " ASC"
	}
	q.orderBy = append(q.orderBy, field)
	return q
}

// Limit caps the number of rows. Zero means no LIMIT clause.
func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

// String renders the statement.
func (q *Query) String() string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(q.fields, ", "))
	b.WriteString(" FROM ")
	b.WriteString(q.from)
	if len(q.where) > 0 {
		b.WriteString(" WHERE ")
		for i, c := range q.where {
			if i > 0 {
				b.WriteString(" AND ")
			}
			b.WriteString(string(c))
		}
	}
	if len(q.orderBy) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(q.orderBy, ", "))
	}
	if q.limit > 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(q.limit))
	}
	return b.String()
}

// Quote renders s as a single-quoted GAQL string literal.
func Quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}

// ID renders an entity ID. Anything that is not all digits is quoted so it
// can never change the structure of the statement.
func ID(id string) string {
	if isDigits(id) {
		return id
	}
	return Quote(id)
}

// Eq is field = 'value'.
func Eq(field, value string) Clause {
	return Clause(field + " = " + Quote(value))
}

// EqID is field = id, with id as a numeric literal. An empty id yields an
// empty clause.
func EqID(field, id string) Clause {
	if id == "" {
		return ""
	}
	return Clause(field + " = " + ID(id))
}

// Neq is field != 'value'.
func Neq(field, value string) Clause {
	return Clause(field + " != " + Quote(value))
}

// In is field IN ('a', 'b'). An empty list yields an empty clause.
func In(field string, values []string) Clause {
	if len(values) == 0 {
		return ""
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = Quote(v)
	}
	return Clause(field + " IN (" + strings.Join(quoted, ", ") + ")")
}

// InIDs is field IN (1, 2). An empty list yields an empty clause.
func InIDs(field string, ids []string) Clause {
	if len(ids) == 0 {
		return ""
	}
	rendered := make([]string, len(ids))
	for i, id := range ids {
		rendered[i] = ID(id)
	}
	return Clause(field + " IN (" + strings.Join(rendered, ", ") + ")")
}

// Gte is field >= n.
func Gte(field string, n int64) Clause {
	return Clause(field + " >= " + strconv.FormatInt(n, 10))
}

// Bool is field = TRUE|FALSE.
func Bool(field string, v bool) Clause {
	if v {
		return Clause(field + " = TRUE")
	}
	return Clause(field + " = FALSE")
}

// During is field DURING PRESET. The preset must already be validated.
func During(field, preset string) Clause {
	return Clause(field + " DURING " + preset)
}

// DateRange is the segments.date clause for a validated preset, falling
// back to LAST_30_DAYS.
func DateRange(preset string) Clause {
	if preset == "" {
		preset = "LAST_30_DAYS"
	}
	return During("segments.date", preset)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
