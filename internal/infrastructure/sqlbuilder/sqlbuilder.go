// Package sqlbuilder assembles filtered SELECT statements whose WHERE clauses
// and bound arguments are kept in one ordered list, so the count and the page
// variants of a listing always filter identically.
package sqlbuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect controls how positional placeholders are rendered
type Dialect int

const (
	// Question renders "?" placeholders (MySQL, SQLite)
	Question Dialect = iota
	// Dollar renders "$1, $2, ..." placeholders (PostgreSQL)
	Dollar
)

// DialectFor maps a database/sql driver name to its placeholder dialect
func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "postgres", "pgx":
		return Dollar, nil
	case "mysql", "sqlite":
		return Question, nil
	default:
		return Question, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// likeEscape is the escape character used by Contains. It is not special in
// any supported dialect's string literals, unlike the backslash in MySQL.
const likeEscape = "!"

var likeReplacer = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// Predicates is an ordered accumulator of WHERE clauses. Every clause owns
// exactly one "?" marker and exactly one argument, appended together.
type Predicates struct {
	clauses []string
	args    []any
}

// Add appends a clause template holding a single "?" and its bound value
func (p *Predicates) Add(clause string, arg any) *Predicates {
	if n := strings.Count(clause, "?"); n != 1 {
		panic(fmt.Sprintf("sqlbuilder: clause %q has %d placeholders, want 1", clause, n))
	}
	p.clauses = append(p.clauses, clause)
	p.args = append(p.args, arg)
	return p
}

// Eq adds "column = ?"
func (p *Predicates) Eq(column string, value any) *Predicates {
	return p.Add(column+" = ?", value)
}

// Gte adds "column >= ?"
func (p *Predicates) Gte(column string, value any) *Predicates {
	return p.Add(column+" >= ?", value)
}

// Lte adds "column <= ?"
func (p *Predicates) Lte(column string, value any) *Predicates {
	return p.Add(column+" <= ?", value)
}

// Contains adds a substring match. LIKE wildcards inside value match literally.
func (p *Predicates) Contains(column string, value string) *Predicates {
	pattern := "%" + likeReplacer.Replace(value) + "%"
	return p.Add(column+" LIKE ? ESCAPE '"+likeEscape+"'", pattern)
}

// Len returns the number of accumulated clauses
func (p *Predicates) Len() int {
	if p == nil {
		return 0
	}
	return len(p.clauses)
}

// Args returns a copy of the bound arguments in clause order
func (p *Predicates) Args() []any {
	if p == nil {
		return nil
	}
	out := make([]any, len(p.args))
	copy(out, p.args)
	return out
}

// Where renders "WHERE a AND b ...", or "" when nothing was added
func (p *Predicates) Where() string {
	if p.Len() == 0 {
		return ""
	}
	return "WHERE " + strings.Join(p.clauses, " AND ")
}

// Select describes a listing over a fixed relation
type Select struct {
	Columns []string
	From    string
	Where   *Predicates
	OrderBy string
}

// Count renders the cardinality statement for the filtered relation
func (s Select) Count(d Dialect) (string, []any) {
	parts := []string{"SELECT COUNT(*) AS total FROM " + s.From}
	if where := s.Where.Where(); where != "" {
		parts = append(parts, where)
	}
	return Rebind(d, strings.Join(parts, " ")), s.Where.Args()
}

// Page renders the windowed statement. limit and offset are bound after
// the predicate arguments, in that order.
func (s Select) Page(d Dialect, limit, offset int) (string, []any) {
	parts := []string{"SELECT " + strings.Join(s.Columns, ", ") + " FROM " + s.From}
	if where := s.Where.Where(); where != "" {
		parts = append(parts, where)
	}
	if s.OrderBy != "" {
		parts = append(parts, "ORDER BY "+s.OrderBy)
	}
	parts = append(parts, "LIMIT ? OFFSET ?")

	args := append(s.Where.Args(), limit, offset)
	return Rebind(d, strings.Join(parts, " ")), args
}

// Rebind rewrites "?" markers for the dialect. Markers inside single-quoted
// literals are left alone.
func Rebind(d Dialect, query string) string {
	if d == Question {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch {
		case ch == '\'':
			inQuote = !inQuote
			b.WriteByte(ch)
		case ch == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}
