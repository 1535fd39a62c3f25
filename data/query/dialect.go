package query

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Dialect captures the SQL differences between the supported databases.
type Dialect struct {
	Name string
	// Like is the case-insensitive pattern operator.
	Like string
	// QuoteChar wraps identifiers.
	QuoteChar string
	// Driver is the database/sql driver name; it selects the bind style.
	Driver string
}

var (
	SQLite   = Dialect{Name: "sqlite", Like: "LIKE", QuoteChar: `"`, Driver: "sqlite3"}
	MySQL    = Dialect{Name: "mysql", Like: "LIKE", QuoteChar: "`", Driver: "mysql"}
	Postgres = Dialect{Name: "postgres", Like: "ILIKE", QuoteChar: `"`, Driver: "pgx"}
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Quote validates ident and quotes each dotted part.
func (d Dialect) Quote(ident string) (string, error) {
	if !identPattern.MatchString(ident) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, ident)
	}
	parts := strings.Split(ident, ".")
	for i, p := range parts {
		parts[i] = d.QuoteChar + p + d.QuoteChar
	}
	return strings.Join(parts, "."), nil
}

// Rebind rewrites the ? markers in query into the driver's bind style.
func (d Dialect) Rebind(query string) string {
	return sqlx.Rebind(sqlx.BindType(d.Driver), query)
}

// DialectByName returns the dialect registered for a driver name.
func DialectByName(name string) (Dialect, bool) {
	switch strings.ToLower(name) {
	case "sqlite", "sqlite3":
		return SQLite, true
	case "mysql":
		return MySQL, true
	case "postgres", "postgresql", "pgx":
		return Postgres, true
	}
	return Dialect{}, false
}

// compiler renders predicates into SQL text and arguments.
type compiler struct {
	d    Dialect
	sb   strings.Builder
	args []any
}

func (c *compiler) bind(v any) {
	c.args = append(c.args, v)
	c.sb.WriteByte('?')
}

func (c *compiler) predicate(p Predicate) error {
	switch p := p.(type) {
	case Cond:
		return c.cond(p)
	case Group:
		return c.group(p)
	case nil:
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedOp, p)
	}
}

func (c *compiler) cond(p Cond) error {
	col, err := c.d.Quote(p.Field)
	if err != nil {
		return err
	}
	c.sb.WriteString(col)
	switch p.Op {
	case OpEq:
		if p.Value == nil {
			c.sb.WriteString(" IS NULL")
			return nil
		}
		c.sb.WriteString(" = ")
	case OpNe:
		if p.Value == nil {
			c.sb.WriteString(" IS NOT NULL")
			return nil
		}
		c.sb.WriteString(" <> ")
	case OpLike:
		c.sb.WriteString(" " + c.d.Like + " ")
	case OpNotLike:
		c.sb.WriteString(" NOT " + c.d.Like + " ")
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOp, p.Op)
	}
	c.bind(p.Value)
	return nil
}

func (c *compiler) group(g Group) error {
	preds := make([]Predicate, 0, len(g.Preds))
	for _, p := range g.Preds {
		if p != nil {
			preds = append(preds, p)
		}
	}
	if len(preds) == 0 {
		// an empty AND is true, an empty OR is false
		if g.Or {
			c.sb.WriteString("1 = 0")
		} else {
			c.sb.WriteString("1 = 1")
		}
		return nil
	}

	sep := " AND "
	if g.Or {
		sep = " OR "
	}
	c.sb.WriteByte('(')
	for i, p := range preds {
		if i > 0 {
			c.sb.WriteString(sep)
		}
		if err := c.predicate(p); err != nil {
			return err
		}
	}
	c.sb.WriteByte(')')
	return nil
}

// where renders the conjunction of preds, without the WHERE keyword.
func (c *compiler) where(preds []Predicate) error {
	for i, p := range preds {
		if i > 0 {
			c.sb.WriteString(" AND ")
		}
		if err := c.predicate(p); err != nil {
			return err
		}
	}
	return nil
}
