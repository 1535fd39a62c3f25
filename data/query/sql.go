package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/ncobase/tablekit/paging"
	"github.com/ncobase/tablekit/types"
)

// SQLSource builds queries against an sqlx handle.
type SQLSource struct {
	db      *sqlx.DB
	dialect Dialect
}

// NewSQLSource returns a source over db speaking dialect.
func NewSQLSource(db *sqlx.DB, dialect Dialect) *SQLSource {
	return &SQLSource{db: db, dialect: dialect}
}

// Dialect returns the dialect the source renders SQL in.
func (s *SQLSource) Dialect() Dialect { return s.dialect }

// NewQuery opens a builder over the table named model.
func (s *SQLSource) NewQuery(model string) Builder {
	return &sqlQuery{src: s, state: state{model: model}}
}

type sqlQuery struct {
	src *SQLSource
	state
}

func (q *sqlQuery) Where(p Predicate) Builder {
	return &sqlQuery{src: q.src, state: q.state.where(p)}
}

func (q *sqlQuery) OrderBy(field string, order types.Order) Builder {
	return &sqlQuery{src: q.src, state: q.state.orderBy(field, order)}
}

func (q *sqlQuery) LikeOperator() string { return q.src.dialect.Like }

// Statements returns the count and select statements for one page, with
// their shared arguments.
func (q *sqlQuery) Statements(perPage, page int) (count, selectSQL string, args []any, err error) {
	d := q.src.dialect
	table, err := d.Quote(q.model)
	if err != nil {
		return "", "", nil, err
	}

	c := &compiler{d: d}
	if err := c.where(q.preds); err != nil {
		return "", "", nil, err
	}
	where := ""
	if c.sb.Len() > 0 {
		where = " WHERE " + c.sb.String()
	}

	var order strings.Builder
	for i, o := range q.orders {
		col, err := d.Quote(o.field)
		if err != nil {
			return "", "", nil, err
		}
		if i == 0 {
			order.WriteString(" ORDER BY ")
		} else {
			order.WriteString(", ")
		}
		order.WriteString(col + " " + strings.ToUpper(string(o.order)))
	}

	params := paging.NormalizeParams(paging.Params{Page: page, PerPage: perPage})
	count = d.Rebind("SELECT COUNT(*) FROM " + table + where)
	selectSQL = d.Rebind(fmt.Sprintf("SELECT * FROM %s%s%s LIMIT %d OFFSET %d",
		table, where, order.String(), params.PerPage, params.Offset()))
	return count, selectSQL, c.args, nil
}

func (q *sqlQuery) Paginate(ctx context.Context, perPage, page int) (*paging.Page[Row], error) {
	count, selectSQL, args, err := q.Statements(perPage, page)
	if err != nil {
		return nil, err
	}

	params := paging.Params{Page: page, PerPage: perPage}
	return paging.Paginate(params, func(_, _ int) ([]Row, int, error) {
		var total int
		if err := q.src.db.GetContext(ctx, &total, count, args...); err != nil {
			return nil, 0, fmt.Errorf("count %s: %w", q.model, err)
		}
		rows, err := q.src.db.QueryxContext(ctx, selectSQL, args...)
		if err != nil {
			return nil, 0, fmt.Errorf("select %s: %w", q.model, err)
		}
		defer rows.Close()

		items, err := scanRows(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan %s: %w", q.model, err)
		}
		return items, total, nil
	})
}

func scanRows(rows *sqlx.Rows) ([]Row, error) {
	var out []Row
	for rows.Next() {
		row := make(Row)
		if err := rows.MapScan(row); err != nil {
			return nil, err
		}
		// text columns arrive as []byte from some drivers
		for col, v := range row {
			if b, ok := v.([]byte); ok {
				row[col] = string(b)
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
