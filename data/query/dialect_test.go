package query

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/ncobase/tablekit/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		d     Dialect
		ident string
		want  string
	}{
		{SQLite, "users", `"users"`},
		{MySQL, "users", "`users`"},
		{Postgres, "public.users", `"public"."users"`},
	}
	for _, tt := range tests {
		got, err := tt.d.Quote(tt.ident)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "1abc", "name; DROP TABLE users", `a"b`, "a..b", "a."} {
		_, err := SQLite.Quote(bad)
		assert.Truef(t, errors.Is(err, ErrInvalidIdentifier), "Quote(%q) err = %v", bad, err)
	}
}

func TestDialectByName(t *testing.T) {
	d, ok := DialectByName("pgx")
	require.True(t, ok)
	assert.Equal(t, Postgres, d)

	_, ok = DialectByName("oracle")
	assert.False(t, ok)
}

func TestStatementsSQLite(t *testing.T) {
	src := NewSQLSource(nil, SQLite)
	q := src.NewQuery("users").
		Where(Any(Like("name", "%ann%"), Like("email", "%ann%"))).
		Where(NotLike("name", "z%")).
		OrderBy("id", types.Descending).(*sqlQuery)

	count, sel, args, err := q.Statements(10, 3)
	require.NoError(t, err)
	assert.Equal(t, `SELECT COUNT(*) FROM "users" WHERE ("name" LIKE ? OR "email" LIKE ?) AND "name" NOT LIKE ?`, count)
	assert.Equal(t, `SELECT * FROM "users" WHERE ("name" LIKE ? OR "email" LIKE ?) AND "name" NOT LIKE ? ORDER BY "id" DESC LIMIT 10 OFFSET 20`, sel)
	assert.Equal(t, []any{"%ann%", "%ann%", "z%"}, args)
}

func TestStatementsPostgres(t *testing.T) {
	src := NewSQLSource(nil, Postgres)
	q := src.NewQuery("users").
		Where(Eq("status", "active")).
		Where(Any(Like("name", "%a%"), Ne("role", nil))).(*sqlQuery)

	_, sel, args, err := q.Statements(20, 1)
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "users" WHERE "status" = $1 AND ("name" ILIKE $2 OR "role" IS NOT NULL) LIMIT 20 OFFSET 0`, sel)
	assert.Equal(t, []any{"active", "%a%"}, args)
	assert.Equal(t, "ILIKE", q.LikeOperator())
}

func TestStatementsMySQL(t *testing.T) {
	q := NewSQLSource(nil, MySQL).NewQuery("users").
		Where(Ne("name", "bob")).
		OrderBy("name", "sideways").(*sqlQuery)

	count, sel, _, err := q.Statements(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM `users` WHERE `name` <> ?", count)
	assert.Equal(t, "SELECT * FROM `users` WHERE `name` <> ? ORDER BY `name` ASC LIMIT 20 OFFSET 0", sel)
}

func TestRebind(t *testing.T) {
	const q = "SELECT * FROM t WHERE a = ? AND b = ?"
	assert.Equal(t, q, SQLite.Rebind(q))
	assert.Equal(t, q, MySQL.Rebind(q))
	assert.Equal(t, "SELECT * FROM t WHERE a = $1 AND b = $2", Postgres.Rebind(q))
}

func TestStatementsHugePageOffset(t *testing.T) {
	q := NewSQLSource(nil, Postgres).NewQuery("users").(*sqlQuery)

	_, sel, _, err := q.Statements(20, math.MaxInt)
	require.NoError(t, err)
	offset := (math.MaxInt/20 - 1) * 20
	assert.Equal(t, `SELECT * FROM "users" LIMIT 20 OFFSET `+strconv.Itoa(offset), sel)
}

func TestStatementsRejectsUnsafeNames(t *testing.T) {
	src := NewSQLSource(nil, SQLite)

	_, _, _, err := src.NewQuery("users; --").(*sqlQuery).Statements(10, 1)
	assert.ErrorIs(t, err, ErrInvalidIdentifier)

	_, _, _, err = src.NewQuery("users").Where(Eq("a OR 1=1", 1)).(*sqlQuery).Statements(10, 1)
	assert.ErrorIs(t, err, ErrInvalidIdentifier)

	_, _, _, err = src.NewQuery("users").OrderBy("id desc", types.Ascending).(*sqlQuery).Statements(10, 1)
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestEmptyGroups(t *testing.T) {
	q := NewSQLSource(nil, SQLite).NewQuery("t").Where(Any()).Where(All()).(*sqlQuery)
	count, _, _, err := q.Statements(10, 1)
	require.NoError(t, err)
	assert.Equal(t, `SELECT COUNT(*) FROM "t" WHERE 1 = 0 AND 1 = 1`, count)
}

func TestWhereDoesNotMutateBase(t *testing.T) {
	base := NewSQLSource(nil, SQLite).NewQuery("t").Where(Eq("a", 1))
	_ = base.Where(Eq("b", 2))
	_ = base.Where(Eq("c", 3))

	count, _, args, err := base.(*sqlQuery).Statements(10, 1)
	require.NoError(t, err)
	assert.Equal(t, `SELECT COUNT(*) FROM "t" WHERE "a" = ?`, count)
	assert.Equal(t, []any{1}, args)
}
