package query

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/ncobase/tablekit/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func openSQLite(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT, email TEXT, city TEXT)`)
	require.NoError(t, err)
	for i := 1; i <= 25; i++ {
		city := "Berlin"
		if i%2 == 0 {
			city = "Paris"
		}
		_, err = db.Exec(`INSERT INTO users (id, name, email, city) VALUES (?, ?, ?, ?)`,
			i, fmt.Sprintf("User %02d", i), fmt.Sprintf("user%02d@example.com", i), city)
		require.NoError(t, err)
	}
	return db
}

func TestSQLitePaginate(t *testing.T) {
	src := NewSQLSource(openSQLite(t), SQLite)

	page, err := src.NewQuery("users").OrderBy("id", types.Ascending).Paginate(context.Background(), 10, 3)
	require.NoError(t, err)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 3, page.LastPage)
	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, 21, page.From)
	assert.Equal(t, 25, page.To)
	require.Len(t, page.Items, 5)
	assert.Equal(t, int64(21), page.Items[0]["id"])
	assert.Equal(t, "User 21", page.Items[0]["name"])
}

func TestSQLiteSearchAndFilter(t *testing.T) {
	src := NewSQLSource(openSQLite(t), SQLite)

	q := src.NewQuery("users").
		Where(Any(Like("name", "%user 1%"), Like("email", "%user1%"))).
		Where(Eq("city", "Paris")).
		OrderBy("id", types.Descending)
	page, err := q.Paginate(context.Background(), 20, 1)
	require.NoError(t, err)

	var got []int64
	for _, r := range page.Items {
		got = append(got, r["id"].(int64))
	}
	assert.Equal(t, []int64{18, 16, 14, 12, 10}, got)
	assert.Equal(t, 5, page.Total)
}

func TestSQLiteQueryError(t *testing.T) {
	src := NewSQLSource(openSQLite(t), SQLite)
	_, err := src.NewQuery("nope").Paginate(context.Background(), 10, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pagination error")
}

func TestSQLitePaginateHugePage(t *testing.T) {
	src := NewSQLSource(openSQLite(t), SQLite)

	page, err := src.NewQuery("users").Paginate(context.Background(), 20, math.MaxInt)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, math.MaxInt/20, page.CurrentPage)
	assert.Zero(t, page.From)
	assert.Zero(t, page.To)
}
