package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	src := newUsers(3)
	users := New(&UserListTable{key: "users"}, src, nil)
	admins := New(&UserListTable{key: "admins"}, src, nil)

	r := NewRegistry()
	require.NoError(t, r.Register(users, admins))
	assert.Equal(t, []string{"admins", "users"}, r.Keys())

	got, err := r.Get("users")
	require.NoError(t, err)
	assert.Same(t, users, got)

	_, err = r.Get("missing")
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestRegistryRejectsDuplicateKeys(t *testing.T) {
	src := newUsers(1)
	r := NewRegistry()
	require.NoError(t, r.Register(New(&UserListTable{key: "users"}, src, nil)))

	err := r.Register(
		New(&UserListTable{key: "staff"}, src, nil),
		New(&UserListTable{key: "users"}, src, nil),
	)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, []string{"users"}, r.Keys(), "failed register must not add anything")

	err = r.Register(
		New(&UserListTable{key: "a"}, src, nil),
		New(&UserListTable{key: "a"}, src, nil),
	)
	assert.ErrorIs(t, err, ErrDuplicateKey)
}
