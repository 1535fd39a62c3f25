package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
app_name: tablekit-test
logger:
  level: 2
  output: stderr
data:
  database:
    driver: sqlite
    source: "file:` + filepath.Join(t.TempDir(), "users.db") + `"
table:
  default_value: "n/a"
  search_debounce: 0.25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	conf := writeConfig(t)

	out, err := run(t, "render", "users", "-c", conf,
		"--param", "users_per_page=2",
		"--param", "users_sort=name",
		"--role", "admin")
	require.NoError(t, err)

	var env map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.Equal(t, "users", env["key"])
	assert.EqualValues(t, 8, env["total"])
	assert.EqualValues(t, 2, env["perPage"])
	assert.EqualValues(t, 0.25, env["debounce"])
	assert.Len(t, env["items"], 2)
	assert.Len(t, env["headings"], 6)
}

func TestRenderCommandErrors(t *testing.T) {
	conf := writeConfig(t)

	_, err := run(t, "render", "missing", "-c", conf)
	assert.ErrorContains(t, err, "table not found")

	_, err = run(t, "render", "users", "-c", conf, "--param", "novalue")
	assert.ErrorContains(t, err, "format invalid")

	_, err = run(t, "render", "users", "-c", conf,
		"--param", "users_filter_name=a",
		"--param", "users_filter_name_case=bogus")
	assert.ErrorContains(t, err, `invalid case "bogus"`)
}

func TestMigrateSeedCommand(t *testing.T) {
	conf := writeConfig(t)

	out, err := run(t, "migrate", "seed", "-c", conf)
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded sqlite database")

	out, err = run(t, "migrate", "up", "-c", conf)
	require.NoError(t, err)
	assert.Contains(t, out, "Migrated sqlite database")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version", "--json")
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "goVersion")
}

func TestParseParams(t *testing.T) {
	values, err := parseParams([]string{"a=1", "a=2", " b =x=y", "c="})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, values["a"])
	assert.Equal(t, "x=y", values.Get("b"))
	assert.True(t, values.Has("c"))

	_, err = parseParams([]string{"=1"})
	assert.Error(t, err)
}
