package repository

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// usersSchemaColumns extracts the column names of the users table from
// db/schema.sql so the queries can be checked against the schema the
// repo actually ships.
func usersSchemaColumns(t *testing.T) map[string]bool {
	t.Helper()

	raw, err := os.ReadFile("../../../db/schema.sql")
	require.NoError(t, err)

	schema := string(raw)
	start := strings.Index(schema, "CREATE TABLE IF NOT EXISTS users (")
	require.NotEqual(t, -1, start, "users table missing from schema")

	block := schema[start:]
	end := strings.Index(block, ");")
	require.NotEqual(t, -1, end)
	block = block[:end]

	ident := regexp.MustCompile(`^[a-z_]+$`)
	columns := make(map[string]bool)
	for _, line := range strings.Split(block, "\n")[1:] {
		fields := strings.Fields(line)
		if len(fields) >= 2 && ident.MatchString(fields[0]) {
			columns[fields[0]] = true
		}
	}
	require.NotEmpty(t, columns)
	return columns
}

func TestUserQueriesMatchSchema(t *testing.T) {
	columns := usersSchemaColumns(t)

	t.Run("shared column list", func(t *testing.T) {
		for _, col := range strings.Split(userColumns, ",") {
			col = strings.TrimSpace(col)
			assert.True(t, columns[col], "column %q not defined in schema", col)
		}
	})

	t.Run("update assignments", func(t *testing.T) {
		targets := regexp.MustCompile(`([a-z_]+) = \$`).FindAllStringSubmatch(userUpdateQuery, -1)
		require.NotEmpty(t, targets)
		for _, target := range targets {
			assert.True(t, columns[target[1]], "column %q not defined in schema", target[1])
		}
	})

	t.Run("password is stored as password_hash", func(t *testing.T) {
		assert.True(t, columns["password_hash"])
		assert.False(t, columns["password"])
		assert.Contains(t, userColumns, "password_hash")
	})
}
