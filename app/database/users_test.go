package database

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkApply(t *testing.T) {
	t.Run("skips missing rows and counts the rest", func(t *testing.T) {
		var applied []string
		missing := map[string]bool{"u2": true}

		count, err := bulkApply([]string{"u1", "u2", "u3"}, func(id string) error {
			if missing[id] {
				return sql.ErrNoRows
			}
			applied = append(applied, id)
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, []string{"u1", "u3"}, applied)
	})

	t.Run("any other error stops with the partial count", func(t *testing.T) {
		boom := errors.New("connection reset")

		count, err := bulkApply([]string{"u1", "u2", "u3"}, func(id string) error {
			if id == "u2" {
				return boom
			}
			return nil
		})

		assert.Equal(t, boom, err)
		assert.Equal(t, 1, count)
	})

	t.Run("empty id list affects nothing", func(t *testing.T) {
		count, err := bulkApply(nil, func(string) error {
			t.Fatal("apply should not run")
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestUserConditions(t *testing.T) {
	t.Run("deleted rows stay out by default", func(t *testing.T) {
		conditions, args := userConditions(UserFilters{})
		assert.Equal(t, []string{"status != 'deleted'"}, conditions)
		assert.Empty(t, args)
	})

	t.Run("explicit status filter replaces the exclusion", func(t *testing.T) {
		conditions, args := userConditions(UserFilters{Status: "deleted", Role: "Admin"})
		assert.Equal(t, []string{"status = $1", "role = $2"}, conditions)
		assert.Equal(t, []interface{}{"deleted", "Admin"}, args)
	})

	t.Run("search matches name or email with one placeholder", func(t *testing.T) {
		conditions, args := userConditions(UserFilters{Search: "Priya"})
		require.Len(t, conditions, 2)
		assert.Equal(t, "(LOWER(name) LIKE $1 OR LOWER(email) LIKE $1)", conditions[1])
		assert.Equal(t, []interface{}{"%priya%"}, args)
	})
}
