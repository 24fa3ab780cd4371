package database

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Santhoshjk159/PMT-sub000/app/models"
)

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{10, 10},
		{25, 25},
		{50, 50},
		{100, 100},
		{0, 10},
		{-5, 10},
		{33, 10},
		{1000, 10},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("limit %d", tt.input), func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeLimit(tt.input))
		})
	}
}

func TestSortClauseWhitelist(t *testing.T) {
	assert.Equal(t, "p.created_at ASC", sortClause("created_asc"))
	assert.Equal(t, "p.updated_at DESC", sortClause("updated_desc"))
	assert.Equal(t, "p.cfirstname ASC, p.clastname ASC", sortClause("name_asc"))

	// Anything unrecognized falls back to created-descending.
	assert.Equal(t, "p.created_at DESC", sortClause(""))
	assert.Equal(t, "p.created_at DESC", sortClause("id; DROP TABLE paperworkdetails"))
}

func TestVisibilityConditions(t *testing.T) {
	t.Run("admin and contracts see everything", func(t *testing.T) {
		for _, role := range []models.Role{models.RoleAdmin, models.RoleContracts} {
			caller := models.Caller{Email: "boss@example.com", Role: role, TeamKey: "Boss - EMP001"}
			conditions, args, argIndex := visibilityConditions(caller, nil, nil, 1)
			assert.Empty(t, conditions)
			assert.Empty(t, args)
			assert.Equal(t, 1, argIndex)
		}
	})

	t.Run("team key scopes to submitter or any collaboration column", func(t *testing.T) {
		caller := models.Caller{Email: "lead@example.com", Role: models.RoleManager, TeamKey: "Lead - EMP100"}
		conditions, args, argIndex := visibilityConditions(caller, nil, nil, 1)

		assert.Len(t, conditions, 1)
		assert.Equal(t, 3, argIndex)
		assert.Equal(t, []interface{}{"lead@example.com", "Lead - EMP100"}, args)

		clause := conditions[0]
		assert.Contains(t, clause, "p.submittedby = $1")
		for _, col := range models.CollaborationColumns {
			assert.Contains(t, clause, "p."+col+" = $2")
		}
		assert.Equal(t, len(models.CollaborationColumns)+1, strings.Count(clause, " OR ")+1,
			"one OR branch per collaboration column plus the submitter branch")
	})

	t.Run("no team key scopes to own submissions only", func(t *testing.T) {
		caller := models.Caller{Email: "solo@example.com", Role: models.RoleUser}
		conditions, args, argIndex := visibilityConditions(caller, nil, nil, 1)

		assert.Equal(t, []string{"p.submittedby = $1"}, conditions)
		assert.Equal(t, []interface{}{"solo@example.com"}, args)
		assert.Equal(t, 2, argIndex)
	})
}

func TestPaperworkWhereCombinesScopeAndFilters(t *testing.T) {
	caller := models.Caller{Email: "solo@example.com", Role: models.RoleUser}
	filters := PaperworkFilters{
		Status: string(models.StatusStarted),
		Client: "Acme",
	}

	where, args := paperworkWhere(caller, filters)
	assert.True(t, strings.HasPrefix(where, " WHERE "))
	assert.Contains(t, where, "p.submittedby = $1")
	assert.Contains(t, where, "p.status = $2")
	assert.Contains(t, where, "LOWER(p.client) LIKE $3")
	assert.Equal(t, []interface{}{"solo@example.com", string(models.StatusStarted), "%acme%"}, args)
}

func TestPaperworkWhereFullAccessNoFilters(t *testing.T) {
	caller := models.Caller{Email: "admin@example.com", Role: models.RoleAdmin}
	where, args := paperworkWhere(caller, PaperworkFilters{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFilterConditionsPlaceholders(t *testing.T) {
	filters := PaperworkFilters{
		Search:          "rao",
		StartDate:       "2024-01-01",
		EndDate:         "2024-12-31",
		SubmittedBy:     "lead",
		Status:          "started",
		Client:          "acme",
		JobTitle:        "engineer",
		BusinessUnit:    "Digital",
		DeliveryManager: "X - EMP100",
		AccountLead:     "Y - EMP200",
		Location:        "austin",
	}

	conditions, args, argIndex := filterConditions(filters, nil, nil, 1)
	assert.Len(t, conditions, 11)
	assert.Len(t, args, 11)
	assert.Equal(t, 12, argIndex, "every filter consumes exactly one placeholder")

	joined := strings.Join(conditions, " AND ")
	assert.Contains(t, joined, "p.delivery_manager = $9 OR p.delivery_manager1 = $9")
	assert.Contains(t, joined, "LOWER(p.work_location) LIKE $11 OR LOWER(p.project_location) LIKE $11")
}

func TestRecordTypeLabel(t *testing.T) {
	caller := models.Caller{Email: "me@example.com"}
	assert.Equal(t, "Own Record", recordTypeLabel(caller, "ME@example.com", "Me"))
	assert.Equal(t, "Team Member: Jane Smith", recordTypeLabel(caller, "jane@example.com", "Jane Smith"))
	assert.Equal(t, "Team Member: jane@example.com", recordTypeLabel(caller, "jane@example.com", ""),
		"falls back to the email when the submitter has no account")
}
