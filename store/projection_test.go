package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Internal row ids and row timestamps must never be selectable, and the
// contact projection additionally hides is_active.
func TestProjectionsExcludeInternalColumns(t *testing.T) {
	for _, p := range []projection{projectProjection, skillProjection, experienceProjection, contactProjection} {
		assert.NotContains(t, p.columns, "internal_id", "table %s", p.table)
		assert.NotContains(t, p.columns, "created_at", "table %s", p.table)
		assert.NotContains(t, p.columns, "updated_at", "table %s", p.table)
	}
	assert.NotContains(t, contactProjection.columns, "is_active")
}

func TestProjectionSelectClause(t *testing.T) {
	assert.Equal(t,
		"SELECT email, linkedin, github, resume FROM contact_info",
		contactProjection.selectClause())
}

// Every list read must filter on is_active, sort ascending by sort_order
// with internal_id breaking ties in insertion order, and cap at 100 rows.
func TestListClauseOrderingAndCap(t *testing.T) {
	assert.Equal(t,
		"SELECT title, description, sort_order, is_active FROM experience"+
			" WHERE is_active = true ORDER BY sort_order ASC, internal_id ASC LIMIT 100",
		experienceProjection.listClause())

	for _, p := range []projection{projectProjection, skillProjection, experienceProjection} {
		clause := p.listClause()
		assert.Contains(t, clause, "WHERE is_active = true", "table %s", p.table)
		assert.Contains(t, clause, "ORDER BY sort_order ASC, internal_id ASC", "table %s", p.table)
		assert.Contains(t, clause, "LIMIT 100", "table %s", p.table)
	}
}
