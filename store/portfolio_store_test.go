package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devfolio/api/models"
)

func TestGroupSkillsLastWriteWins(t *testing.T) {
	// Two active records sharing a category: the one later in sort order
	// replaces the earlier one outright, lists are never merged.
	groups := []models.SkillGroup{
		{Category: "Backend", Skills: []string{"Go"}, Order: 1, IsActive: true},
		{Category: "Backend", Skills: []string{"Python"}, Order: 2, IsActive: true},
	}

	out := groupSkills(groups)

	require.Len(t, out, 1)
	assert.Equal(t, []string{"Python"}, out["Backend"])
}

func TestGroupSkillsDistinctCategories(t *testing.T) {
	groups := []models.SkillGroup{
		{Category: "Languages", Skills: []string{"Go", "C++"}, Order: 1},
		{Category: "Backend", Skills: []string{"gin", "Postgres"}, Order: 2},
	}

	out := groupSkills(groups)

	require.Len(t, out, 2)
	assert.Equal(t, []string{"Go", "C++"}, out["Languages"])
	assert.Equal(t, []string{"gin", "Postgres"}, out["Backend"])
}

func TestGroupSkillsEmpty(t *testing.T) {
	out := groupSkills(nil)
	require.NotNil(t, out)
	assert.Empty(t, out)
}
