// api/store/projection.go
package store

import (
	"fmt"
	"strings"
)

// ListCap bounds every list read. It is a fixed design constant, not a
// per-request knob.
const ListCap = 100

// stableOrder is the sort applied to every list read: presentation order
// first, then the serial row id so that ties resolve in insertion order.
const stableOrder = "sort_order ASC, internal_id ASC"

// projection declares, per entity, exactly which columns may leave the
// database. Excluded fields (the serial internal_id, row timestamps, and for
// contact the is_active flag) are simply never selected, so no post-fetch
// field stripping is needed anywhere.
type projection struct {
	table   string
	columns []string
}

func (p projection) selectClause() string {
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(p.columns, ", "), p.table)
}

// listClause is the full query every list read runs: active records only, in
// stable presentation order, capped at ListCap rows.
func (p projection) listClause() string {
	return fmt.Sprintf("%s WHERE is_active = true ORDER BY %s LIMIT %d",
		p.selectClause(), stableOrder, ListCap)
}

var (
	projectProjection = projection{
		table: "projects",
		columns: []string{
			"id", "title", "short_desc", "description",
			"details", "impact", "tech_stack",
			"image", "github", "sort_order", "is_active",
		},
	}

	skillProjection = projection{
		table:   "skills",
		columns: []string{"category", "skills", "sort_order", "is_active"},
	}

	experienceProjection = projection{
		table:   "experience",
		columns: []string{"title", "description", "sort_order", "is_active"},
	}

	contactProjection = projection{
		table:   "contact_info",
		columns: []string{"email", "linkedin", "github", "resume"},
	}
)
