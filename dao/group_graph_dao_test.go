package dao

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dev-mohitbeniwal/backoffice/model"
)

func TestSyncGroupQuery(t *testing.T) {
	assert.Contains(t, SyncGroupQuery, "MERGE (g:Group {id: $id})")
	// The parent is merged by id, so a child synced before its parent still gets its edge.
	assert.Contains(t, SyncGroupQuery, "CASE WHEN $parentID = '' THEN [] ELSE [1] END")
	assert.Contains(t, SyncGroupQuery, "MERGE (p:Group {id: $parentID})")
	assert.NotContains(t, SyncGroupQuery, "OPTIONAL MATCH (p:Group")
	// The old parent edge is removed before the new one is linked.
	assert.Less(t, strings.Index(SyncGroupQuery, "DELETE old"), strings.Index(SyncGroupQuery, "MERGE (p:Group"))
	assert.Less(t, strings.Index(SyncGroupQuery, "MERGE (p:Group"), strings.Index(SyncGroupQuery, "MERGE (g)-[:CHILD_OF]->(p)"))
}

func TestSyncGroupParams(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	params := syncGroupParams(model.Group{ID: "g2", Name: "Child", Parent: "g1", CreatedBy: "u1", CreatedAt: createdAt})

	assert.Equal(t, map[string]interface{}{
		"id":        "g2",
		"name":      "Child",
		"parentID":  "g1",
		"createdBy": "u1",
		"createdAt": "2024-05-01T12:00:00Z",
	}, params)
}

func TestListDescendantsQuery(t *testing.T) {
	assert.Contains(t, ListDescendantsQuery, "[:CHILD_OF*1..]->(g:Group {id: $id})")
	assert.Contains(t, ListDescendantsQuery, "min(length(path)) AS depth")
	assert.Contains(t, ListDescendantsQuery, "ORDER BY depth, name")
}
