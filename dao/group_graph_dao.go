// dao/group_graph_dao.go
package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	logger "github.com/dev-mohitbeniwal/backoffice/logging"
	"github.com/dev-mohitbeniwal/backoffice/model"
	neo4j_schema "github.com/dev-mohitbeniwal/backoffice/model/neo4j"
)

// GroupGraphDAO keeps a projection of the group forest in Neo4j for subtree queries.
// Mongo stays the source of truth.
type GroupGraphDAO struct {
	Driver neo4j.DriverWithContext
}

func NewGroupGraphDAO(driver neo4j.DriverWithContext) *GroupGraphDAO {
	return &GroupGraphDAO{Driver: driver}
}

func (dao *GroupGraphDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on Group ID")
	session := dao.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_group_id IF NOT EXISTS
        FOR (g:` + neo4j_schema.LabelGroup + `) REQUIRE g.` + neo4j_schema.AttrID + ` IS UNIQUE
        `
		_, err := tx.Run(ctx, query, nil)
		return nil, err
	})
	if err != nil {
		logger.Error("Failed to ensure unique constraint on Group ID", zap.Error(err))
		return err
	}
	return nil
}

// SyncGroupQuery upserts the group node and links it to its parent when there is one.
// A parent that has not been synced yet is created as a bare node and filled in by its own sync.
const SyncGroupQuery = `
MERGE (g:` + neo4j_schema.LabelGroup + ` {` + neo4j_schema.AttrID + `: $id})
SET g.` + neo4j_schema.AttrName + ` = $name,
    g.` + neo4j_schema.AttrParentID + ` = $parentID,
    g.` + neo4j_schema.AttrCreatedBy + ` = $createdBy,
    g.` + neo4j_schema.AttrCreatedAt + ` = $createdAt
WITH g
OPTIONAL MATCH (g)-[old:` + neo4j_schema.RelChildOf + `]->()
DELETE old
WITH DISTINCT g
FOREACH (_ IN CASE WHEN $parentID = '' THEN [] ELSE [1] END |
    MERGE (p:` + neo4j_schema.LabelGroup + ` {` + neo4j_schema.AttrID + `: $parentID})
    MERGE (g)-[:` + neo4j_schema.RelChildOf + `]->(p)
)
RETURN g.` + neo4j_schema.AttrID + ` AS id
`

func syncGroupParams(group model.Group) map[string]interface{} {
	return map[string]interface{}{
		"id":        group.ID,
		"name":      group.Name,
		"parentID":  group.Parent,
		"createdBy": group.CreatedBy,
		"createdAt": group.CreatedAt.Format(time.RFC3339),
	}
}

func (dao *GroupGraphDAO) SyncGroup(ctx context.Context, group model.Group) error {
	start := time.Now()
	session := dao.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		result, err := tx.Run(ctx, SyncGroupQuery, syncGroupParams(group))
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})

	if err != nil {
		logger.Error("Failed to sync group to graph",
			zap.Error(err),
			zap.String("groupID", group.ID),
			zap.Duration("duration", time.Since(start)))
		return fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}

	logger.Debug("Group synced to graph",
		zap.String("groupID", group.ID),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// SyncGroups upserts every group in one transaction. Order does not matter.
func (dao *GroupGraphDAO) SyncGroups(ctx context.Context, groups []*model.Group) error {
	start := time.Now()
	session := dao.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		for _, group := range groups {
			result, err := tx.Run(ctx, SyncGroupQuery, syncGroupParams(*group))
			if err != nil {
				return nil, err
			}
			if _, err := result.Consume(ctx); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})

	if err != nil {
		logger.Error("Failed to backfill group graph",
			zap.Error(err),
			zap.Int("groups", len(groups)),
			zap.Duration("duration", time.Since(start)))
		return fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}

	logger.Info("Group graph backfilled",
		zap.Int("groups", len(groups)),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// ListDescendantsQuery matches every group below $id. Depth 1 is a direct child.
const ListDescendantsQuery = `
MATCH path = (d:` + neo4j_schema.LabelGroup + `)-[:` + neo4j_schema.RelChildOf + `*1..]->(g:` + neo4j_schema.LabelGroup + ` {` + neo4j_schema.AttrID + `: $id})
RETURN d.` + neo4j_schema.AttrID + ` AS id,
       d.` + neo4j_schema.AttrName + ` AS name,
       d.` + neo4j_schema.AttrParentID + ` AS parentID,
       min(length(path)) AS depth
ORDER BY depth, name
`

func (dao *GroupGraphDAO) ListDescendants(ctx context.Context, groupID string) ([]*model.GroupNode, error) {
	start := time.Now()
	session := dao.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		records, err := tx.Run(ctx, ListDescendantsQuery, map[string]interface{}{"id": groupID})
		if err != nil {
			return nil, err
		}

		nodes := make([]*model.GroupNode, 0)
		for records.Next(ctx) {
			record := records.Record()
			node := &model.GroupNode{}
			if v, ok := record.Get("id"); ok {
				node.ID, _ = v.(string)
			}
			if v, ok := record.Get("name"); ok {
				node.Name, _ = v.(string)
			}
			if v, ok := record.Get("parentID"); ok {
				node.Parent, _ = v.(string)
			}
			if v, ok := record.Get("depth"); ok {
				if depth, ok := v.(int64); ok {
					node.Depth = int(depth)
				}
			}
			nodes = append(nodes, node)
		}
		return nodes, records.Err()
	})

	if err != nil {
		logger.Error("Failed to list group descendants",
			zap.Error(err),
			zap.String("groupID", groupID),
			zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}

	return result.([]*model.GroupNode), nil
}
