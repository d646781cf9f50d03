// model/neo4j/relationships.go
package neo4j_schema

// Relationship Types
const (
	// RelChildOf links a group to its parent group
	RelChildOf = "CHILD_OF"
)
