// model/neo4j/nodes.go
package neo4j_schema

// Node Labels
const (
	// LabelGroup represents a group of users
	LabelGroup = "Group"
)
