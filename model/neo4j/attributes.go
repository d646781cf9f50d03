// model/neo4j/attributes.go
package neo4j_schema

// Attribute Keys
const (
	// AttrID represents the unique identifier of a node
	AttrID = "id"

	// AttrName represents the name attribute of a node
	AttrName = "name"

	// AttrParentID represents the parent identifier of a node
	AttrParentID = "parentID"

	// AttrCreatedBy represents the user that created the node
	AttrCreatedBy = "createdBy"

	// AttrCreatedAt represents the creation timestamp of a node
	AttrCreatedAt = "createdAt"
)
