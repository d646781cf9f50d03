// model/mongo/collections.go
package mongo_schema

// Collection names
const (
	// CollectionUsers holds user accounts
	CollectionUsers = "users"

	// CollectionRoles holds named permission bundles
	CollectionRoles = "roles"

	// CollectionGroups holds the group forest
	CollectionGroups = "groups"

	// CollectionActionsHistory is the append-only audit log
	CollectionActionsHistory = "actionsHistory"
)
