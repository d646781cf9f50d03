package model

// Permission identifiers. Roles carry these strings in their permission list.
const (
	PermissionRoot              = "ROOT"
	PermissionReadUser          = "READ_USER"
	PermissionWriteUser         = "WRITE_USER"
	PermissionReadGroup         = "READ_GROUP"
	PermissionWriteGroup        = "WRITE_GROUP"
	PermissionReadRole          = "READ_ROLE"
	PermissionWriteRole         = "WRITE_ROLE"
	PermissionReadActionHistory = "READ_ACTION_HISTORY"
)

const (
	ModuleSystem   = "system"
	ModuleUser     = "user"
	ModuleGroup    = "group"
	ModuleRole     = "role"
	ModuleSettings = "settings"
)

// PermissionDescriptor describes one permission for display.
type PermissionDescriptor struct {
	Key         string `json:"key"`
	Module      string `json:"module"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PermissionAction is a descriptor without its module field.
type PermissionAction struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ModulePermissions struct {
	Module  string             `json:"module"`
	Actions []PermissionAction `json:"actions"`
}

var PermissionCatalog = []PermissionDescriptor{
	{Key: PermissionRoot, Module: ModuleSystem, Name: "Root", Description: "Full access to every module"},
	{Key: PermissionReadUser, Module: ModuleUser, Name: "Read users"},
	{Key: PermissionWriteUser, Module: ModuleUser, Name: "Create and edit users"},
	{Key: PermissionReadGroup, Module: ModuleGroup, Name: "Read groups"},
	{Key: PermissionWriteGroup, Module: ModuleGroup, Name: "Create and edit groups"},
	{Key: PermissionReadRole, Module: ModuleRole, Name: "Read roles"},
	{Key: PermissionWriteRole, Module: ModuleRole, Name: "Create and edit roles"},
	{Key: PermissionReadActionHistory, Module: ModuleSettings, Name: "Read actions history"},
}

// IsKnownPermission reports whether key is one of the enumerated identifiers.
func IsKnownPermission(key string) bool {
	for _, p := range PermissionCatalog {
		if p.Key == key {
			return true
		}
	}
	return false
}
