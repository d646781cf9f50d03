package engine

import (
	"github.com/dev-mohitbeniwal/backoffice/model"
	pdp_model "github.com/dev-mohitbeniwal/backoffice/pdp/model"
)

// ConvertRolesToPermissions flattens the permission lists of roles into one set.
// Nil roles and roles without permissions contribute nothing.
func ConvertRolesToPermissions(roles []*model.Role) pdp_model.PermissionSet {
	set := pdp_model.NewPermissionSet()
	for _, role := range roles {
		if role == nil {
			continue
		}
		set.Add(role.Permissions...)
	}
	return set
}

// GroupPermissionsByModule buckets descriptors by module, keeping the order in which
// modules are first seen.
func GroupPermissionsByModule(permissions []model.PermissionDescriptor) []model.ModulePermissions {
	index := make(map[string]int)
	grouped := make([]model.ModulePermissions, 0)

	for _, p := range permissions {
		i, ok := index[p.Module]
		if !ok {
			i = len(grouped)
			index[p.Module] = i
			grouped = append(grouped, model.ModulePermissions{Module: p.Module, Actions: []model.PermissionAction{}})
		}
		grouped[i].Actions = append(grouped[i].Actions, model.PermissionAction{
			Key:         p.Key,
			Name:        p.Name,
			Description: p.Description,
		})
	}

	return grouped
}
