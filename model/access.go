// model/access.go
package model

import "time"

type Role struct {
	ID          string     `json:"_id" bson:"_id"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description" bson:"description"`
	Permissions []string   `json:"permissions" bson:"permissions"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Group is a node in the group forest. Root groups have an empty Parent.
type Group struct {
	ID          string     `json:"_id" bson:"_id"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description" bson:"description"`
	Parent      string     `json:"parent,omitempty" bson:"parent,omitempty"`
	RoleIDs     []string   `json:"roleIds" bson:"roleIds"`
	UserIDs     []string   `json:"userIds" bson:"userIds"`
	CreatedBy   string     `json:"createdBy" bson:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// NewGroup is the "create group" form; Parent comes from the route.
type NewGroup struct {
	Name        string   `json:"name" validate:"required,max=128"`
	Description string   `json:"description" validate:"required,max=512"`
	UserIDs     []string `json:"userIds" validate:"dive,required"`
	RoleIDs     []string `json:"roleIds" validate:"dive,required"`
	Parent      string   `json:"-"`
}

type NewRole struct {
	Name        string   `json:"name" validate:"required,max=128"`
	Description string   `json:"description" validate:"max=512"`
	Permissions []string `json:"permissions" validate:"dive,required"`
}

// GroupNode is a group as seen by the hierarchy graph.
type GroupNode struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Parent string `json:"parent,omitempty"`
	Depth  int    `json:"depth"`
}

// GroupFormData feeds the "create group" form under a parent group.
type GroupFormData struct {
	Parent *Group        `json:"parent"`
	Roles  []*Role       `json:"roles"`
	Users  []*UserOption `json:"users"`
}
