package model

import (
	"encoding/json"
	"sort"
)

// PermissionSet is the effective permission set of a caller.
type PermissionSet map[string]struct{}

func NewPermissionSet(permissions ...string) PermissionSet {
	set := make(PermissionSet, len(permissions))
	set.Add(permissions...)
	return set
}

func (s PermissionSet) Add(permissions ...string) {
	for _, p := range permissions {
		if p == "" {
			continue
		}
		s[p] = struct{}{}
	}
}

func (s PermissionSet) Has(permission string) bool {
	_, ok := s[permission]
	return ok
}

func (s PermissionSet) Len() int {
	return len(s)
}

// Sorted returns the members in lexical order.
func (s PermissionSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func (s PermissionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *PermissionSet) UnmarshalJSON(data []byte) error {
	var perms []string
	if err := json.Unmarshal(data, &perms); err != nil {
		return err
	}
	*s = NewPermissionSet(perms...)
	return nil
}
