// audit/model.go
package audit

import (
	"time"
)

// Action names recorded in the history.
const (
	ActionCreateUser            = "CREATE_USER"
	ActionCreateGroup           = "CREATE_GROUP"
	ActionCreateRole            = "CREATE_ROLE"
	ActionUpdateRolePermissions = "UPDATE_ROLE_PERMISSIONS"
	ActionSignIn                = "SIGN_IN"
	ActionSignOut               = "SIGN_OUT"
)

// ActionHistory is an append-only audit record. Username is filled by the users join
// when listing and is never stored.
type ActionHistory struct {
	ID        string      `json:"_id" bson:"_id"`
	UserID    string      `json:"userId" bson:"userId"`
	Username  string      `json:"username,omitempty" bson:"username,omitempty"`
	Action    string      `json:"action" bson:"action"`
	Data      interface{} `json:"data,omitempty" bson:"data,omitempty"`
	CreatedAt time.Time   `json:"createdAt" bson:"createdAt"`
}

type ActionHistoryQuery struct {
	SearchText string
	Skip       int64
	Limit      int64
}

type ActionHistoryPage struct {
	ActionsHistory []*ActionHistory `json:"actionsHistory"`
	Total          int64            `json:"total"`
	PageSize       int              `json:"pageSize"`
	PageIndex      int              `json:"pageIndex"`
}
