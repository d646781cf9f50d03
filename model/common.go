package model

import (
	"time"

	"github.com/google/uuid"
)

// RecordCommonFields are set on every inserted document.
type RecordCommonFields struct {
	ID        string
	CreatedAt time.Time
}

func NewRecordCommonFields() RecordCommonFields {
	return RecordCommonFields{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
}

// SettingsSection is an entry of the settings navigation.
type SettingsSection struct {
	Title string `json:"title"`
	Href  string `json:"href"`
}

var SettingsNavigation = []SettingsSection{
	{Title: "PROFILE", Href: "/settings/profile"},
	{Title: "USER_MANAGEMENT", Href: "/settings/users"},
	{Title: "GROUPS", Href: "/settings/groups"},
	{Title: "ACTIONS_HISTORY", Href: "/settings/action-history"},
}
