package model

import "time"

const (
	UserStatusActive   = "ACTIVE"
	UserStatusDisabled = "DISABLED"
)

type User struct {
	ID        string       `json:"_id" bson:"_id"`
	Username  string       `json:"username" bson:"username"`
	Email     string       `json:"email" bson:"email"`
	Cities    []string     `json:"cities" bson:"cities"`
	Language  string       `json:"language,omitempty" bson:"language,omitempty"`
	Status    string       `json:"status,omitempty" bson:"status,omitempty"`
	Services  UserServices `json:"-" bson:"services,omitempty"`
	CreatedAt time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt *time.Time   `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// UserServices holds credential material. It is never serialized to clients.
type UserServices struct {
	Password PasswordService `bson:"password"`
}

type PasswordService struct {
	Bcrypt string `bson:"bcrypt"`
}

// NewUser is the admin "create user" form.
type NewUser struct {
	Username string   `json:"username" validate:"required,min=3,max=64"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Cities   []string `json:"cities" validate:"dive,required"`
}

type UserProfile struct {
	ID       string   `json:"_id" bson:"_id"`
	Username string   `json:"username" bson:"username"`
	Email    string   `json:"email" bson:"email"`
	Cities   []string `json:"cities" bson:"cities"`
	Language string   `json:"language,omitempty" bson:"language,omitempty"`
}

type UserListOptions struct {
	SearchText string
	Skip       int64
	Limit      int64
}

// UserOption is the light projection used by multi-select pickers.
type UserOption struct {
	ID       string `json:"_id" bson:"_id"`
	Username string `json:"username" bson:"username"`
}

// UserPage is one page of the users table.
type UserPage struct {
	Users     []*User `json:"users"`
	Total     int64   `json:"total"`
	PageSize  int     `json:"pageSize"`
	PageIndex int     `json:"pageIndex"`
}
