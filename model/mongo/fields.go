// model/mongo/fields.go
package mongo_schema

// Document field keys
const (
	FieldID          = "_id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldCreatedAt   = "createdAt"
	FieldUpdatedAt   = "updatedAt"

	FieldUsername       = "username"
	FieldEmail          = "email"
	FieldCities         = "cities"
	FieldStatus         = "status"
	FieldLanguage       = "language"
	FieldServices       = "services"
	FieldPasswordBcrypt = "services.password.bcrypt"

	FieldPermissions = "permissions"

	FieldParent    = "parent"
	FieldRoleIDs   = "roleIds"
	FieldUserIDs   = "userIds"
	FieldCreatedBy = "createdBy"

	FieldUserID = "userId"
	FieldAction = "action"
	FieldData   = "data"

	// FieldJoinedUser is the alias of the users lookup in history pipelines
	FieldJoinedUser = "user"
)
