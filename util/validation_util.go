// util/validation_util.go

package util

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	"github.com/dev-mohitbeniwal/backoffice/model"
)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names so the client can match errors to form fields.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &ValidationUtil{validate: v}
}

// validateStruct returns the first failing field as a ValidationError.
func (v *ValidationUtil) validateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return echo_errors.NewValidationError("", err.Error())
	}
	fe := fieldErrs[0]
	return echo_errors.NewValidationError(fe.Field(), describe(fe))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "numeric":
		return "must contain digits only"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func (v *ValidationUtil) ValidateSignIn(req model.SignInRequest) error {
	return v.validateStruct(req)
}

func (v *ValidationUtil) ValidateVerificationCode(req model.VerificationCodeRequest) error {
	return v.validateStruct(req)
}

func (v *ValidationUtil) ValidateNewUser(user model.NewUser) error {
	if err := v.validateStruct(user); err != nil {
		return err
	}
	if strings.TrimSpace(user.Username) != user.Username {
		return echo_errors.NewValidationError("username", "must not start or end with spaces")
	}
	return nil
}

func (v *ValidationUtil) ValidateNewGroup(group model.NewGroup) error {
	if err := v.validateStruct(group); err != nil {
		return err
	}
	if strings.TrimSpace(group.Name) == "" {
		return echo_errors.NewValidationError("name", "is required")
	}
	return nil
}

func (v *ValidationUtil) ValidateNewRole(role model.NewRole) error {
	if err := v.validateStruct(role); err != nil {
		return err
	}
	return v.ValidatePermissions(role.Permissions)
}

// ValidatePermissions rejects identifiers outside the permission catalog.
func (v *ValidationUtil) ValidatePermissions(permissions []string) error {
	for _, p := range permissions {
		if !model.IsKnownPermission(p) {
			return echo_errors.NewValidationError("permissions", fmt.Sprintf("unknown permission %q", p))
		}
	}
	return nil
}
