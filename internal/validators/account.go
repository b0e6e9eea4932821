package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/account-service/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of
// account fields. They match the JSON names of models.Account.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldAddress     = "address"
	FieldPhoneNumber = "phone_number"
)

var accountFields = map[string]string{
	FieldName:        "Name",
	FieldEmail:       "Email",
	FieldAddress:     "Address",
	FieldPhoneNumber: "PhoneNumber",
}

// AccountValidator checks models.Account values against the `validate`
// struct tags declared on the model. Field errors are reported by their JSON
// name so that messages read the same way the client wrote the payload.
type AccountValidator struct {
	validate *validator.Validate
}

// NewAccountValidator constructs an AccountValidator and returns it as the
// Validator interface.
func NewAccountValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &AccountValidator{validate: v}
}

// Validate accepts models.Account or *models.Account. When fields are given
// only those are checked; unknown names yield ErrUnknownField.
//
// Every failure wraps ErrInvalidAccount and carries the first offending
// field, e.g. "invalid account: name is required".
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var account models.Account
	switch value := obj.(type) {
	case models.Account:
		account = value
	case *models.Account:
		if value == nil {
			return ErrUnsupportedType
		}
		account = *value
	default:
		return ErrUnsupportedType
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, account)
	} else {
		structFields := make([]string, 0, len(fields))
		for _, f := range fields {
			name, ok := accountFields[f]
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
			structFields = append(structFields, name)
		}
		err = v.validate.StructPartialCtx(ctx, account, structFields...)
	}

	return describe(err)
}

// describe turns the first validator field error into a readable message.
func describe(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidAccount, err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", ErrInvalidAccount, fe.Field())
	case "max":
		return fmt.Errorf("%w: %s must be at most %s characters", ErrInvalidAccount, fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%w: %s failed on %q", ErrInvalidAccount, fe.Field(), fe.Tag())
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
