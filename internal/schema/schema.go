// Package schema validates request payloads before they reach the store.
// Validation is pure: no payload is mutated and no store state is touched,
// so the same rules serve both the creation and partial-update paths.
package schema

import (
	"errors"

	"shopease/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateInsertProduct checks a product creation payload. All fields are
// required: non-empty name and description, numeric price string, URL image.
func ValidateInsertProduct(payload *model.InsertProduct) error {
	return check(payload)
}

// ValidatePartialProduct checks a partial product update. Every field is
// optional; present fields obey the same rules as on creation.
func ValidatePartialProduct(payload *model.PartialProduct) error {
	return check(payload)
}

// ValidateInsertOrder checks an order creation payload: integer product id,
// customer name of at least 2 characters, well-formed email, exactly 10
// digit phone, address of at least 10 characters, numeric total amount.
// Notes is optional and may be nil.
func ValidateInsertOrder(payload *model.InsertOrder) error {
	return check(payload)
}

// ValidateInsertUser checks a user creation payload: non-empty username and
// password.
func ValidateInsertUser(payload *model.InsertUser) error {
	return check(payload)
}

// check runs struct-tag validation and converts the first violation into a
// *model.ValidationError naming the offending field.
func check(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) && len(violations) > 0 {
		first := violations[0]
		return &model.ValidationError{Field: first.Field(), Rule: first.Tag()}
	}

	return err
}
