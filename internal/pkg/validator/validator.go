// Package validator wraps go-playground/validator with the tags and error
// format shared by configuration, overrides and subscriptions.
//
// Field names in errors come from the yaml or json tag when present, so a
// bad channel option reads "'lendingPool': ..." rather than the Go name.
//
// Extra tags:
//
//	privkey  32 byte hex private key, with or without 0x
package validator

import (
	"encoding/hex"
	"errors"
	"fmt"
	"reflect"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of every chain returned by Validate.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

// Example: "'lendingPool': value '0x' does not meet the requirements for the 'eth_addr' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	validator.RegisterTagNameFunc(fieldName)

	if err := validator.RegisterValidation("privkey", isPrivateKey); err != nil {
		panic(err)
	}
}

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"yaml", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return f.Name
}

func isPrivateKey(fl gvalidator.FieldLevel) bool {
	s := fl.Field().String()
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != 64 {
		return false
	}

	_, err := hex.DecodeString(s)
	return err == nil
}

// formatError turns validator field errors into ErrValidationFailed joined
// with one message per field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, fe := range validationErrors {
		value := fe.Value()
		if fe.Tag() == "privkey" {
			value = "<redacted>"
		}

		errs = append(errs, fmt.Errorf(errStringFormat, fe.Field(), value, fe.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks v against its validate tags.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
