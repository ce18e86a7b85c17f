package http

import (
	"errors"
	"reflect"
	"strings"

	"tracker/internal/generated/servers"
	"tracker/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var validate = newPackageValidator()

// newPackageValidator configures request-shape validation for the create
// payload. Field names in violations use the JSON names the client sent,
// not the Go struct names.
func newPackageValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidationMapRules(map[string]string{
		"SenderName":       "required",
		"SenderAddress":    "required",
		"SenderPhone":      "required",
		"RecipientName":    "required",
		"RecipientAddress": "required",
		"RecipientPhone":   "required",
	}, servers.NewPackage{})
	return v
}

// validateNewPackage checks the request shape and returns every violated
// field, not just the first. Deeper rules (phone format and the like) are
// enforced by the domain layer.
func validateNewPackage(newPackage servers.NewPackage) []string {
	err := validate.Struct(newPackage)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return []string{"body"}
	}

	fields := make([]string, 0, len(violations))
	for _, violation := range violations {
		fields = append(fields, violation.Field())
	}
	return fields
}

// fieldViolations flattens a joined domain validation error into the list
// of violated field names.
func fieldViolations(err error) []string {
	fields := make([]string, 0, 1)
	collectFieldViolations(err, &fields)
	if len(fields) == 0 {
		fields = append(fields, "body")
	}
	return fields
}

func collectFieldViolations(err error, fields *[]string) {
	if err == nil {
		return
	}

	// errors.Join produces a multi-error; descend into each branch so every
	// violated field is reported, not just the first.
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, inner := range joined.Unwrap() {
			collectFieldViolations(inner, fields)
		}
		return
	}

	var requiredErr *errs.ValueIsRequiredError
	if errors.As(err, &requiredErr) {
		*fields = append(*fields, requiredErr.ParamName)
		return
	}
	var invalidErr *errs.ValueIsInvalidError
	if errors.As(err, &invalidErr) {
		*fields = append(*fields, invalidErr.ParamName)
		return
	}

	collectFieldViolations(errors.Unwrap(err), fields)
}
