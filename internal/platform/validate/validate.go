// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate evaluates struct tag rules and collects field-level
// errors into a single [apperr.AppError].
//
// # Architecture
//
// This package is used in the service layer, never in handlers or storage.
// Rules are declared as `validate` tags and evaluated by go-playground/validator.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/taibuivan/anidex/internal/platform/apperr"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

	// structValidator caches struct metadata, so one instance is shared.
	structValidator = newStructValidator()
)

// newStructValidator reports fields by their JSON names and registers the
// notblank rule.
func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(level validator.FieldLevel) bool {
		return strings.TrimSpace(level.Field().String()) != ""
	})

	return v
}

// Validator collects field-level validation errors for one input.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Struct evaluates the `validate` struct tags on target and records every
// failure under the field's JSON name.
func (v *Validator) Struct(target any) *Validator {
	err := structValidator.Struct(target)
	if err == nil {
		return v
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		// InvalidValidationError means a programming mistake, not bad input.
		panic(err)
	}

	for _, fieldError := range fieldErrors {
		v.add(fieldError.Field(), messageForTag(fieldError))
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// add appends a [apperr.FieldError].
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// messageForTag maps a validator tag to a client-facing message.
func messageForTag(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required", "notblank":
		return "This field is required"
	case "max":
		return fmt.Sprintf("Maximum %s characters", fieldError.Param())
	default:
		return fmt.Sprintf("Failed %s rule", fieldError.Tag())
	}
}
