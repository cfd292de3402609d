// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/anidex/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and converts it into an [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action is recorded on the cause so server logs show which statement failed.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations the schema enforces on user input
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.StringDataRightTruncationDataException:
			field := violatedField(pgErr)
			if field == "" {
				return apperr.ValidationError("Validation failed")
			}
			return apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   field,
				Message: "Value rejected by storage constraints",
			})
		}
	}

	// 3. Everything else is a storage fault
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// violatedField names the column behind a constraint error.
//
// PostgreSQL leaves ColumnName empty for CHECK violations, so the column is
// recovered from the default constraint name "<table>_<column>_check".
// It returns "" when neither source names a column.
func violatedField(pgErr *pgconn.PgError) string {
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}

	name, isCheck := strings.CutSuffix(pgErr.ConstraintName, "_check")
	if !isCheck || pgErr.TableName == "" {
		return ""
	}
	column, hasTable := strings.CutPrefix(name, pgErr.TableName+"_")
	if !hasTable {
		return ""
	}
	return column
}

// NotFound returns a 404 naming the resource, used by repositories that
// know what they were looking up.
func NotFound(resource string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound(resource)
	}
	return err
}
