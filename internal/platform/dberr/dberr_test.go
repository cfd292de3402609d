// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/anidex/internal/platform/apperr"
	"github.com/taibuivan/anidex/internal/platform/dberr"
)

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

func TestWrap_NoRows(t *testing.T) {
	err := dberr.Wrap(fmt.Errorf("scan: %w", pgx.ErrNoRows), "get_anime")

	assert.ErrorIs(t, err, dberr.ErrNotFound)
}

func TestWrap_CheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.CheckViolation, ColumnName: "name"}

	ae := apperr.As(dberr.Wrap(pgErr, "create_anime"))
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
	assert.Equal(t, "name", ae.Details[0].Field)
}

/*
TestWrap_ConstraintField covers how the offending field is named when
PostgreSQL omits the column.
*/
func TestWrap_ConstraintField(t *testing.T) {
	tests := []struct {
		name   string
		pgErr  *pgconn.PgError
		fields []string
	}{
		{
			name:   "check_from_constraint_name",
			pgErr:  &pgconn.PgError{Code: pgerrcode.CheckViolation, TableName: "anime", ConstraintName: "anime_description_check"},
			fields: []string{"description"},
		},
		{
			name:   "named_constraint",
			pgErr:  &pgconn.PgError{Code: pgerrcode.CheckViolation, TableName: "anime", ConstraintName: "name_not_blank"},
			fields: nil,
		},
		{
			name:   "foreign_table_prefix",
			pgErr:  &pgconn.PgError{Code: pgerrcode.CheckViolation, TableName: "anime", ConstraintName: "studio_name_check"},
			fields: nil,
		},
		{
			name:   "truncation_without_column",
			pgErr:  &pgconn.PgError{Code: pgerrcode.StringDataRightTruncationDataException},
			fields: nil,
		},
		{
			name:   "not_null_with_column",
			pgErr:  &pgconn.PgError{Code: pgerrcode.NotNullViolation, TableName: "anime", ColumnName: "name"},
			fields: []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ae := apperr.As(dberr.Wrap(tt.pgErr, "update_anime"))
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)

			var fields []string
			for _, detail := range ae.Details {
				assert.NotEmpty(t, detail.Field)
				fields = append(fields, detail.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestWrap_UnknownBecomesInternal(t *testing.T) {
	cause := errors.New("connection reset by peer")

	ae := apperr.As(dberr.Wrap(cause, "list_animes"))
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
	assert.ErrorIs(t, ae, cause)
	assert.Contains(t, ae.Cause.Error(), "list_animes")
}

func TestNotFound_NamesResource(t *testing.T) {
	err := dberr.NotFound("Anime", dberr.ErrNotFound)
	assert.Equal(t, "Anime not found", err.Error())

	other := errors.New("other")
	assert.Same(t, other, dberr.NotFound("Anime", other))
}
