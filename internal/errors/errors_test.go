package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, ErrCodeInternal, "something failed")

	require.NotNil(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "something failed")
	assert.Contains(t, err.Error(), "boom")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
}

func TestCodePredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("missing")))
	assert.True(t, IsConflict(Conflict("dup")))
	assert.True(t, IsValidation(ValidationField("name", "blank")))
	assert.False(t, IsNotFound(Conflict("dup")))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, CodeOf(NotFound("missing")))
	assert.Equal(t, ErrCodeNotFound, CodeOf(fmt.Errorf("outer: %w", NotFound("missing"))))
	assert.Equal(t, ErrCodeInternal, CodeOf(errors.New("plain")))
}

func TestMapDBError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: ErrCodeNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("get job: %w", pgx.ErrNoRows), want: ErrCodeNotFound},
		{name: "deadline", err: context.DeadlineExceeded, want: ErrCodeTimeout},
		{name: "canceled", err: context.Canceled, want: ErrCodeCanceled},
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "companies_company_name_key", TableName: "companies"},
			want: ErrCodeConflict,
		},
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
			want: ErrCodeForeignKey,
		},
		{
			name: "not null violation",
			err:  &pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "job_title"},
			want: ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapDBError(tt.err)
			var appErr *AppError
			require.ErrorAs(t, got, &appErr)
			assert.Equal(t, tt.want, appErr.Code)
		})
	}
}

func TestMapDBErrorPassthrough(t *testing.T) {
	plain := errors.New("not a db error")
	assert.Equal(t, plain, MapDBError(plain))
	assert.Nil(t, MapDBError(nil))
}

func TestFieldFromConstraint(t *testing.T) {
	err := MapDBError(&pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "companies_company_name_key",
		TableName:      "companies",
	})

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "company_name", appErr.Field)
}
