package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKeyError(t *testing.T) {
	numberErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_employees_employee_number"}
	emailErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}

	assert.True(t, isDuplicateKeyError(numberErr, "employee_number"))
	assert.False(t, isDuplicateKeyError(numberErr, "email"))
	assert.True(t, isDuplicateKeyError(emailErr, "email"))

	// gorm wraps driver errors, detection must unwrap.
	wrapped := fmt.Errorf("create employee: %w", numberErr)
	assert.True(t, isDuplicateKeyError(wrapped, "employee_number"))

	assert.False(t, isDuplicateKeyError(&pgconn.PgError{Code: "23503", ConstraintName: "idx_employees_employee_number"}, "employee_number"))
	assert.False(t, isDuplicateKeyError(errors.New("connection reset"), "employee_number"))
}

func TestIsForeignKeyError(t *testing.T) {
	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "fk_employees_department"}

	assert.True(t, isForeignKeyError(fkErr, "department"))
	assert.False(t, isForeignKeyError(fkErr, "position"))
	assert.False(t, isForeignKeyError(&pgconn.PgError{Code: "23505", ConstraintName: "fk_employees_department"}, "department"))
}
