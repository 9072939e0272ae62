package repository

import (
	"errors"
	"strings"

	"tallypos/internal/apierror"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// Translate classifies a database error from an insert/update path into the
// API error taxonomy: foreign-key and uniqueness violations become 400s
// identified by the offending column; anything unrecognized passes through
// and surfaces as an opaque 500.
func Translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	name := strings.ToLower(pgErr.ConstraintName)
	switch pgErr.Code {
	case pgForeignKeyViolation:
		switch {
		case strings.Contains(name, "customer"):
			return apierror.Constraint("Customer does not exist!")
		case strings.Contains(name, "product"):
			return apierror.Constraint("Product does not exist!")
		case strings.Contains(name, "category"):
			return apierror.Constraint("Category does not exist!")
		case strings.Contains(name, "user"):
			return apierror.Constraint("User does not exist!")
		case strings.Contains(name, "log"):
			return apierror.Constraint("Log does not exist!")
		}
		return apierror.Constraint("Invalid input or constraint violation!")
	case pgUniqueViolation:
		switch {
		case strings.Contains(name, "username"):
			return apierror.Constraint("Username is already taken!")
		case strings.Contains(name, "sku"):
			return apierror.Constraint("SKU is already in use!")
		case strings.Contains(name, "name"):
			return apierror.Constraint("Name is already in use!")
		}
		return apierror.Constraint("Invalid input or constraint violation!")
	case pgNotNullViolation, pgCheckViolation:
		return apierror.Constraint("Invalid input or constraint violation!")
	}
	return err
}

// IsForeignKey reports whether err is a foreign-key violation. Delete paths
// use it to distinguish "still referenced" from genuine failures, since the
// constraint name alone cannot tell a bad reference from a blocked delete.
func IsForeignKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
