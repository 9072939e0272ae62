package repository

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"tallypos/internal/apierror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pgErr(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestTranslateForeignKey(t *testing.T) {
	cases := []struct {
		constraint string
		want       string
	}{
		{"fk_sales_customer", "Customer does not exist!"},
		{"fk_inventory_logs_product", "Product does not exist!"},
		{"fk_products_category", "Category does not exist!"},
		{"fk_sales_user", "User does not exist!"},
		{"fk_sales_details_log", "Log does not exist!"},
		{"fk_mystery", "Invalid input or constraint violation!"},
	}
	for _, tc := range cases {
		err := Translate(pgErr("23503", tc.constraint))
		var apiErr *apierror.Error
		require.ErrorAs(t, err, &apiErr, tc.constraint)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Equal(t, tc.want, apiErr.Message)
	}
}

func TestTranslateUnique(t *testing.T) {
	cases := []struct {
		constraint string
		want       string
	}{
		{"uni_users_username", "Username is already taken!"},
		{"uni_products_sku", "SKU is already in use!"},
		{"uni_categories_name", "Name is already in use!"},
	}
	for _, tc := range cases {
		err := Translate(pgErr("23505", tc.constraint))
		var apiErr *apierror.Error
		require.ErrorAs(t, err, &apiErr, tc.constraint)
		assert.Equal(t, tc.want, apiErr.Message)
	}
}

func TestTranslatePassesThroughUnknown(t *testing.T) {
	plain := fmt.Errorf("connection reset")
	assert.Equal(t, plain, Translate(plain))

	// Unrecognized SQLSTATE stays opaque and ends up as a 500.
	serialization := pgErr("40001", "")
	assert.Equal(t, serialization, Translate(serialization))
}

func TestTranslateWrapped(t *testing.T) {
	wrapped := fmt.Errorf("create: %w", pgErr("23503", "fk_sales_customer"))
	var apiErr *apierror.Error
	require.ErrorAs(t, Translate(wrapped), &apiErr)
	assert.Equal(t, "Customer does not exist!", apiErr.Message)
}

func TestIsForeignKey(t *testing.T) {
	assert.True(t, IsForeignKey(pgErr("23503", "fk")))
	assert.False(t, IsForeignKey(pgErr("23505", "uni")))
	assert.False(t, IsForeignKey(errors.New("other")))
}
