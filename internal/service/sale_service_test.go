package service

import (
	"context"
	"testing"

	"tallypos/internal/apierror"
	"tallypos/internal/dto"
	"tallypos/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// In-memory repository stubs. DB() returns nil, which makes the service run
// its transaction body directly against these maps.

type stubSaleRepo struct {
	nextSale   int64
	nextDetail int64
	sales      map[int64]*model.Sale
	details    map[int64]*model.SaleDetail
	logs       *stubLogRepo
}

func newStubSaleRepo(logs *stubLogRepo) *stubSaleRepo {
	return &stubSaleRepo{
		sales:   make(map[int64]*model.Sale),
		details: make(map[int64]*model.SaleDetail),
		logs:    logs,
	}
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

func (r *stubSaleRepo) CreateTx(_ context.Context, _ *gorm.DB, s *model.Sale) error {
	r.nextSale++
	s.ID = r.nextSale
	cp := *s
	r.sales[s.ID] = &cp
	return nil
}

func (r *stubSaleRepo) CreateDetailTx(_ context.Context, _ *gorm.DB, d *model.SaleDetail) error {
	r.nextDetail++
	d.ID = r.nextDetail
	cp := *d
	r.details[d.ID] = &cp
	return nil
}

func (r *stubSaleRepo) SetTotalTx(_ context.Context, _ *gorm.DB, saleID, totalCents int64) error {
	if s, ok := r.sales[saleID]; ok {
		s.TotalCents = totalCents
	}
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id int64) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	cp.Details = nil
	for _, d := range r.details {
		if d.SaleID == id {
			dc := *d
			if d.LogID != nil {
				dc.Log = r.logs.entries[*d.LogID]
			}
			cp.Details = append(cp.Details, dc)
		}
	}
	return &cp, nil
}

func (r *stubSaleRepo) List(_ context.Context) ([]model.Sale, error) {
	var out []model.Sale
	for id := range r.sales {
		s, _ := r.FindByID(context.Background(), id)
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSaleRepo) UpdateCustomer(_ context.Context, id, customerID int64) error {
	if s, ok := r.sales[id]; ok {
		s.CustomerID = customerID
	}
	return nil
}

func (r *stubSaleRepo) DetailLogIDsTx(_ context.Context, _ *gorm.DB, saleID int64) ([]int64, error) {
	var ids []int64
	for _, d := range r.details {
		if d.SaleID == saleID && d.LogID != nil {
			ids = append(ids, *d.LogID)
		}
	}
	return ids, nil
}

func (r *stubSaleRepo) DeleteLogsTx(_ context.Context, _ *gorm.DB, logIDs []int64) error {
	for _, id := range logIDs {
		delete(r.logs.entries, id)
	}
	return nil
}

func (r *stubSaleRepo) DeleteDetailsTx(_ context.Context, _ *gorm.DB, saleID int64) error {
	for id, d := range r.details {
		if d.SaleID == saleID {
			delete(r.details, id)
		}
	}
	return nil
}

func (r *stubSaleRepo) DeleteTx(_ context.Context, _ *gorm.DB, saleID int64) (int64, error) {
	if _, ok := r.sales[saleID]; !ok {
		return 0, nil
	}
	delete(r.sales, saleID)
	return 1, nil
}

type stubLogRepo struct {
	next    int64
	entries map[int64]*model.InventoryLog
}

func newStubLogRepo() *stubLogRepo {
	return &stubLogRepo{entries: make(map[int64]*model.InventoryLog)}
}

func (r *stubLogRepo) Create(_ context.Context, l *model.InventoryLog) error {
	r.next++
	l.ID = r.next
	cp := *l
	r.entries[l.ID] = &cp
	return nil
}

func (r *stubLogRepo) CreateTx(ctx context.Context, _ *gorm.DB, l *model.InventoryLog) error {
	return r.Create(ctx, l)
}

func (r *stubLogRepo) FindByID(_ context.Context, id int64) (*model.InventoryLog, error) {
	l, ok := r.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *stubLogRepo) List(_ context.Context) ([]model.InventoryLog, error) {
	var out []model.InventoryLog
	for _, l := range r.entries {
		out = append(out, *l)
	}
	return out, nil
}

func (r *stubLogRepo) Update(_ context.Context, l *model.InventoryLog) error {
	cp := *l
	r.entries[l.ID] = &cp
	return nil
}

func (r *stubLogRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := r.entries[id]; !ok {
		return 0, nil
	}
	delete(r.entries, id)
	return 1, nil
}

func ptr[T any](v T) *T { return &v }

func newSaleFixture() (SaleService, *stubSaleRepo, *stubLogRepo) {
	logs := newStubLogRepo()
	repo := newStubSaleRepo(logs)
	return NewSaleService(repo, logs), repo, logs
}

func TestSaleCreateWritesLogsAndDetails(t *testing.T) {
	svc, repo, logs := newSaleFixture()
	ctx := context.Background()

	id, err := svc.Create(ctx, 3, dto.CreateSaleRequest{
		CustomerID: ptr(int64(10)),
		Details: []dto.SaleLineRequest{
			{ProductID: ptr(int64(1)), Quantity: ptr(int64(2)), SubtotalCents: ptr(int64(500)), Note: "apples"},
			{ProductID: ptr(int64(2)), Quantity: ptr(int64(1)), SubtotalCents: ptr(int64(300))},
			{SubtotalCents: ptr(int64(150)), Note: "delivery fee"},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	sale := repo.sales[id]
	require.NotNil(t, sale)
	assert.Equal(t, int64(10), sale.CustomerID)
	assert.Equal(t, int64(3), sale.UserID)
	assert.Equal(t, int64(950), sale.TotalCents)

	// Two product lines produce two ledger entries with delta = -quantity.
	assert.Len(t, logs.entries, 2)
	for _, l := range logs.entries {
		assert.Equal(t, model.LogTypeSale, l.Type)
		assert.Negative(t, l.Delta)
		assert.Contains(t, l.Note, "Automatic logging from sale #1")
	}

	// Three detail rows; the fee line has no log reference.
	assert.Len(t, repo.details, 3)
	var withLog, withoutLog int
	for _, d := range repo.details {
		if d.LogID != nil {
			withLog++
		} else {
			withoutLog++
		}
	}
	assert.Equal(t, 2, withLog)
	assert.Equal(t, 1, withoutLog)
}

func TestSaleCreateValidation(t *testing.T) {
	svc, _, _ := newSaleFixture()
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.CreateSaleRequest
		want string
	}{
		{
			"missing customer",
			dto.CreateSaleRequest{Details: []dto.SaleLineRequest{{SubtotalCents: ptr(int64(1))}}},
			"A customer is required!",
		},
		{
			"empty details",
			dto.CreateSaleRequest{CustomerID: ptr(int64(1))},
			"A non-empty list of details is required!",
		},
		{
			"missing subtotal",
			dto.CreateSaleRequest{
				CustomerID: ptr(int64(1)),
				Details:    []dto.SaleLineRequest{{ProductID: ptr(int64(1)), Quantity: ptr(int64(1))}},
			},
			"Each detail requires a subtotal!",
		},
		{
			"product without quantity",
			dto.CreateSaleRequest{
				CustomerID: ptr(int64(1)),
				Details:    []dto.SaleLineRequest{{ProductID: ptr(int64(1)), SubtotalCents: ptr(int64(1))}},
			},
			"Each detail that contains inventory change must have a quantity!",
		},
		{
			"product with zero quantity",
			dto.CreateSaleRequest{
				CustomerID: ptr(int64(1)),
				Details:    []dto.SaleLineRequest{{ProductID: ptr(int64(1)), Quantity: ptr(int64(0)), SubtotalCents: ptr(int64(1))}},
			},
			"Each detail that contains inventory change must have a quantity!",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, 1, tc.req)
			var apiErr *apierror.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, 400, apiErr.Status)
			assert.Equal(t, tc.want, apiErr.Message)
		})
	}
}

// badCustomerSaleRepo fails the header insert the way Postgres does when the
// customer reference is dangling.
type badCustomerSaleRepo struct {
	*stubSaleRepo
}

func (r *badCustomerSaleRepo) CreateTx(_ context.Context, _ *gorm.DB, _ *model.Sale) error {
	return &pgconn.PgError{Code: "23503", ConstraintName: "fk_sales_customer"}
}

func TestSaleCreateNonexistentCustomer(t *testing.T) {
	logs := newStubLogRepo()
	repo := &badCustomerSaleRepo{stubSaleRepo: newStubSaleRepo(logs)}
	svc := NewSaleService(repo, logs)

	_, err := svc.Create(context.Background(), 1, dto.CreateSaleRequest{
		CustomerID: ptr(int64(999)),
		Details: []dto.SaleLineRequest{
			{ProductID: ptr(int64(1)), Quantity: ptr(int64(2)), SubtotalCents: ptr(int64(500))},
		},
	})

	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "Customer does not exist!", apiErr.Message)

	// The failed transaction leaves nothing behind.
	assert.Empty(t, repo.sales)
	assert.Empty(t, repo.details)
	assert.Empty(t, logs.entries)
}

func TestSaleCreateZeroSubtotalAllowed(t *testing.T) {
	svc, repo, _ := newSaleFixture()

	id, err := svc.Create(context.Background(), 1, dto.CreateSaleRequest{
		CustomerID: ptr(int64(1)),
		Details:    []dto.SaleLineRequest{{SubtotalCents: ptr(int64(0)), Note: "comp"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), repo.sales[id].TotalCents)
}

func TestSaleDeleteCascades(t *testing.T) {
	svc, repo, logs := newSaleFixture()
	ctx := context.Background()

	id, err := svc.Create(ctx, 1, dto.CreateSaleRequest{
		CustomerID: ptr(int64(1)),
		Details: []dto.SaleLineRequest{
			{ProductID: ptr(int64(1)), Quantity: ptr(int64(3)), SubtotalCents: ptr(int64(900))},
			{SubtotalCents: ptr(int64(100))},
		},
	})
	require.NoError(t, err)

	// A manual entry for another product must survive the cascade.
	manual := &model.InventoryLog{Type: model.LogTypeManual, ProductID: 9, Delta: 5}
	require.NoError(t, logs.Create(ctx, manual))

	require.NoError(t, svc.Delete(ctx, id))

	assert.Empty(t, repo.sales)
	assert.Empty(t, repo.details)
	require.Len(t, logs.entries, 1)
	assert.Equal(t, manual.ID, logs.entries[manual.ID].ID)
}

func TestSaleDeleteMissing(t *testing.T) {
	svc, _, _ := newSaleFixture()

	err := svc.Delete(context.Background(), 42)
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "Sale is not found!", apiErr.Message)
}

func TestSaleDeleteTwice(t *testing.T) {
	svc, _, _ := newSaleFixture()
	ctx := context.Background()

	id, err := svc.Create(ctx, 1, dto.CreateSaleRequest{
		CustomerID: ptr(int64(1)),
		Details:    []dto.SaleLineRequest{{SubtotalCents: ptr(int64(100))}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))

	err = svc.Delete(ctx, id)
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestSaleUpdateCustomerOnly(t *testing.T) {
	svc, repo, _ := newSaleFixture()
	ctx := context.Background()

	id, err := svc.Create(ctx, 1, dto.CreateSaleRequest{
		CustomerID: ptr(int64(1)),
		Details:    []dto.SaleLineRequest{{SubtotalCents: ptr(int64(100))}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, id, dto.UpdateSaleRequest{CustomerID: ptr(int64(2))}))
	assert.Equal(t, int64(2), repo.sales[id].CustomerID)

	err = svc.Update(ctx, id, dto.UpdateSaleRequest{})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "No valid fields to update!", apiErr.Message)

	err = svc.Update(ctx, 999, dto.UpdateSaleRequest{CustomerID: ptr(int64(2))})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestSaleGetReportsQuantityFromDelta(t *testing.T) {
	svc, _, _ := newSaleFixture()
	ctx := context.Background()

	id, err := svc.Create(ctx, 1, dto.CreateSaleRequest{
		CustomerID: ptr(int64(1)),
		Details: []dto.SaleLineRequest{
			{ProductID: ptr(int64(4)), Quantity: ptr(int64(6)), SubtotalCents: ptr(int64(1200))},
		},
	})
	require.NoError(t, err)

	resp, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, resp.Details, 1)
	require.NotNil(t, resp.Details[0].Quantity)
	assert.Equal(t, int64(6), *resp.Details[0].Quantity)
	require.NotNil(t, resp.Details[0].ProductID)
	assert.Equal(t, int64(4), *resp.Details[0].ProductID)
	assert.Equal(t, int64(1200), resp.TotalCents)
}

func TestSaleGetMissing(t *testing.T) {
	svc, _, _ := newSaleFixture()

	_, err := svc.Get(context.Background(), 5)
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "Sale is not found!", apiErr.Message)
}
