package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sampledash/internal/domain/entity"
	"sampledash/pkg/errors"
)

type fakeSaleRepo struct {
	sales   []*entity.Sale
	listErr error
}

func (f *fakeSaleRepo) List(ctx context.Context, limit int) ([]*entity.Sale, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if limit < len(f.sales) {
		return f.sales[:limit], nil
	}
	return f.sales, nil
}

type fakeSnapshotRepo struct {
	inserted  []map[string]interface{}
	insertErr error
}

func (f *fakeSnapshotRepo) Insert(ctx context.Context, payload map[string]interface{}) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, payload)
	return nil
}

func sale(coupon bool, itemNames ...string) *entity.Sale {
	items := make([]entity.Item, 0, len(itemNames))
	for _, name := range itemNames {
		items = append(items, entity.Item{Name: name, Quantity: 1})
	}
	return &entity.Sale{Items: items, CouponUsed: coupon}
}

func salesFixture() []*entity.Sale {
	return []*entity.Sale{
		sale(true, "Notebook", "Pens"),
		sale(false, "notebook"),
		sale(true, "Printer paper"),
		sale(false, "Notebook binder"),
	}
}

func TestListSalesItemNameFilter(t *testing.T) {
	uc := NewSalesUseCase(&fakeSaleRepo{sales: salesFixture()}, &fakeSnapshotRepo{})

	sales, err := uc.ListSales(context.Background(), "NOTEBOOK", "")
	require.NoError(t, err)

	// Exact match after lowercasing both sides; "Notebook binder" is not a
	// match even though it contains the filter as a substring.
	require.Len(t, sales, 2)
	for _, s := range sales {
		found := false
		for _, item := range s.Items {
			if item.Name == "Notebook" || item.Name == "notebook" {
				found = true
			}
		}
		assert.True(t, found)
	}
}

func TestListSalesCouponFilter(t *testing.T) {
	uc := NewSalesUseCase(&fakeSaleRepo{sales: salesFixture()}, &fakeSnapshotRepo{})

	sales, err := uc.ListSales(context.Background(), "", "true")
	require.NoError(t, err)
	require.Len(t, sales, 2)
	for _, s := range sales {
		assert.True(t, s.CouponUsed)
	}

	// Any value other than "true" is a no-op, including "false".
	for _, value := range []string{"false", "TRUE", "1", "yes"} {
		sales, err = uc.ListSales(context.Background(), "", value)
		require.NoError(t, err)
		assert.Len(t, sales, 4, "couponUsed=%q must not filter", value)
	}
}

func TestListSalesFiltersCompose(t *testing.T) {
	uc := NewSalesUseCase(&fakeSaleRepo{sales: salesFixture()}, &fakeSnapshotRepo{})

	sales, err := uc.ListSales(context.Background(), "notebook", "true")
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.True(t, sales[0].CouponUsed)
	assert.Equal(t, "Notebook", sales[0].Items[0].Name)
}

func TestListSalesStorageError(t *testing.T) {
	uc := NewSalesUseCase(
		&fakeSaleRepo{listErr: errors.Internal("Failed to fetch sales data", nil)},
		&fakeSnapshotRepo{},
	)

	_, err := uc.ListSales(context.Background(), "", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
}

func TestSaveSnapshot(t *testing.T) {
	snapshotRepo := &fakeSnapshotRepo{}
	uc := NewSalesUseCase(&fakeSaleRepo{}, snapshotRepo)

	payload := map[string]interface{}{"anything": []interface{}{1, "two", nil}}
	require.NoError(t, uc.SaveSnapshot(context.Background(), payload))

	require.Len(t, snapshotRepo.inserted, 1)
	assert.Equal(t, payload, snapshotRepo.inserted[0])
}
